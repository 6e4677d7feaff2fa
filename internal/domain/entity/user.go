package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a subscriber of the alerting service.
type User struct {
	ID                  uuid.UUID `json:"id"`                   // The Global Unique Identifier (GUID) for the user.
	IsActive            bool      `json:"is_active"`            // Indicates if the account is active.
	IsPaused            bool      `json:"is_paused"`            // Indicates if the user paused their alerts.
	OnboardingCompleted bool      `json:"onboarding_completed"` // Indicates if the user finished stating their criteria.
	CreatedAt           time.Time `json:"created_at"`           // Timestamp of when the account was created.
	LastInteractionAt   time.Time `json:"last_interaction_at"`  // Timestamp of the user's last interaction.
}

// Alertable reports whether the user should be considered by the poller.
func (u *User) Alertable() bool {
	return u.IsActive && !u.IsPaused && u.OnboardingCompleted
}

// UserDevice represents a push-capable device registered by a user.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the owning user.
	FCMToken  string    `json:"fcm_token"`  // The Firebase Cloud Messaging registration token.
	IsActive  bool      `json:"is_active"`  // Indicates if the device should still receive pushes.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
