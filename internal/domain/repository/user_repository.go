package repository

import (
	"context"
	"errors"

	"flatradar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCriteriaNotFound is returned when a user has no stored criteria.
	// The poller treats this as "skip the user for this cycle", not a fault.
	ErrCriteriaNotFound = errors.New("user criteria not found")
)

// UserRepository defines the interface for user and criteria persistence.
type UserRepository interface {
	// FindAlertable retrieves all users that are active, not paused, and have
	// completed onboarding.
	FindAlertable(ctx context.Context) ([]*entity.User, error)

	// FindCriteria retrieves the current criteria for a user, or
	// ErrCriteriaNotFound when the user never completed onboarding.
	FindCriteria(ctx context.Context, userID uuid.UUID) (*entity.UserCriteria, error)

	// ReplaceCriteria replaces the user's criteria wholesale. Used by the
	// onboarding collaborator on (re-)onboarding.
	ReplaceCriteria(ctx context.Context, criteria *entity.UserCriteria) error

	// FindDevices retrieves the active push devices registered by a user.
	FindDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
}
