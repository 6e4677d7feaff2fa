package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IsActive            bool      `gorm:"not null;default:true"`
	IsPaused            bool      `gorm:"not null;default:false"`
	OnboardingCompleted bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	LastInteractionAt   time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`

	Criteria *UserCriteriaModel `gorm:"foreignKey:UserID"`
	Devices  []UserDeviceModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserCriteriaModel mirrors the 'user_criteria' table. Each user owns at most
// one row; re-onboarding replaces it wholesale. The strict and comfort blocks
// are stored as JSONB documents since their shape evolves with the extraction
// collaborator.
type UserCriteriaModel struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Strict               []byte    `gorm:"type:jsonb;not null"`
	Comfort              []byte    `gorm:"type:jsonb;not null"`
	OriginalDescription  string    `gorm:"type:text"`
	HumanSummary         string    `gorm:"type:text"`
	ExtractionConfidence float64   `gorm:"type:decimal(4,3)"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserCriteriaModel) TableName() string {
	return "user_criteria"
}

// UserDeviceModel mirrors the 'user_devices' table. It represents a user's
// device registered for push notifications.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"type:varchar(255);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
