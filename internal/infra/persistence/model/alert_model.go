package model

import (
	"time"

	"github.com/google/uuid"
)

// SentAlertModel mirrors the 'sent_alerts' table. The composite unique index
// on (user_id, listing_id) is the authoritative dedup gate: the repository
// relies on it for atomic conditional inserts. Rows are never updated or
// deleted.
type SentAlertModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sent_alerts_user_listing"`
	ListingID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sent_alerts_user_listing"`
	ScoreTotal     int       `gorm:"not null"`
	ScoreStrict    int       `gorm:"not null"`
	ScoreComfort   int       `gorm:"not null"`
	StrictMatches  []byte    `gorm:"type:jsonb"`
	ComfortMatches []byte    `gorm:"type:jsonb"`
	Badges         []byte    `gorm:"type:jsonb"`
	SentAt         time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SentAlertModel) TableName() string {
	return "sent_alerts"
}
