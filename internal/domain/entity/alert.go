package entity

import (
	"time"

	"github.com/google/uuid"
)

// SentAlert is the durable fact that an alert for a (user, listing) pair has
// been dispatched. Its existence is the sole dedup signal: at most one record
// may ever exist per pair, and records are never mutated or deleted.
type SentAlert struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the record.
	UserID         uuid.UUID `json:"user_id"`         // The ID of the alerted user.
	ListingID      uuid.UUID `json:"listing_id"`      // The ID of the matched listing.
	ScoreTotal     int       `json:"score_total"`     // Snapshot of the total score at dispatch time.
	ScoreStrict    int       `json:"score_strict"`    // Snapshot of the strict subtotal.
	ScoreComfort   int       `json:"score_comfort"`   // Snapshot of the comfort subtotal.
	StrictMatches  []string  `json:"strict_matches"`  // Snapshot of the matched strict criteria.
	ComfortMatches []string  `json:"comfort_matches"` // Snapshot of the matched comfort criteria.
	Badges         []string  `json:"badges"`          // Snapshot of the badges.
	SentAt         time.Time `json:"sent_at"`         // Timestamp of the dispatch.
}
