package entity

import (
	"time"

	"github.com/google/uuid"
)

// StrictCriteria is the deal-breaker block of a user's search criteria. A
// listing that misses any specified strict criterion scores zero. Optional
// fields are pointers: nil means the user did not constrain that dimension.
type StrictCriteria struct {
	BudgetMax     *int                `json:"budget_max" validate:"omitempty,gt=0"`      // Maximum total rent in CHF.
	Zones         []CanonicalLocation `json:"zones" validate:"dive,min=1"`               // Desired zones, already canonicalized at onboarding.
	RoomsMin      *float64            `json:"rooms_min" validate:"omitempty,gt=0"`       // Minimum room count.
	RoomsMax      *float64            `json:"rooms_max" validate:"omitempty,gtefield=RoomsMin"` // Maximum room count.
	DwellingTypes []string            `json:"dwelling_types" validate:"dive,min=1"`      // Accepted dwelling types, matched as substrings.
	AvailableFrom *time.Time          `json:"available_from"`                            // Desired availability date.
}

// ComfortCriteria is the bonus block: preferences that add points but never
// veto a listing.
type ComfortCriteria struct {
	TopFloor  bool     `json:"top_floor"` // Wants a top-floor dwelling.
	Quiet     bool     `json:"quiet"`     // Wants a quiet location.
	Balcony   bool     `json:"balcony"`   // Wants a balcony or terrace.
	Furnished bool     `json:"furnished"` // Wants a furnished dwelling.
	Parking   bool     `json:"parking"`   // Wants parking included.
	Elevator  bool     `json:"elevator"`  // Wants an elevator.
	Extras    []string `json:"extras"`    // Free-form extra wishes, recorded but not scored.
}

// UserCriteria is a user's complete search profile. It is owned by exactly
// one user and replaced wholesale when the user re-onboards.
type UserCriteria struct {
	UserID               uuid.UUID       `json:"user_id"`               // The ID of the owning user.
	Strict               StrictCriteria  `json:"strict"`                // Deal-breaker criteria.
	Comfort              ComfortCriteria `json:"comfort"`               // Bonus criteria.
	OriginalDescription  string          `json:"original_description"`  // The free-text description the user gave during onboarding.
	HumanSummary         string          `json:"human_summary"`         // A human-readable restatement shown back to the user.
	ExtractionConfidence float64         `json:"extraction_confidence"` // Confidence reported by the extraction collaborator.
	UpdatedAt            time.Time       `json:"updated_at"`            // Timestamp of the last replacement.
}
