package entity

// Badge identifiers attached to a ScoreResult. Badges are qualitative tags
// derived from the result; they never contribute points.
const (
	BadgeExceptionalPrice = "exceptional_price"
	BadgeUrgent           = "urgent"
	BadgePerfectMatch     = "perfect_match"
)

// CriterionCheck records the evaluation of a single criterion against a
// listing. Every check is recorded, pass or fail, so that downstream tooling
// can explain exactly why a listing did or did not match.
type CriterionCheck struct {
	Name        string `json:"name"`        // Criterion name ("zone", "budget", "top_floor", ...).
	Strict      bool   `json:"strict"`      // True for deal-breaker criteria, false for comfort bonuses.
	Passed      bool   `json:"passed"`      // Whether the listing satisfied the criterion.
	Awarded     int    `json:"awarded"`     // Points actually awarded.
	Possible    int    `json:"possible"`    // Points the criterion could have awarded.
	Explanation string `json:"explanation"` // Human-readable outcome of the check.
}

// ScoreResult is the full outcome of scoring one listing against one user's
// criteria. The audit trail (Checks, RejectionReasons) is part of the
// contract handed to the formatting layer, even for rejected listings.
type ScoreResult struct {
	Total            int              `json:"total"`             // Strict + comfort subtotal, or 0 when vetoed.
	StrictScore      int              `json:"strict_score"`      // Strict subtotal.
	ComfortScore     int              `json:"comfort_score"`     // Comfort subtotal, capped.
	StrictMatches    []string         `json:"strict_matches"`    // Names of the strict criteria that matched.
	ComfortMatches   []string         `json:"comfort_matches"`   // Names of the comfort criteria that matched.
	Badges           []string         `json:"badges"`            // Derived qualitative tags.
	Checks           []CriterionCheck `json:"checks"`            // Per-criterion audit trail.
	RejectionReasons []string         `json:"rejection_reasons"` // One entry per failed strict criterion, empty on success.
}

// Matched reports whether the listing passed every specified strict
// criterion, which is the sole condition for dispatching an alert.
func (r *ScoreResult) Matched() bool {
	return r.Total > 0
}
