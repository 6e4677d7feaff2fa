// Package usecase defines the interfaces of the application's use-case layer.
package usecase

import "flatradar/internal/domain/entity"

// ScoringUsecase computes a match score and audit trail for one listing
// against one user's criteria.
type ScoringUsecase interface {
	// Score is pure and deterministic: no I/O, no suspension, safe to call
	// concurrently. Every strict dimension is evaluated and recorded even
	// when an earlier one already failed; the veto is applied at the end.
	Score(listing *entity.Listing, criteria *entity.UserCriteria) *entity.ScoreResult
}
