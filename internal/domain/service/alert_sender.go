// Package service defines interfaces for external collaborators consumed by
// the use-case layer.
package service

import (
	"context"

	"flatradar/internal/domain/entity"
)

// AlertSender defines the interface for the notification channel that carries
// matched listings to users. A delivery failure is reported as an error and
// must be handled inside the per-pair error boundary; it never aborts sibling
// work.
type AlertSender interface {
	// SendAlert delivers one matched listing to one user. The full score
	// result travels with the alert so the channel can render badges and
	// per-criterion explanations.
	SendAlert(ctx context.Context, user *entity.User, listing *entity.Listing, score *entity.ScoreResult) error
}
