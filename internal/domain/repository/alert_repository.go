package repository

import (
	"context"
	"errors"

	"flatradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlertAlreadySent is returned by Create when a record for the same
// (user, listing) pair already exists. It is a normal outcome meaning
// "already delivered", not a fault.
var ErrAlertAlreadySent = errors.New("alert already sent for this user and listing")

// AlertRepository defines the interface for the sent-alert fact table, the
// engine's only mutable shared resource.
type AlertRepository interface {
	// Create persists a sent-alert record. The insert must be atomic and
	// conditional: if a record for the (user, listing) pair already exists it
	// returns ErrAlertAlreadySent and writes nothing. There is deliberately
	// no separate check-then-write sequence.
	Create(ctx context.Context, alert *entity.SentAlert) error

	// Exists reports whether an alert was already sent for the pair. Used as
	// a cheap pre-filter; Create remains the authoritative gate.
	Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error)

	// FindByUser retrieves the most recent alerts sent to a user, newest
	// first. Operator tooling uses this to inspect match quality.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SentAlert, error)
}
