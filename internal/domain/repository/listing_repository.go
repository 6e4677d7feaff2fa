// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"flatradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the read contract over ingested listings. The
// alerting engine never writes listings; ingestion is a separate system.
type ListingRepository interface {
	// FindRecent retrieves all listings created within the given window,
	// newest first.
	FindRecent(ctx context.Context, window time.Duration) ([]*entity.Listing, error)

	// FindByID retrieves a single listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
}
