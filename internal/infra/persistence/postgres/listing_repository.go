// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"flatradar/internal/domain/entity"
	"flatradar/internal/domain/repository"
	"flatradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// FindRecent retrieves all listings ingested within the window, newest first.
func (repo *listingRepository) FindRecent(ctx context.Context, window time.Duration) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	cutoff := time.Now().Add(-window)
	if err := repo.db.WithContext(ctx).
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// FindByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:              data.ID,
		SourcePostID:    data.SourcePostID,
		FullAddress:     data.FullAddress,
		Street:          data.Street,
		StreetNumber:    data.StreetNumber,
		City:            data.City,
		PostalCode:      data.PostalCode,
		Neighborhood:    data.Neighborhood,
		Rooms:           data.Rooms,
		Bedrooms:        data.Bedrooms,
		SurfaceM2:       data.SurfaceM2,
		DwellingType:    data.DwellingType,
		Floor:           data.Floor,
		TopFloor:        data.TopFloor,
		Balcony:         data.Balcony,
		Terrace:         data.Terrace,
		Furnished:       data.Furnished,
		ParkingIncluded: data.ParkingIncluded,
		MonthlyRent:     data.MonthlyRent,
		TotalRent:       data.TotalRent,
		AvailableFrom:   data.AvailableFrom,
		Urgent:          data.Urgent,
		ImagePath:       data.ImagePath,
		CreatedAt:       data.CreatedAt,
	}
}
