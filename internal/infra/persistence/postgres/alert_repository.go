package postgres

import (
	"context"
	"encoding/json"

	"flatradar/internal/domain/entity"
	"flatradar/internal/domain/repository"
	"flatradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// Create inserts a sent-alert record, relying on the unique (user_id,
// listing_id) index to make the insert conditional. ON CONFLICT DO NOTHING
// keeps the statement atomic; zero affected rows means another writer
// already recorded the pair.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.SentAlert) error {
	alertM, err := fromAlertDomain(alert)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "listing_id"}},
			DoNothing: true,
		}).
		Create(alertM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrAlertAlreadySent
		}

		return errors.Wrap(result.Error, "failed to create sent alert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertAlreadySent
	}

	alert.ID = alertM.ID

	return nil
}

// Exists reports whether an alert record exists for the pair.
func (repo *alertRepository) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SentAlertModel{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check sent alert existence")
	}

	return count > 0, nil
}

// FindByUser retrieves the most recent alerts sent to a user, newest first.
func (repo *alertRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SentAlert, error) {
	var alertModels []*model.SentAlertModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sent alerts by user")
	}

	alerts := make([]*entity.SentAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alert, err := toAlertDomain(alertM)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM SentAlertModel to a domain SentAlert entity.
func toAlertDomain(data *model.SentAlertModel) (*entity.SentAlert, error) {
	if data == nil {
		return nil, nil
	}

	alert := &entity.SentAlert{
		ID:           data.ID,
		UserID:       data.UserID,
		ListingID:    data.ListingID,
		ScoreTotal:   data.ScoreTotal,
		ScoreStrict:  data.ScoreStrict,
		ScoreComfort: data.ScoreComfort,
		SentAt:       data.SentAt,
	}

	if len(data.StrictMatches) > 0 {
		if err := json.Unmarshal(data.StrictMatches, &alert.StrictMatches); err != nil {
			return nil, errors.Wrap(err, "failed to decode strict matches")
		}
	}
	if len(data.ComfortMatches) > 0 {
		if err := json.Unmarshal(data.ComfortMatches, &alert.ComfortMatches); err != nil {
			return nil, errors.Wrap(err, "failed to decode comfort matches")
		}
	}
	if len(data.Badges) > 0 {
		if err := json.Unmarshal(data.Badges, &alert.Badges); err != nil {
			return nil, errors.Wrap(err, "failed to decode badges")
		}
	}

	return alert, nil
}

// fromAlertDomain converts a domain SentAlert entity to a GORM SentAlertModel.
func fromAlertDomain(data *entity.SentAlert) (*model.SentAlertModel, error) {
	if data == nil {
		return nil, nil
	}

	strictMatches, err := json.Marshal(data.StrictMatches)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode strict matches")
	}
	comfortMatches, err := json.Marshal(data.ComfortMatches)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode comfort matches")
	}
	badges, err := json.Marshal(data.Badges)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode badges")
	}

	return &model.SentAlertModel{
		ID:             data.ID,
		UserID:         data.UserID,
		ListingID:      data.ListingID,
		ScoreTotal:     data.ScoreTotal,
		ScoreStrict:    data.ScoreStrict,
		ScoreComfort:   data.ScoreComfort,
		StrictMatches:  strictMatches,
		ComfortMatches: comfortMatches,
		Badges:         badges,
		SentAt:         data.SentAt,
	}, nil
}
