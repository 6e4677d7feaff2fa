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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindAlertable retrieves all users eligible for alerts: active, not paused,
// onboarding completed.
func (repo *userRepository) FindAlertable(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND is_paused = ? AND onboarding_completed = ?", true, false, true).
		Order("created_at ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alertable users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindCriteria retrieves the stored criteria for a user.
func (repo *userRepository) FindCriteria(ctx context.Context, userID uuid.UUID) (*entity.UserCriteria, error) {
	var criteriaM model.UserCriteriaModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&criteriaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCriteriaNotFound
		}

		return nil, errors.Wrap(err, "failed to find user criteria")
	}

	return toCriteriaDomain(&criteriaM)
}

// ReplaceCriteria upserts the user's criteria row wholesale.
func (repo *userRepository) ReplaceCriteria(ctx context.Context, criteria *entity.UserCriteria) error {
	criteriaM, err := fromCriteriaDomain(criteria)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(criteriaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to replace user criteria")
	}

	return nil
}

// FindDevices retrieves the active push devices registered by a user.
func (repo *userRepository) FindDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                  data.ID,
		IsActive:            data.IsActive,
		IsPaused:            data.IsPaused,
		OnboardingCompleted: data.OnboardingCompleted,
		CreatedAt:           data.CreatedAt,
		LastInteractionAt:   data.LastInteractionAt,
	}
}

// toCriteriaDomain converts a GORM UserCriteriaModel to a domain UserCriteria
// entity, decoding the JSONB criteria blocks.
func toCriteriaDomain(data *model.UserCriteriaModel) (*entity.UserCriteria, error) {
	if data == nil {
		return nil, nil
	}

	criteria := &entity.UserCriteria{
		UserID:               data.UserID,
		OriginalDescription:  data.OriginalDescription,
		HumanSummary:         data.HumanSummary,
		ExtractionConfidence: data.ExtractionConfidence,
		UpdatedAt:            data.UpdatedAt,
	}

	if err := json.Unmarshal(data.Strict, &criteria.Strict); err != nil {
		return nil, errors.Wrap(err, "failed to decode strict criteria")
	}
	if err := json.Unmarshal(data.Comfort, &criteria.Comfort); err != nil {
		return nil, errors.Wrap(err, "failed to decode comfort criteria")
	}

	return criteria, nil
}

// fromCriteriaDomain converts a domain UserCriteria entity to a GORM
// UserCriteriaModel, encoding the criteria blocks as JSONB.
func fromCriteriaDomain(data *entity.UserCriteria) (*model.UserCriteriaModel, error) {
	if data == nil {
		return nil, nil
	}

	strict, err := json.Marshal(data.Strict)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode strict criteria")
	}
	comfort, err := json.Marshal(data.Comfort)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode comfort criteria")
	}

	return &model.UserCriteriaModel{
		UserID:               data.UserID,
		Strict:               strict,
		Comfort:              comfort,
		OriginalDescription:  data.OriginalDescription,
		HumanSummary:         data.HumanSummary,
		ExtractionConfidence: data.ExtractionConfidence,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
