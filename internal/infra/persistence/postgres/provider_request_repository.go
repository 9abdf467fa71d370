// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	"automo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// providerRequestRepository implements the domain's ProviderRequestRepository interface.
type providerRequestRepository struct {
	db *gorm.DB
}

// NewProviderRequestRepository is the constructor for providerRequestRepository.
func NewProviderRequestRepository(db *gorm.DB) repository.ProviderRequestRepository {
	return &providerRequestRepository{db: db}
}

// FindByID retrieves an application by its unique ID.
func (repo *providerRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProviderRequest, error) {
	var requestM model.ProviderRequestModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider request by id")
	}

	return toProviderRequestDomain(&requestM), nil
}

// FindLatestByUser retrieves the most recent application submitted by the user.
func (repo *providerRequestRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.ProviderRequest, error) {
	var requestM model.ProviderRequestModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&requestM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest provider request")
	}

	return toProviderRequestDomain(&requestM), nil
}

// ListByStatus retrieves applications in the given state, oldest first.
func (repo *providerRequestRepository) ListByStatus(ctx context.Context, status entity.ProviderRequestStatus) ([]*entity.ProviderRequest, error) {
	var requestModels []*model.ProviderRequestModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&requestModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider requests")
	}

	requests := make([]*entity.ProviderRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toProviderRequestDomain(requestM))
	}

	return requests, nil
}

// Create persists a new application.
func (repo *providerRequestRepository) Create(ctx context.Context, request *entity.ProviderRequest) error {
	requestM := fromProviderRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage(err, "missing required application information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// Update modifies an existing application.
func (repo *providerRequestRepository) Update(ctx context.Context, request *entity.ProviderRequest) error {
	requestM := fromProviderRequestDomain(request)

	result := repo.db.WithContext(ctx).
		Model(&model.ProviderRequestModel{}).
		Where("id = ?", request.ID).
		Select("status", "reviewed_by", "reviewed_at", "review_note").
		Updates(requestM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update provider request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProviderRequestNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProviderRequestDomain converts a GORM ProviderRequestModel to a domain ProviderRequest entity.
func toProviderRequestDomain(data *model.ProviderRequestModel) *entity.ProviderRequest {
	if data == nil {
		return nil
	}

	return &entity.ProviderRequest{
		ID:            data.ID,
		UserID:        data.UserID,
		BusinessName:  data.BusinessName,
		Description:   data.Description,
		City:          data.City,
		State:         data.State,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Specialties:   data.Specialties,
		MobileService: data.MobileService,
		Phone:         data.Phone,
		Status:        entity.ProviderRequestStatus(data.Status),
		ReviewedBy:    data.ReviewedBy,
		ReviewedAt:    data.ReviewedAt,
		ReviewNote:    data.ReviewNote,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProviderRequestDomain converts a domain ProviderRequest entity to a GORM ProviderRequestModel.
func fromProviderRequestDomain(data *entity.ProviderRequest) *model.ProviderRequestModel {
	if data == nil {
		return nil
	}

	return &model.ProviderRequestModel{
		ID:            data.ID,
		UserID:        data.UserID,
		BusinessName:  data.BusinessName,
		Description:   data.Description,
		City:          data.City,
		State:         data.State,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Specialties:   data.Specialties,
		MobileService: data.MobileService,
		Phone:         data.Phone,
		Status:        string(data.Status),
		ReviewedBy:    data.ReviewedBy,
		ReviewedAt:    data.ReviewedAt,
		ReviewNote:    data.ReviewNote,
	}
}
