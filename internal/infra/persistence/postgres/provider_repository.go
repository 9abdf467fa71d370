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

// providerRepository implements the domain's ProviderRepository interface.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// FindByID retrieves a provider by its unique ID.
func (repo *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	var providerM model.ProviderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&providerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by id")
	}

	return toProviderDomain(&providerM), nil
}

// FindByOwner retrieves the provider owned by the given user account.
func (repo *providerRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Provider, error) {
	var providerM model.ProviderModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&providerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by owner")
	}

	return toProviderDomain(&providerM), nil
}

// ListActive retrieves all providers with an active listing, in creation order.
// Ranking and attribute filtering happen in memory in the search layer.
func (repo *providerRepository) ListActive(ctx context.Context) ([]*entity.Provider, error) {
	var providerModels []*model.ProviderModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ProviderStatusActive)).
		Order("created_at ASC").
		Find(&providerModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list active providers")
	}

	providers := make([]*entity.Provider, 0, len(providerModels))
	for _, providerM := range providerModels {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers, nil
}

// Create persists a new provider.
func (repo *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)

	if err := repo.db.WithContext(ctx).Create(providerM).Error; err != nil {
		// One listing per owner account
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProviderExists.WrapMessage(err, "owner already has a provider")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider")
	}

	provider.ID = providerM.ID
	provider.CreatedAt = providerM.CreatedAt
	provider.UpdatedAt = providerM.UpdatedAt

	return nil
}

// Update modifies an existing provider.
func (repo *providerRepository) Update(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)

	// Struct-based Updates keeps the JSON serializer on specialties and
	// device tokens; Select forces zero-value columns through as well.
	result := repo.db.WithContext(ctx).
		Model(&model.ProviderModel{}).
		Where("id = ?", provider.ID).
		Select("business_name", "description", "city", "state", "latitude", "longitude",
			"specialties", "mobile_service", "rating", "review_count", "status",
			"logo_url", "phone", "device_tokens").
		Updates(providerM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update provider")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProviderDomain converts a GORM ProviderModel to a domain Provider entity.
func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	return &entity.Provider{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		BusinessName:  data.BusinessName,
		Description:   data.Description,
		City:          data.City,
		State:         data.State,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Specialties:   data.Specialties,
		MobileService: data.MobileService,
		Rating:        data.Rating,
		ReviewCount:   data.ReviewCount,
		Status:        entity.ProviderStatus(data.Status),
		LogoURL:       data.LogoURL,
		Phone:         data.Phone,
		DeviceTokens:  data.DeviceTokens,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProviderDomain converts a domain Provider entity to a GORM ProviderModel.
func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	return &model.ProviderModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		BusinessName:  data.BusinessName,
		Description:   data.Description,
		City:          data.City,
		State:         data.State,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Specialties:   data.Specialties,
		MobileService: data.MobileService,
		Rating:        data.Rating,
		ReviewCount:   data.ReviewCount,
		Status:        string(data.Status),
		LogoURL:       data.LogoURL,
		Phone:         data.Phone,
		DeviceTokens:  data.DeviceTokens,
	}
}
