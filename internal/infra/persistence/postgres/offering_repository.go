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

// offeringRepository implements the domain's OfferingRepository interface.
type offeringRepository struct {
	db *gorm.DB
}

// NewOfferingRepository is the constructor for offeringRepository.
func NewOfferingRepository(db *gorm.DB) repository.OfferingRepository {
	return &offeringRepository{db: db}
}

// FindByID retrieves an offering by its unique ID.
func (repo *offeringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error) {
	var offeringM model.OfferingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offeringM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferingNotFound
		}

		return nil, errors.Wrap(err, "failed to find offering by id")
	}

	return toOfferingDomain(&offeringM), nil
}

// FindByIDs retrieves the offerings with the given IDs; missing IDs are absent
// from the result.
func (repo *offeringRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Offering, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var offeringModels []*model.OfferingModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&offeringModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find offerings by ids")
	}

	offerings := make([]*entity.Offering, 0, len(offeringModels))
	for _, offeringM := range offeringModels {
		offerings = append(offerings, toOfferingDomain(offeringM))
	}

	return offerings, nil
}

// ListByProvider retrieves a provider's offerings in creation order.
func (repo *offeringRepository) ListByProvider(ctx context.Context, providerID uuid.UUID, activeOnly bool) ([]*entity.Offering, error) {
	query := repo.db.WithContext(ctx).Where("provider_id = ?", providerID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var offeringModels []*model.OfferingModel
	if err := query.Order("created_at ASC").Find(&offeringModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offerings")
	}

	offerings := make([]*entity.Offering, 0, len(offeringModels))
	for _, offeringM := range offeringModels {
		offerings = append(offerings, toOfferingDomain(offeringM))
	}

	return offerings, nil
}

// Create persists a new offering.
func (repo *offeringRepository) Create(ctx context.Context, offering *entity.Offering) error {
	offeringM := fromOfferingDomain(offering)

	if err := repo.db.WithContext(ctx).Create(offeringM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProviderNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage(err, "missing required offering information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offering")
	}

	offering.ID = offeringM.ID
	offering.CreatedAt = offeringM.CreatedAt
	offering.UpdatedAt = offeringM.UpdatedAt

	return nil
}

// Update modifies an existing offering.
func (repo *offeringRepository) Update(ctx context.Context, offering *entity.Offering) error {
	offeringM := fromOfferingDomain(offering)

	result := repo.db.WithContext(ctx).
		Model(&model.OfferingModel{}).
		Where("id = ?", offering.ID).
		Select("name", "category", "description", "price_cents", "duration_minutes", "active").
		Updates(offeringM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offering")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferingNotFound
	}

	return nil
}

// Delete removes an offering by ID.
func (repo *offeringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferingModel{})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOfferingDomain converts a GORM OfferingModel to a domain Offering entity.
func toOfferingDomain(data *model.OfferingModel) *entity.Offering {
	if data == nil {
		return nil
	}

	return &entity.Offering{
		ID:              data.ID,
		ProviderID:      data.ProviderID,
		Name:            data.Name,
		Category:        data.Category,
		Description:     data.Description,
		PriceCents:      data.PriceCents,
		DurationMinutes: data.DurationMinutes,
		Active:          data.Active,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOfferingDomain converts a domain Offering entity to a GORM OfferingModel.
func fromOfferingDomain(data *entity.Offering) *model.OfferingModel {
	if data == nil {
		return nil
	}

	return &model.OfferingModel{
		ID:              data.ID,
		ProviderID:      data.ProviderID,
		Name:            data.Name,
		Category:        data.Category,
		Description:     data.Description,
		PriceCents:      data.PriceCents,
		DurationMinutes: data.DurationMinutes,
		Active:          data.Active,
	}
}
