package repository

import (
	"context"
	"errors"

	"automo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOfferingNotFound is returned when no offering matches the lookup.
var ErrOfferingNotFound = errors.New("offering not found")

// OfferingRepository defines the operations for service-catalog persistence.
type OfferingRepository interface {
	// FindByID retrieves an offering by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error)

	// FindByIDs retrieves the offerings with the given IDs; missing IDs are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Offering, error)

	// ListByProvider retrieves a provider's offerings. When activeOnly is set,
	// inactive offerings are excluded.
	ListByProvider(ctx context.Context, providerID uuid.UUID, activeOnly bool) ([]*entity.Offering, error)

	// Create persists a new offering.
	Create(ctx context.Context, offering *entity.Offering) error

	// Update modifies an existing offering.
	Update(ctx context.Context, offering *entity.Offering) error

	// Delete removes an offering by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
