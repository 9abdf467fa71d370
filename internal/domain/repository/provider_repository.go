package repository

import (
	"context"
	"errors"

	"automo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProviderNotFound is returned when no provider matches the lookup.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderRepository defines the operations for provider persistence.
type ProviderRepository interface {
	// FindByID retrieves a provider by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error)

	// FindByOwner retrieves the provider owned by the given user account.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Provider, error)

	// ListActive retrieves all providers with an active listing, in creation order.
	// The search layer ranks and filters the result in memory.
	ListActive(ctx context.Context) ([]*entity.Provider, error)

	// Create persists a new provider.
	Create(ctx context.Context, provider *entity.Provider) error

	// Update modifies an existing provider.
	Update(ctx context.Context, provider *entity.Provider) error
}
