package repository

import (
	"context"
	"errors"

	"automo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProviderRequestNotFound is returned when no provider application matches the lookup.
var ErrProviderRequestNotFound = errors.New("provider request not found")

// ProviderRequestRepository defines the operations for provider-application persistence.
type ProviderRequestRepository interface {
	// FindByID retrieves an application by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProviderRequest, error)

	// FindLatestByUser retrieves the most recent application submitted by the user.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.ProviderRequest, error)

	// ListByStatus retrieves applications in the given state, oldest first.
	ListByStatus(ctx context.Context, status entity.ProviderRequestStatus) ([]*entity.ProviderRequest, error)

	// Create persists a new application.
	Create(ctx context.Context, request *entity.ProviderRequest) error

	// Update modifies an existing application.
	Update(ctx context.Context, request *entity.ProviderRequest) error
}
