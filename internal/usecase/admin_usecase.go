// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"automo/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRequestInput carries the admin's decision details.
type ReviewRequestInput struct {
	RequestID uuid.UUID
	Note      string
}

// AdminUsecase defines platform administration operations.
type AdminUsecase interface {
	// ListPendingRequests retrieves provider applications awaiting review, oldest first.
	ListPendingRequests(ctx context.Context) ([]*entity.ProviderRequest, error)

	// ApproveRequest accepts an application: it creates the provider listing
	// and grants the applicant the provider role, atomically.
	ApproveRequest(ctx context.Context, adminID uuid.UUID, input *ReviewRequestInput) (*entity.Provider, error)

	// RejectRequest declines an application.
	RejectRequest(ctx context.Context, adminID uuid.UUID, input *ReviewRequestInput) error

	// SuspendProvider hides a listing from search and locks its dashboard.
	SuspendProvider(ctx context.Context, providerID uuid.UUID) error

	// ReinstateProvider returns a suspended listing to active.
	ReinstateProvider(ctx context.Context, providerID uuid.UUID) error
}
