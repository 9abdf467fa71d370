// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"automo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a completed booking.
type CreateReviewInput struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

// ReviewUsecase defines review operations.
type ReviewUsecase interface {
	// CreateReview records a review for the caller's completed booking and
	// refreshes the provider's denormalized rating.
	CreateReview(ctx context.Context, customerID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// ListProviderReviews retrieves a provider's reviews, newest first.
	ListProviderReviews(ctx context.Context, providerID uuid.UUID) ([]*entity.Review, error)
}
