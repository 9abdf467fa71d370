package repository

import (
	"context"
	"errors"

	"automo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when no review matches the lookup.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// FindByBooking retrieves the review for a booking, if any.
	FindByBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)

	// ListByProvider retrieves a provider's reviews, newest first.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// AverageRatingByProvider computes the average rating and review count for
	// a provider from the stored reviews.
	AverageRatingByProvider(ctx context.Context, providerID uuid.UUID) (avg float64, count int, err error)
}
