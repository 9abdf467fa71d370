package impl

import (
	"context"
	"log/slog"

	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateReview records a review for the caller's completed booking and
// refreshes the provider's denormalized rating, all in one transaction.
func (srv *reviewService) CreateReview(ctx context.Context, customerID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.logger.Info("Creating review", "customerID", customerID, "bookingID", input.BookingID)

	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}

	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepo()
		reviewRepo := repoFactory.ReviewRepo()
		providerRepo := repoFactory.ProviderRepo()

		// 1. The booking must exist, belong to the caller and be completed.
		booking, err := findBookingForCustomer(ctx, bookingRepo, customerID, input.BookingID)
		if err != nil {
			return err
		}
		if !booking.CanReview() {
			return errors.Wrapf(domainerrors.ErrReviewNotAllowed, "booking in status %s cannot be reviewed", booking.Status)
		}

		// 2. One review per booking.
		if _, err := reviewRepo.FindByBooking(ctx, booking.ID); err == nil {
			return errors.Wrap(domainerrors.ErrReviewExists, "booking already reviewed")
		} else if !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check for existing review")
		}

		newReview := &entity.Review{
			BookingID:  booking.ID,
			CustomerID: customerID,
			ProviderID: booking.ProviderID,
			Rating:     input.Rating,
			Comment:    input.Comment,
		}
		if err := reviewRepo.Create(ctx, newReview); err != nil {
			return errors.WithStack(err)
		}

		// 3. Refresh the provider's denormalized rating from the stored rows.
		avg, count, err := reviewRepo.AverageRatingByProvider(ctx, booking.ProviderID)
		if err != nil {
			return errors.Wrap(err, "failed to recompute provider rating")
		}

		provider, err := providerRepo.FindByID(ctx, booking.ProviderID)
		if err != nil {
			return errors.Wrap(err, "failed to find provider for rating update")
		}
		provider.Rating = avg
		provider.ReviewCount = count
		if err := providerRepo.Update(ctx, provider); err != nil {
			return errors.Wrap(err, "failed to store provider rating")
		}

		review = newReview

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to create review", "error", err, "bookingID", input.BookingID)

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.logger.Debug("Review created", "reviewID", review.ID, "providerID", review.ProviderID)

	return review, nil
}

// ListProviderReviews retrieves a provider's reviews, newest first.
func (srv *reviewService) ListProviderReviews(ctx context.Context, providerID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().ListByProvider(ctx, providerID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider reviews")
	}

	return reviews, nil
}
