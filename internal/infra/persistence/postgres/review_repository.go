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

// reviewRepository implements the domain's ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByBooking retrieves the review for a booking, if any.
func (repo *reviewRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&reviewM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by booking")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByProvider retrieves a provider's reviews, newest first.
func (repo *reviewRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviewModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		// One review per booking
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReviewExists.WrapMessage(err, "booking already reviewed")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBookingNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage(err, "rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// AverageRatingByProvider computes the average rating and review count for a
// provider from the stored reviews.
func (repo *reviewRepository) AverageRatingByProvider(ctx context.Context, providerID uuid.UUID) (float64, int, error) {
	type ratingRow struct {
		Avg   float64
		Count int
	}

	var row ratingRow
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS avg", "COUNT(*) AS count").
		Where("provider_id = ?", providerID).
		Scan(&row).Error

	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to aggregate ratings")
	}

	return row.Avg, row.Count, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		BookingID:  data.BookingID,
		CustomerID: data.CustomerID,
		ProviderID: data.ProviderID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		BookingID:  data.BookingID,
		CustomerID: data.CustomerID,
		ProviderID: data.ProviderID,
		Rating:     data.Rating,
		Comment:    data.Comment,
	}
}
