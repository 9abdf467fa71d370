package impl

import (
	"context"
	"testing"

	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	mockRepo "automo/internal/mocks/repository"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateReview_RefreshesProviderRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), Rating: 5.0, ReviewCount: 1}
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProviderID: provider.ID,
		Status:     entity.BookingStatusCompleted,
	}
	reviewID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		mockReviewRepo.EXPECT().FindByBooking(ctx, booking.ID).Return(nil, repository.ErrReviewNotFound)
		mockReviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Run(func(_ context.Context, review *entity.Review) {
			review.ID = reviewID
			assert.Equal(t, booking.ID, review.BookingID)
			assert.Equal(t, provider.ID, review.ProviderID)
		}).Return(nil)
		mockReviewRepo.EXPECT().AverageRatingByProvider(ctx, provider.ID).Return(4.5, 2, nil)
		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
		mockProviderRepo.EXPECT().Update(ctx, provider).Return(nil)
	})

	review, err := fx.service.CreateReview(ctx, customerID, &usecase.CreateReviewInput{
		BookingID: booking.ID,
		Rating:    4,
		Comment:   "Quick and tidy work.",
	})

	require.NoError(t, err)
	assert.Equal(t, reviewID, review.ID)
	assert.Equal(t, 4.5, provider.Rating)
	assert.Equal(t, 2, provider.ReviewCount)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		review, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
			BookingID: uuid.New(),
			Rating:    rating,
		})

		assert.Error(t, err)
		assert.Nil(t, review)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestReviewService_CreateReview_BookingNotCompleted(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProviderID: uuid.New(),
		Status:     entity.BookingStatusConfirmed,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ReviewRepo().Return(mockRepo.NewMockReviewRepository(t))
		factory.EXPECT().ProviderRepo().Return(mockRepo.NewMockProviderRepository(t))

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	})

	review, err := fx.service.CreateReview(ctx, customerID, &usecase.CreateReviewInput{
		BookingID: booking.ID,
		Rating:    5,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotAllowed))
}

func TestReviewService_CreateReview_SomeoneElsesBooking(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     entity.BookingStatusCompleted,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ReviewRepo().Return(mockRepo.NewMockReviewRepository(t))
		factory.EXPECT().ProviderRepo().Return(mockRepo.NewMockProviderRepository(t))

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	})

	review, err := fx.service.CreateReview(ctx, uuid.New(), &usecase.CreateReviewInput{
		BookingID: booking.ID,
		Rating:    5,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_CreateReview_AlreadyReviewed(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProviderID: uuid.New(),
		Status:     entity.BookingStatusCompleted,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)
		factory.EXPECT().ProviderRepo().Return(mockRepo.NewMockProviderRepository(t))

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		mockReviewRepo.EXPECT().FindByBooking(ctx, booking.ID).Return(&entity.Review{ID: uuid.New(), BookingID: booking.ID}, nil)
	})

	review, err := fx.service.CreateReview(ctx, customerID, &usecase.CreateReviewInput{
		BookingID: booking.ID,
		Rating:    3,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewExists))
}

func TestReviewService_ListProviderReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	providerID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), ProviderID: providerID, Rating: 5},
		{ID: uuid.New(), ProviderID: providerID, Rating: 3},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().ReviewRepo().Return(mockReviewRepo)

		mockReviewRepo.EXPECT().ListByProvider(ctx, providerID).Return(reviews, nil)
	})

	found, err := fx.service.ListProviderReviews(ctx, providerID)

	require.NoError(t, err)
	assert.Len(t, found, 2)
}
