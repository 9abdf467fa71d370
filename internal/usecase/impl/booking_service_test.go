package impl

import (
	"context"
	"testing"
	"time"

	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	"automo/internal/domain/service"
	mockRepo "automo/internal/mocks/repository"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookingTestOfferings(providerID uuid.UUID) []*entity.Offering {
	return []*entity.Offering{
		{ID: uuid.New(), ProviderID: providerID, Name: "Oil change", PriceCents: 4999, Active: true},
		{ID: uuid.New(), ProviderID: providerID, Name: "Brake inspection", PriceCents: 7500, Active: true},
	}
}

func offeringIDs(offerings []*entity.Offering) []uuid.UUID {
	ids := make([]uuid.UUID, len(offerings))
	for i, o := range offerings {
		ids[i] = o.ID
	}
	return ids
}

func TestBookingService_Quote_SumsLineItems(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	providerID := uuid.New()
	offerings := bookingTestOfferings(providerID)
	ids := offeringIDs(offerings)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOfferingRepo := mockRepo.NewMockOfferingRepository(t)
		factory.EXPECT().OfferingRepo().Return(mockOfferingRepo)
		mockOfferingRepo.EXPECT().FindByIDs(ctx, ids).Return(offerings, nil)
	})

	out, err := fx.service.Quote(ctx, &usecase.QuoteInput{OfferingIDs: ids})

	require.NoError(t, err)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, int64(0), out.MobileSurchargeCents)
	assert.Equal(t, int64(4999+7500), out.TotalCents)
}

func TestBookingService_Quote_MobileSurcharge(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	providerID := uuid.New()
	offerings := bookingTestOfferings(providerID)
	ids := offeringIDs(offerings)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOfferingRepo := mockRepo.NewMockOfferingRepository(t)
		factory.EXPECT().OfferingRepo().Return(mockOfferingRepo)
		mockOfferingRepo.EXPECT().FindByIDs(ctx, ids).Return(offerings, nil)
	})

	out, err := fx.service.Quote(ctx, &usecase.QuoteInput{OfferingIDs: ids, MobileService: true})

	require.NoError(t, err)
	// testConfig sets the surcharge to 2500 cents.
	assert.Equal(t, int64(2500), out.MobileSurchargeCents)
	assert.Equal(t, int64(4999+7500+2500), out.TotalCents)
}

func TestBookingService_Quote_NoOfferings(t *testing.T) {
	fx := createTestBookingService(t)

	out, err := fx.service.Quote(context.Background(), &usecase.QuoteInput{})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingEmpty))
}

func TestBookingService_Quote_UnknownOffering(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOfferingRepo := mockRepo.NewMockOfferingRepository(t)
		factory.EXPECT().OfferingRepo().Return(mockOfferingRepo)
		// Only one of the two requested offerings exists.
		mockOfferingRepo.EXPECT().FindByIDs(ctx, ids).Return([]*entity.Offering{
			{ID: ids[0], Active: true},
		}, nil)
	})

	out, err := fx.service.Quote(ctx, &usecase.QuoteInput{OfferingIDs: ids})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferingNotFound))
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	customerID := uuid.New()
	provider := &entity.Provider{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Status:       entity.ProviderStatusActive,
		DeviceTokens: []string{"token-1"},
	}
	offerings := bookingTestOfferings(provider.ID)
	ids := offeringIDs(offerings)
	bookingID := uuid.New()
	scheduledAt := time.Now().Add(48 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockOfferingRepo := mockRepo.NewMockOfferingRepository(t)
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().OfferingRepo().Return(mockOfferingRepo)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)

		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
		mockOfferingRepo.EXPECT().FindByIDs(ctx, ids).Return(offerings, nil)
		mockBookingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Booking")).Run(func(_ context.Context, booking *entity.Booking) {
			booking.ID = bookingID
			assert.Equal(t, entity.BookingStatusPending, booking.Status)
			assert.Equal(t, customerID, booking.CustomerID)
			assert.Len(t, booking.Items, 2)
			assert.Equal(t, "Oil change", booking.Items[0].Name)
			assert.Equal(t, int64(4999+7500+2500), booking.TotalCents)
			assert.NotEmpty(t, booking.Reference)
		}).Return(nil)
	})

	fx.qrService.EXPECT().GenerateBookingQR(bookingID, mock.AnythingOfType("string")).Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	fx.publisher.EXPECT().PublishBookingEvent(ctx, mock.AnythingOfType("*service.BookingEvent")).Run(func(_ context.Context, event *service.BookingEvent) {
		assert.Equal(t, bookingID.String(), event.BookingID)
		assert.Equal(t, "pending", event.Status)
		assert.Equal(t, []string{"token-1"}, event.Tokens)
	}).Return(nil)

	out, err := fx.service.CreateBooking(ctx, customerID, &usecase.CreateBookingInput{
		ProviderID:    provider.ID,
		OfferingIDs:   ids,
		ScheduledAt:   scheduledAt,
		MobileService: true,
		Notes:         "gate code 4321",
	})

	require.NoError(t, err)
	assert.Equal(t, bookingID, out.Booking.ID)
	assert.NotEmpty(t, out.QRCode)
}

func TestBookingService_CreateBooking_SuspendedProvider(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	provider := &entity.Provider{ID: uuid.New(), Status: entity.ProviderStatusSuspended}
	ids := []uuid.UUID{uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().OfferingRepo().Return(mockRepo.NewMockOfferingRepository(t))
		factory.EXPECT().BookingRepo().Return(mockRepo.NewMockBookingRepository(t))

		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
	})

	out, err := fx.service.CreateBooking(ctx, uuid.New(), &usecase.CreateBookingInput{
		ProviderID:  provider.ID,
		OfferingIDs: ids,
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderSuspended))
}

func TestBookingService_CreateBooking_ForeignOffering(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	provider := &entity.Provider{ID: uuid.New(), Status: entity.ProviderStatusActive}
	foreign := &entity.Offering{ID: uuid.New(), ProviderID: uuid.New(), Active: true}
	ids := []uuid.UUID{foreign.ID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockOfferingRepo := mockRepo.NewMockOfferingRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().OfferingRepo().Return(mockOfferingRepo)
		factory.EXPECT().BookingRepo().Return(mockRepo.NewMockBookingRepository(t))

		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
		mockOfferingRepo.EXPECT().FindByIDs(ctx, ids).Return([]*entity.Offering{foreign}, nil)
	})

	out, err := fx.service.CreateBooking(ctx, uuid.New(), &usecase.CreateBookingInput{
		ProviderID:  provider.ID,
		OfferingIDs: ids,
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBookingService_CancelBooking_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	customerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), DeviceTokens: []string{"token-1"}}
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProviderID: provider.ID,
		Status:     entity.BookingStatusPending,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		mockBookingRepo.EXPECT().UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled).Return(nil)
		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
	})

	fx.publisher.EXPECT().PublishBookingEvent(ctx, mock.AnythingOfType("*service.BookingEvent")).Run(func(_ context.Context, event *service.BookingEvent) {
		assert.Equal(t, "cancelled", event.Status)
	}).Return(nil)

	err := fx.service.CancelBooking(ctx, customerID, booking.ID)

	assert.NoError(t, err)
}

func TestBookingService_CancelBooking_WrongCustomer(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     entity.BookingStatusPending,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	})

	err := fx.service.CancelBooking(ctx, uuid.New(), booking.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookingService_CancelBooking_AlreadyCompleted(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	customerID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     entity.BookingStatusCompleted,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	})

	err := fx.service.CancelBooking(ctx, customerID, booking.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingStateConflict))
}

func TestBookingService_ConfirmBooking_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	booking := &entity.Booking{
		ID:         uuid.New(),
		ProviderID: provider.ID,
		CustomerID: uuid.New(),
		Status:     entity.BookingStatusPending,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
		mockBookingRepo.EXPECT().UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed).Return(nil)
	})

	fx.publisher.EXPECT().PublishBookingEvent(ctx, mock.AnythingOfType("*service.BookingEvent")).Return(nil)

	err := fx.service.ConfirmBooking(ctx, ownerID, booking.ID)

	assert.NoError(t, err)
}

func TestBookingService_ConfirmBooking_WrongOwner(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: uuid.New()}
	booking := &entity.Booking{
		ID:         uuid.New(),
		ProviderID: provider.ID,
		Status:     entity.BookingStatusPending,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
	})

	err := fx.service.ConfirmBooking(ctx, uuid.New(), booking.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookingService_CompleteBooking_RequiresConfirmed(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	booking := &entity.Booking{
		ID:         uuid.New(),
		ProviderID: provider.ID,
		Status:     entity.BookingStatusPending,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
	})

	err := fx.service.CompleteBooking(ctx, ownerID, booking.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingStateConflict))
}

func TestBookingService_GetBooking_VisibleToListingOwner(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		ProviderID: provider.ID,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
	})

	found, err := fx.service.GetBooking(ctx, ownerID, booking.ID)

	require.NoError(t, err)
	assert.Equal(t, booking.ID, found.ID)
}

func TestBookingService_GetBookingQR_OwnershipEnforced(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := &entity.Booking{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Reference:  "BK-TESTREF1",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)

		mockBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	})

	qr, err := fx.service.GetBookingQR(ctx, uuid.New(), booking.ID)

	assert.Error(t, err)
	assert.Nil(t, qr)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookingService_ListCustomerBookings(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	customerID := uuid.New()
	bookings := []*entity.Booking{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)

		mockBookingRepo.EXPECT().ListByCustomer(ctx, customerID).Return(bookings, nil)
	})

	found, err := fx.service.ListCustomerBookings(ctx, customerID)

	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestBookingService_ListProviderBookings_NoListing(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrProviderNotFound)
	})

	found, err := fx.service.ListProviderBookings(ctx, ownerID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotFound))
}

func TestNewBookingReference_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref, err := newBookingReference()
		require.NoError(t, err)
		assert.Len(t, ref, 11)
		assert.Equal(t, "BK-", ref[:3])
		assert.False(t, seen[ref], "references should not repeat")
		seen[ref] = true
	}
}
