package impl

import (
	"context"
	"strings"
	"testing"
	"time"

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

func strPtr(s string) *string { return &s }

func TestProviderService_Apply_Success(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	userID := uuid.New()
	requestID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockRequestRepo := mockRepo.NewMockProviderRequestRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().ProviderRequestRepo().Return(mockRequestRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrProviderNotFound)
		mockRequestRepo.EXPECT().FindLatestByUser(ctx, userID).Return(nil, repository.ErrProviderRequestNotFound)
		mockRequestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ProviderRequest")).Run(func(_ context.Context, request *entity.ProviderRequest) {
			request.ID = requestID
			assert.Equal(t, entity.ProviderRequestPending, request.Status)
			assert.Equal(t, userID, request.UserID)
		}).Return(nil)
	})

	request, err := fx.service.Apply(ctx, userID, &usecase.ApplyProviderInput{
		BusinessName: "Hilltop Auto Care",
		City:         "Austin",
		State:        "TX",
	})

	require.NoError(t, err)
	assert.Equal(t, requestID, request.ID)
	assert.Equal(t, "Hilltop Auto Care", request.BusinessName)
}

func TestProviderService_Apply_ListingAlreadyExists(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().ProviderRequestRepo().Return(mockRepo.NewMockProviderRequestRepository(t))

		mockProviderRepo.EXPECT().FindByOwner(ctx, userID).Return(&entity.Provider{ID: uuid.New(), OwnerID: userID}, nil)
	})

	request, err := fx.service.Apply(ctx, userID, &usecase.ApplyProviderInput{BusinessName: "Hilltop Auto Care"})

	assert.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderExists))
}

func TestProviderService_Apply_PendingRequestBlocks(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockRequestRepo := mockRepo.NewMockProviderRequestRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().ProviderRequestRepo().Return(mockRequestRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrProviderNotFound)
		mockRequestRepo.EXPECT().FindLatestByUser(ctx, userID).Return(&entity.ProviderRequest{
			UserID: userID,
			Status: entity.ProviderRequestPending,
		}, nil)
	})

	request, err := fx.service.Apply(ctx, userID, &usecase.ApplyProviderInput{BusinessName: "Hilltop Auto Care"})

	assert.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderRequestPending))
}

func TestProviderService_Apply_RejectedRequestDoesNotBlock(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockRequestRepo := mockRepo.NewMockProviderRequestRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().ProviderRequestRepo().Return(mockRequestRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrProviderNotFound)
		mockRequestRepo.EXPECT().FindLatestByUser(ctx, userID).Return(&entity.ProviderRequest{
			UserID: userID,
			Status: entity.ProviderRequestRejected,
		}, nil)
		mockRequestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ProviderRequest")).Return(nil)
	})

	request, err := fx.service.Apply(ctx, userID, &usecase.ApplyProviderInput{BusinessName: "Second Try Garage"})

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderRequestPending, request.Status)
}

func TestProviderService_GetPublicListing_SuspendedIsHidden(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	provider := &entity.Provider{ID: uuid.New(), Status: entity.ProviderStatusSuspended}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockProviderRepo.EXPECT().FindByID(ctx, provider.ID).Return(provider, nil)
	})

	found, offerings, err := fx.service.GetPublicListing(ctx, provider.ID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.Nil(t, offerings)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotFound))
}

func TestProviderService_UpdateListing_PartialUpdate(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		BusinessName: "Hilltop Auto Care",
		City:         "Austin",
		Phone:        "512-555-0100",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
		mockProviderRepo.EXPECT().Update(ctx, provider).Return(nil)
	})

	updated, err := fx.service.UpdateListing(ctx, ownerID, &usecase.UpdateProviderInput{
		Phone: strPtr("512-555-0199"),
	})

	require.NoError(t, err)
	assert.Equal(t, "512-555-0199", updated.Phone)
	// Untouched fields survive.
	assert.Equal(t, "Hilltop Auto Care", updated.BusinessName)
	assert.Equal(t, "Austin", updated.City)
}

func TestProviderService_UploadLogo_Success(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	body := strings.NewReader("png bytes")
	wantKey := "logos/" + provider.ID.String() + ".png"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
		mockProviderRepo.EXPECT().Update(ctx, provider).Return(nil)
	})

	fx.storage.EXPECT().Upload(ctx, wantKey, "image/png", body, int64(9)).Return("https://cdn.example.com/"+wantKey, nil)

	url, err := fx.service.UploadLogo(ctx, ownerID, &usecase.UploadLogoInput{
		ContentType: "image/png",
		Body:        body,
		Size:        9,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+wantKey, url)
	assert.Equal(t, url, provider.LogoURL)
}

func TestProviderService_UploadLogo_TooLarge(t *testing.T) {
	fx := createTestProviderService(t)

	url, err := fx.service.UploadLogo(context.Background(), uuid.New(), &usecase.UploadLogoInput{
		ContentType: "image/png",
		Size:        100 << 20,
	})

	assert.Error(t, err)
	assert.Empty(t, url)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestProviderService_RegisterDeviceToken_Dedupes(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		DeviceTokens: []string{"token-1"},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		// Update is never called for a known token.
		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
	})

	err := fx.service.RegisterDeviceToken(ctx, ownerID, "token-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"token-1"}, provider.DeviceTokens)
}

func TestProviderService_RegisterDeviceToken_AppendsNewToken(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		DeviceTokens: []string{"token-1"},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
		mockProviderRepo.EXPECT().Update(ctx, provider).Return(nil)
	})

	err := fx.service.RegisterDeviceToken(ctx, ownerID, "token-2")

	require.NoError(t, err)
	assert.Equal(t, []string{"token-1", "token-2"}, provider.DeviceTokens)
}

func TestProviderService_RegisterDeviceToken_EmptyToken(t *testing.T) {
	fx := createTestProviderService(t)

	err := fx.service.RegisterDeviceToken(context.Background(), uuid.New(), "")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProviderService_CreateOffering_Success(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	offeringID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockOfferingRepo := mockRepo.NewMockOfferingRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().OfferingRepo().Return(mockOfferingRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
		mockOfferingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offering")).Run(func(_ context.Context, offering *entity.Offering) {
			offering.ID = offeringID
			assert.Equal(t, provider.ID, offering.ProviderID)
		}).Return(nil)
	})

	offering, err := fx.service.CreateOffering(ctx, ownerID, &usecase.UpsertOfferingInput{
		Name:       "Oil change",
		Category:   "maintenance",
		PriceCents: 4999,
		Active:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, offeringID, offering.ID)
	assert.Equal(t, int64(4999), offering.PriceCents)
}

func TestProviderService_UpdateOffering_ForeignOffering(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	foreign := &entity.Offering{ID: uuid.New(), ProviderID: uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockOfferingRepo := mockRepo.NewMockOfferingRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().OfferingRepo().Return(mockOfferingRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
		mockOfferingRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)
	})

	offering, err := fx.service.UpdateOffering(ctx, ownerID, foreign.ID, &usecase.UpsertOfferingInput{Name: "Oil change"})

	assert.Error(t, err)
	assert.Nil(t, offering)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProviderService_DeleteOffering_Success(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	offering := &entity.Offering{ID: uuid.New(), ProviderID: provider.ID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockOfferingRepo := mockRepo.NewMockOfferingRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().OfferingRepo().Return(mockOfferingRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
		mockOfferingRepo.EXPECT().FindByID(ctx, offering.ID).Return(offering, nil)
		mockOfferingRepo.EXPECT().Delete(ctx, offering.ID).Return(nil)
	})

	err := fx.service.DeleteOffering(ctx, ownerID, offering.ID)

	assert.NoError(t, err)
}

func TestProviderService_ListCustomers_SkipsDeletedAccounts(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	aliveID := uuid.New()
	deletedID := uuid.New()
	alive := &entity.User{ID: aliveID, Name: "Alex"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
		mockBookingRepo.EXPECT().ListCustomerIDsByProvider(ctx, provider.ID).Return([]uuid.UUID{aliveID, deletedID}, nil)
		mockUserRepo.EXPECT().FindByID(ctx, aliveID).Return(alive, nil)
		mockUserRepo.EXPECT().FindByID(ctx, deletedID).Return(nil, repository.ErrUserNotFound)
	})

	customers, err := fx.service.ListCustomers(ctx, ownerID)

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, aliveID, customers[0].ID)
}

func TestProviderService_Revenue_SumsBuckets(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	provider := &entity.Provider{ID: uuid.New(), OwnerID: ownerID}
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	buckets := []repository.RevenueBucket{
		{Year: 2026, Month: time.January, TotalCents: 120000, Bookings: 4},
		{Year: 2026, Month: time.March, TotalCents: 45000, Bookings: 1},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		mockBookingRepo := mockRepo.NewMockBookingRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		factory.EXPECT().BookingRepo().Return(mockBookingRepo)

		mockProviderRepo.EXPECT().FindByOwner(ctx, ownerID).Return(provider, nil)
		mockBookingRepo.EXPECT().RevenueByMonth(ctx, provider.ID, from, to).Return(buckets, nil)
	})

	report, err := fx.service.Revenue(ctx, ownerID, from, to)

	require.NoError(t, err)
	assert.Equal(t, int64(165000), report.TotalCents)
	assert.Len(t, report.Buckets, 2)
}

func TestProviderService_Revenue_EmptyInterval(t *testing.T) {
	fx := createTestProviderService(t)

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	report, err := fx.service.Revenue(context.Background(), uuid.New(), at, at)

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
