package impl

import (
	"context"
	"log/slog"
	"testing"

	"automo/config"
	"automo/internal/domain/repository"
	"automo/internal/domain/service"
	mockRepo "automo/internal/mocks/repository"
	mockService "automo/internal/mocks/service"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// refreshClaims builds the claims a validated refresh token carries.
func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{UserID: userID, Type: "refresh"}
}

// serviceFixture bundles the mock transaction manager shared by every
// service under test.
type serviceFixture struct {
	t         *testing.T
	txManager *mockRepo.MockTransactionManager
}

// onExecute arranges one Execute call: the provided setup configures a fresh
// factory, and the transactional closure runs against it for real, so the
// service's own logic decides the returned error.
func (fx *serviceFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	factory := mockRepo.NewMockRepositoryFactory(fx.t)
	setup(factory)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Once()
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: 4, MaxActiveSessions: 3},
		Search:  &config.SearchConfig{DefaultRadiusMiles: 25, UnlimitedRadiusMiles: 1000},
		Booking: &config.BookingConfig{MobileSurchargeCents: 2500},
		Upload:  &config.UploadConfig{MaxImageBytes: 5 << 20, MaxPhotoBytes: 10 << 20},
	}

	return cfg
}

type userServiceFixture struct {
	serviceFixture
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	storage      *mockService.MockStorageService
	service      usecase.UserUsecase
}

func createTestUserService(t *testing.T) *userServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	storage := mockService.NewMockStorageService(t)

	return &userServiceFixture{
		serviceFixture: serviceFixture{t: t, txManager: txManager},
		hasher:         hasher,
		tokenService:   tokenService,
		storage:        storage,
		service:        NewUserService(txManager, hasher, tokenService, storage, testConfig(), testLogger()),
	}
}

type routeServiceFixture struct {
	serviceFixture
	service usecase.RouteUsecase
}

func createTestRouteService(t *testing.T) *routeServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)

	return &routeServiceFixture{
		serviceFixture: serviceFixture{t: t, txManager: txManager},
		service:        NewRouteService(txManager, testLogger()),
	}
}

type searchServiceFixture struct {
	serviceFixture
	service usecase.SearchUsecase
}

func createTestSearchService(t *testing.T) *searchServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)

	return &searchServiceFixture{
		serviceFixture: serviceFixture{t: t, txManager: txManager},
		service:        NewSearchService(txManager, testConfig(), testLogger()),
	}
}

type bookingServiceFixture struct {
	serviceFixture
	qrService *mockService.MockQRCodeService
	publisher *mockService.MockEventPublisher
	service   usecase.BookingUsecase
}

func createTestBookingService(t *testing.T) *bookingServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrService := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)

	return &bookingServiceFixture{
		serviceFixture: serviceFixture{t: t, txManager: txManager},
		qrService:      qrService,
		publisher:      publisher,
		service:        NewBookingService(txManager, qrService, publisher, testConfig(), testLogger()),
	}
}

type providerServiceFixture struct {
	serviceFixture
	storage *mockService.MockStorageService
	service usecase.ProviderUsecase
}

func createTestProviderService(t *testing.T) *providerServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	storage := mockService.NewMockStorageService(t)

	return &providerServiceFixture{
		serviceFixture: serviceFixture{t: t, txManager: txManager},
		storage:        storage,
		service:        NewProviderService(txManager, storage, testConfig(), testLogger()),
	}
}

type reviewServiceFixture struct {
	serviceFixture
	service usecase.ReviewUsecase
}

func createTestReviewService(t *testing.T) *reviewServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)

	return &reviewServiceFixture{
		serviceFixture: serviceFixture{t: t, txManager: txManager},
		service:        NewReviewService(txManager, testLogger()),
	}
}

type adminServiceFixture struct {
	serviceFixture
	service usecase.AdminUsecase
}

func createTestAdminService(t *testing.T) *adminServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)

	return &adminServiceFixture{
		serviceFixture: serviceFixture{t: t, txManager: txManager},
		service:        NewAdminService(txManager, testLogger()),
	}
}
