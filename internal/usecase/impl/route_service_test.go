package impl

import (
	"context"
	"testing"

	"automo/internal/domain/constants"
	"automo/internal/domain/entity"
	"automo/internal/domain/repository"
	mockRepo "automo/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRouteService_Admin(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	// An admin goes to the console no matter what else the account holds.
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser, entity.RoleProvider, entity.RoleAdmin}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	res := fx.service.ResolveRoute(ctx, userID, "/return/here")

	assert.Equal(t, constants.RouteAdminConsole, res.Path)
	assert.False(t, res.Degraded)
}

func TestRouteService_ProviderWithActiveListing(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser, entity.RoleProvider}}
	provider := &entity.Provider{ID: uuid.New(), OwnerID: userID, Status: entity.ProviderStatusActive}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		mockProviderRepo.EXPECT().FindByOwner(ctx, userID).Return(provider, nil)
	})

	res := fx.service.ResolveRoute(ctx, userID, "")

	assert.Equal(t, constants.RouteProviderDashboard, res.Path)
	assert.False(t, res.Degraded)
}

func TestRouteService_ProviderWithoutActiveListing(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser, entity.RoleProvider}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		mockProviderRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, repository.ErrProviderNotFound)
	})

	res := fx.service.ResolveRoute(ctx, userID, "")

	assert.Equal(t, constants.RouteProviderPending, res.Path)
	assert.False(t, res.Degraded)
}

func TestRouteService_ProviderSuspendedListing(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleProvider}}
	provider := &entity.Provider{ID: uuid.New(), OwnerID: userID, Status: entity.ProviderStatusSuspended}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		mockProviderRepo.EXPECT().FindByOwner(ctx, userID).Return(provider, nil)
	})

	res := fx.service.ResolveRoute(ctx, userID, "")

	assert.Equal(t, constants.RouteProviderPending, res.Path)
}

func TestRouteService_ProviderListingLookupFails_Degraded(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleProvider}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProviderRepo := mockRepo.NewMockProviderRepository(t)
		factory.EXPECT().ProviderRepo().Return(mockProviderRepo)
		mockProviderRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, errors.New("database unreachable"))
	})

	res := fx.service.ResolveRoute(ctx, userID, "")

	// The failed lookup counts as "no active listing" and flags degradation.
	assert.Equal(t, constants.RouteProviderPending, res.Path)
	assert.True(t, res.Degraded)
}

func TestRouteService_UserWithStoredPath_StillDashboard(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	res := fx.service.ResolveRoute(ctx, userID, "/providers/abc")

	// The customer-role rule wins; the stored path only applies when no
	// role rule matched.
	assert.Equal(t, constants.RouteCustomerDashboard, res.Path)
	assert.False(t, res.Degraded)
}

func TestRouteService_NoRolesWithStoredPath_ReturnsStoredPath(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	res := fx.service.ResolveRoute(ctx, userID, "/stored/return")

	assert.Equal(t, "/stored/return", res.Path)
	assert.False(t, res.Degraded)
}

func TestRouteService_UserWithoutStoredPath(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	res := fx.service.ResolveRoute(ctx, userID, "")

	assert.Equal(t, constants.RouteCustomerDashboard, res.Path)
}

func TestRouteService_RoleLookupFails_FailsOpen(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("database unreachable"))
	})

	res := fx.service.ResolveRoute(ctx, userID, "/return/here")

	assert.Equal(t, "/return/here", res.Path)
	assert.True(t, res.Degraded)
}

func TestRouteService_NoRolesNoStoredPath_Home(t *testing.T) {
	fx := createTestRouteService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	res := fx.service.ResolveRoute(ctx, userID, "")

	assert.Equal(t, constants.RouteHome, res.Path)
	assert.False(t, res.Degraded)
}
