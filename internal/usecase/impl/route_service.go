package impl

import (
	"context"
	"log/slog"

	"automo/internal/domain/constants"
	"automo/internal/domain/entity"
	"automo/internal/domain/repository"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// routeService implements the RouteUsecase interface.
type routeService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRouteService is the constructor for routeService.
func NewRouteService(txManager repository.TransactionManager, logger *slog.Logger) usecase.RouteUsecase {
	return &routeService{
		txManager: txManager,
		logger:    logger,
	}
}

// ResolveRoute evaluates the destination rules in strict priority order.
// Lookup failures never block the sign-in: the failed rule is treated as
// not matching, the resolution continues with the lower-priority rules and
// the result is flagged as degraded.
func (srv *routeService) ResolveRoute(ctx context.Context, userID uuid.UUID, storedPath string) usecase.RouteResolution {
	degraded := false

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for routing")
		}
		user = found

		return nil
	})
	if err != nil {
		// Without roles no higher-priority rule can match; fall through to the
		// stored path or home.
		srv.logger.Warn("Role lookup failed during route resolution, falling back", "userID", userID, "error", err)

		return usecase.RouteResolution{Path: srv.fallbackPath(storedPath), Degraded: true}
	}

	if user.Roles.Contains(entity.RoleAdmin) {
		return usecase.RouteResolution{Path: constants.RouteAdminConsole}
	}

	if user.Roles.Contains(entity.RoleProvider) {
		active, lookupErr := srv.hasActiveListing(ctx, userID)
		if lookupErr != nil {
			srv.logger.Warn("Provider listing lookup failed during route resolution", "userID", userID, "error", lookupErr)
			degraded = true
		}
		if active {
			return usecase.RouteResolution{Path: constants.RouteProviderDashboard, Degraded: degraded}
		}

		return usecase.RouteResolution{Path: constants.RouteProviderPending, Degraded: degraded}
	}

	if user.Roles.Contains(entity.RoleUser) {
		// The role rule outranks any stored return path.
		return usecase.RouteResolution{Path: constants.RouteCustomerDashboard, Degraded: degraded}
	}

	return usecase.RouteResolution{Path: srv.fallbackPath(storedPath), Degraded: degraded}
}

// hasActiveListing reports whether the user owns an active provider listing.
// A missing listing is a normal outcome, not an error.
func (srv *routeService) hasActiveListing(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var active bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		provider, err := repoFactory.ProviderRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find provider for routing")
		}
		active = provider.IsActive()

		return nil
	})
	if err != nil {
		return false, err
	}

	return active, nil
}

func (srv *routeService) fallbackPath(storedPath string) string {
	if storedPath != "" {
		return storedPath
	}

	return constants.RouteHome
}
