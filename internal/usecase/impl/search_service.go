package impl

import (
	"context"
	"log/slog"

	"automo/config"
	"automo/internal/domain/entity"
	"automo/internal/domain/repository"
	"automo/internal/search"
	"automo/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	txManager          repository.TransactionManager
	defaultRadiusMiles float64
	unlimitedAtMiles   float64
	logger             *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(txManager repository.TransactionManager, cfg *config.Config, logger *slog.Logger) usecase.SearchUsecase {
	defaultRadius := 25.0
	unlimitedAt := search.DefaultUnlimitedRadiusMiles
	if cfg.Search != nil {
		if cfg.Search.DefaultRadiusMiles > 0 {
			defaultRadius = cfg.Search.DefaultRadiusMiles
		}
		if cfg.Search.UnlimitedRadiusMiles > 0 {
			unlimitedAt = cfg.Search.UnlimitedRadiusMiles
		}
	}

	return &searchService{
		txManager:          txManager,
		defaultRadiusMiles: defaultRadius,
		unlimitedAtMiles:   unlimitedAt,
		logger:             logger,
	}
}

// SearchProviders fetches the active listings and ranks and filters them in
// memory. The listing set is small enough that a full fetch beats pushing
// geo math into SQL.
func (srv *searchService) SearchProviders(ctx context.Context, input *usecase.SearchProvidersInput) ([]*usecase.SearchResult, error) {
	srv.logger.Debug("Searching providers",
		"query", input.Query,
		"specialty", input.Specialty,
		"radiusMiles", input.RadiusMiles,
	)

	var providers []*entity.Provider

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProviderRepo().ListActive(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list active providers")
		}
		providers = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Provider search failed", "error", err)

		return nil, errors.Wrap(err, "failed to search providers")
	}

	var origin *orb.Point
	if input.Latitude != nil && input.Longitude != nil {
		origin = &orb.Point{*input.Longitude, *input.Latitude}
	}

	radius := input.RadiusMiles
	if radius <= 0 {
		radius = srv.defaultRadiusMiles
	}

	matches := search.RankByProximity(providers, origin, radius, srv.unlimitedAtMiles)
	matches = search.ApplyCriteria(matches, search.Criteria{
		Query:      input.Query,
		Specialty:  input.Specialty,
		MobileOnly: input.MobileOnly,
		MinRating:  input.MinRating,
	})

	results := make([]*usecase.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, &usecase.SearchResult{
			Provider:      m.Provider,
			DistanceMiles: m.Distance,
		})
	}

	return results, nil
}
