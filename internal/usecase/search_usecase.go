// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"automo/internal/domain/entity"
)

// SearchProvidersInput carries the client's search parameters.
// Latitude/Longitude are optional: when absent, results are unranked and
// carry no distance annotation. RadiusMiles <= 0 selects the configured
// default radius.
type SearchProvidersInput struct {
	Latitude    *float64
	Longitude   *float64
	RadiusMiles float64
	Query       string
	Specialty   string
	MobileOnly  *bool
	MinRating   float64
}

// SearchResult is one provider in the search response. DistanceMiles is nil
// when the search had no origin point.
type SearchResult struct {
	Provider      *entity.Provider
	DistanceMiles *float64
}

// SearchUsecase defines the provider discovery operation.
type SearchUsecase interface {
	// SearchProviders returns active providers matching the criteria, sorted
	// by distance from the origin when one is given.
	SearchProviders(ctx context.Context, input *SearchProvidersInput) ([]*SearchResult, error)
}
