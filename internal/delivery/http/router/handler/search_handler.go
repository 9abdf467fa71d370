package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"automo/internal/delivery/http/response"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the public discovery handlers.
type SearchHandler struct {
	searchUC   usecase.SearchUsecase
	providerUC usecase.ProviderUsecase
	reviewUC   usecase.ReviewUsecase
	logger     *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(
	searchUC usecase.SearchUsecase,
	providerUC usecase.ProviderUsecase,
	reviewUC usecase.ReviewUsecase,
	logger *slog.Logger,
) *SearchHandler {
	return &SearchHandler{
		searchUC:   searchUC,
		providerUC: providerUC,
		reviewUC:   reviewUC,
		logger:     logger,
	}
}

// searchResultResponse flattens a search result for the JSON response.
type searchResultResponse struct {
	Provider      any      `json:"provider"`
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}

// SearchProviders handles the provider discovery query.
// All parameters arrive as query strings; lat/lng are optional together.
func (h *SearchHandler) SearchProviders(c echo.Context) error {
	input := &usecase.SearchProvidersInput{
		Query:     c.QueryParam("q"),
		Specialty: c.QueryParam("specialty"),
	}

	if raw := c.QueryParam("lat"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "lat must be a number")
		}
		input.Latitude = &lat
	}
	if raw := c.QueryParam("lng"); raw != "" {
		lng, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "lng must be a number")
		}
		input.Longitude = &lng
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng must be provided together")
	}

	if raw := c.QueryParam("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "radius must be a number")
		}
		input.RadiusMiles = radius
	}
	if raw := c.QueryParam("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "min_rating must be a number")
		}
		input.MinRating = minRating
	}
	if raw := c.QueryParam("mobile"); raw != "" {
		mobile, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "mobile must be a boolean")
		}
		input.MobileOnly = &mobile
	}

	results, err := h.searchUC.SearchProviders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]searchResultResponse, 0, len(results))
	for _, r := range results {
		payload = append(payload, searchResultResponse{
			Provider:      r.Provider,
			DistanceMiles: r.DistanceMiles,
		})
	}

	return response.Success(c, http.StatusOK, payload, "Providers retrieved successfully")
}

// GetPublicListing handles the public provider detail request.
func (h *SearchHandler) GetPublicListing(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid provider ID")
	}

	provider, offerings, err := h.providerUC.GetPublicListing(c.Request().Context(), providerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"provider":  provider,
		"offerings": offerings,
	}, "Provider retrieved successfully")
}

// ListProviderReviews handles the public review list request.
func (h *SearchHandler) ListProviderReviews(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid provider ID")
	}

	reviews, err := h.reviewUC.ListProviderReviews(c.Request().Context(), providerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}
