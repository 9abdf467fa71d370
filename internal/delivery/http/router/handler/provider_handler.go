package handler

import (
	"log/slog"
	"net/http"
	"time"

	"automo/internal/delivery/http/response"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProviderHandler holds dependencies for provider account handlers.
type ProviderHandler struct {
	uc     usecase.ProviderUsecase
	logger *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase, logger *slog.Logger) *ProviderHandler {
	return &ProviderHandler{
		uc:     uc,
		logger: logger,
	}
}

type applyRequest struct {
	BusinessName  string   `json:"business_name" validate:"required"`
	Description   string   `json:"description"`
	City          string   `json:"city" validate:"required"`
	State         string   `json:"state" validate:"required"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Specialties   []string `json:"specialties"`
	MobileService bool     `json:"mobile_service"`
	Phone         string   `json:"phone"`
}

// Apply submits a provider application for admin review.
func (h *ProviderHandler) Apply(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	request, err := h.uc.Apply(c.Request().Context(), userID, &usecase.ApplyProviderInput{
		BusinessName:  req.BusinessName,
		Description:   req.Description,
		City:          req.City,
		State:         req.State,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Specialties:   req.Specialties,
		MobileService: req.MobileService,
		Phone:         req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Application submitted successfully")
}

// GetApplication retrieves the caller's most recent application.
func (h *ProviderHandler) GetApplication(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	request, err := h.uc.GetApplication(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Application retrieved successfully")
}

// GetListing retrieves the caller's provider listing.
func (h *ProviderHandler) GetListing(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider, err := h.uc.GetListing(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, provider, "Listing retrieved successfully")
}

type updateListingRequest struct {
	BusinessName  *string   `json:"business_name"`
	Description   *string   `json:"description"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Specialties   *[]string `json:"specialties"`
	MobileService *bool     `json:"mobile_service"`
	Phone         *string   `json:"phone"`
}

// UpdateListing updates the caller's listing; absent fields are unchanged.
func (h *ProviderHandler) UpdateListing(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	provider, err := h.uc.UpdateListing(c.Request().Context(), userID, &usecase.UpdateProviderInput{
		BusinessName:  req.BusinessName,
		Description:   req.Description,
		City:          req.City,
		State:         req.State,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Specialties:   req.Specialties,
		MobileService: req.MobileService,
		Phone:         req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, provider, "Listing updated successfully")
}

// UploadLogo handles the listing logo upload as a multipart form.
func (h *ProviderHandler) UploadLogo(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing logo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded logo")
	}
	defer file.Close()

	url, err := h.uc.UploadLogo(c.Request().Context(), userID, &usecase.UploadLogoInput{
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"logo_url": url}, "Logo uploaded successfully")
}

type deviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterDeviceToken registers a push notification token for the listing.
func (h *ProviderHandler) RegisterDeviceToken(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req deviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}

	if err := h.uc.RegisterDeviceToken(c.Request().Context(), userID, req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token registered successfully")
}

// ListOfferings retrieves the caller's full catalog.
func (h *ProviderHandler) ListOfferings(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offerings, err := h.uc.ListOfferings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offerings, "Offerings retrieved successfully")
}

type upsertOfferingRequest struct {
	Name            string `json:"name" validate:"required"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	PriceCents      int64  `json:"price_cents" validate:"min=0"`
	DurationMinutes int    `json:"duration_minutes"`
	Active          bool   `json:"active"`
}

func (r *upsertOfferingRequest) toInput() *usecase.UpsertOfferingInput {
	return &usecase.UpsertOfferingInput{
		Name:            r.Name,
		Category:        r.Category,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
		Active:          r.Active,
	}
}

// CreateOffering adds a catalog entry to the caller's listing.
func (h *ProviderHandler) CreateOffering(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req upsertOfferingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offering input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offering, err := h.uc.CreateOffering(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offering, "Offering created successfully")
}

// UpdateOffering replaces the fields of a catalog entry.
func (h *ProviderHandler) UpdateOffering(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offeringID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offering ID")
	}

	var req upsertOfferingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offering input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offering, err := h.uc.UpdateOffering(c.Request().Context(), userID, offeringID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offering, "Offering updated successfully")
}

// DeleteOffering removes a catalog entry.
func (h *ProviderHandler) DeleteOffering(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offeringID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offering ID")
	}

	if err := h.uc.DeleteOffering(c.Request().Context(), userID, offeringID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Offering deleted successfully")
}

// ListCustomers retrieves the distinct customers who booked with the caller.
func (h *ProviderHandler) ListCustomers(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	customers, err := h.uc.ListCustomers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

// Revenue aggregates completed-booking revenue per month. The interval is
// given as "from" and "to" query parameters in RFC 3339 or YYYY-MM-DD form.
func (h *ProviderHandler) Revenue(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	from, err := parseTimeParam(c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "from must be a date")
	}
	to, err := parseTimeParam(c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "to must be a date")
	}

	report, err := h.uc.Revenue(c.Request().Context(), userID, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Revenue retrieved successfully")
}

func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}
