package handler

import (
	"log/slog"
	"net/http"

	"automo/internal/delivery/http/response"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for platform administration handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPendingRequests retrieves provider applications awaiting review.
func (h *AdminHandler) ListPendingRequests(c echo.Context) error {
	requests, err := h.uc.ListPendingRequests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Applications retrieved successfully")
}

type reviewRequestBody struct {
	Note string `json:"note"`
}

// ApproveRequest accepts a provider application.
func (h *AdminHandler) ApproveRequest(c echo.Context) error {
	adminID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	var body reviewRequestBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	provider, err := h.uc.ApproveRequest(c.Request().Context(), adminID, &usecase.ReviewRequestInput{
		RequestID: requestID,
		Note:      body.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, provider, "Application approved successfully")
}

// RejectRequest declines a provider application.
func (h *AdminHandler) RejectRequest(c echo.Context) error {
	adminID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	var body reviewRequestBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := h.uc.RejectRequest(c.Request().Context(), adminID, &usecase.ReviewRequestInput{
		RequestID: requestID,
		Note:      body.Note,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Application rejected successfully")
}

// SuspendProvider hides a listing from search and locks its dashboard.
func (h *AdminHandler) SuspendProvider(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid provider ID")
	}

	if err := h.uc.SuspendProvider(c.Request().Context(), providerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Provider suspended successfully")
}

// ReinstateProvider returns a suspended listing to active.
func (h *AdminHandler) ReinstateProvider(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid provider ID")
	}

	if err := h.uc.ReinstateProvider(c.Request().Context(), providerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Provider reinstated successfully")
}
