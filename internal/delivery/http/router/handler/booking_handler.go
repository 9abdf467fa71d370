package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"automo/internal/delivery/http/response"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookingHandler holds dependencies for booking lifecycle handlers.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(bookingUC usecase.BookingUsecase, reviewUC usecase.ReviewUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		reviewUC:  reviewUC,
		logger:    logger,
	}
}

type quoteRequest struct {
	OfferingIDs   []uuid.UUID `json:"offering_ids" validate:"required,min=1"`
	MobileService bool        `json:"mobile_service"`
}

// Quote prices a prospective booking without creating one.
func (h *BookingHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	output, err := h.bookingUC.Quote(c.Request().Context(), &usecase.QuoteInput{
		OfferingIDs:   req.OfferingIDs,
		MobileService: req.MobileService,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Quote calculated successfully")
}

type createBookingRequest struct {
	ProviderID    uuid.UUID   `json:"provider_id" validate:"required"`
	OfferingIDs   []uuid.UUID `json:"offering_ids" validate:"required,min=1"`
	ScheduledAt   time.Time   `json:"scheduled_at" validate:"required"`
	MobileService bool        `json:"mobile_service"`
	Notes         string      `json:"notes"`
}

// CreateBooking places a booking for the authenticated customer.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.bookingUC.CreateBooking(c.Request().Context(), userID, &usecase.CreateBookingInput{
		ProviderID:    req.ProviderID,
		OfferingIDs:   req.OfferingIDs,
		ScheduledAt:   req.ScheduledAt,
		MobileService: req.MobileService,
		Notes:         req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"booking": output.Booking,
		"qr_code": base64.StdEncoding.EncodeToString(output.QRCode),
	}, "Booking created successfully")
}

// GetBooking retrieves one booking visible to the caller.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, booking, "Booking retrieved successfully")
}

// GetBookingQR renders the booking reference QR code as a PNG image.
func (h *BookingHandler) GetBookingQR(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	qrCode, err := h.bookingUC.GetBookingQR(c.Request().Context(), userID, bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ListMyBookings retrieves the authenticated customer's bookings.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookings, err := h.bookingUC.ListCustomerBookings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// CancelBooking cancels the caller's booking.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	if err := h.bookingUC.CancelBooking(c.Request().Context(), userID, bookingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Booking cancelled successfully")
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewBooking records a review for the caller's completed booking.
func (h *BookingHandler) ReviewBooking(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, &usecase.CreateReviewInput{
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// ListProviderBookings retrieves the bookings of the caller's listing.
func (h *BookingHandler) ListProviderBookings(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookings, err := h.bookingUC.ListProviderBookings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// transition runs one provider-side booking state change.
func (h *BookingHandler) transition(c echo.Context, action func(ctx echo.Context, ownerID, bookingID uuid.UUID) error, message string) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	if err := action(c, userID, bookingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// ConfirmBooking accepts a pending booking.
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	return h.transition(c, func(c echo.Context, ownerID, bookingID uuid.UUID) error {
		return h.bookingUC.ConfirmBooking(c.Request().Context(), ownerID, bookingID)
	}, "Booking confirmed successfully")
}

// DeclineBooking turns down a pending booking.
func (h *BookingHandler) DeclineBooking(c echo.Context) error {
	return h.transition(c, func(c echo.Context, ownerID, bookingID uuid.UUID) error {
		return h.bookingUC.DeclineBooking(c.Request().Context(), ownerID, bookingID)
	}, "Booking declined successfully")
}

// CompleteBooking marks a confirmed booking as done.
func (h *BookingHandler) CompleteBooking(c echo.Context) error {
	return h.transition(c, func(c echo.Context, ownerID, bookingID uuid.UUID) error {
		return h.bookingUC.CompleteBooking(c.Request().Context(), ownerID, bookingID)
	}, "Booking completed successfully")
}
