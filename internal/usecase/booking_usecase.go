// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"automo/internal/domain/entity"

	"github.com/google/uuid"
)

// QuoteInput selects the offerings and flags that price a booking.
type QuoteInput struct {
	OfferingIDs   []uuid.UUID
	MobileService bool
}

// QuoteLine is one priced line of a quote.
type QuoteLine struct {
	OfferingID uuid.UUID
	Name       string
	PriceCents int64
}

// QuoteOutput is the priced breakdown of a prospective booking.
type QuoteOutput struct {
	Lines                []QuoteLine
	MobileSurchargeCents int64
	TotalCents           int64
}

// CreateBookingInput defines the data required to place a booking.
type CreateBookingInput struct {
	ProviderID    uuid.UUID
	OfferingIDs   []uuid.UUID
	ScheduledAt   time.Time
	MobileService bool
	Notes         string
}

// CreateBookingOutput returns the stored booking and its QR code PNG.
type CreateBookingOutput struct {
	Booking *entity.Booking
	QRCode  []byte
}

// BookingUsecase defines booking lifecycle operations for both sides of the
// marketplace. Customer operations verify the caller owns the booking;
// provider operations verify the caller owns the listing.
type BookingUsecase interface {
	// Quote prices a prospective booking without persisting anything.
	Quote(ctx context.Context, input *QuoteInput) (*QuoteOutput, error)

	// CreateBooking places a booking for the customer and publishes a booking event.
	CreateBooking(ctx context.Context, customerID uuid.UUID, input *CreateBookingInput) (*CreateBookingOutput, error)

	// GetBooking retrieves a booking visible to the caller (customer, listing
	// owner or admin).
	GetBooking(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID) (*entity.Booking, error)

	// GetBookingQR renders the booking reference QR code for the customer.
	GetBookingQR(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID) ([]byte, error)

	// ListCustomerBookings retrieves the caller's bookings, newest first.
	ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error)

	// CancelBooking cancels a pending or confirmed booking on behalf of the customer.
	CancelBooking(ctx context.Context, customerID uuid.UUID, bookingID uuid.UUID) error

	// ListProviderBookings retrieves the bookings of the caller's listing, newest first.
	ListProviderBookings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error)

	// ConfirmBooking accepts a pending booking on behalf of the provider.
	ConfirmBooking(ctx context.Context, ownerID uuid.UUID, bookingID uuid.UUID) error

	// DeclineBooking turns down a pending booking on behalf of the provider.
	DeclineBooking(ctx context.Context, ownerID uuid.UUID, bookingID uuid.UUID) error

	// CompleteBooking marks a confirmed booking as done on behalf of the provider.
	CompleteBooking(ctx context.Context, ownerID uuid.UUID, bookingID uuid.UUID) error
}
