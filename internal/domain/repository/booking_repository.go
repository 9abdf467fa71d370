package repository

import (
	"context"
	"errors"
	"time"

	"automo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when no booking matches the lookup.
var ErrBookingNotFound = errors.New("booking not found")

// RevenueBucket is one month of completed-booking revenue for a provider.
type RevenueBucket struct {
	Year       int
	Month      time.Month
	TotalCents int64
	Bookings   int
}

// BookingRepository defines the operations for booking persistence.
type BookingRepository interface {
	// FindByID retrieves a booking with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// ListByCustomer retrieves a customer's bookings, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error)

	// ListByProvider retrieves a provider's bookings, newest first.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Booking, error)

	// ListCustomerIDsByProvider retrieves the distinct customers who have booked
	// with the provider.
	ListCustomerIDsByProvider(ctx context.Context, providerID uuid.UUID) ([]uuid.UUID, error)

	// Create persists a new booking together with its line items.
	Create(ctx context.Context, booking *entity.Booking) error

	// UpdateStatus transitions a booking to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error

	// RevenueByMonth aggregates completed-booking totals per calendar month in
	// the half-open interval [from, to).
	RevenueByMonth(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]RevenueBucket, error)
}
