// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingStatusPending means the booking awaits provider confirmation.
	BookingStatusPending BookingStatus = "pending"
	// BookingStatusConfirmed means the provider accepted the booking.
	BookingStatusConfirmed BookingStatus = "confirmed"
	// BookingStatusCompleted means the work was done.
	BookingStatusCompleted BookingStatus = "completed"
	// BookingStatusCancelled means the customer cancelled before completion.
	BookingStatusCancelled BookingStatus = "cancelled"
	// BookingStatusDeclined means the provider turned the booking down.
	BookingStatusDeclined BookingStatus = "declined"
)

// Booking is a customer's order of one or more offerings from a provider at a
// scheduled time. Line items snapshot the offering name and price at booking
// time so later catalog edits do not rewrite history.
type Booking struct {
	ID            uuid.UUID     // The Global Unique Identifier (GUID) for the booking.
	Reference     string        // Short human-readable reference code, also encoded in the QR.
	CustomerID    uuid.UUID     // The user who placed the booking.
	ProviderID    uuid.UUID     // The provider the booking is with.
	Items         []BookingItem // Snapshot of the selected offerings.
	ScheduledAt   time.Time     // Requested service time.
	MobileService bool          // Whether the customer requested service at their location.
	Notes         string        // Free-text notes from the customer.
	Status        BookingStatus // Lifecycle state.
	TotalCents    int64         // Quoted total: item prices plus surcharges.
	CreatedAt     time.Time     // Timestamp of when this booking was placed.
	UpdatedAt     time.Time     // Timestamp of the last modification.
}

// BookingItem is one line of a booking, frozen at booking time.
type BookingItem struct {
	ID         uuid.UUID // The unique ID for this line item.
	BookingID  uuid.UUID // The booking this line belongs to.
	OfferingID uuid.UUID // The offering that was booked.
	Name       string    // Offering name at booking time.
	PriceCents int64     // Offering price at booking time, in cents.
}

// CanCancel reports whether the customer may still cancel the booking.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CanReview reports whether the booking is in a state that accepts a review.
func (b *Booking) CanReview() bool {
	return b.Status == BookingStatusCompleted
}
