// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a completed booking. Provider rating and
// review count are denormalized onto the Provider row when a review lands.
type Review struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the review.
	BookingID  uuid.UUID // The completed booking being reviewed, one review per booking.
	CustomerID uuid.UUID // The user who wrote the review.
	ProviderID uuid.UUID // The provider being reviewed.
	Rating     int       // Star rating, 1 to 5 inclusive.
	Comment    string    // Optional free-text comment.
	CreatedAt  time.Time // Timestamp of when the review was submitted.
}
