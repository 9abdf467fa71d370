// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offering is a single service a provider sells, e.g. "Oil change" or
// "Full detail". Prices are stored in cents to avoid float arithmetic.
type Offering struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the offering.
	ProviderID      uuid.UUID // The provider that sells this service.
	Name            string    // Display name of the service.
	Category        string    // Category tag, e.g. "maintenance", "repair", "detailing".
	Description     string    // Free-text description of what is included.
	PriceCents      int64     // Price of the service in cents.
	DurationMinutes int       // Estimated duration, used for display only.
	Active          bool      // Inactive offerings are hidden from customers but kept for history.
	CreatedAt       time.Time // Timestamp of when this offering was created.
	UpdatedAt       time.Time // Timestamp of the last modification.
}
