// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderStatus represents the lifecycle state of a provider listing.
type ProviderStatus string

const (
	// ProviderStatusActive means the provider is approved and visible in search.
	ProviderStatusActive ProviderStatus = "active"
	// ProviderStatusSuspended means the listing is hidden and the dashboard is locked.
	ProviderStatusSuspended ProviderStatus = "suspended"
)

// Provider is a business listed on the marketplace: a shop, mobile mechanic,
// rental fleet or dealer. It is owned by exactly one user account.
type Provider struct {
	ID            uuid.UUID      // The Global Unique Identifier (GUID) for the provider.
	OwnerID       uuid.UUID      // The user account that manages this provider.
	BusinessName  string         // Public display name of the business.
	Description   string         // Free-text description shown on the listing.
	City          string         // City of the primary place of business.
	State         string         // State or region of the primary place of business.
	Latitude      float64        // Geographic latitude of the shop location.
	Longitude     float64        // Geographic longitude of the shop location.
	Specialties   []string       // Service specialty tags, e.g. "brakes", "detailing".
	MobileService bool           // Whether the provider travels to the customer.
	Rating        float64        // Denormalized average review rating, 0 when unreviewed.
	ReviewCount   int            // Denormalized number of reviews behind Rating.
	Status        ProviderStatus // Listing lifecycle state.
	LogoURL       string         // Public URL of the uploaded logo, empty if none.
	Phone         string         // Business contact phone.
	DeviceTokens  []string       // Push notification tokens registered by the owner's devices.
	CreatedAt     time.Time      // Timestamp of when this provider was created.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}

// IsActive reports whether the listing should appear in search and accept bookings.
func (p *Provider) IsActive() bool {
	return p.Status == ProviderStatusActive
}
