// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderRequestStatus represents the review state of a provider application.
type ProviderRequestStatus string

const (
	// ProviderRequestPending means the application awaits admin review.
	ProviderRequestPending ProviderRequestStatus = "pending"
	// ProviderRequestApproved means the application was accepted and a provider was created.
	ProviderRequestApproved ProviderRequestStatus = "approved"
	// ProviderRequestRejected means the application was declined.
	ProviderRequestRejected ProviderRequestStatus = "rejected"
)

// ProviderRequest is a user's application to become a provider on the
// marketplace. Approval creates the Provider record.
type ProviderRequest struct {
	ID            uuid.UUID             // The Global Unique Identifier (GUID) for the request.
	UserID        uuid.UUID             // The applying user account.
	BusinessName  string                // Proposed business name.
	Description   string                // Proposed listing description.
	City          string                // City of the place of business.
	State         string                // State or region of the place of business.
	Latitude      float64               // Geographic latitude of the shop location.
	Longitude     float64               // Geographic longitude of the shop location.
	Specialties   []string              // Proposed specialty tags.
	MobileService bool                  // Whether the applicant offers mobile service.
	Phone         string                // Business contact phone.
	Status        ProviderRequestStatus // Review state.
	ReviewedBy    *uuid.UUID            // Admin who reviewed the request, nil while pending.
	ReviewedAt    *time.Time            // When the request was reviewed, nil while pending.
	ReviewNote    string                // Optional note from the reviewing admin.
	CreatedAt     time.Time             // Timestamp of when this request was submitted.
	UpdatedAt     time.Time             // Timestamp of the last modification.
}
