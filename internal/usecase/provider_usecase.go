// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"
	"time"

	"automo/internal/domain/entity"
	"automo/internal/domain/repository"

	"github.com/google/uuid"
)

// ApplyProviderInput defines the data submitted with a provider application.
type ApplyProviderInput struct {
	BusinessName  string
	Description   string
	City          string
	State         string
	Latitude      float64
	Longitude     float64
	Specialties   []string
	MobileService bool
	Phone         string
}

// UpdateProviderInput defines the updatable listing fields. Nil means unchanged.
type UpdateProviderInput struct {
	BusinessName  *string
	Description   *string
	City          *string
	State         *string
	Latitude      *float64
	Longitude     *float64
	Specialties   *[]string
	MobileService *bool
	Phone         *string
}

// UpsertOfferingInput defines the fields of a catalog entry.
type UpsertOfferingInput struct {
	Name            string
	Category        string
	Description     string
	PriceCents      int64
	DurationMinutes int
	Active          bool
}

// UploadLogoInput carries a logo image upload.
type UploadLogoInput struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// RevenueReport is the monthly revenue breakdown for a provider.
type RevenueReport struct {
	Buckets    []repository.RevenueBucket
	TotalCents int64
}

// ProviderUsecase defines the operations available to provider accounts for
// managing their listing, catalog and customer relationships. All operations
// act on the listing owned by ownerID.
type ProviderUsecase interface {
	// Apply submits a provider application for admin review.
	Apply(ctx context.Context, userID uuid.UUID, input *ApplyProviderInput) (*entity.ProviderRequest, error)

	// GetApplication retrieves the caller's most recent application.
	GetApplication(ctx context.Context, userID uuid.UUID) (*entity.ProviderRequest, error)

	// GetListing retrieves the caller's provider listing.
	GetListing(ctx context.Context, ownerID uuid.UUID) (*entity.Provider, error)

	// GetPublicListing retrieves any active listing with its active offerings.
	GetPublicListing(ctx context.Context, providerID uuid.UUID) (*entity.Provider, []*entity.Offering, error)

	// UpdateListing modifies the caller's provider listing.
	UpdateListing(ctx context.Context, ownerID uuid.UUID, input *UpdateProviderInput) (*entity.Provider, error)

	// UploadLogo stores a listing logo and returns its public URL.
	UploadLogo(ctx context.Context, ownerID uuid.UUID, input *UploadLogoInput) (string, error)

	// RegisterDeviceToken adds a push notification token to the listing.
	RegisterDeviceToken(ctx context.Context, ownerID uuid.UUID, token string) error

	// ListOfferings retrieves the caller's catalog, inactive entries included.
	ListOfferings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offering, error)

	// CreateOffering adds a catalog entry.
	CreateOffering(ctx context.Context, ownerID uuid.UUID, input *UpsertOfferingInput) (*entity.Offering, error)

	// UpdateOffering modifies a catalog entry owned by the caller.
	UpdateOffering(ctx context.Context, ownerID uuid.UUID, offeringID uuid.UUID, input *UpsertOfferingInput) (*entity.Offering, error)

	// DeleteOffering removes a catalog entry owned by the caller.
	DeleteOffering(ctx context.Context, ownerID uuid.UUID, offeringID uuid.UUID) error

	// ListCustomers retrieves the distinct customers who booked with the caller.
	ListCustomers(ctx context.Context, ownerID uuid.UUID) ([]*entity.User, error)

	// Revenue aggregates completed-booking revenue per month in [from, to).
	Revenue(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*RevenueReport, error)
}
