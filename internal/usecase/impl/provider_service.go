package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"automo/config"
	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	"automo/internal/domain/service"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// providerService implements the ProviderUsecase interface.
type providerService struct {
	txManager    repository.TransactionManager
	storage      service.StorageService
	maxLogoBytes int64
	logger       *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(
	txManager repository.TransactionManager,
	storage service.StorageService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProviderUsecase {
	var maxLogoBytes int64
	if cfg.Upload != nil {
		maxLogoBytes = cfg.Upload.MaxImageBytes
	}

	return &providerService{
		txManager:    txManager,
		storage:      storage,
		maxLogoBytes: maxLogoBytes,
		logger:       logger,
	}
}

// findOwnedProvider loads the listing owned by ownerID.
func findOwnedProvider(ctx context.Context, providerRepo repository.ProviderRepository, ownerID uuid.UUID) (*entity.Provider, error) {
	provider, err := providerRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProviderNotFound, "account has no provider listing")
		}

		return nil, errors.Wrap(err, "failed to find provider by owner")
	}

	return provider, nil
}

// Apply submits a provider application for admin review.
func (srv *providerService) Apply(ctx context.Context, userID uuid.UUID, input *usecase.ApplyProviderInput) (*entity.ProviderRequest, error) {
	srv.logger.Info("Submitting provider application", "userID", userID, "businessName", input.BusinessName)

	var request *entity.ProviderRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()
		requestRepo := repoFactory.ProviderRequestRepo()

		// 1. An account with a listing cannot apply again.
		_, err := providerRepo.FindByOwner(ctx, userID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrProviderExists, "account already has a provider listing")
		}
		if !errors.Is(err, repository.ErrProviderNotFound) {
			return errors.Wrap(err, "failed to check for existing listing")
		}

		// 2. A pending application blocks a new one; closed ones do not.
		latest, err := requestRepo.FindLatestByUser(ctx, userID)
		if err == nil && latest.Status == entity.ProviderRequestPending {
			return errors.Wrap(domainerrors.ErrProviderRequestPending, "a pending application already exists")
		}
		if err != nil && !errors.Is(err, repository.ErrProviderRequestNotFound) {
			return errors.Wrap(err, "failed to check for pending application")
		}

		newRequest := &entity.ProviderRequest{
			UserID:        userID,
			BusinessName:  input.BusinessName,
			Description:   input.Description,
			City:          input.City,
			State:         input.State,
			Latitude:      input.Latitude,
			Longitude:     input.Longitude,
			Specialties:   input.Specialties,
			MobileService: input.MobileService,
			Phone:         input.Phone,
			Status:        entity.ProviderRequestPending,
		}
		if err := requestRepo.Create(ctx, newRequest); err != nil {
			return errors.WithStack(err)
		}
		request = newRequest

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to submit provider application", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to submit provider application")
	}

	return request, nil
}

// GetApplication retrieves the caller's most recent application.
func (srv *providerService) GetApplication(ctx context.Context, userID uuid.UUID) (*entity.ProviderRequest, error) {
	var request *entity.ProviderRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProviderRequestRepo().FindLatestByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProviderRequestNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "no application on file")
			}

			return errors.Wrap(err, "failed to find application")
		}
		request = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get application")
	}

	return request, nil
}

// GetListing retrieves the caller's provider listing.
func (srv *providerService) GetListing(ctx context.Context, ownerID uuid.UUID) (*entity.Provider, error) {
	var provider *entity.Provider

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOwnedProvider(ctx, repoFactory.ProviderRepo(), ownerID)
		if err != nil {
			return err
		}
		provider = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing")
	}

	return provider, nil
}

// GetPublicListing retrieves any active listing with its active offerings.
func (srv *providerService) GetPublicListing(ctx context.Context, providerID uuid.UUID) (*entity.Provider, []*entity.Offering, error) {
	var provider *entity.Provider
	var offerings []*entity.Offering

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProviderRepo().FindByID(ctx, providerID)
		if err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return errors.Wrap(domainerrors.ErrProviderNotFound, "provider not found")
			}

			return errors.Wrap(err, "failed to find provider")
		}
		if !found.IsActive() {
			// Suspended listings are invisible to the public.
			return errors.Wrap(domainerrors.ErrProviderNotFound, "provider not found")
		}

		catalog, err := repoFactory.OfferingRepo().ListByProvider(ctx, found.ID, true)
		if err != nil {
			return errors.Wrap(err, "failed to list offerings")
		}

		provider = found
		offerings = catalog

		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get public listing")
	}

	return provider, offerings, nil
}

// UpdateListing modifies the caller's provider listing.
func (srv *providerService) UpdateListing(ctx context.Context, ownerID uuid.UUID, input *usecase.UpdateProviderInput) (*entity.Provider, error) {
	srv.logger.Info("Updating provider listing", "ownerID", ownerID)

	var provider *entity.Provider

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()

		found, err := findOwnedProvider(ctx, providerRepo, ownerID)
		if err != nil {
			return err
		}

		if input.BusinessName != nil {
			found.BusinessName = *input.BusinessName
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.City != nil {
			found.City = *input.City
		}
		if input.State != nil {
			found.State = *input.State
		}
		if input.Latitude != nil {
			found.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			found.Longitude = *input.Longitude
		}
		if input.Specialties != nil {
			found.Specialties = *input.Specialties
		}
		if input.MobileService != nil {
			found.MobileService = *input.MobileService
		}
		if input.Phone != nil {
			found.Phone = *input.Phone
		}

		if err := providerRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update listing")
		}
		provider = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to update provider listing", "error", err, "ownerID", ownerID)

		return nil, errors.Wrap(err, "failed to update listing")
	}

	return provider, nil
}

// UploadLogo stores a listing logo and records its public URL.
func (srv *providerService) UploadLogo(ctx context.Context, ownerID uuid.UUID, input *usecase.UploadLogoInput) (string, error) {
	srv.logger.Info("Uploading provider logo", "ownerID", ownerID)

	if input.Size > srv.maxLogoBytes {
		return "", errors.Wrap(domainerrors.ErrFileTooLarge, "logo exceeds size limit")
	}
	ext, err := imageExtension(input.ContentType)
	if err != nil {
		return "", err
	}

	var logoURL string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()

		provider, err := findOwnedProvider(ctx, providerRepo, ownerID)
		if err != nil {
			return err
		}

		key := fmt.Sprintf("logos/%s%s", provider.ID, ext)
		url, err := srv.storage.Upload(ctx, key, input.ContentType, input.Body, input.Size)
		if err != nil {
			return errors.Wrap(err, "failed to upload logo")
		}

		provider.LogoURL = url
		if err := providerRepo.Update(ctx, provider); err != nil {
			return errors.Wrap(err, "failed to record logo URL")
		}
		logoURL = url

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload logo")
	}

	return logoURL, nil
}

// RegisterDeviceToken adds a push notification token to the listing.
// Registering an already known token is a no-op.
func (srv *providerService) RegisterDeviceToken(ctx context.Context, ownerID uuid.UUID, token string) error {
	if token == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "device token must not be empty")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()

		provider, err := findOwnedProvider(ctx, providerRepo, ownerID)
		if err != nil {
			return err
		}
		if slices.Contains(provider.DeviceTokens, token) {
			return nil
		}

		provider.DeviceTokens = append(provider.DeviceTokens, token)

		return errors.Wrap(providerRepo.Update(ctx, provider), "failed to store device token")
	})
	if err != nil {
		return errors.Wrap(err, "failed to register device token")
	}

	return nil
}

// ListOfferings retrieves the caller's catalog, inactive entries included.
func (srv *providerService) ListOfferings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offering, error) {
	var offerings []*entity.Offering

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		provider, err := findOwnedProvider(ctx, repoFactory.ProviderRepo(), ownerID)
		if err != nil {
			return err
		}

		found, err := repoFactory.OfferingRepo().ListByProvider(ctx, provider.ID, false)
		if err != nil {
			return errors.Wrap(err, "failed to list offerings")
		}
		offerings = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offerings")
	}

	return offerings, nil
}

// CreateOffering adds a catalog entry to the caller's listing.
func (srv *providerService) CreateOffering(ctx context.Context, ownerID uuid.UUID, input *usecase.UpsertOfferingInput) (*entity.Offering, error) {
	srv.logger.Info("Creating offering", "ownerID", ownerID, "name", input.Name)

	var offering *entity.Offering

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		provider, err := findOwnedProvider(ctx, repoFactory.ProviderRepo(), ownerID)
		if err != nil {
			return err
		}

		newOffering := &entity.Offering{
			ProviderID:      provider.ID,
			Name:            input.Name,
			Category:        input.Category,
			Description:     input.Description,
			PriceCents:      input.PriceCents,
			DurationMinutes: input.DurationMinutes,
			Active:          input.Active,
		}
		if err := repoFactory.OfferingRepo().Create(ctx, newOffering); err != nil {
			return errors.WithStack(err)
		}
		offering = newOffering

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to create offering", "error", err, "ownerID", ownerID)

		return nil, errors.Wrap(err, "failed to create offering")
	}

	return offering, nil
}

// findOwnedOffering loads an offering and verifies it belongs to the listing.
func findOwnedOffering(ctx context.Context, offeringRepo repository.OfferingRepository, providerID, offeringID uuid.UUID) (*entity.Offering, error) {
	offering, err := offeringRepo.FindByID(ctx, offeringID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferingNotFound, "offering not found")
		}

		return nil, errors.Wrap(err, "failed to find offering")
	}
	if offering.ProviderID != providerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "offering belongs to another provider")
	}

	return offering, nil
}

// UpdateOffering modifies a catalog entry owned by the caller.
func (srv *providerService) UpdateOffering(ctx context.Context, ownerID uuid.UUID, offeringID uuid.UUID, input *usecase.UpsertOfferingInput) (*entity.Offering, error) {
	srv.logger.Info("Updating offering", "ownerID", ownerID, "offeringID", offeringID)

	var offering *entity.Offering

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offeringRepo := repoFactory.OfferingRepo()

		provider, err := findOwnedProvider(ctx, repoFactory.ProviderRepo(), ownerID)
		if err != nil {
			return err
		}

		found, err := findOwnedOffering(ctx, offeringRepo, provider.ID, offeringID)
		if err != nil {
			return err
		}

		found.Name = input.Name
		found.Category = input.Category
		found.Description = input.Description
		found.PriceCents = input.PriceCents
		found.DurationMinutes = input.DurationMinutes
		found.Active = input.Active

		if err := offeringRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update offering")
		}
		offering = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to update offering", "error", err, "offeringID", offeringID)

		return nil, errors.Wrap(err, "failed to update offering")
	}

	return offering, nil
}

// DeleteOffering removes a catalog entry owned by the caller.
func (srv *providerService) DeleteOffering(ctx context.Context, ownerID uuid.UUID, offeringID uuid.UUID) error {
	srv.logger.Info("Deleting offering", "ownerID", ownerID, "offeringID", offeringID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offeringRepo := repoFactory.OfferingRepo()

		provider, err := findOwnedProvider(ctx, repoFactory.ProviderRepo(), ownerID)
		if err != nil {
			return err
		}

		if _, err := findOwnedOffering(ctx, offeringRepo, provider.ID, offeringID); err != nil {
			return err
		}

		return errors.Wrap(offeringRepo.Delete(ctx, offeringID), "failed to delete offering")
	})
	if err != nil {
		srv.logger.Error("Failed to delete offering", "error", err, "offeringID", offeringID)

		return errors.Wrap(err, "failed to delete offering")
	}

	return nil
}

// ListCustomers retrieves the distinct customers who booked with the caller.
func (srv *providerService) ListCustomers(ctx context.Context, ownerID uuid.UUID) ([]*entity.User, error) {
	var customers []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		provider, err := findOwnedProvider(ctx, repoFactory.ProviderRepo(), ownerID)
		if err != nil {
			return err
		}

		ids, err := repoFactory.BookingRepo().ListCustomerIDsByProvider(ctx, provider.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list customer ids")
		}

		customers = make([]*entity.User, 0, len(ids))
		for _, id := range ids {
			user, err := userRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					// A deleted account still appears in booking history; skip it.
					continue
				}

				return errors.Wrap(err, "failed to find customer")
			}
			customers = append(customers, user)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// Revenue aggregates completed-booking revenue per month in [from, to).
func (srv *providerService) Revenue(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*usecase.RevenueReport, error) {
	if !to.After(from) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "revenue interval must not be empty")
	}

	var report *usecase.RevenueReport

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		provider, err := findOwnedProvider(ctx, repoFactory.ProviderRepo(), ownerID)
		if err != nil {
			return err
		}

		buckets, err := repoFactory.BookingRepo().RevenueByMonth(ctx, provider.ID, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate revenue")
		}

		var total int64
		for _, b := range buckets {
			total += b.TotalCents
		}
		report = &usecase.RevenueReport{Buckets: buckets, TotalCents: total}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build revenue report")
	}

	return report, nil
}
