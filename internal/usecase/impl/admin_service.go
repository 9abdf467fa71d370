package impl

import (
	"context"
	"log/slog"
	"time"

	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListPendingRequests retrieves provider applications awaiting review.
func (srv *adminService) ListPendingRequests(ctx context.Context) ([]*entity.ProviderRequest, error) {
	var requests []*entity.ProviderRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProviderRequestRepo().ListByStatus(ctx, entity.ProviderRequestPending)
		if err != nil {
			return errors.Wrap(err, "failed to list pending requests")
		}
		requests = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending requests")
	}

	return requests, nil
}

// findPendingRequest loads an application and verifies it is still open.
func findPendingRequest(ctx context.Context, requestRepo repository.ProviderRequestRepository, requestID uuid.UUID) (*entity.ProviderRequest, error) {
	request, err := requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrProviderRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "application not found")
		}

		return nil, errors.Wrap(err, "failed to find application")
	}
	if request.Status != entity.ProviderRequestPending {
		return nil, errors.Wrapf(domainerrors.ErrProviderRequestClosed, "application already %s", request.Status)
	}

	return request, nil
}

// closeRequest stamps the review decision onto the application.
func closeRequest(request *entity.ProviderRequest, adminID uuid.UUID, status entity.ProviderRequestStatus, note string) {
	now := time.Now()
	request.Status = status
	request.ReviewedBy = &adminID
	request.ReviewedAt = &now
	request.ReviewNote = note
}

// ApproveRequest accepts an application: it creates the provider listing and
// grants the applicant the provider role, atomically.
func (srv *adminService) ApproveRequest(ctx context.Context, adminID uuid.UUID, input *usecase.ReviewRequestInput) (*entity.Provider, error) {
	srv.logger.Info("Approving provider application", "adminID", adminID, "requestID", input.RequestID)

	var provider *entity.Provider

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.ProviderRequestRepo()
		providerRepo := repoFactory.ProviderRepo()
		userRepo := repoFactory.UserRepo()

		// 1. The application must still be pending.
		request, err := findPendingRequest(ctx, requestRepo, input.RequestID)
		if err != nil {
			return err
		}

		// 2. Create the listing from the application fields.
		newProvider := &entity.Provider{
			OwnerID:       request.UserID,
			BusinessName:  request.BusinessName,
			Description:   request.Description,
			City:          request.City,
			State:         request.State,
			Latitude:      request.Latitude,
			Longitude:     request.Longitude,
			Specialties:   request.Specialties,
			MobileService: request.MobileService,
			Phone:         request.Phone,
			Status:        entity.ProviderStatusActive,
		}
		if err := providerRepo.Create(ctx, newProvider); err != nil {
			return errors.WithStack(err)
		}

		// 3. Grant the applicant the provider role.
		if err := userRepo.GrantRole(ctx, request.UserID, entity.RoleProvider); err != nil {
			return errors.Wrap(err, "failed to grant provider role")
		}

		// 4. Close the application.
		closeRequest(request, adminID, entity.ProviderRequestApproved, input.Note)
		if err := requestRepo.Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to close application")
		}

		provider = newProvider

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to approve provider application", "error", err, "requestID", input.RequestID)

		return nil, errors.Wrap(err, "failed to approve application")
	}

	srv.logger.Info("Provider application approved", "requestID", input.RequestID, "providerID", provider.ID)

	return provider, nil
}

// RejectRequest declines an application.
func (srv *adminService) RejectRequest(ctx context.Context, adminID uuid.UUID, input *usecase.ReviewRequestInput) error {
	srv.logger.Info("Rejecting provider application", "adminID", adminID, "requestID", input.RequestID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.ProviderRequestRepo()

		request, err := findPendingRequest(ctx, requestRepo, input.RequestID)
		if err != nil {
			return err
		}

		closeRequest(request, adminID, entity.ProviderRequestRejected, input.Note)

		return errors.Wrap(requestRepo.Update(ctx, request), "failed to close application")
	})
	if err != nil {
		srv.logger.Error("Failed to reject provider application", "error", err, "requestID", input.RequestID)

		return errors.Wrap(err, "failed to reject application")
	}

	return nil
}

// setProviderStatus transitions a listing between active and suspended.
func (srv *adminService) setProviderStatus(ctx context.Context, providerID uuid.UUID, from, to entity.ProviderStatus) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()

		provider, err := providerRepo.FindByID(ctx, providerID)
		if err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return errors.Wrap(domainerrors.ErrProviderNotFound, "provider not found")
			}

			return errors.Wrap(err, "failed to find provider")
		}
		if provider.Status != from {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "provider in status %s cannot move to %s", provider.Status, to)
		}

		provider.Status = to

		return errors.Wrap(providerRepo.Update(ctx, provider), "failed to update provider status")
	})
	if err != nil {
		srv.logger.Error("Failed to change provider status", "error", err, "providerID", providerID, "to", to)

		return errors.Wrap(err, "failed to change provider status")
	}

	srv.logger.Info("Provider status changed", "providerID", providerID, "to", to)

	return nil
}

// SuspendProvider hides a listing from search and locks its dashboard.
func (srv *adminService) SuspendProvider(ctx context.Context, providerID uuid.UUID) error {
	return srv.setProviderStatus(ctx, providerID, entity.ProviderStatusActive, entity.ProviderStatusSuspended)
}

// ReinstateProvider returns a suspended listing to active.
func (srv *adminService) ReinstateProvider(ctx context.Context, providerID uuid.UUID) error {
	return srv.setProviderStatus(ctx, providerID, entity.ProviderStatusSuspended, entity.ProviderStatusActive)
}
