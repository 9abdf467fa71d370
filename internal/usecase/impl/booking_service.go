package impl

import (
	"context"
	"crypto/rand"
	"log/slog"

	"automo/config"
	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	"automo/internal/domain/service"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// referenceAlphabet excludes look-alike characters so references survive
// being read over the phone.
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager            repository.TransactionManager
	qrService            service.QRCodeService
	publisher            service.EventPublisher
	mobileSurchargeCents int64
	logger               *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	txManager repository.TransactionManager,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BookingUsecase {
	var surcharge int64
	if cfg.Booking != nil {
		surcharge = cfg.Booking.MobileSurchargeCents
	}

	return &bookingService{
		txManager:            txManager,
		qrService:            qrService,
		publisher:            publisher,
		mobileSurchargeCents: surcharge,
		logger:               logger,
	}
}

// newBookingReference generates a short human-readable reference code.
func newBookingReference() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate booking reference")
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}

	return "BK-" + string(buf), nil
}

// priceOfferings freezes the selected offerings into quote lines and sums
// them, applying the mobile surcharge when requested.
func (srv *bookingService) priceOfferings(offerings []*entity.Offering, mobileService bool) ([]usecase.QuoteLine, int64, int64) {
	lines := make([]usecase.QuoteLine, 0, len(offerings))
	var total int64
	for _, o := range offerings {
		lines = append(lines, usecase.QuoteLine{
			OfferingID: o.ID,
			Name:       o.Name,
			PriceCents: o.PriceCents,
		})
		total += o.PriceCents
	}

	var surcharge int64
	if mobileService {
		surcharge = srv.mobileSurchargeCents
		total += surcharge
	}

	return lines, surcharge, total
}

// fetchActiveOfferings loads the selected offerings and rejects unknown,
// inactive or foreign ones. providerID of uuid.Nil skips the ownership check.
func fetchActiveOfferings(ctx context.Context, offeringRepo repository.OfferingRepository, ids []uuid.UUID, providerID uuid.UUID) ([]*entity.Offering, error) {
	offerings, err := offeringRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load offerings")
	}
	if len(offerings) != len(ids) {
		return nil, errors.Wrap(domainerrors.ErrOfferingNotFound, "one or more offerings do not exist")
	}
	for _, o := range offerings {
		if !o.Active {
			return nil, errors.Wrapf(domainerrors.ErrOfferingInactive, "offering %s is inactive", o.ID)
		}
		if providerID != uuid.Nil && o.ProviderID != providerID {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "offering %s does not belong to the provider", o.ID)
		}
	}

	return offerings, nil
}

// Quote prices a prospective booking without persisting anything.
func (srv *bookingService) Quote(ctx context.Context, input *usecase.QuoteInput) (*usecase.QuoteOutput, error) {
	if len(input.OfferingIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrBookingEmpty, "quote requires at least one offering")
	}

	var offerings []*entity.Offering
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := fetchActiveOfferings(ctx, repoFactory.OfferingRepo(), input.OfferingIDs, uuid.Nil)
		if err != nil {
			return err
		}
		offerings = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to quote booking")
	}

	lines, surcharge, total := srv.priceOfferings(offerings, input.MobileService)

	return &usecase.QuoteOutput{
		Lines:                lines,
		MobileSurchargeCents: surcharge,
		TotalCents:           total,
	}, nil
}

// CreateBooking places a booking inside a single transaction, then renders
// the QR code and publishes the booking event after the commit.
func (srv *bookingService) CreateBooking(ctx context.Context, customerID uuid.UUID, input *usecase.CreateBookingInput) (*usecase.CreateBookingOutput, error) {
	srv.logger.Info("Creating booking", "customerID", customerID, "providerID", input.ProviderID)

	if len(input.OfferingIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrBookingEmpty, "booking requires at least one offering")
	}

	var booking *entity.Booking
	var providerTokens []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()
		offeringRepo := repoFactory.OfferingRepo()
		bookingRepo := repoFactory.BookingRepo()

		// 1. The target provider must exist and be active.
		provider, err := providerRepo.FindByID(ctx, input.ProviderID)
		if err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return errors.Wrap(domainerrors.ErrProviderNotFound, "provider not found")
			}

			return errors.Wrap(err, "failed to find provider")
		}
		if !provider.IsActive() {
			return errors.Wrap(domainerrors.ErrProviderSuspended, "provider is not accepting bookings")
		}

		// 2. Load and validate the selected offerings against the provider.
		offerings, err := fetchActiveOfferings(ctx, offeringRepo, input.OfferingIDs, provider.ID)
		if err != nil {
			return err
		}

		// 3. Freeze the line items and total at booking time.
		lines, _, total := srv.priceOfferings(offerings, input.MobileService)
		items := make([]entity.BookingItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, entity.BookingItem{
				OfferingID: line.OfferingID,
				Name:       line.Name,
				PriceCents: line.PriceCents,
			})
		}

		reference, err := newBookingReference()
		if err != nil {
			return err
		}

		newBooking := &entity.Booking{
			Reference:     reference,
			CustomerID:    customerID,
			ProviderID:    provider.ID,
			Items:         items,
			ScheduledAt:   input.ScheduledAt,
			MobileService: input.MobileService,
			Notes:         input.Notes,
			Status:        entity.BookingStatusPending,
			TotalCents:    total,
		}

		if err := bookingRepo.Create(ctx, newBooking); err != nil {
			return errors.WithStack(err)
		}

		booking = newBooking
		providerTokens = provider.DeviceTokens

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to execute booking creation transaction", "error", err, "customerID", customerID)

		return nil, errors.Wrap(err, "failed to create booking")
	}

	qrCode, err := srv.qrService.GenerateBookingQR(booking.ID, booking.Reference)
	if err != nil {
		// The booking is already placed; a missing QR image is recoverable via
		// GetBookingQR later.
		srv.logger.Warn("Failed to render booking QR code", "bookingID", booking.ID, "error", err)
	}

	srv.publishEvent(ctx, booking, providerTokens)

	srv.logger.Info("Booking created", "bookingID", booking.ID, "reference", booking.Reference)

	return &usecase.CreateBookingOutput{Booking: booking, QRCode: qrCode}, nil
}

// publishEvent publishes a booking state change. Publish failures are logged
// and swallowed: notification delivery is best-effort.
func (srv *bookingService) publishEvent(ctx context.Context, booking *entity.Booking, tokens []string) {
	event := &service.BookingEvent{
		BookingID:  booking.ID.String(),
		Reference:  booking.Reference,
		ProviderID: booking.ProviderID.String(),
		CustomerID: booking.CustomerID.String(),
		Status:     string(booking.Status),
		TotalCents: booking.TotalCents,
		Tokens:     tokens,
	}
	if err := srv.publisher.PublishBookingEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish booking event", "bookingID", booking.ID, "status", booking.Status, "error", err)
	}
}

// findBookingForCustomer loads a booking and verifies the caller placed it.
func findBookingForCustomer(ctx context.Context, bookingRepo repository.BookingRepository, customerID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookingNotFound, "booking not found")
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}
	if booking.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "booking belongs to another customer")
	}

	return booking, nil
}

// GetBooking retrieves a booking visible to the caller.
func (srv *bookingService) GetBooking(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID) (*entity.Booking, error) {
	var booking *entity.Booking

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookingRepo().FindByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				return errors.Wrap(domainerrors.ErrBookingNotFound, "booking not found")
			}

			return errors.Wrap(err, "failed to find booking")
		}

		if found.CustomerID == callerID {
			booking = found

			return nil
		}

		// Not the customer; allow the listing owner through.
		provider, err := repoFactory.ProviderRepo().FindByID(ctx, found.ProviderID)
		if err != nil {
			return errors.Wrap(err, "failed to find booking provider")
		}
		if provider.OwnerID != callerID {
			return errors.Wrap(domainerrors.ErrForbidden, "booking is not visible to this account")
		}
		booking = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get booking")
	}

	return booking, nil
}

// GetBookingQR renders the reference QR for a booking the caller placed.
func (srv *bookingService) GetBookingQR(ctx context.Context, callerID uuid.UUID, bookingID uuid.UUID) ([]byte, error) {
	var booking *entity.Booking

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findBookingForCustomer(ctx, repoFactory.BookingRepo(), callerID, bookingID)
		if err != nil {
			return err
		}
		booking = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get booking for QR")
	}

	qrCode, err := srv.qrService.GenerateBookingQR(booking.ID, booking.Reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render booking QR code")
	}

	return qrCode, nil
}

// ListCustomerBookings retrieves the caller's bookings, newest first.
func (srv *bookingService) ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error) {
	var bookings []*entity.Booking

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BookingRepo().ListByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to list customer bookings")
		}
		bookings = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer bookings")
	}

	return bookings, nil
}

// CancelBooking cancels a pending or confirmed booking on behalf of the customer.
func (srv *bookingService) CancelBooking(ctx context.Context, customerID uuid.UUID, bookingID uuid.UUID) error {
	srv.logger.Info("Cancelling booking", "customerID", customerID, "bookingID", bookingID)

	var booking *entity.Booking
	var providerTokens []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepo()

		found, err := findBookingForCustomer(ctx, bookingRepo, customerID, bookingID)
		if err != nil {
			return err
		}
		if !found.CanCancel() {
			return errors.Wrapf(domainerrors.ErrBookingStateConflict, "booking in status %s cannot be cancelled", found.Status)
		}

		if err := bookingRepo.UpdateStatus(ctx, found.ID, entity.BookingStatusCancelled); err != nil {
			return errors.Wrap(err, "failed to cancel booking")
		}
		found.Status = entity.BookingStatusCancelled
		booking = found

		if provider, err := repoFactory.ProviderRepo().FindByID(ctx, found.ProviderID); err == nil {
			providerTokens = provider.DeviceTokens
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to cancel booking", "error", err, "bookingID", bookingID)

		return errors.Wrap(err, "failed to cancel booking")
	}

	srv.publishEvent(ctx, booking, providerTokens)

	return nil
}

// ListProviderBookings retrieves the bookings of the caller's listing.
func (srv *bookingService) ListProviderBookings(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error) {
	var bookings []*entity.Booking

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		provider, err := findOwnedProvider(ctx, repoFactory.ProviderRepo(), ownerID)
		if err != nil {
			return err
		}

		found, err := repoFactory.BookingRepo().ListByProvider(ctx, provider.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list provider bookings")
		}
		bookings = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider bookings")
	}

	return bookings, nil
}

// transitionAsProvider moves a booking from one status to another on behalf
// of the listing owner.
func (srv *bookingService) transitionAsProvider(ctx context.Context, ownerID, bookingID uuid.UUID, from, to entity.BookingStatus) error {
	srv.logger.Info("Transitioning booking", "ownerID", ownerID, "bookingID", bookingID, "to", to)

	var booking *entity.Booking
	var providerTokens []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepo()

		found, err := bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				return errors.Wrap(domainerrors.ErrBookingNotFound, "booking not found")
			}

			return errors.Wrap(err, "failed to find booking")
		}

		provider, err := repoFactory.ProviderRepo().FindByID(ctx, found.ProviderID)
		if err != nil {
			return errors.Wrap(err, "failed to find booking provider")
		}
		if provider.OwnerID != ownerID {
			return errors.Wrap(domainerrors.ErrForbidden, "booking belongs to another provider")
		}

		if found.Status != from {
			return errors.Wrapf(domainerrors.ErrBookingStateConflict, "booking in status %s cannot move to %s", found.Status, to)
		}

		if err := bookingRepo.UpdateStatus(ctx, found.ID, to); err != nil {
			return errors.Wrap(err, "failed to update booking status")
		}
		found.Status = to
		booking = found
		providerTokens = provider.DeviceTokens

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to transition booking", "error", err, "bookingID", bookingID, "to", to)

		return errors.Wrap(err, "failed to transition booking")
	}

	srv.publishEvent(ctx, booking, providerTokens)

	return nil
}

// ConfirmBooking accepts a pending booking.
func (srv *bookingService) ConfirmBooking(ctx context.Context, ownerID uuid.UUID, bookingID uuid.UUID) error {
	return srv.transitionAsProvider(ctx, ownerID, bookingID, entity.BookingStatusPending, entity.BookingStatusConfirmed)
}

// DeclineBooking turns down a pending booking.
func (srv *bookingService) DeclineBooking(ctx context.Context, ownerID uuid.UUID, bookingID uuid.UUID) error {
	return srv.transitionAsProvider(ctx, ownerID, bookingID, entity.BookingStatusPending, entity.BookingStatusDeclined)
}

// CompleteBooking marks a confirmed booking as done.
func (srv *bookingService) CompleteBooking(ctx context.Context, ownerID uuid.UUID, bookingID uuid.UUID) error {
	return srv.transitionAsProvider(ctx, ownerID, bookingID, entity.BookingStatusConfirmed, entity.BookingStatusCompleted)
}
