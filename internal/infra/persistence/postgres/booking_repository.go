// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	"automo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the domain's BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// FindByID retrieves a booking with its line items.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&bookingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// ListByCustomer retrieves a customer's bookings, newest first.
func (repo *bookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error) {
	return repo.list(ctx, "customer_id = ?", customerID)
}

// ListByProvider retrieves a provider's bookings, newest first.
func (repo *bookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Booking, error) {
	return repo.list(ctx, "provider_id = ?", providerID)
}

func (repo *bookingRepository) list(ctx context.Context, cond string, arg any) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where(cond, arg).
		Order("created_at DESC").
		Find(&bookingModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// ListCustomerIDsByProvider retrieves the distinct customers who have booked
// with the provider.
func (repo *bookingRepository) ListCustomerIDsByProvider(ctx context.Context, providerID uuid.UUID) ([]uuid.UUID, error) {
	var customerIDs []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Distinct("customer_id").
		Where("provider_id = ?", providerID).
		Pluck("customer_id", &customerIDs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list booking customers")
	}

	return customerIDs, nil
}

// Create persists a new booking together with its line items.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBookingStateConflict.WrapMessage(err, "booking reference already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProviderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt
	for i := range bookingM.Items {
		booking.Items[i].ID = bookingM.Items[i].ID
		booking.Items[i].BookingID = bookingM.Items[i].BookingID
	}

	return nil
}

// UpdateStatus transitions a booking to a new status.
func (repo *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// RevenueByMonth aggregates completed-booking totals per calendar month in the
// half-open interval [from, to).
func (repo *bookingRepository) RevenueByMonth(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]repository.RevenueBucket, error) {
	type revenueRow struct {
		Year       int
		Month      int
		TotalCents int64
		Bookings   int
	}

	var rows []revenueRow
	err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Select("EXTRACT(YEAR FROM scheduled_at)::int AS year",
			"EXTRACT(MONTH FROM scheduled_at)::int AS month",
			"COALESCE(SUM(total_cents), 0) AS total_cents",
			"COUNT(*) AS bookings").
		Where("provider_id = ? AND status = ? AND scheduled_at >= ? AND scheduled_at < ?",
			providerID, string(entity.BookingStatusCompleted), from, to).
		Group("1, 2").
		Order("1, 2").
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate revenue")
	}

	buckets := make([]repository.RevenueBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, repository.RevenueBucket{
			Year:       row.Year,
			Month:      time.Month(row.Month),
			TotalCents: row.TotalCents,
			Bookings:   row.Bookings,
		})
	}

	return buckets, nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	items := make([]entity.BookingItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.BookingItem{
			ID:         itemM.ID,
			BookingID:  itemM.BookingID,
			OfferingID: itemM.OfferingID,
			Name:       itemM.Name,
			PriceCents: itemM.PriceCents,
		})
	}

	return &entity.Booking{
		ID:            data.ID,
		Reference:     data.Reference,
		CustomerID:    data.CustomerID,
		ProviderID:    data.ProviderID,
		Items:         items,
		ScheduledAt:   data.ScheduledAt,
		MobileService: data.MobileService,
		Notes:         data.Notes,
		Status:        entity.BookingStatus(data.Status),
		TotalCents:    data.TotalCents,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	items := make([]model.BookingItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.BookingItemModel{
			ID:         item.ID,
			BookingID:  item.BookingID,
			OfferingID: item.OfferingID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
		})
	}

	return &model.BookingModel{
		ID:            data.ID,
		Reference:     data.Reference,
		CustomerID:    data.CustomerID,
		ProviderID:    data.ProviderID,
		ScheduledAt:   data.ScheduledAt,
		MobileService: data.MobileService,
		Notes:         data.Notes,
		Status:        string(data.Status),
		TotalCents:    data.TotalCents,
		Items:         items,
	}
}
