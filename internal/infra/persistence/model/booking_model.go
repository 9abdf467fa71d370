package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table.
type BookingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Reference     string    `gorm:"type:varchar(20);unique;not null"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduledAt   time.Time `gorm:"not null"`
	MobileService bool      `gorm:"not null;default:false"`
	Notes         string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	TotalCents    int64     `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []BookingItemModel `gorm:"foreignKey:BookingID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// BookingItemModel mirrors the 'booking_items' table. Name and price are
// frozen copies of the offering at booking time.
type BookingItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BookingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferingID uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"type:varchar(150);not null"`
	PriceCents int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (BookingItemModel) TableName() string {
	return "booking_items"
}
