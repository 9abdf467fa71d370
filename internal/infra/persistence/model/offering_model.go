package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferingModel mirrors the 'offerings' table. Prices are integer cents.
type OfferingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(150);not null"`
	Category        string    `gorm:"type:varchar(50)"`
	Description     string    `gorm:"type:text"`
	PriceCents      int64     `gorm:"not null"`
	DurationMinutes int       `gorm:"not null;default:0"`
	Active          bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferingModel) TableName() string {
	return "offerings"
}
