package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderModel mirrors the 'providers' table. Specialties and device tokens
// are stored as JSONB through GORM's JSON serializer.
type ProviderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;unique"`
	BusinessName  string    `gorm:"type:varchar(150);not null"`
	Description   string    `gorm:"type:text"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(100)"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	Specialties   []string  `gorm:"serializer:json;type:jsonb"`
	MobileService bool      `gorm:"not null;default:false"`
	Rating        float64   `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount   int       `gorm:"not null;default:0"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	LogoURL       string    `gorm:"type:text"`
	Phone         string    `gorm:"type:varchar(30)"`
	DeviceTokens  []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}

// ProviderRequestModel mirrors the 'provider_requests' table.
type ProviderRequestModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessName  string     `gorm:"type:varchar(150);not null"`
	Description   string     `gorm:"type:text"`
	City          string     `gorm:"type:varchar(100)"`
	State         string     `gorm:"type:varchar(100)"`
	Latitude      float64    `gorm:"type:decimal(10,8);not null"`
	Longitude     float64    `gorm:"type:decimal(11,8);not null"`
	Specialties   []string   `gorm:"serializer:json;type:jsonb"`
	MobileService bool       `gorm:"not null;default:false"`
	Phone         string     `gorm:"type:varchar(30)"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	ReviewedBy    *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt    *time.Time
	ReviewNote    string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderRequestModel) TableName() string {
	return "provider_requests"
}
