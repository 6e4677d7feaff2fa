package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). Rows are written by the ingestion system; this service
// only reads them.
type ListingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SourcePostID    string    `gorm:"type:varchar(255);index"`
	FullAddress     string    `gorm:"type:text"`
	Street          string    `gorm:"type:varchar(255)"`
	StreetNumber    string    `gorm:"type:varchar(20)"`
	City            string    `gorm:"type:varchar(100)"`
	PostalCode      string    `gorm:"type:varchar(10)"`
	Neighborhood    string    `gorm:"type:varchar(100)"`
	Rooms           *float64  `gorm:"type:decimal(4,1)"`
	Bedrooms        *int
	SurfaceM2       *float64 `gorm:"type:decimal(6,1)"`
	DwellingType    string   `gorm:"type:varchar(100)"`
	Floor           *int
	TopFloor        bool `gorm:"not null;default:false"`
	Balcony         bool `gorm:"not null;default:false"`
	Terrace         bool `gorm:"not null;default:false"`
	Furnished       bool `gorm:"not null;default:false"`
	ParkingIncluded bool `gorm:"not null;default:false"`
	MonthlyRent     *int
	TotalRent       *int
	AvailableFrom   *time.Time
	Urgent          bool   `gorm:"not null;default:false"`
	ImagePath       string `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
