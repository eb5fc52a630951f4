package models

import (
	"time"

	"gorm.io/gorm"
)

// Tri-state amenity values stored as strings to match the source data.
const (
	AmenityYes     = "Yes"
	AmenityNo      = "No"
	AmenityUnknown = "Unknown"
)

type Toilet struct {
	ID              uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string         `json:"name" gorm:"not null"`
	Address         string         `json:"address" gorm:"not null"`
	City            string         `json:"city" gorm:"not null;index"`
	State           string         `json:"state"`
	Country         string         `json:"country" gorm:"default:'India'"`
	PostalCode      string         `json:"postalCode"`
	Latitude        float64        `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude       float64        `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	Rating          float64        `json:"rating" gorm:"not null;default:0;type:decimal(3,2);index"`
	ReviewCount     int            `json:"reviewCount" gorm:"not null;default:0;index"`
	WorkingHours    string         `json:"workingHours" gorm:"default:'Not specified'"`
	IsPaid          string         `json:"isPaid" gorm:"default:'Unknown'"`
	Wheelchair      string         `json:"wheelchair" gorm:"default:'Unknown'"`
	Gender          string         `json:"gender" gorm:"default:'Unknown'"`
	Baby            string         `json:"baby" gorm:"default:'Unknown'"`
	Shower          string         `json:"shower" gorm:"default:'Unknown'"`
	WesternOrIndian string         `json:"westernOrIndian" gorm:"default:'Unknown'"`
	NapkinVendor    string         `json:"napkinVendor" gorm:"default:'Unknown'"`
	ImageURL        string         `json:"imageUrl"`
	BusinessStatus  string         `json:"businessStatus" gorm:"default:'OPERATIONAL'"`
	Type            string         `json:"type" gorm:"default:'Public Toilet'"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
