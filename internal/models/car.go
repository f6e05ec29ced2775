package models

import (
	"time"

	"github.com/vilis-app/carsrent-api/internal/domain/pricing"
)

type Car struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgencyID uint   `gorm:"index;not null" json:"agency_id"`
	Agency   Agency `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title      string  `gorm:"size:150;not null" json:"title"`
	DailyPrice float64 `gorm:"not null" json:"daily_price"`
	ImageURL   string  `gorm:"size:512;not null" json:"image_url"`

	Year         int    `json:"year"`
	Transmission string `gorm:"size:20" json:"transmission"`
	Seats        int    `json:"seats"`
	Doors        int    `json:"doors"`
	FuelType     string `gorm:"size:20" json:"fuel_type"`

	ChauffeurOption string `gorm:"size:20;default:'no';index" json:"chauffeur_option"`
	Category        string `gorm:"size:30;index" json:"category"`

	Delivery *string  `gorm:"size:255" json:"delivery"`
	Deposit  *float64 `json:"deposit"`

	MileageLimit string `gorm:"size:50;default:'illimité'" json:"mileage_limit"`
	Insurance    string `gorm:"size:50;default:'incluse'" json:"insurance"`
	MinAge       int    `gorm:"default:21" json:"min_age"`

	// Stored but never part of public payloads.
	LicensePlate *string `gorm:"size:20" json:"-"`

	MapsURL *string `gorm:"size:512" json:"maps_url"`

	Options    StringList        `gorm:"type:text" json:"options"`
	PriceTiers pricing.TierTable `gorm:"type:text" json:"price_tiers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var carCategories = map[string]bool{
	"sedan":       true,
	"suv":         true,
	"hatchback":   true,
	"pickup":      true,
	"van":         true,
	"convertible": true,
	"coupe":       true,
	"wagon":       true,
	"crossover":   true,
}

func IsValidCategory(category string) bool {
	return carCategories[category]
}

var chauffeurOptions = map[string]bool{
	"yes":       true,
	"no":        true,
	"on_demand": true,
}

func IsValidChauffeurOption(option string) bool {
	return chauffeurOptions[option]
}
