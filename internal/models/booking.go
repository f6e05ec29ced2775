package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Denormalized owner so agency dashboards never join through cars.
	AgencyID uint   `gorm:"index;not null" json:"agency_id"`
	Agency   Agency `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CarID uint `gorm:"index;not null" json:"car_id"`
	Car   Car  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20;not null" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Message string `gorm:"size:500" json:"message"`

	// Both nil is a valid mode: the request is recorded without a
	// computed price and the agency prices it offline.
	StartDate *time.Time `gorm:"type:date" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Frozen at creation; never recomputed when the car's pricing changes.
	PriceTotal *float64 `json:"price_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
