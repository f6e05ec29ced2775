package models

// AgencyCity marks an agency as serving a city beyond its HQ location.
// The search filter treats HQ and extra cities the same.
type AgencyCity struct {
	AgencyID uint   `gorm:"primaryKey" json:"agency_id"`
	Agency   Agency `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	City string `gorm:"size:100;primaryKey" json:"city"`
}
