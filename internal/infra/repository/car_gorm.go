package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vilis-app/carsrent-api/internal/domain/catalog"
	"github.com/vilis-app/carsrent-api/internal/models"
)

type CarGormRepository struct {
	db *gorm.DB
}

func NewCarGormRepository(db *gorm.DB) *CarGormRepository {
	return &CarGormRepository{db: db}
}

// CarRow is a car joined with its agency's public contact fields. The
// license plate stays out of the payload through the model's json tag.
type CarRow struct {
	models.Car
	AgencyName     string `json:"agency_name"`
	AgencyPhone    string `json:"agency_phone"`
	AgencyEmail    string `json:"agency_email"`
	AgencyLocation string `json:"agency_location"`
}

const carWithAgencySelect = "cars.*, agencies.name AS agency_name, " +
	"agencies.phone AS agency_phone, agencies.email AS agency_email, " +
	"agencies.location AS agency_location"

// --------------------------------------------------
// Search
// --------------------------------------------------

func (r *CarGormRepository) Search(
	ctx context.Context,
	f catalog.Filters,
) ([]CarRow, error) {

	f = f.Normalize()

	q := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Select(carWithAgencySelect).
		Joins("JOIN agencies ON agencies.id = cars.agency_id")

	if f.Location != "" {
		// HQ city match OR membership in the agency's extra-cities set.
		q = q.Where(
			`agencies.location = ? OR EXISTS (
				SELECT 1 FROM agency_cities ac
				WHERE ac.agency_id = cars.agency_id AND ac.city = ?
			)`,
			f.Location, f.Location,
		)
	}
	if f.Category != "" {
		q = q.Where("cars.category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("cars.daily_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("cars.daily_price <= ?", *f.MaxPrice)
	}
	if f.Chauffeur != "" {
		q = q.Where("cars.chauffeur_option = ?", f.Chauffeur)
	}

	var rows []CarRow
	err := q.
		Order("cars.created_at DESC, cars.id DESC").
		Limit(catalog.SearchLimit).
		Find(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Detail / catalog
// --------------------------------------------------

func (r *CarGormRepository) GetWithAgency(
	ctx context.Context,
	id uint,
) (*CarRow, error) {

	var row CarRow
	err := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Select(carWithAgencySelect).
		Joins("JOIN agencies ON agencies.id = cars.agency_id").
		Where("cars.id = ?", id).
		First(&row).Error

	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CarGormRepository) ListByAgency(
	ctx context.Context,
	agencyID uint,
) ([]models.Car, error) {

	var cars []models.Car
	err := r.db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("created_at DESC").
		Find(&cars).Error

	if err != nil {
		return nil, err
	}
	return cars, nil
}
