package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/vilis-app/carsrent-api/internal/domain/booking"
	"github.com/vilis-app/carsrent-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Car / Agency lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetCar(
	ctx context.Context,
	id uint,
) (*models.Car, error) {

	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *BookingGormRepository) GetAgency(
	ctx context.Context,
	id uint,
) (*models.Agency, error) {

	var agency models.Agency
	if err := r.db.WithContext(ctx).First(&agency, id).Error; err != nil {
		return nil, err
	}
	return &agency, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(bk).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).First(&bk, id).Error; err != nil {
		return nil, err
	}
	return &bk, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(bk).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bk *models.Booking,
) error {
	return r.db.WithContext(ctx).Delete(bk).Error
}

// --------------------------------------------------
// Agency dashboard
// --------------------------------------------------

// AgencyBookingRow is a booking joined with the car fields the dashboard
// shows. The license plate is owner-only data and is exposed here on
// purpose: this query is reachable only through the owning agency.
type AgencyBookingRow struct {
	models.Booking
	CarTitle    string  `json:"car_title"`
	CarImageURL string  `json:"car_image_url"`
	CarPlate    *string `json:"car_plate"`
}

func (r *BookingGormRepository) ListForAgency(
	ctx context.Context,
	agencyID uint,
) ([]AgencyBookingRow, error) {

	var rows []AgencyBookingRow
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(
			"bookings.*",
			"cars.title AS car_title",
			"cars.image_url AS car_image_url",
			"cars.license_plate AS car_plate",
		).
		Joins("JOIN cars ON cars.id = bookings.car_id").
		Where("bookings.agency_id = ?", agencyID).
		Order("bookings.created_at DESC").
		Find(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
