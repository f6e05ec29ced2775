package booking

import (
	"context"

	"github.com/vilis-app/carsrent-api/internal/models"
)

type Repository interface {
	// -------- Car / Agency lookups --------
	GetCar(
		ctx context.Context,
		id uint,
	) (*models.Car, error)

	GetAgency(
		ctx context.Context,
		id uint,
	) (*models.Agency, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		bk *models.Booking,
	) error
}
