package booking

import (
	"context"

	"github.com/vilis-app/carsrent-api/internal/audit"
	domain "github.com/vilis-app/carsrent-api/internal/domain/booking"
	"github.com/vilis-app/carsrent-api/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	agencyID uint,
) error {

	bk, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	if bk.AgencyID != agencyID {
		return httperr.ErrForbidden("forbidden", "Booking belongs to another agency")
	}

	if err := uc.repo.DeleteBooking(ctx, bk); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AgencyID: agencyID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bk.ID,
	})

	return nil
}
