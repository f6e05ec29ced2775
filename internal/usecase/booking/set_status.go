package booking

import (
	"context"

	"github.com/vilis-app/carsrent-api/internal/audit"
	domain "github.com/vilis-app/carsrent-api/internal/domain/booking"
	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/models"
)

type SetBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetBookingStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *SetBookingStatus {
	return &SetBookingStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute overwrites the booking status for the owning agency. There is
// no transition graph: any of the five statuses may replace any other,
// including moves like approved back to declined.
func (uc *SetBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	agencyID uint,
	status domain.Status,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
	}

	// Ownership before anything else: a foreign caller learns nothing
	// about the request's validity, only that the booking is not theirs.
	if bk.AgencyID != agencyID {
		return nil, httperr.ErrForbidden("forbidden", "Booking belongs to another agency")
	}

	if err := domain.ValidateStatus(status); err != nil {
		return nil, err
	}

	previous := bk.Status
	bk.Status = string(status)

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AgencyID: agencyID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &bk.ID,
		Metadata: map[string]string{"from": previous, "to": bk.Status},
	})

	return bk, nil
}
