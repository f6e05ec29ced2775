package booking

import (
	"context"
	"strings"
	"time"

	"github.com/vilis-app/carsrent-api/internal/audit"
	domain "github.com/vilis-app/carsrent-api/internal/domain/booking"
	"github.com/vilis-app/carsrent-api/internal/domain/pricing"
	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/mailer"
	"github.com/vilis-app/carsrent-api/internal/models"
)

// Notifier is the outbound, fire-and-forget side of booking creation.
type Notifier interface {
	Dispatch(ev mailer.Event)
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	CarID uint

	Name    string
	Phone   string
	Email   string
	Message string

	// Optional as a pair: a booking without dates is recorded without a
	// computed price and the agency prices it offline.
	StartDate *time.Time
	EndDate   *time.Time
}

type CreateBookingOutput struct {
	Booking *models.Booking

	// Zero when the request carries no dates.
	Days      int
	DailyRate float64
	Currency  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify Notifier
	audit  *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	notify Notifier,
	auditDispatcher *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notify,
		audit:  auditDispatcher,
	}
}

const dateLayout = "2006-01-02"

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingOutput, error) {

	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return nil, httperr.ErrValidation("missing_fields", "name and phone are required")
	}

	// Dates come as a pair or not at all; a half-specified range cannot
	// be priced.
	if (in.StartDate == nil) != (in.EndDate == nil) {
		return nil, httperr.ErrValidation(
			"incomplete_date_range",
			"start_date and end_date must be given together",
		)
	}
	if in.StartDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, httperr.ErrValidation(
			"invalid_date_range",
			"end_date must not be before start_date",
		)
	}

	car, err := uc.repo.GetCar(ctx, in.CarID)
	if err != nil {
		return nil, httperr.ErrNotFound("car_not_found", "Car not found")
	}

	bk := &models.Booking{
		AgencyID:  car.AgencyID,
		CarID:     car.ID,
		Name:      name,
		Phone:     phone,
		Email:     strings.TrimSpace(in.Email),
		Message:   strings.TrimSpace(in.Message),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    string(domain.InitialStatus()),
	}

	out := &CreateBookingOutput{Currency: pricing.Currency}

	// Price at request time and freeze it: later tier edits must never
	// change what the customer was quoted.
	if in.StartDate != nil {
		days := pricing.DaysBetween(*in.StartDate, *in.EndDate)
		rate := pricing.PickDailyRate(car.DailyPrice, car.PriceTiers, days)
		total := rate * float64(days)

		bk.PriceTotal = &total
		out.Days = days
		out.DailyRate = rate
	}

	if err := uc.repo.CreateBooking(ctx, bk); err != nil {
		return nil, err
	}
	out.Booking = bk

	uc.notifyAgency(ctx, car, bk)

	uc.audit.Dispatch(audit.Event{
		AgencyID: car.AgencyID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &bk.ID,
	})

	return out, nil
}

// notifyAgency hands the "new request" email to the dispatcher. Lookup
// failures and missing addresses only skip the notification; the booking
// is already persisted and stays.
func (uc *CreateBooking) notifyAgency(
	ctx context.Context,
	car *models.Car,
	bk *models.Booking,
) {
	agency, err := uc.repo.GetAgency(ctx, car.AgencyID)
	if err != nil || agency.Email == "" {
		return
	}

	summary := mailer.BookingSummary{
		CustomerName:  bk.Name,
		CustomerPhone: bk.Phone,
		CustomerEmail: bk.Email,
		Message:       bk.Message,
		TotalPrice:    bk.PriceTotal,
	}
	if bk.StartDate != nil {
		summary.StartDate = bk.StartDate.Format(dateLayout)
	}
	if bk.EndDate != nil {
		summary.EndDate = bk.EndDate.Format(dateLayout)
	}

	uc.notify.Dispatch(mailer.Event{
		To:         agency.Email,
		AgencyName: agency.Name,
		CarTitle:   car.Title,
		ReplyTo:    bk.Email,
		Booking:    summary,
	})
}
