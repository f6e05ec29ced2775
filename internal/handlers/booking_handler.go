package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/vilis-app/carsrent-api/internal/domain/booking"
	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/httpresp"
	"github.com/vilis-app/carsrent-api/internal/infra/repository"
	"github.com/vilis-app/carsrent-api/internal/middleware"
	usecase "github.com/vilis-app/carsrent-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo      *repository.BookingGormRepository
	create    *usecase.CreateBooking
	setStatus *usecase.SetBookingStatus
	remove    *usecase.DeleteBooking
}

func NewBookingHandler(
	repo *repository.BookingGormRepository,
	create *usecase.CreateBooking,
	setStatus *usecase.SetBookingStatus,
	remove *usecase.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		repo:      repo,
		create:    create,
		setStatus: setStatus,
		remove:    remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CarID   uint   `json:"car_id" binding:"required"`
	Name    string `json:"name" binding:"required,min=2"`
	Phone   string `json:"phone" binding:"required,min=6"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

const bookingDateLayout = "2006-01-02"

// ======================================================
// CREATE (public)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, ok := parseBookingDate(c, req.StartDate, "start_date")
	if !ok {
		return
	}
	end, ok := parseBookingDate(c, req.EndDate, "end_date")
	if !ok {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), usecase.CreateBookingInput{
		CarID:     req.CarID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Message:   req.Message,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_booking", "Could not create the booking.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":    out.Booking,
		"days":       out.Days,
		"daily_rate": out.DailyRate,
		"currency":   out.Currency,
	})
}

// ======================================================
// AGENCY DASHBOARD
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	rows, err := h.repo.ListForAgency(c.Request.Context(), agencyID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, rows)
}

func (h *BookingHandler) SetStatus(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	bk, err := h.setStatus.Execute(c.Request.Context(), id, agencyID, domain.Status(req.Status))
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_booking", "Could not update the booking.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, agencyID); err != nil {
		httperr.Respond(c, err, "failed_to_delete_booking", "Could not delete the booking.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ======================================================
// HELPERS
// ======================================================

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return 0, false
	}
	return uint(id), true
}

// parseBookingDate turns an optional "YYYY-MM-DD" field into a pointer,
// writing a 400 when the value is present but malformed.
func parseBookingDate(c *gin.Context, raw, field string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}

	t, err := time.Parse(bookingDateLayout, raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", field+" must be formatted as YYYY-MM-DD.")
		return nil, false
	}
	return &t, true
}
