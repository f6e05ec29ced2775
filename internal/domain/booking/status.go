package booking

import "github.com/vilis-app/carsrent-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusDeclined:  true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// IsValid reports whether s is one of the five booking statuses. The
// lifecycle is deliberately loose: the owning agency may move a booking
// between any two statuses at any time, so membership is the only check.
func IsValid(s Status) bool {
	return validStatuses[s]
}

func ValidateStatus(s Status) error {
	if !IsValid(s) {
		return httperr.ErrValidation("invalid_status", "Invalid status")
	}
	return nil
}
