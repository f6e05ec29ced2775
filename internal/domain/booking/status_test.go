package booking

import (
	"testing"

	"github.com/vilis-app/carsrent-api/internal/httperr"
)

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusPending {
		t.Fatalf("InitialStatus() = %q, want %q", got, StatusPending)
	}
}

func TestIsValid(t *testing.T) {
	valid := []Status{
		StatusPending, StatusApproved, StatusDeclined,
		StatusCompleted, StatusCancelled,
	}
	for _, s := range valid {
		if !IsValid(s) {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}

	invalid := []Status{"", "confirmed", "PENDING", "Approved", "done"}
	for _, s := range invalid {
		if IsValid(s) {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}

func TestValidateStatus(t *testing.T) {
	if err := ValidateStatus(StatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateStatus("confirmed")
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}
