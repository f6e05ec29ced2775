package mailer

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSendSkipsWithoutAPIKey(t *testing.T) {
	c := NewClient("", "Vilis <send@vilis-ma.com>", zap.NewNop())

	err := c.SendAgencyBookingEmail(context.Background(), Event{To: "agency@example.com"})
	if err != nil {
		t.Fatalf("missing key must skip, not fail: %v", err)
	}
}

func TestSendSkipsWithoutRecipient(t *testing.T) {
	c := NewClient("key", "Vilis <send@vilis-ma.com>", zap.NewNop())

	err := c.SendAgencyBookingEmail(context.Background(), Event{To: ""})
	if err != nil {
		t.Fatalf("missing recipient must skip, not fail: %v", err)
	}
}

func TestSubjectFallsBackWithoutTitle(t *testing.T) {
	got := subject(Event{})
	if !strings.Contains(got, "Véhicule") {
		t.Fatalf("subject = %q, want the generic vehicle label", got)
	}
}

func TestBookingTextIncludesTotal(t *testing.T) {
	total := 1600.0
	text := bookingText(Event{
		AgencyName: "Atlas Cars",
		CarTitle:   "Dacia Logan 2023",
		Booking: BookingSummary{
			CustomerName:  "Yassine",
			CustomerPhone: "0600000000",
			StartDate:     "2025-06-01",
			EndDate:       "2025-06-05",
			TotalPrice:    &total,
		},
	})

	for _, want := range []string{"Atlas Cars", "Dacia Logan 2023", "Yassine", "1600 MAD", "2025-06-01"} {
		if !strings.Contains(text, want) {
			t.Fatalf("body missing %q:\n%s", want, text)
		}
	}
}

func TestBookingTextOmitsTotalWithoutDates(t *testing.T) {
	text := bookingText(Event{
		AgencyName: "Atlas Cars",
		CarTitle:   "Dacia Logan 2023",
		Booking:    BookingSummary{CustomerName: "Yassine"},
	})

	if strings.Contains(text, "Total estimé") {
		t.Fatalf("body must not quote a total for a date-less request:\n%s", text)
	}
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	blocked := make(chan struct{})
	defer close(blocked)
	sender := senderFunc(func(context.Context, Event) error {
		<-blocked
		return nil
	})

	d := NewDispatcher(sender, zap.NewNop())

	// Fill the worker slot and the whole queue, then keep going: every
	// extra Dispatch must return immediately, dropping the event.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 150; i++ {
			d.Dispatch(Event{To: "agency@example.com"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}

type senderFunc func(ctx context.Context, ev Event) error

func (f senderFunc) SendAgencyBookingEmail(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}
