package mailer

import (
	"context"

	"go.uber.org/zap"
)

type Sender interface {
	SendAgencyBookingEmail(ctx context.Context, ev Event) error
}

// Dispatcher decouples booking creation from email delivery: events go
// through a buffered queue and a single worker, so a slow or unreachable
// provider can never fail or delay a booking.
type Dispatcher struct {
	sender Sender
	queue  chan Event
	log    *zap.Logger
}

func NewDispatcher(sender Sender, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Event, 100),
		log:    log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sender.SendAgencyBookingEmail(context.Background(), ev); err != nil {
			d.log.Warn("booking email failed",
				zap.String("to", ev.To),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the notification, never block the API
		d.log.Warn("mail queue full, dropping notification",
			zap.String("to", ev.To),
		)
	}
}
