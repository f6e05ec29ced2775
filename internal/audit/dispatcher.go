package audit

import "go.uber.org/zap"

type Recorder interface {
	Record(ev Event) error
}

type Dispatcher struct {
	recorder Recorder
	queue    chan Event
	log      *zap.Logger
}

func NewDispatcher(recorder Recorder, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		queue:    make(chan Event, 100),
		log:      log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.recorder.Record(ev); err != nil {
			d.log.Warn("audit error", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the audit event, never break the API
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
