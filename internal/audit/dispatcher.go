package audit

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Actions recorded for booking transitions.
const (
	ActionSubmitted = "booking_submitted"
	ActionConfirmed = "booking_confirmed"
	ActionCancelled = "booking_cancelled"
	ActionExpired   = "booking_expired"
	ActionExtended  = "booking_extended"
)

type Event struct {
	BookingID string
	ActorID   *string
	Action    string
	Metadata  any
	At        time.Time
}

type Dispatcher struct {
	recorder Recorder
	log      *logrus.Logger
	queue    chan Event
	done     chan struct{}
	once     sync.Once
}

func NewDispatcher(recorder Recorder, log *logrus.Logger) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		log:      log,
		queue:    make(chan Event, 100),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.recorder.Record(context.Background(), ev); err != nil {
			d.log.WithFields(logrus.Fields{
				"booking_id": ev.BookingID,
				"action":     ev.Action,
			}).WithError(err).Error("audit record failed")
		}
	}
}

// Dispatch never blocks: a full queue drops the event. A nil dispatcher
// is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.WithFields(logrus.Fields{
			"booking_id": ev.BookingID,
			"action":     ev.Action,
		}).Warn("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
