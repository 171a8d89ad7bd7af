package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/BruksfildServices01/prestine-booking/internal/logging"
)

type memRecorder struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (m *memRecorder) Record(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("db down")
	}
	m.events = append(m.events, ev)
	return nil
}

func TestDispatcherDeliversBeforeClose(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec, logging.Discard())

	d.Dispatch(Event{BookingID: "b1", Action: ActionSubmitted})
	d.Dispatch(Event{BookingID: "b1", Action: ActionConfirmed})
	d.Close()

	if len(rec.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.events))
	}
	if rec.events[1].Action != ActionConfirmed {
		t.Fatalf("events out of order: %+v", rec.events)
	}
}

func TestDispatcherSurvivesRecorderErrors(t *testing.T) {
	rec := &memRecorder{fail: true}
	d := NewDispatcher(rec, logging.Discard())

	d.Dispatch(Event{BookingID: "b1", Action: ActionCancelled})
	d.Close()
	d.Close()
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{BookingID: "b1"})
	d.Close()
}
