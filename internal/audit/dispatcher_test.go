package audit

import (
	"errors"
	"sync"
	"testing"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *recordingSink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if s.fail {
		return errors.New("sink down")
	}
	return nil
}

func TestDispatcherDeliversBeforeClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	id := uint(1)
	d.Dispatch(Event{Action: "appointment_created", Entity: "appointment", EntityID: &id})
	d.Dispatch(Event{Action: "appointment_completed", Entity: "appointment", EntityID: &id})
	d.Close()

	if len(sink.events) != 2 || sink.events[1].Action != "appointment_completed" {
		t.Fatalf("unexpected events %+v", sink.events)
	}
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &recordingSink{fail: true}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()
	d.Close()

	if len(sink.events) != 2 {
		t.Fatalf("worker must keep consuming after errors, got %d", len(sink.events))
	}
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)
	d.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispatch(Event{Action: "late"})
		}()
	}
	wg.Wait()

	if len(sink.events) != 0 {
		t.Fatalf("events after close must be dropped, got %d", len(sink.events))
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "ignored"})
	d.Close()
}
