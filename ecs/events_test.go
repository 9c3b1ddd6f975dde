package ecs

import (
	"errors"
	"testing"
)

func TestEventReadersHaveIndependentCursors(t *testing.T) {
	w := NewWorld()
	log := Events[int](w)
	a := log.Reader()
	b := log.Reader()

	log.Push(1)
	log.Push(2)
	if got := a.Read(); len(got) != 2 {
		t.Fatalf("reader a: expected 2 events, got %v", got)
	}
	log.Push(3)
	if got := a.Read(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("reader a: expected [3], got %v", got)
	}
	if got := b.Read(); len(got) != 3 {
		t.Fatalf("reader b: expected all 3 events, got %v", got)
	}
	if got := a.Read(); got != nil {
		t.Fatalf("reader a: expected nothing new, got %v", got)
	}
}

func TestEventsDoNotCarryOverTicks(t *testing.T) {
	w := NewWorld()
	log := Events[string](w)
	r := log.Reader()

	log.Push("stale")
	w.EndTick()

	if log.Len() != 0 {
		t.Fatalf("expected empty log after tick, got %d", log.Len())
	}
	if got := r.Read(); got != nil {
		t.Fatalf("expected no events after tick, got %v", got)
	}

	log.Push("fresh")
	if got := r.Read(); len(got) != 1 || got[0] != "fresh" {
		t.Fatalf("expected [fresh], got %v", got)
	}
	if w.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", w.Tick())
	}
}

type systemFunc func(w *World) error

func (f systemFunc) Update(w *World) error { return f(w) }

func TestSchedulerRunsInOrderAndClosesTick(t *testing.T) {
	w := NewWorld()
	var order []int
	s := NewScheduler(
		systemFunc(func(w *World) error { order = append(order, 1); Events[int](w).Push(7); return nil }),
		systemFunc(func(w *World) error { order = append(order, 2); return nil }),
	)
	if err := s.Update(w); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("unexpected order %v", order)
	}
	if Events[int](w).Len() != 0 {
		t.Fatalf("events should be cleared at the end of the tick")
	}
}

func TestSchedulerStopsOnError(t *testing.T) {
	w := NewWorld()
	boom := errors.New("boom")
	ran := false
	s := NewScheduler(
		systemFunc(func(*World) error { return boom }),
		systemFunc(func(*World) error { ran = true; return nil }),
	)
	err := s.Update(w)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	var se *SystemError
	if !errors.As(err, &se) || se.Index != 0 || se.Tick != 0 {
		t.Fatalf("expected a SystemError for system 0 at tick 0, got %#v", err)
	}
	if ran {
		t.Fatalf("systems after a failure must not run")
	}
	if w.Tick() != 1 {
		t.Fatalf("tick should still close after a failure, got %d", w.Tick())
	}
}
