package ecs

import "fmt"

// System runs once per tick.
type System interface {
	Update(w *World) error
}

// SystemError reports the system that aborted a tick.
type SystemError struct {
	Tick   uint64
	Index  int
	System System
	Err    error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("ecs: tick %d: system %d (%T): %v", e.Tick, e.Index, e.System, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// Scheduler runs systems in registration order. Systems communicate through
// the world's event logs, so order is part of the contract.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

// Add appends sys to the run order. Nil systems are ignored.
func (s *Scheduler) Add(sys System) {
	if sys != nil {
		s.systems = append(s.systems, sys)
	}
}

// Update runs one tick. The first failing system stops the tick; the world's
// tick is closed either way so events never leak into the next one.
func (s *Scheduler) Update(w *World) error {
	defer w.EndTick()
	for i, sys := range s.systems {
		if err := sys.Update(w); err != nil {
			return &SystemError{Tick: w.Tick(), Index: i, System: sys, Err: err}
		}
	}
	return nil
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
