package ecs

// tickScoped resources are reset by World.EndTick.
type tickScoped interface {
	endTick()
}

// EventLog is an append-only per-tick event buffer. Consumers drain it
// through their own EventReader so several systems can read the same events
// within a tick. The log is emptied at the end of every tick.
type EventLog[T any] struct {
	items []T
	epoch uint64
}

// Push appends an event to the current tick.
func (l *EventLog[T]) Push(evt T) {
	if l == nil {
		return
	}
	l.items = append(l.items, evt)
}

// Len returns the number of events pushed this tick.
func (l *EventLog[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// All returns the events pushed this tick without moving any cursor.
func (l *EventLog[T]) All() []T {
	if l == nil {
		return nil
	}
	return l.items
}

// Reader returns a new cursor positioned at the start of the current tick.
func (l *EventLog[T]) Reader() *EventReader[T] {
	return &EventReader[T]{log: l, epoch: l.epoch}
}

func (l *EventLog[T]) endTick() {
	clear(l.items)
	l.items = l.items[:0]
	l.epoch++
}

// EventReader is a consumer-owned cursor over an EventLog.
type EventReader[T any] struct {
	log    *EventLog[T]
	epoch  uint64
	cursor int
}

// Read returns the events pushed since the previous Read in this tick and
// advances the cursor past them.
func (r *EventReader[T]) Read() []T {
	if r == nil || r.log == nil {
		return nil
	}
	if r.epoch != r.log.epoch {
		r.epoch = r.log.epoch
		r.cursor = 0
	}
	if r.cursor >= len(r.log.items) {
		return nil
	}
	out := r.log.items[r.cursor:]
	r.cursor = len(r.log.items)
	return out
}
