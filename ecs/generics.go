package ecs

import (
	"fmt"
	"reflect"

	"github.com/milk9111/brawler/ecs/component"
)

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("add %s: %w", kind, component.ErrNilComponent)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add %s to %s: %w", kind, e, component.ErrEntityNotAlive)
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return storeFor(w, kind, false).remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return storeFor(w, kind, false).has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	return storeFor(w, kind, false).get(e)
}

// ForEach calls fn for every entity holding kind, in storage order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil {
		return
	}
	for i, e := range s.denseEntities {
		fn(e, s.denseValues[i])
	}
}

// ForEach2 calls fn for every entity holding both kinds, in the storage
// order of the first kind.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for i, e := range sa.denseEntities {
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		fn(e, sa.denseValues[i], b)
	}
}

// Resource returns the world's singleton of type T, creating a zero value on
// first use.
func Resource[T any](w *World) *T {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if r, ok := w.resources[key]; ok {
		return r.(*T)
	}
	r := new(T)
	w.resources[key] = r
	return r
}

// Events returns the tick-scoped event log for T.
func Events[T any](w *World) *EventLog[T] {
	return Resource[EventLog[T]](w)
}
