package ecs

import (
	"reflect"

	"github.com/milk9111/brawler/ecs/component"
)

// World owns entities, component tables and tick-scoped resources.
type World struct {
	entities   entityStore
	components map[component.ComponentID]componentStore
	resources  map[reflect.Type]any
	tick       uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		components: make(map[component.ComponentID]componentStore),
		resources:  make(map[reflect.Type]any),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.components {
		store.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	return w.entities.entities()
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// EndTick clears every tick-scoped resource and advances the tick counter.
func (w *World) EndTick() {
	if w == nil {
		return
	}
	for _, r := range w.resources {
		if ts, ok := r.(tickScoped); ok {
			ts.endTick()
		}
	}
	w.tick++
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if existing, ok := w.components[kind.ID()]; ok {
		return existing.(*sparseSet[T])
	}
	if !create {
		return nil
	}
	s := newSparseSet[T]()
	w.components[kind.ID()] = s
	return s
}
