package ecs

import "fmt"

// Entity is a generational handle. The low 32 bits name a storage slot and
// the high 32 bits the generation the slot had when the handle was issued;
// destroying an entity bumps the generation so stale handles stop matching.
type Entity uint64

const slotBits = 32

func makeEntity(slot, gen uint32) Entity {
	return Entity(uint64(gen)<<slotBits | uint64(slot))
}

func (e Entity) slot() uint32 { return uint32(e) }

func (e Entity) gen() uint32 { return uint32(uint64(e) >> slotBits) }

// ID returns the storage slot of the entity. Slots are reused after
// destruction, so the ID alone does not identify an entity over time.
func (e Entity) ID() uint32 {
	return e.slot()
}

// Valid reports whether e could name an entity at all. The zero Entity never
// does.
func (e Entity) Valid() bool {
	return e.slot() != 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.slot(), e.gen())
}
