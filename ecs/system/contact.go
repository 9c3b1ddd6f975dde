package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// ContactFilterSystem re-emits collisions as contacts unless the two actors
// are on the same team or one spawned the other. Order is preserved.
type ContactFilterSystem struct {
	collisions *ecs.EventReader[CollisionEvent]
}

func NewContactFilterSystem() *ContactFilterSystem {
	return &ContactFilterSystem{}
}

func (s *ContactFilterSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}
	if s.collisions == nil {
		s.collisions = ecs.Events[CollisionEvent](w).Reader()
	}

	out := ecs.Events[ContactEvent](w)
	for _, evt := range s.collisions.Read() {
		if !Admissible(w, evt.From, evt.To) {
			continue
		}
		out.Push(ContactEvent(evt))
	}
	return nil
}

// Admissible reports whether from may touch to under the team and
// spawn-lineage rules.
func Admissible(w *ecs.World, from, to ecs.Entity) bool {
	fromTeam, fromTeamed := ecs.Get(w, from, component.TeamComponent.Kind())
	toTeam, toTeamed := ecs.Get(w, to, component.TeamComponent.Kind())
	if fromTeamed && toTeamed && fromTeam.ID == toTeam.ID {
		return false
	}

	if parent, ok := ecs.Get(w, from, component.SpawnParentComponent.Kind()); ok && parent.Parent == uint64(to) {
		return false
	}
	if parent, ok := ecs.Get(w, to, component.SpawnParentComponent.Kind()); ok && parent.Parent == uint64(from) {
		return false
	}
	return true
}
