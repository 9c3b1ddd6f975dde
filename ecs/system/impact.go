package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// ImpactResolverSystem keeps the ImpactRepeatTracker in step with raw
// collisions of Impact interactions: an untracked (attacker, target) pair
// gets a fresh tracker, a tracked one is left alone. Impacts bypass the
// contact filter and have no target ceiling. Nothing is emitted; effect
// systems read the tracker table.
type ImpactResolverSystem struct {
	collisions *ecs.EventReader[CollisionEvent]
}

func NewImpactResolverSystem() *ImpactResolverSystem {
	return &ImpactResolverSystem{}
}

func (s *ImpactResolverSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}
	if s.collisions == nil {
		s.collisions = ecs.Events[CollisionEvent](w).Reader()
	}

	trackers := ecs.Resource[ImpactRepeatTracker](w)
	trackers.tick(w)

	for _, evt := range s.collisions.Read() {
		impact, ok := evt.Interaction.Kind.(component.Impact)
		if !ok {
			continue
		}
		if _, tracked := trackers.Lookup(evt.From, evt.To); tracked {
			continue
		}
		trackers.start(evt.From, evt.To, impact)
	}
	return nil
}
