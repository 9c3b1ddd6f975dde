package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// ImpactEffectSystem consumes trackers the ImpactResolverSystem inserted this
// tick. Each one deals the impact's damage once and pushes the target away
// from the attacker on the ground plane.
type ImpactEffectSystem struct {
	// PushbackSpeed is the displacement added per impact.
	PushbackSpeed float64
}

func NewImpactEffectSystem(pushbackSpeed float64) *ImpactEffectSystem {
	return &ImpactEffectSystem{PushbackSpeed: pushbackSpeed}
}

func (s *ImpactEffectSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}
	trackers := ecs.Resource[ImpactRepeatTracker](w)
	for _, attacker := range trackers.Attackers() {
		for _, tr := range trackers.Trackers(attacker) {
			if !tr.Fresh {
				continue
			}
			impact, ok := tr.Kind.(component.Impact)
			if !ok {
				continue
			}
			applyDamage(w, tr.Target, impact.HPDamage, impact.SPDamage)
			if err := s.push(w, attacker, tr.Target); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ImpactEffectSystem) push(w *ecs.World, attacker, target ecs.Entity) error {
	if s.PushbackSpeed == 0 {
		return nil
	}
	from, ok := ecs.Get(w, attacker, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	to, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return nil
	}

	dir := cp.Vector{X: float64(to.X - from.X), Y: float64(to.Z - from.Z)}
	if dir.LengthSq() == 0 {
		// Stacked on top of each other: push the way the attacker faces.
		dir = cp.Vector{X: 1}
		if from.Mirrored {
			dir.X = -1
		}
	}
	v := dir.Normalize().Mult(s.PushbackSpeed)

	pb, ok := ecs.Get(w, target, component.PushbackComponent.Kind())
	if !ok {
		pb = &component.Pushback{}
		if err := ecs.Add(w, target, component.PushbackComponent.Kind(), pb); err != nil {
			return err
		}
	}
	pb.X += v.X
	pb.Z += v.Y
	return nil
}
