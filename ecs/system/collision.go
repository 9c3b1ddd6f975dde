package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// CollisionSystem scans every ordered (attacker, target) pair where the
// attacker holds an Interaction and the target a Body, and pushes one
// CollisionEvent per overlapping (bound, body volume) combination. The scan
// is exhaustive and quadratic in actor count.
type CollisionSystem struct {
	Geometry GeometrySource
	Logger   *log.Logger
}

func NewCollisionSystem(geometry GeometrySource) *CollisionSystem {
	if geometry == nil {
		geometry = ComponentGeometry{}
	}
	return &CollisionSystem{Geometry: geometry}
}

type collisionActor struct {
	transform component.Transform
	placement Placement
}

// Update pushes this tick's collision events. A pair whose geometry cannot be
// resolved or tested is skipped and reported in the returned error; events
// from well-formed pairs are still pushed.
func (s *CollisionSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	attackers := ecs.Query(w, component.InteractionComponent.Kind(), component.TransformComponent.Kind())
	targets := ecs.Query(w, component.BodyComponent.Kind(), component.TransformComponent.Kind())
	if len(attackers) == 0 || len(targets) == 0 {
		return nil
	}

	var errs []error
	placed := make(map[ecs.Entity]*collisionActor, len(attackers)+len(targets))
	lookup := func(e ecs.Entity) *collisionActor {
		if a, ok := placed[e]; ok {
			return a
		}
		a, err := s.place(w, e)
		if err != nil {
			errs = append(errs, err)
		}
		placed[e] = a
		return a
	}

	out := ecs.Events[CollisionEvent](w)
	produced := 0
	for _, from := range attackers {
		interaction, _ := ecs.Get(w, from, component.InteractionComponent.Kind())
		if interaction == nil || len(interaction.Bounds) == 0 {
			continue
		}
		for _, to := range targets {
			if to == from {
				continue
			}
			body, _ := ecs.Get(w, to, component.BodyComponent.Kind())
			if body == nil || len(*body) == 0 {
				continue
			}

			attacker := lookup(from)
			target := lookup(to)
			if attacker == nil || target == nil {
				continue
			}

			disp := displacement(attacker.transform, target.transform)
			for _, bound := range interaction.Bounds {
				for _, vol := range *body {
					hit, err := Intersects(bound, attacker.placement, vol, target.placement, disp)
					if err != nil {
						errs = append(errs, fmt.Errorf("collision: %s -> %s: %w", from, to, err))
						continue
					}
					if !hit {
						continue
					}
					out.Push(CollisionEvent{
						From:        from,
						To:          to,
						Interaction: *interaction,
						BodyVolume:  vol,
					})
					produced++
				}
			}
		}
	}

	if produced > 0 {
		s.logger().Printf("collision: tick=%d events=%d", w.Tick(), produced)
	}
	return errors.Join(errs...)
}

func (s *CollisionSystem) place(w *ecs.World, e ecs.Entity) (*collisionActor, error) {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("collision: entity %s: %w", e, component.ErrEntityNotAlive)
	}
	geometry := s.Geometry
	if geometry == nil {
		geometry = ComponentGeometry{}
	}
	g, err := geometry.SpriteGeometry(w, e)
	if err != nil {
		return nil, fmt.Errorf("collision: entity %s: %w", e, err)
	}
	return &collisionActor{
		transform: *transform,
		placement: Placement{Pivot: g.Pivot(), Mirrored: transform.Mirrored},
	}, nil
}

func (s *CollisionSystem) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// displacement is the target's position relative to the attacker with the
// rendering depth lift taken back out of y.
func displacement(from, to component.Transform) [3]float32 {
	dz := to.Z - from.Z
	return [3]float32{
		to.X - from.X,
		(to.Y - from.Y) - dz,
		dz,
	}
}
