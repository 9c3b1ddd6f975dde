package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// MovementSystem advances transforms by velocity, spends accumulated
// pushback, and keeps stunned actors in place apart from pushback.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

func (s *MovementSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
		if st, ok := ecs.Get(w, e, component.StunComponent.Kind()); ok && st.Ticks > 0 {
			return
		}
		t.X += v.X
		t.Y += v.Y + v.Z
		t.Z += v.Z
	})
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.PushbackComponent.Kind(), func(_ ecs.Entity, t *component.Transform, pb *component.Pushback) {
		t.X += float32(pb.X)
		t.Y += float32(pb.Z)
		t.Z += float32(pb.Z)
		*pb = component.Pushback{}
	})
	return nil
}
