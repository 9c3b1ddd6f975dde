package system_test

import (
	"testing"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/ecs/system"
)

func TestMovement(t *testing.T) {
	tests := []struct {
		name     string
		velocity component.Velocity
		stun     uint32
		pushback component.Pushback
		want     component.Transform
	}{
		{"velocity", component.Velocity{X: 2, Y: 1}, 0, component.Pushback{}, component.Transform{X: 2, Y: 1}},
		{"depth_lifts_y", component.Velocity{Z: 3}, 0, component.Pushback{}, component.Transform{Y: 3, Z: 3}},
		{"stunned_holds", component.Velocity{X: 2}, 1, component.Pushback{}, component.Transform{}},
		{"pushback_while_stunned", component.Velocity{X: 2}, 1, component.Pushback{X: -1.5}, component.Transform{X: -1.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{})
			mustAdd(t, w, e, component.VelocityComponent.Kind(), &tc.velocity)
			mustAdd(t, w, e, component.StunComponent.Kind(), &component.Stun{Ticks: tc.stun})
			mustAdd(t, w, e, component.PushbackComponent.Kind(), &tc.pushback)

			if err := system.NewMovementSystem().Update(w); err != nil {
				t.Fatal(err)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if *tr != tc.want {
				t.Fatalf("transform = %+v, want %+v", *tr, tc.want)
			}
			pb, _ := ecs.Get(w, e, component.PushbackComponent.Kind())
			if *pb != (component.Pushback{}) {
				t.Fatalf("pushback should be spent, got %+v", *pb)
			}
		})
	}
}
