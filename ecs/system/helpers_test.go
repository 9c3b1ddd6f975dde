package system_test

import (
	"io"
	"log"
	"testing"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/ecs/system"
)

var quiet = log.New(io.Discard, "", 0)

// feeder pushes scripted collision events at the start of a tick.
type feeder struct {
	byTick map[uint64][]system.CollisionEvent
}

func (f *feeder) Update(w *ecs.World) error {
	for _, evt := range f.byTick[w.Tick()] {
		ecs.Events[system.CollisionEvent](w).Push(evt)
	}
	return nil
}

// recorder keeps the events of the most recent tick.
type recorder struct {
	collisions []system.CollisionEvent
	contacts   []system.ContactEvent
	hits       []system.HitEvent

	rc *ecs.EventReader[system.CollisionEvent]
	rt *ecs.EventReader[system.ContactEvent]
	rh *ecs.EventReader[system.HitEvent]
}

func (r *recorder) Update(w *ecs.World) error {
	if r.rc == nil {
		r.rc = ecs.Events[system.CollisionEvent](w).Reader()
		r.rt = ecs.Events[system.ContactEvent](w).Reader()
		r.rh = ecs.Events[system.HitEvent](w).Reader()
	}
	r.collisions = append([]system.CollisionEvent(nil), r.rc.Read()...)
	r.contacts = append([]system.ContactEvent(nil), r.rt.Read()...)
	r.hits = append([]system.HitEvent(nil), r.rh.Read()...)
	return nil
}

// resolution runs scripted collisions through filtering and both resolvers.
type resolution struct {
	w     *ecs.World
	feed  *feeder
	rec   *recorder
	sched *ecs.Scheduler
}

func newResolution() *resolution {
	r := &resolution{
		w:    ecs.NewWorld(),
		feed: &feeder{byTick: make(map[uint64][]system.CollisionEvent)},
		rec:  &recorder{},
	}
	r.sched = ecs.NewScheduler(
		r.feed,
		system.NewContactFilterSystem(),
		system.NewHitResolverSystem(),
		system.NewImpactResolverSystem(),
		r.rec,
	)
	return r
}

// step queues events for the next tick and runs it.
func (r *resolution) step(t *testing.T, events ...system.CollisionEvent) {
	t.Helper()
	r.feed.byTick[r.w.Tick()] = events
	if err := r.sched.Update(r.w); err != nil {
		t.Fatalf("tick %d: %v", r.w.Tick(), err)
	}
}

func (r *resolution) actors(n int) []ecs.Entity {
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = ecs.CreateEntity(r.w)
	}
	return out
}

var unitBody = component.Box{X: 0, Y: 0, Z: 0, W: 1, H: 1, D: 1}

func hitInteraction(delay uint32, limit component.HitLimit) component.Interaction {
	return component.Interaction{
		Kind:   component.Hit{RepeatDelay: delay, HitLimit: limit, HPDamage: 5, SPDamage: 1, Stun: 2},
		Bounds: []component.Volume{unitBody},
	}
}

func impactInteraction(delay uint32) component.Interaction {
	return component.Interaction{
		Kind:   component.Impact{RepeatDelay: delay, HPDamage: 1},
		Bounds: []component.Volume{unitBody},
	}
}

func collision(from, to ecs.Entity, in component.Interaction) system.CollisionEvent {
	return system.CollisionEvent{From: from, To: to, Interaction: in, BodyVolume: unitBody}
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add %T to %s: %v", v, e, err)
	}
}
