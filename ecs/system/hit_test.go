package system_test

import (
	"reflect"
	"testing"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/ecs/system"
)

func TestHitResolverFreshPairEmitsOneHit(t *testing.T) {
	r := newResolution()
	a := r.actors(2)
	in := hitInteraction(4, component.Limit(3))
	evt := collision(a[0], a[1], in)

	r.step(t, evt)
	if len(r.rec.hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(r.rec.hits))
	}
	want := system.HitEvent(evt)
	if !reflect.DeepEqual(r.rec.hits[0], want) {
		t.Fatalf("hit = %+v, want %+v", r.rec.hits[0], want)
	}

	r.step(t, evt)
	if len(r.rec.hits) != 0 {
		t.Fatalf("expected no hit while the tracker is running, got %d", len(r.rec.hits))
	}
}

func TestHitResolverCooldown(t *testing.T) {
	const delay = 4

	t.Run("sustained_contact", func(t *testing.T) {
		r := newResolution()
		a := r.actors(2)
		evt := collision(a[0], a[1], hitInteraction(delay, component.Limit(3)))

		var hitTicks []uint64
		for i := 0; i < 10; i++ {
			tick := r.w.Tick()
			r.step(t, evt)
			if len(r.rec.hits) > 0 {
				hitTicks = append(hitTicks, tick)
			}
		}
		if want := []uint64{0, 4, 8}; !reflect.DeepEqual(hitTicks, want) {
			t.Fatalf("hit ticks = %v, want %v", hitTicks, want)
		}
	})

	t.Run("gap_then_overlap", func(t *testing.T) {
		r := newResolution()
		a := r.actors(2)
		evt := collision(a[0], a[1], hitInteraction(delay, component.Limit(3)))

		r.step(t, evt)
		for i := 1; i < delay; i++ {
			r.step(t)
		}
		r.step(t, evt)
		if len(r.rec.hits) != 1 {
			t.Fatalf("expected a new hit after %d ticks, got %d", delay, len(r.rec.hits))
		}
	})

	t.Run("overlap_inside_delay", func(t *testing.T) {
		r := newResolution()
		a := r.actors(2)
		evt := collision(a[0], a[1], hitInteraction(delay, component.Limit(3)))

		r.step(t, evt)
		for i := 1; i < delay-1; i++ {
			r.step(t)
		}
		r.step(t, evt)
		if len(r.rec.hits) != 0 {
			t.Fatalf("expected no hit within %d ticks, got %d", delay, len(r.rec.hits))
		}
	})

	t.Run("zero_delay_hits_every_tick", func(t *testing.T) {
		r := newResolution()
		a := r.actors(2)
		evt := collision(a[0], a[1], hitInteraction(0, component.Limit(1)))
		for i := 0; i < 3; i++ {
			r.step(t, evt)
			if len(r.rec.hits) != 1 {
				t.Fatalf("tick %d: expected 1 hit, got %d", i, len(r.rec.hits))
			}
		}
	})
}

func TestHitResolverLimit(t *testing.T) {
	r := newResolution()
	a := r.actors(5)
	attacker, targets := a[0], a[1:]
	in := hitInteraction(4, component.Limit(3))

	for i := 0; i < 3; i++ {
		r.step(t, collision(attacker, targets[i], in))
		if len(r.rec.hits) != 1 {
			t.Fatalf("target %d: expected hit, got %d", i, len(r.rec.hits))
		}
	}
	trackers := ecs.Resource[system.HitRepeatTracker](r.w)
	if got := trackers.Len(attacker); got != 3 {
		t.Fatalf("expected 3 trackers, got %d", got)
	}

	// Tick 3: all three clocks still running.
	r.step(t, collision(attacker, targets[3], in))
	if len(r.rec.hits) != 0 {
		t.Fatalf("4th target must be rejected while 3 are tracked, got %d hits", len(r.rec.hits))
	}
	if got := trackers.Len(attacker); got != 3 {
		t.Fatalf("rejected target must not be tracked, got %d trackers", got)
	}

	// Tick 4: the first target's clock completes and frees a slot.
	r.step(t, collision(attacker, targets[3], in))
	if len(r.rec.hits) != 1 {
		t.Fatalf("expected 4th target to be admitted once a clock completed, got %d", len(r.rec.hits))
	}
	if _, ok := trackers.Lookup(attacker, targets[0]); ok {
		t.Fatalf("completed tracker should have been dropped")
	}
	if got := trackers.Len(attacker); got > 3 {
		t.Fatalf("tracker list exceeded limit: %d", got)
	}
}

func TestHitResolverUnlimited(t *testing.T) {
	r := newResolution()
	a := r.actors(11)
	attacker := a[0]
	in := hitInteraction(100, component.Unlimited)

	for _, target := range a[1:] {
		r.step(t, collision(attacker, target, in))
		if len(r.rec.hits) != 1 {
			t.Fatalf("target %s: expected hit", target)
		}
	}
	if got := ecs.Resource[system.HitRepeatTracker](r.w).Len(attacker); got != 10 {
		t.Fatalf("expected 10 concurrent trackers, got %d", got)
	}
}

func TestHitResolverSameTickBatchIgnoresLimit(t *testing.T) {
	r := newResolution()
	a := r.actors(3)
	in := hitInteraction(4, component.Limit(1))

	r.step(t, collision(a[0], a[1], in), collision(a[0], a[2], in))
	if len(r.rec.hits) != 2 {
		t.Fatalf("both first contacts of one tick are admitted, got %d", len(r.rec.hits))
	}
	if got := ecs.Resource[system.HitRepeatTracker](r.w).Len(a[0]); got != 2 {
		t.Fatalf("expected 2 trackers after the batch, got %d", got)
	}
}

func TestHitResolverIgnoresImpacts(t *testing.T) {
	r := newResolution()
	a := r.actors(2)

	r.step(t, collision(a[0], a[1], impactInteraction(3)))
	if len(r.rec.contacts) != 1 {
		t.Fatalf("expected impact collision to pass the filter, got %d contacts", len(r.rec.contacts))
	}
	if len(r.rec.hits) != 0 {
		t.Fatalf("impact interactions never produce hits, got %d", len(r.rec.hits))
	}
	if got := ecs.Resource[system.HitRepeatTracker](r.w).Len(a[0]); got != 0 {
		t.Fatalf("impact must not seed hit trackers, got %d", got)
	}
}

func TestHitTrackersDroppedWithActors(t *testing.T) {
	r := newResolution()
	a := r.actors(3)
	in := hitInteraction(10, component.Limit(3))

	r.step(t, collision(a[0], a[1], in), collision(a[2], a[1], in))
	ecs.DestroyEntity(r.w, a[1])
	r.step(t)

	trackers := ecs.Resource[system.HitRepeatTracker](r.w)
	if trackers.Len(a[0]) != 0 || trackers.Len(a[2]) != 0 {
		t.Fatalf("trackers against a destroyed target must be dropped")
	}
}
