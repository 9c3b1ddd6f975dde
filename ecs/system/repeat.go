package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// RepeatTracker is the cooldown of one attacker against one target.
type RepeatTracker struct {
	Target ecs.Entity
	// Clock counts down to zero, once per tick.
	Clock uint32
	Kind  component.InteractionKind
	// Fresh is set on the tick the tracker was inserted.
	Fresh bool
}

// Complete reports whether the cooldown has expired.
func (t RepeatTracker) Complete() bool {
	return t.Clock == 0
}

// repeatTable maps attacker -> trackers against that attacker's targets.
type repeatTable struct {
	byAttacker map[ecs.Entity][]RepeatTracker
}

// Trackers returns the attacker's trackers. The slice must not be modified.
func (t *repeatTable) Trackers(attacker ecs.Entity) []RepeatTracker {
	if t == nil {
		return nil
	}
	return t.byAttacker[attacker]
}

// Attackers returns every attacker with at least one tracker.
func (t *repeatTable) Attackers() []ecs.Entity {
	if t == nil {
		return nil
	}
	out := make([]ecs.Entity, 0, len(t.byAttacker))
	for a := range t.byAttacker {
		out = append(out, a)
	}
	return out
}

// Lookup returns the tracker of attacker against target.
func (t *repeatTable) Lookup(attacker, target ecs.Entity) (RepeatTracker, bool) {
	for _, tr := range t.Trackers(attacker) {
		if tr.Target == target {
			return tr, true
		}
	}
	return RepeatTracker{}, false
}

// Active counts the attacker's trackers whose clock is still running.
func (t *repeatTable) Active(attacker ecs.Entity) int {
	n := 0
	for _, tr := range t.Trackers(attacker) {
		if !tr.Complete() {
			n++
		}
	}
	return n
}

// Len returns the number of trackers held for attacker.
func (t *repeatTable) Len(attacker ecs.Entity) int {
	return len(t.Trackers(attacker))
}

// start inserts a tracker or restarts an existing one.
func (t *repeatTable) start(attacker, target ecs.Entity, kind component.InteractionKind) {
	if t.byAttacker == nil {
		t.byAttacker = make(map[ecs.Entity][]RepeatTracker)
	}
	list := t.byAttacker[attacker]
	for i := range list {
		if list[i].Target == target {
			list[i].Clock = kind.Delay()
			list[i].Kind = kind
			return
		}
	}
	t.byAttacker[attacker] = append(list, RepeatTracker{
		Target: target,
		Clock:  kind.Delay(),
		Kind:   kind,
		Fresh:  true,
	})
}

// tick advances every clock by one tick and drops trackers that have
// completed or whose actors are gone.
func (t *repeatTable) tick(w *ecs.World) {
	for attacker, list := range t.byAttacker {
		if !ecs.IsAlive(w, attacker) {
			delete(t.byAttacker, attacker)
			continue
		}
		kept := list[:0]
		for _, tr := range list {
			if tr.Complete() || !ecs.IsAlive(w, tr.Target) {
				continue
			}
			tr.Clock--
			tr.Fresh = false
			if tr.Complete() {
				continue
			}
			kept = append(kept, tr)
		}
		if len(kept) == 0 {
			delete(t.byAttacker, attacker)
			continue
		}
		t.byAttacker[attacker] = kept
	}
}

// HitRepeatTracker is owned by HitResolverSystem.
type HitRepeatTracker struct {
	repeatTable
}

// ImpactRepeatTracker is owned by ImpactResolverSystem.
type ImpactRepeatTracker struct {
	repeatTable
}
