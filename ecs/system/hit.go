package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// HitResolverSystem turns contacts of Hit interactions into HitEvents,
// enforcing the per-target repeat cooldown and the attacker's hit limit. It
// owns the world's HitRepeatTracker.
//
// Every contact of a tick is judged against the tracker table as it stood
// at the start of the tick; trackers for accepted hits are recorded only
// after the whole batch. Several first contacts landing in the same tick can
// therefore all be admitted even if that takes the attacker past its limit.
type HitResolverSystem struct {
	contacts *ecs.EventReader[ContactEvent]
}

func NewHitResolverSystem() *HitResolverSystem {
	return &HitResolverSystem{}
}

func (s *HitResolverSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}
	if s.contacts == nil {
		s.contacts = ecs.Events[ContactEvent](w).Reader()
	}

	trackers := ecs.Resource[HitRepeatTracker](w)
	trackers.tick(w)

	out := ecs.Events[HitEvent](w)
	var accepted []HitEvent
	for _, evt := range s.contacts.Read() {
		hit, ok := evt.Interaction.Kind.(component.Hit)
		if !ok {
			continue
		}
		if !admitHit(trackers, evt.From, evt.To, hit) {
			continue
		}
		h := HitEvent(evt)
		out.Push(h)
		accepted = append(accepted, h)
	}

	for _, h := range accepted {
		trackers.start(h.From, h.To, h.Interaction.Kind)
	}
	return nil
}

func admitHit(trackers *HitRepeatTracker, from, to ecs.Entity, hit component.Hit) bool {
	if tr, ok := trackers.Lookup(from, to); ok && !tr.Complete() {
		return false
	}
	if limit, ok := hit.HitLimit.Max(); ok && uint32(trackers.Active(from)) >= limit {
		return false
	}
	return true
}
