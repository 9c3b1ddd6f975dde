package ecs

import "github.com/milk9111/brawler/ecs/component"

// Kind is satisfied by every component.ComponentKind.
type Kind interface {
	ID() component.ComponentID
}

// Query returns the entities present in every given storage, ordered by the
// first kind's storage.
func Query(w *World, kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.components[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}
	base := stores[0].entities()
	out := make([]Entity, 0, len(base))
	for _, e := range base {
		match := true
		for _, s := range stores[1:] {
			if !s.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}
