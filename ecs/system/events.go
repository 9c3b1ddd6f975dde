package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// CollisionEvent is a raw geometric overlap between one interaction bound of
// From and one body volume of To.
type CollisionEvent struct {
	From        ecs.Entity
	To          ecs.Entity
	Interaction component.Interaction
	BodyVolume  component.Volume
}

// ContactEvent is a collision that passed team and spawn-lineage filtering.
type ContactEvent struct {
	From        ecs.Entity
	To          ecs.Entity
	Interaction component.Interaction
	BodyVolume  component.Volume
}

// HitEvent is a contact that passed cooldown and hit-limit admission.
type HitEvent struct {
	From        ecs.Entity
	To          ecs.Entity
	Interaction component.Interaction
	BodyVolume  component.Volume
}
