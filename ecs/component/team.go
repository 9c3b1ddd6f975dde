package component

type Team struct {
	ID uint32
}

var TeamComponent = NewComponent[Team]()

// SpawnParent records the actor that spawned this one, e.g. a projectile's
// thrower. It is a relation, not ownership.
type SpawnParent struct {
	Parent uint64
}

var SpawnParentComponent = NewComponent[SpawnParent]()
