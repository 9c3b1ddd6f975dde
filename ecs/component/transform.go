package component

// Transform is an actor's world placement. Y is the on-screen vertical
// position and already includes the Z depth lift applied by rendering, so
// ground-plane height is Y - Z.
type Transform struct {
	X        float32
	Y        float32
	Z        float32
	Mirrored bool
}

var TransformComponent = NewComponent[Transform]()
