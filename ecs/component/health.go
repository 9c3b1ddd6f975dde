package component

// Health holds hit points and skill points. Neither drops below zero.
type Health struct {
	HP    int32
	SP    int32
	MaxHP int32
	MaxSP int32
}

func (h *Health) Alive() bool {
	return h != nil && h.HP > 0
}

var HealthComponent = NewComponent[Health]()

// Stun counts down the ticks an actor stays stunned.
type Stun struct {
	Ticks uint32
}

var StunComponent = NewComponent[Stun]()

// Pushback is a horizontal displacement accumulated from impacts, consumed
// by movement.
type Pushback struct {
	X float64
	Z float64
}

var PushbackComponent = NewComponent[Pushback]()

// Velocity is a per-tick displacement.
type Velocity struct {
	X, Y, Z float32
}

var VelocityComponent = NewComponent[Velocity]()
