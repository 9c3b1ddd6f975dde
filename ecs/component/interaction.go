package component

import "fmt"

// HitLimit caps how many targets a Hit interaction may track at once. Build
// one with Limit or Unlimited; Limit(0) admits no new target, so prefab
// loading refuses it.
type HitLimit struct {
	n         uint32
	unlimited bool
}

func Limit(n uint32) HitLimit { return HitLimit{n: n} }

var Unlimited = HitLimit{unlimited: true}

// Max returns the ceiling and whether one applies.
func (l HitLimit) Max() (uint32, bool) {
	if l.unlimited {
		return 0, false
	}
	return l.n, true
}

func (l HitLimit) String() string {
	if l.unlimited {
		return "unlimited"
	}
	return fmt.Sprintf("limit(%d)", l.n)
}

// InteractionKind is either Hit or Impact.
type InteractionKind interface {
	interactionKind()
	// Delay is the repeat cooldown in ticks.
	Delay() uint32
}

// Hit deals discrete damage, at most once per RepeatDelay ticks per target.
type Hit struct {
	RepeatDelay uint32
	HitLimit    HitLimit
	HPDamage    int32
	SPDamage    int32
	Stun        uint32
}

// Impact is a continuous-contact effect tracked for repeat suppression
// without a target ceiling.
type Impact struct {
	RepeatDelay uint32
	HPDamage    int32
	SPDamage    int32
}

func (Hit) interactionKind()    {}
func (Impact) interactionKind() {}

func (h Hit) Delay() uint32    { return h.RepeatDelay }
func (i Impact) Delay() uint32 { return i.RepeatDelay }

// Interaction is the set of attack volumes an actor projects outward.
type Interaction struct {
	Kind   InteractionKind
	Bounds []Volume
	// Multiple is carried from prefab data; nothing in the pipeline reads it yet.
	Multiple bool
}

var InteractionComponent = NewComponent[Interaction]()
