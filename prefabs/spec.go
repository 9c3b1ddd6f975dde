package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ActorSpec is an actor prefab: what it can hit with, where it can be hit,
// and the sprite geometry its volumes are expressed against.
type ActorSpec struct {
	Name        string           `yaml:"name"`
	Sprite      *SpriteSpec      `yaml:"sprite"`
	Health      *HealthSpec      `yaml:"health"`
	Interaction *InteractionSpec `yaml:"interaction"`
	Body        []VolumeSpec     `yaml:"body"`
}

func LoadActorSpec(filename string) (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate checks that an actor which takes part in collision carries the
// sprite geometry its volumes need.
func (s *ActorSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSpec)
	}
	if (s.Interaction != nil || len(s.Body) > 0) && s.Sprite == nil {
		return fmt.Errorf("%w: %s has volumes but no sprite", ErrInvalidSpec, s.Name)
	}
	if s.Interaction != nil && s.Interaction.Kind.Hit == nil && s.Interaction.Kind.Impact == nil {
		return fmt.Errorf("%w: %s interaction has no kind", ErrInvalidSpec, s.Name)
	}
	if s.Interaction != nil && s.Interaction.Kind.Hit != nil {
		if err := s.Interaction.Kind.Hit.HitLimit.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return nil
}

type SpriteSpec struct {
	Sheet  string     `yaml:"sheet"`
	Offset [2]float32 `yaml:"offset"`
	Width  float32    `yaml:"width"`
	Height float32    `yaml:"height"`
}

type HealthSpec struct {
	HP int32 `yaml:"hp"`
	SP int32 `yaml:"sp"`
}

type InteractionSpec struct {
	Kind     InteractionKindSpec `yaml:"kind"`
	Bounds   []VolumeSpec        `yaml:"bounds"`
	Multiple bool                `yaml:"multiple"`
}

// InteractionKindSpec holds exactly one of hit or impact.
type InteractionKindSpec struct {
	Hit    *HitSpec    `yaml:"hit"`
	Impact *ImpactSpec `yaml:"impact"`
}

func (k *InteractionKindSpec) UnmarshalYAML(node *yaml.Node) error {
	type raw InteractionKindSpec
	var r raw
	if err := node.Decode(&r); err != nil {
		return err
	}
	if (r.Hit == nil) == (r.Impact == nil) {
		return fmt.Errorf("%w: line %d: interaction kind needs exactly one of hit, impact", ErrInvalidSpec, node.Line)
	}
	*k = InteractionKindSpec(r)
	return nil
}

type HitSpec struct {
	RepeatDelay uint32       `yaml:"repeat_delay"`
	HitLimit    HitLimitSpec `yaml:"hit_limit"`
	HPDamage    int32        `yaml:"hp_damage"`
	SPDamage    int32        `yaml:"sp_damage"`
	Stun        uint32       `yaml:"stun"`
}

type ImpactSpec struct {
	RepeatDelay uint32 `yaml:"repeat_delay"`
	HPDamage    int32  `yaml:"hp_damage"`
	SPDamage    int32  `yaml:"sp_damage"`
}

// HitLimitSpec is either a positive integer or the word "unlimited". Set
// records that the key was present at all.
type HitLimitSpec struct {
	Limit     uint32
	Unlimited bool
	Set       bool
}

func (h *HitLimitSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: hit_limit must be a scalar", ErrInvalidSpec, node.Line)
	}
	if strings.EqualFold(node.Value, "unlimited") {
		*h = HitLimitSpec{Unlimited: true, Set: true}
		return nil
	}
	var n uint32
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("%w: line %d: hit_limit %q: %v", ErrInvalidSpec, node.Line, node.Value, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: line %d: hit_limit must be positive or \"unlimited\"", ErrInvalidSpec, node.Line)
	}
	*h = HitLimitSpec{Limit: n, Set: true}
	return nil
}

// Validate rejects a missing hit_limit and a zero limit, either of which
// would stop the interaction from ever landing a hit.
func (h HitLimitSpec) Validate() error {
	switch {
	case h.Unlimited:
		return nil
	case !h.Set && h.Limit == 0:
		return fmt.Errorf("%w: hit interaction needs hit_limit", ErrInvalidSpec)
	case h.Limit == 0:
		return fmt.Errorf("%w: hit_limit must be positive or \"unlimited\"", ErrInvalidSpec)
	}
	return nil
}

// VolumeSpec holds exactly one shape.
type VolumeSpec struct {
	Box      *BoxSpec      `yaml:"box"`
	Cylinder *CylinderSpec `yaml:"cylinder"`
	Sphere   *SphereSpec   `yaml:"sphere"`
}

func (v *VolumeSpec) UnmarshalYAML(node *yaml.Node) error {
	type raw VolumeSpec
	var r raw
	if err := node.Decode(&r); err != nil {
		return err
	}
	set := 0
	for _, present := range []bool{r.Box != nil, r.Cylinder != nil, r.Sphere != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: line %d: volume needs exactly one of box, cylinder, sphere", ErrInvalidSpec, node.Line)
	}
	*v = VolumeSpec(r)
	return nil
}

type BoxSpec struct {
	X int32  `yaml:"x"`
	Y int32  `yaml:"y"`
	Z int32  `yaml:"z"`
	W uint32 `yaml:"w"`
	H uint32 `yaml:"h"`
	D uint32 `yaml:"d"`
}

type CylinderSpec struct {
	Axis   string `yaml:"axis"`
	Center int32  `yaml:"center"`
	R      uint32 `yaml:"r"`
	L      uint32 `yaml:"l"`
}

type SphereSpec struct {
	X int32  `yaml:"x"`
	Y int32  `yaml:"y"`
	Z int32  `yaml:"z"`
	R uint32 `yaml:"r"`
}
