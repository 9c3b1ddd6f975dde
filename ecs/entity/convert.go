package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/prefabs"
)

func InteractionFromSpec(spec *prefabs.InteractionSpec) (component.Interaction, error) {
	var out component.Interaction
	switch {
	case spec.Kind.Hit != nil:
		h := spec.Kind.Hit
		if err := h.HitLimit.Validate(); err != nil {
			return out, err
		}
		limit := component.Limit(h.HitLimit.Limit)
		if h.HitLimit.Unlimited {
			limit = component.Unlimited
		}
		out.Kind = component.Hit{
			RepeatDelay: h.RepeatDelay,
			HitLimit:    limit,
			HPDamage:    h.HPDamage,
			SPDamage:    h.SPDamage,
			Stun:        h.Stun,
		}
	case spec.Kind.Impact != nil:
		i := spec.Kind.Impact
		out.Kind = component.Impact{
			RepeatDelay: i.RepeatDelay,
			HPDamage:    i.HPDamage,
			SPDamage:    i.SPDamage,
		}
	default:
		return out, fmt.Errorf("interaction has no kind")
	}

	out.Bounds = make([]component.Volume, 0, len(spec.Bounds))
	for i := range spec.Bounds {
		v, err := VolumeFromSpec(spec.Bounds[i])
		if err != nil {
			return out, fmt.Errorf("interaction bound %d: %w", i, err)
		}
		out.Bounds = append(out.Bounds, v)
	}
	out.Multiple = spec.Multiple
	return out, nil
}

func VolumeFromSpec(spec prefabs.VolumeSpec) (component.Volume, error) {
	switch {
	case spec.Box != nil:
		b := spec.Box
		return component.Box{X: b.X, Y: b.Y, Z: b.Z, W: b.W, H: b.H, D: b.D}, nil
	case spec.Cylinder != nil:
		c := spec.Cylinder
		axis, err := parseAxis(c.Axis)
		if err != nil {
			return nil, err
		}
		return component.Cylinder{Axis: axis, Center: c.Center, R: c.R, L: c.L}, nil
	case spec.Sphere != nil:
		s := spec.Sphere
		return component.Sphere{X: s.X, Y: s.Y, Z: s.Z, R: s.R}, nil
	default:
		return nil, fmt.Errorf("volume has no shape")
	}
}

func parseAxis(s string) (component.Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return component.AxisX, nil
	case "y":
		return component.AxisY, nil
	case "z":
		return component.AxisZ, nil
	default:
		return 0, fmt.Errorf("unknown cylinder axis %q", s)
	}
}
