package entity

import (
	"context"
	"fmt"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/levels"
	"github.com/milk9111/brawler/prefabs"
)

// Spawn is where and how a prefab instance starts.
type Spawn struct {
	Position [3]float32
	Velocity [3]float32
	Mirrored bool
	Team     *uint32
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, spec *prefabs.ActorSpec, at Spawn) error

// componentBuildOrder is applied in order; each step skips what its prefab
// section leaves out.
var componentBuildOrder = []struct {
	name  string
	build componentBuildFn
}{
	{"transform", addTransform},
	{"velocity", addVelocity},
	{"sprite", addSprite},
	{"team", addTeam},
	{"health", addHealth},
	{"interaction", addInteraction},
	{"body", addBody},
}

// BuildActor creates an entity from an actor prefab.
func BuildActor(w *ecs.World, spec *prefabs.ActorSpec, at Spawn) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build actor: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("build actor: spec is nil")
	}
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("build actor: %w", err)
	}

	e := ecs.CreateEntity(w)
	for _, step := range componentBuildOrder {
		if err := step.build(w, e, spec, at); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build actor %q: %s: %w", spec.Name, step.name, err)
		}
	}
	return e, nil
}

// BuildScenario loads every prefab the scenario uses and spawns its actors.
// Spawn parents are wired after all actors exist. The returned map is keyed
// by actor name.
func BuildScenario(ctx context.Context, w *ecs.World, sc *levels.Scenario) (map[string]ecs.Entity, error) {
	names := make([]string, 0, len(sc.Actors))
	for _, a := range sc.Actors {
		names = append(names, a.Prefab)
	}
	specs, err := prefabs.LoadAll(ctx, names...)
	if err != nil {
		return nil, fmt.Errorf("build scenario %q: %w", sc.Name, err)
	}

	actors := make(map[string]ecs.Entity, len(sc.Actors))
	for _, a := range sc.Actors {
		e, err := BuildActor(w, specs[a.Prefab], Spawn{
			Position: a.Position,
			Velocity: a.Velocity,
			Mirrored: a.Mirrored,
			Team:     a.Team,
		})
		if err != nil {
			return nil, fmt.Errorf("build scenario %q: actor %q: %w", sc.Name, a.Name, err)
		}
		actors[a.Name] = e
	}

	for _, a := range sc.Actors {
		if a.SpawnedBy == "" {
			continue
		}
		parent := &component.SpawnParent{Parent: uint64(actors[a.SpawnedBy])}
		if err := ecs.Add(w, actors[a.Name], component.SpawnParentComponent.Kind(), parent); err != nil {
			return nil, fmt.Errorf("build scenario %q: spawn parent of %q: %w", sc.Name, a.Name, err)
		}
	}
	return actors, nil
}

func addTransform(w *ecs.World, e ecs.Entity, _ *prefabs.ActorSpec, at Spawn) error {
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        at.Position[0],
		Y:        at.Position[1] + at.Position[2],
		Z:        at.Position[2],
		Mirrored: at.Mirrored,
	})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ *prefabs.ActorSpec, at Spawn) error {
	if at.Velocity == [3]float32{} {
		return nil
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{
		X: at.Velocity[0],
		Y: at.Velocity[1],
		Z: at.Velocity[2],
	})
}

func addSprite(w *ecs.World, e ecs.Entity, spec *prefabs.ActorSpec, _ Spawn) error {
	if spec.Sprite == nil {
		return nil
	}
	return ecs.Add(w, e, component.SpriteGeometryComponent.Kind(), &component.SpriteGeometry{
		Sheet:  spec.Sprite.Sheet,
		Offset: spec.Sprite.Offset,
		Width:  spec.Sprite.Width,
		Height: spec.Sprite.Height,
	})
}

func addTeam(w *ecs.World, e ecs.Entity, _ *prefabs.ActorSpec, at Spawn) error {
	if at.Team == nil {
		return nil
	}
	return ecs.Add(w, e, component.TeamComponent.Kind(), &component.Team{ID: *at.Team})
}

func addHealth(w *ecs.World, e ecs.Entity, spec *prefabs.ActorSpec, _ Spawn) error {
	if spec.Health == nil {
		return nil
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{
		HP:    spec.Health.HP,
		SP:    spec.Health.SP,
		MaxHP: spec.Health.HP,
		MaxSP: spec.Health.SP,
	})
}

func addInteraction(w *ecs.World, e ecs.Entity, spec *prefabs.ActorSpec, _ Spawn) error {
	if spec.Interaction == nil {
		return nil
	}
	interaction, err := InteractionFromSpec(spec.Interaction)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.InteractionComponent.Kind(), &interaction)
}

func addBody(w *ecs.World, e ecs.Entity, spec *prefabs.ActorSpec, _ Spawn) error {
	if len(spec.Body) == 0 {
		return nil
	}
	body := make(component.Body, 0, len(spec.Body))
	for i := range spec.Body {
		v, err := VolumeFromSpec(spec.Body[i])
		if err != nil {
			return fmt.Errorf("body volume %d: %w", i, err)
		}
		body = append(body, v)
	}
	return ecs.Add(w, e, component.BodyComponent.Kind(), &body)
}
