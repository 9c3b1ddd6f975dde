package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

//go:generate go tool mockgen -destination=./mocks/geometry_mock.go -package=mocks . GeometrySource

var ErrMissingGeometry = errors.New("system: missing sprite geometry")

// GeometrySource resolves the current sprite frame geometry of an actor.
type GeometrySource interface {
	SpriteGeometry(w *ecs.World, e ecs.Entity) (component.SpriteGeometry, error)
}

// ComponentGeometry reads SpriteGeometryComponent straight off the entity.
type ComponentGeometry struct{}

func (ComponentGeometry) SpriteGeometry(w *ecs.World, e ecs.Entity) (component.SpriteGeometry, error) {
	g, ok := ecs.Get(w, e, component.SpriteGeometryComponent.Kind())
	if !ok {
		return component.SpriteGeometry{}, fmt.Errorf("%w: entity %s", ErrMissingGeometry, e)
	}
	return *g, nil
}
