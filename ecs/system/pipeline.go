package system

import "github.com/milk9111/brawler/ecs"

// PipelineOptions configures NewCombatPipeline.
type PipelineOptions struct {
	Geometry      GeometrySource
	Modifier      *DamageModifier
	PushbackSpeed float64
	Debug         bool
}

// NewCombatPipeline returns a scheduler running one full tick: movement,
// collision detection, contact filtering, hit and impact resolution, then
// the damage and impact effects that consume them.
func NewCombatPipeline(opts PipelineOptions) *ecs.Scheduler {
	damage := NewDamageSystem(opts.Modifier)
	damage.Debug = opts.Debug
	return ecs.NewScheduler(
		NewMovementSystem(),
		NewCollisionSystem(opts.Geometry),
		NewContactFilterSystem(),
		NewHitResolverSystem(),
		NewImpactResolverSystem(),
		damage,
		NewImpactEffectSystem(opts.PushbackSpeed),
	)
}
