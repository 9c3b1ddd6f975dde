package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/ecs/entity"
	"github.com/milk9111/brawler/ecs/system"
	"github.com/milk9111/brawler/levels"
	"github.com/milk9111/brawler/prefabs"
)

type runOptions struct {
	Scenario     string
	Ticks        int
	Debug        bool
	DamageScript string
}

// tally counts the events each tick produces. It runs as the scheduler's
// last system so it sees the tick's logs before they are cleared.
type tally struct {
	out        io.Writer
	names      map[ecs.Entity]string
	collisions *ecs.EventReader[system.CollisionEvent]
	contacts   *ecs.EventReader[system.ContactEvent]
	hits       *ecs.EventReader[system.HitEvent]
}

func (t *tally) Update(w *ecs.World) error {
	if t.collisions == nil {
		t.collisions = ecs.Events[system.CollisionEvent](w).Reader()
		t.contacts = ecs.Events[system.ContactEvent](w).Reader()
		t.hits = ecs.Events[system.HitEvent](w).Reader()
	}
	collisions := len(t.collisions.Read())
	contacts := len(t.contacts.Read())
	hits := t.hits.Read()
	if collisions == 0 && len(hits) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(t.out, "tick %3d: collisions=%d contacts=%d hits=%d\n", w.Tick(), collisions, contacts, len(hits))
	if err != nil {
		return err
	}
	for _, h := range hits {
		if _, err := fmt.Fprintf(t.out, "  %s hit %s (%s)\n", t.names[h.From], t.names[h.To], h.BodyVolume); err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, opts runOptions, out io.Writer) error {
	sc, err := levels.LoadScenario(opts.Scenario)
	if err != nil {
		return err
	}

	var modifier *system.DamageModifier
	script := sc.DamageScript
	if opts.DamageScript != "" {
		script = opts.DamageScript
	}
	if script != "" {
		src, err := prefabs.LoadScript(script)
		if err != nil {
			return fmt.Errorf("load damage script %s: %w", script, err)
		}
		modifier, err = system.NewDamageModifier(src)
		if err != nil {
			return err
		}
	}

	w := ecs.NewWorld()
	actors, err := entity.BuildScenario(ctx, w, sc)
	if err != nil {
		return err
	}
	names := make(map[ecs.Entity]string, len(actors))
	for name, e := range actors {
		names[e] = name
	}

	pipeline := system.NewCombatPipeline(system.PipelineOptions{
		Modifier:      modifier,
		PushbackSpeed: sc.PushbackSpeed,
		Debug:         opts.Debug,
	})
	pipeline.Add(&tally{out: out, names: names})

	ticks := sc.Ticks
	if opts.Ticks > 0 {
		ticks = opts.Ticks
	}
	fmt.Fprintf(out, "scenario %s: %d actors, %d ticks\n", sc.Name, len(actors), ticks)
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pipeline.Update(w); err != nil {
			return err
		}
	}

	return summarize(w, actors, out)
}

func summarize(w *ecs.World, actors map[string]ecs.Entity, out io.Writer) error {
	names := make([]string, 0, len(actors))
	for name := range actors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		h, ok := ecs.Get(w, actors[name], component.HealthComponent.Kind())
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(out, "%-12s hp=%d/%d sp=%d/%d\n", name, h.HP, h.MaxHP, h.SP, h.MaxSP); err != nil {
			return err
		}
	}
	return nil
}
