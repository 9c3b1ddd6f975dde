package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// DamageSystem applies HitEvents to their targets: hp and sp damage against
// Health and stun against Stun. Stun counts down once per tick.
type DamageSystem struct {
	Modifier *DamageModifier
	Debug    bool

	hits *ecs.EventReader[HitEvent]
}

func NewDamageSystem(modifier *DamageModifier) *DamageSystem {
	return &DamageSystem{Modifier: modifier}
}

func (s *DamageSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}
	if s.hits == nil {
		s.hits = ecs.Events[HitEvent](w).Reader()
	}

	ecs.ForEach(w, component.StunComponent.Kind(), func(_ ecs.Entity, st *component.Stun) {
		if st.Ticks > 0 {
			st.Ticks--
		}
	})

	for _, evt := range s.hits.Read() {
		hit, ok := evt.Interaction.Kind.(component.Hit)
		if !ok {
			continue
		}
		amount := DamageAmount{HP: hit.HPDamage, SP: hit.SPDamage, Stun: hit.Stun}
		if s.Modifier != nil {
			var targetHP int32
			if h, ok := ecs.Get(w, evt.To, component.HealthComponent.Kind()); ok {
				targetHP = h.HP
			}
			modified, err := s.Modifier.Apply(evt.From, evt.To, targetHP, amount)
			if err != nil {
				return fmt.Errorf("damage: %s -> %s: %w", evt.From, evt.To, err)
			}
			amount = modified
		}
		applyDamage(w, evt.To, amount.HP, amount.SP)
		if amount.Stun > 0 {
			st, ok := ecs.Get(w, evt.To, component.StunComponent.Kind())
			if !ok {
				st = &component.Stun{}
				if err := ecs.Add(w, evt.To, component.StunComponent.Kind(), st); err != nil {
					return fmt.Errorf("damage: stun %s: %w", evt.To, err)
				}
			}
			st.Ticks = max(st.Ticks, amount.Stun)
		}
		if s.Debug {
			log.Printf("damage: tick=%d attacker=%s target=%s hp=%d sp=%d stun=%d", w.Tick(), evt.From, evt.To, amount.HP, amount.SP, amount.Stun)
		}
	}
	return nil
}

func applyDamage(w *ecs.World, target ecs.Entity, hp, sp int32) {
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return
	}
	h.HP = drain(h.HP, h.MaxHP, hp)
	h.SP = drain(h.SP, h.MaxSP, sp)
}

// drain subtracts dmg from cur, keeping the result within [0, maxv]. A
// negative dmg heals but never past maxv, or past cur if cur already
// exceeds it.
func drain(cur, maxv, dmg int32) int32 {
	next := int64(cur) - int64(dmg)
	ceiling := int64(max(maxv, cur))
	return int32(min(max(next, 0), ceiling))
}

func clampInt32(v int64) int32 {
	return int32(min(max(v, math.MinInt32), math.MaxInt32))
}

// DamageAmount is what a single hit deals.
type DamageAmount struct {
	HP   int32
	SP   int32
	Stun uint32
}

// DamageModifier runs a tengo script over every hit. The script sees the
// integers hp, sp, stun, attacker, target and target_hp and may reassign
// hp, sp and stun.
type DamageModifier struct {
	compiled *tengo.Compiled
}

func NewDamageModifier(src []byte) (*DamageModifier, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, name := range []string{"hp", "sp", "stun", "attacker", "target", "target_hp"} {
		if err := script.Add(name, 0); err != nil {
			return nil, fmt.Errorf("damage script: add %s: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("damage script: compile: %w", err)
	}
	return &DamageModifier{compiled: compiled}, nil
}

func (m *DamageModifier) Apply(from, to ecs.Entity, targetHP int32, in DamageAmount) (DamageAmount, error) {
	c := m.compiled
	vars := map[string]any{
		"hp":        int(in.HP),
		"sp":        int(in.SP),
		"stun":      int(in.Stun),
		"attacker":  int(from.ID()),
		"target":    int(to.ID()),
		"target_hp": int(targetHP),
	}
	for name, v := range vars {
		if err := c.Set(name, v); err != nil {
			return in, fmt.Errorf("damage script: set %s: %w", name, err)
		}
	}
	if err := c.Run(); err != nil {
		return in, fmt.Errorf("damage script: run: %w", err)
	}
	return DamageAmount{
		HP:   clampInt32(c.Get("hp").Int64()),
		SP:   clampInt32(c.Get("sp").Int64()),
		Stun: uint32(min(max(c.Get("stun").Int64(), 0), math.MaxUint32)),
	}, nil
}
