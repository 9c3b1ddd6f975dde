package system_test

import (
	"testing"

	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

func TestContactFilterTeams(t *testing.T) {
	team := func(id uint32) *component.Team { return &component.Team{ID: id} }

	tests := []struct {
		name     string
		fromTeam *component.Team
		toTeam   *component.Team
		want     int
	}{
		{"same_team", team(1), team(1), 0},
		{"different_teams", team(1), team(2), 1},
		{"attacker_unteamed", nil, team(1), 1},
		{"target_unteamed", team(1), nil, 1},
		{"both_unteamed", nil, nil, 1},
		{"same_default_team", team(0), team(0), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newResolution()
			a := r.actors(2)
			if tc.fromTeam != nil {
				mustAdd(t, r.w, a[0], component.TeamComponent.Kind(), tc.fromTeam)
			}
			if tc.toTeam != nil {
				mustAdd(t, r.w, a[1], component.TeamComponent.Kind(), tc.toTeam)
			}

			r.step(t, collision(a[0], a[1], hitInteraction(4, component.Limit(3))))
			if len(r.rec.contacts) != tc.want {
				t.Fatalf("expected %d contacts, got %d", tc.want, len(r.rec.contacts))
			}
			if len(r.rec.hits) != tc.want {
				t.Fatalf("expected %d hits, got %d", tc.want, len(r.rec.hits))
			}
		})
	}
}

func TestContactFilterSpawnLineage(t *testing.T) {
	tests := []struct {
		name string
		// parentOf[i] = j means actor i was spawned by actor j.
		parentOf map[int]int
		want     int
	}{
		{"projectile_hits_spawner", map[int]int{0: 1}, 0},
		{"spawner_hits_projectile", map[int]int{1: 0}, 0},
		{"siblings", map[int]int{0: 2, 1: 2}, 1},
		{"unrelated", nil, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newResolution()
			a := r.actors(3)
			// Different teams so only lineage can block.
			mustAdd(t, r.w, a[0], component.TeamComponent.Kind(), &component.Team{ID: 1})
			mustAdd(t, r.w, a[1], component.TeamComponent.Kind(), &component.Team{ID: 2})
			for child, parent := range tc.parentOf {
				mustAdd(t, r.w, a[child], component.SpawnParentComponent.Kind(), &component.SpawnParent{Parent: uint64(a[parent])})
			}

			r.step(t, collision(a[0], a[1], hitInteraction(4, component.Limit(3))))
			if len(r.rec.contacts) != tc.want {
				t.Fatalf("expected %d contacts, got %d", tc.want, len(r.rec.contacts))
			}
		})
	}
}

func TestContactFilterPreservesOrder(t *testing.T) {
	r := newResolution()
	a := r.actors(4)
	mustAdd(t, r.w, a[0], component.TeamComponent.Kind(), &component.Team{ID: 1})
	mustAdd(t, r.w, a[2], component.TeamComponent.Kind(), &component.Team{ID: 1})
	in := hitInteraction(4, component.Unlimited)

	r.step(t,
		collision(a[0], a[3], in),
		collision(a[0], a[2], in), // same team, dropped
		collision(a[0], a[1], in),
		collision(a[3], a[0], in),
	)

	want := [][2]ecs.Entity{{a[0], a[3]}, {a[0], a[1]}, {a[3], a[0]}}
	if len(r.rec.contacts) != len(want) {
		t.Fatalf("expected %d contacts, got %d", len(want), len(r.rec.contacts))
	}
	for i, c := range r.rec.contacts {
		if c.From != want[i][0] || c.To != want[i][1] {
			t.Fatalf("contact %d = %s->%s, want %s->%s", i, c.From, c.To, want[i][0], want[i][1])
		}
	}
}
