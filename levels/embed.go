package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Scenario places prefab actors in a world and runs the combat pipeline over
// them for a number of ticks.
type Scenario struct {
	Name          string  `yaml:"name"`
	Ticks         int     `yaml:"ticks"`
	PushbackSpeed float64 `yaml:"pushback_speed"`
	DamageScript  string  `yaml:"damage_script"`
	Actors        []Actor `yaml:"actors"`
}

type Actor struct {
	Name      string     `yaml:"name"`
	Prefab    string     `yaml:"prefab"`
	Position  [3]float32 `yaml:"position"`
	Velocity  [3]float32 `yaml:"velocity"`
	Mirrored  bool       `yaml:"mirrored"`
	Team      *uint32    `yaml:"team"`
	SpawnedBy string     `yaml:"spawned_by"`
}

// LoadScenario reads a scenario from levels/ on disk, falling back to the
// embedded copy.
func LoadScenario(name string) (*Scenario, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("read scenario: %w", err)
		}
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("unmarshal scenario %s: %w", clean, err)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", clean, err)
	}
	return &sc, nil
}

func (s *Scenario) validate() error {
	names := make(map[string]bool, len(s.Actors))
	for i, a := range s.Actors {
		if a.Name == "" {
			return fmt.Errorf("actor %d has no name", i)
		}
		if names[a.Name] {
			return fmt.Errorf("duplicate actor %q", a.Name)
		}
		if a.Prefab == "" {
			return fmt.Errorf("actor %q has no prefab", a.Name)
		}
		names[a.Name] = true
	}
	for _, a := range s.Actors {
		if a.SpawnedBy != "" && !names[a.SpawnedBy] {
			return fmt.Errorf("actor %q spawned by unknown actor %q", a.Name, a.SpawnedBy)
		}
	}
	return nil
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
