package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bounce/internal/board"
	"github.com/vovakirdan/tui-bounce/internal/engine"
)

// DefaultScenarioTicks is used when a scenario does not say how long to run.
const DefaultScenarioTicks = 16

// Scenario is a prepared board for headless runs.
type Scenario struct {
	Name   string      `yaml:"name"`
	Config yaml.Node   `yaml:"config"` // Inline overrides of the loaded config
	Blocks []BlockSpec `yaml:"blocks"`
	Walls  []WallSpec  `yaml:"walls"`
	Ticks  int         `yaml:"ticks"`
}

// BlockSpec places one block.
type BlockSpec struct {
	Col int    `yaml:"col"`
	Row int    `yaml:"row"`
	Dir string `yaml:"dir"`
}

// WallSpec toggles one wall side.
type WallSpec struct {
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	Side string `yaml:"side"`
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return s, nil
}

// ParseScenario parses scenario YAML and checks directions and tick count.
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if s.Ticks < 0 {
		return Scenario{}, fmt.Errorf("ticks must not be negative, got %d", s.Ticks)
	}
	if s.Ticks == 0 {
		s.Ticks = DefaultScenarioTicks
	}
	for i, b := range s.Blocks {
		if _, err := engine.ParseDir(b.Dir); err != nil {
			return Scenario{}, fmt.Errorf("block %d: %w", i, err)
		}
	}
	for i, w := range s.Walls {
		if _, err := engine.ParseDir(w.Side); err != nil {
			return Scenario{}, fmt.Errorf("wall %d: %w", i, err)
		}
	}
	return s, nil
}

// Overlay applies the scenario's inline config on top of base.
func (s Scenario) Overlay(base Config) (Config, error) {
	cfg := base
	cfg.Notes = append([]string(nil), base.Notes...)
	if s.Config.Kind == 0 {
		return cfg, nil
	}
	if err := s.Config.Decode(&cfg); err != nil {
		return base, fmt.Errorf("scenario config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("scenario config: %w", err)
	}
	return cfg, nil
}

// Populate places the scenario's walls and blocks on the board and returns
// the cursor to the top-left cell. Listing the same wall twice removes it.
func (s Scenario) Populate(b *board.Board) error {
	for i, w := range s.Walls {
		side, err := engine.ParseDir(w.Side)
		if err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
		if err := b.SetCursor(w.Col, w.Row); err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
		b.ToggleWall(side)
	}
	for i, spec := range s.Blocks {
		dir, err := engine.ParseDir(spec.Dir)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if err := b.SetCursor(spec.Col, spec.Row); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		b.Spawn(dir)
	}
	return b.SetCursor(0, 0)
}
