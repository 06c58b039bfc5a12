package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/zoomboard/board"
	"github.com/milk9111/zoomboard/common"
)

// BoardFile is the yaml file the board spec lives in.
const BoardFile = "board.yaml"

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RefObjSpec struct {
	Name        string   `yaml:"name"`
	Position    Vec2Spec `yaml:"position"`
	Scale       float64  `yaml:"scale"`
	Vanishing   Vec2Spec `yaml:"vanishing"`
	Description string   `yaml:"description"`
}

type LevelSpec struct {
	Label             string       `yaml:"label"`
	Lower             float64      `yaml:"lower"`
	Upper             float64      `yaml:"upper"`
	ScalePerLargeUnit float64      `yaml:"scale_per_large_unit"`
	NavLevel          float64      `yaml:"nav_level"`
	Left              []RefObjSpec `yaml:"left"`
	Right             []RefObjSpec `yaml:"right"`
}

// BoardSpec is the whole declarative board description: the ordered
// level table plus animation pacing.
type BoardSpec struct {
	SlideSteps int         `yaml:"slide_steps"`
	Levels     []LevelSpec `yaml:"levels"`
}

// LoadSpec reads and unmarshals one yaml spec, preferring a disk copy
// over the embedded one.
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

// LoadBoardSpec loads and validates board.yaml. The validation here is
// the only gate: the board package trusts its table completely, so
// every inconsistency must die here, before an engine exists.
func LoadBoardSpec() (*BoardSpec, error) {
	spec, err := LoadSpec[BoardSpec](BoardFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", BoardFile, err)
	}
	return &spec, nil
}

// Validate checks ordering, contiguity, and the candidate continuity
// rule (a level's left list must mirror the previous level's right list
// name for name).
func (s *BoardSpec) Validate() error {
	if len(s.Levels) == 0 {
		return fmt.Errorf("no levels defined")
	}
	if s.SlideSteps < 0 {
		return fmt.Errorf("slide_steps must not be negative")
	}
	for i, lvl := range s.Levels {
		if lvl.Upper <= lvl.Lower {
			return fmt.Errorf("level %d: upper %v must exceed lower %v", i, lvl.Upper, lvl.Lower)
		}
		if i > 0 && lvl.Lower != s.Levels[i-1].Upper {
			return fmt.Errorf("level %d: lower %v leaves a gap after %v", i, lvl.Lower, s.Levels[i-1].Upper)
		}
		if lvl.ScalePerLargeUnit <= 0 {
			return fmt.Errorf("level %d: scale_per_large_unit must be positive", i)
		}
		if len(lvl.Right) == 0 {
			return fmt.Errorf("level %d: needs at least one right candidate", i)
		}
		if i == 0 && len(lvl.Left) > 0 {
			return fmt.Errorf("level 0: the lowest level has no left candidates")
		}
		if i > 0 {
			prev := s.Levels[i-1].Right
			if len(lvl.Left) != len(prev) {
				return fmt.Errorf("level %d: left list has %d entries, previous right list has %d", i, len(lvl.Left), len(prev))
			}
			for j := range lvl.Left {
				if lvl.Left[j].Name != prev[j].Name {
					return fmt.Errorf("level %d: left[%d] is %q, previous right[%d] is %q", i, j, lvl.Left[j].Name, j, prev[j].Name)
				}
			}
		}
		if err := validateCandidates(i, "left", lvl.Left); err != nil {
			return err
		}
		if err := validateCandidates(i, "right", lvl.Right); err != nil {
			return err
		}
	}
	return nil
}

func validateCandidates(level int, side string, objs []RefObjSpec) error {
	seen := make(map[string]bool, len(objs))
	for _, o := range objs {
		if o.Name == "" {
			return fmt.Errorf("level %d: %s candidate with empty name", level, side)
		}
		if seen[o.Name] {
			return fmt.Errorf("level %d: duplicate %s candidate %q", level, side, o.Name)
		}
		seen[o.Name] = true
		if o.Scale <= 0 {
			return fmt.Errorf("level %d: %s candidate %q needs a positive scale", level, side, o.Name)
		}
	}
	return nil
}

// Table converts a validated spec into the board's level table.
func (s *BoardSpec) Table() *board.LevelTable {
	levels := make([]board.LevelDef, len(s.Levels))
	for i, lvl := range s.Levels {
		levels[i] = board.LevelDef{
			Lower:             lvl.Lower,
			Upper:             lvl.Upper,
			ScalePerLargeUnit: lvl.ScalePerLargeUnit,
			NavLevel:          lvl.NavLevel,
			Label:             lvl.Label,
			Left:              refObjConfigs(lvl.Left),
			Right:             refObjConfigs(lvl.Right),
		}
	}
	return board.NewLevelTable(levels)
}

// RefObjNames returns the union of every candidate name across every
// level, in first-appearance order.
func (s *BoardSpec) RefObjNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, lvl := range s.Levels {
		for _, o := range append(append([]RefObjSpec{}, lvl.Left...), lvl.Right...) {
			if seen[o.Name] {
				continue
			}
			seen[o.Name] = true
			names = append(names, o.Name)
		}
	}
	return names
}

func refObjConfigs(objs []RefObjSpec) []board.RefObjConfig {
	if len(objs) == 0 {
		return nil
	}
	out := make([]board.RefObjConfig, len(objs))
	for i, o := range objs {
		out[i] = board.RefObjConfig{
			Name:        o.Name,
			Position:    common.Vec2{X: o.Position.X, Y: o.Position.Y},
			Scale:       o.Scale,
			Vanishing:   common.Vec2{X: o.Vanishing.X, Y: o.Vanishing.Y},
			Description: o.Description,
		}
	}
	return out
}
