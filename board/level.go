// Package board implements the zoom board core: the level table, the
// reference object registry, the description panel index, and the
// transition engine that turns a stream of submitted numbers into slide
// and jump transitions between magnitude levels.
//
// The package is pure logic. Everything visual or audible is reached
// through the small collaborator interfaces in scene.go, so the engine
// can be driven tick by tick in tests with hand-rolled fakes.
package board

import (
	"iter"
	"math"

	"github.com/milk9111/zoomboard/common"
)

// NotVisualizable returns the sentinel submitted for values that have no
// magnitude to show (empty input, evaluation errors). It classifies to
// level -1.
func NotVisualizable() float64 {
	return math.NaN()
}

// RefObjConfig describes one reference object candidate: where it sits on
// the board when shown at its level, and the off-board anchor it slides
// to or from during a neighbor transition.
type RefObjConfig struct {
	Name        string
	Position    common.Vec2
	Scale       float64
	Vanishing   common.Vec2
	Description string
}

// LevelDef is one magnitude bucket of the board. A number x belongs to
// the level whose [Lower, Upper) range contains |x|.
type LevelDef struct {
	Index             int
	Lower             float64
	Upper             float64
	ScalePerLargeUnit float64
	NavLevel          float64
	Label             string

	// Left is nil for the lowest level. For any other level it must be
	// name-parallel to the previous level's Right list; the loader in
	// the prefabs package enforces this before a table is built.
	Left  []RefObjConfig
	Right []RefObjConfig
}

// LevelTable is the immutable ordered list of level definitions. Range
// contiguity and candidate continuity are the loader's responsibility;
// the table does not re-validate at runtime.
type LevelTable struct {
	levels []LevelDef
	minNav float64
	maxNav float64
}

// NewLevelTable wraps an ordered level list. The slice is not copied;
// callers hand ownership over and must not mutate it afterwards.
func NewLevelTable(levels []LevelDef) *LevelTable {
	t := &LevelTable{levels: levels}
	for i := range levels {
		levels[i].Index = i
		nav := levels[i].NavLevel
		if i == 0 || nav < t.minNav {
			t.minNav = nav
		}
		if i == 0 || nav > t.maxNav {
			t.maxNav = nav
		}
	}
	return t
}

func (t *LevelTable) Len() int {
	return len(t.levels)
}

// Level returns the definition at index i.
func (t *LevelTable) Level(i int) LevelDef {
	return t.levels[i]
}

// MapNumberToLevel classifies x by magnitude. It returns the index of
// the level whose [Lower, Upper) range contains |x|, or -1 for the
// non-visualizable sentinel, infinities, and values outside every range.
func (t *LevelTable) MapNumberToLevel(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return -1
	}
	m := math.Abs(x)
	for i := range t.levels {
		if m >= t.levels[i].Lower && m < t.levels[i].Upper {
			return i
		}
	}
	return -1
}

// LeftAndRightCandidates yields the level's left candidates followed by
// its right candidates. The sequence is finite and restartable.
func (t *LevelTable) LeftAndRightCandidates(level int) iter.Seq[RefObjConfig] {
	return func(yield func(RefObjConfig) bool) {
		if level < 0 || level >= len(t.levels) {
			return
		}
		def := t.levels[level]
		for _, c := range def.Left {
			if !yield(c) {
				return
			}
		}
		for _, c := range def.Right {
			if !yield(c) {
				return
			}
		}
	}
}

// NavOffset maps a nav level to a horizontal background offset in
// [0, 1), proportional within the table's nav range and wrapping past
// 1.0 back to 0.
func (t *LevelTable) NavOffset(nav float64) float64 {
	span := t.maxNav - t.minNav
	if span <= 0 {
		return 0
	}
	u := math.Mod((nav-t.minNav)/span, 1)
	if u < 0 {
		u += 1
	}
	return u
}
