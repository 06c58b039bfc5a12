package board

import (
	"fmt"
	"testing"

	"github.com/milk9111/zoomboard/common"
)

type fakeNode struct {
	pos     common.Vec2
	scale   float64
	visible bool
}

func (n *fakeNode) LocalPosition() common.Vec2     { return n.pos }
func (n *fakeNode) SetLocalPosition(p common.Vec2) { n.pos = p }
func (n *fakeNode) LocalScale() float64            { return n.scale }
func (n *fakeNode) SetLocalScale(s float64)        { n.scale = s }
func (n *fakeNode) Visible() bool                  { return n.visible }
func (n *fakeNode) SetVisible(v bool)              { n.visible = v }

type fakeScene struct {
	nodes map[string]Handle
}

// newFakeScene registers a container/inner pair for every candidate of
// every level.
func newFakeScene(table *LevelTable) *fakeScene {
	s := &fakeScene{nodes: map[string]Handle{}}
	for level := 0; level < table.Len(); level++ {
		for cfg := range table.LeftAndRightCandidates(level) {
			if _, ok := s.nodes[cfg.Name]; ok {
				continue
			}
			s.nodes[cfg.Name] = Handle{Container: &fakeNode{}, Inner: &fakeNode{}}
		}
	}
	return s
}

func (s *fakeScene) Node(name string) (Handle, bool) {
	h, ok := s.nodes[name]
	return h, ok
}

func (s *fakeScene) container(t *testing.T, name string) *fakeNode {
	t.Helper()
	h, ok := s.nodes[name]
	if !ok {
		t.Fatalf("fake scene has no node %q", name)
	}
	return h.Container.(*fakeNode)
}

type fakePanels struct {
	nodes map[string]*fakeNode
}

func (p *fakePanels) Panel(name string) (Node, bool) {
	n, ok := p.nodes[name]
	if !ok {
		return nil, false
	}
	return n, true
}

type fakeAudio struct {
	cues []Cue
}

func (a *fakeAudio) Play(c Cue) { a.cues = append(a.cues, c) }

// fakeRand replays a script of values and counts calls; it returns 0
// once the script runs out.
type fakeRand struct {
	script []int
	calls  int
}

func (r *fakeRand) Intn(n int) int {
	v := 0
	if r.calls < len(r.script) {
		v = r.script[r.calls] % n
	}
	r.calls++
	return v
}

type indicatorCall struct {
	value float64
	max   float64
}

type fakeIndicator struct {
	visible bool
	shows   []indicatorCall
	hides   int
}

func (i *fakeIndicator) Show(value, max float64) {
	i.visible = true
	i.shows = append(i.shows, indicatorCall{value: value, max: max})
}

func (i *fakeIndicator) Hide() {
	i.visible = false
	i.hides++
}

type fakeChrome struct {
	skin       bool
	mask       bool
	navVisible bool
	navLevel   float64
	navLabel   string
	navScale   float64
	offsets    []float64
}

func (c *fakeChrome) SetSkin(on bool)              { c.skin = on }
func (c *fakeChrome) SetLightingMask(visible bool) { c.mask = visible }
func (c *fakeChrome) SetNavVisible(visible bool)   { c.navVisible = visible }
func (c *fakeChrome) SetNav(navLevel float64, label string, scalePerUnit float64) {
	c.navLevel = navLevel
	c.navLabel = label
	c.navScale = scalePerUnit
}
func (c *fakeChrome) ScrollBackground(offset float64) { c.offsets = append(c.offsets, offset) }

// chainTable builds n decade levels with one candidate per list:
// level i covers [10^i, 10^(i+1)) and carries obj<i> on the right,
// obj<i-1> on the left. Level 0 covers [0, 10).
func chainTable(n int) *LevelTable {
	levels := make([]LevelDef, n)
	upper := 10.0
	lower := 0.0
	for i := 0; i < n; i++ {
		levels[i] = LevelDef{
			Lower:             lower,
			Upper:             upper,
			ScalePerLargeUnit: upper / 10,
			NavLevel:          float64(i),
			Label:             fmt.Sprintf("1e%d", i),
			Right:             []RefObjConfig{chainObj(i, i)},
		}
		if i > 0 {
			levels[i].Left = []RefObjConfig{chainObj(i-1, i)}
		}
		lower = upper
		upper *= 10
	}
	return NewLevelTable(levels)
}

// chainObj is obj<id> as configured for a given level; the transform
// varies by level so slides between levels have distinct keyframes.
func chainObj(id, level int) RefObjConfig {
	return RefObjConfig{
		Name:      fmt.Sprintf("obj%d", id),
		Position:  common.Vec2{X: float64(100*id + level), Y: float64(10 * level)},
		Scale:     1 + float64(level)/10,
		Vanishing: common.Vec2{X: -500, Y: float64(10 * level)},
	}
}

// branchTable is a 4-level table with multi-candidate lists, used for
// the randomized assignment tests.
func branchTable() *LevelTable {
	obj := func(name string, level int) RefObjConfig {
		return RefObjConfig{
			Name:      name,
			Position:  common.Vec2{X: float64(50 * level), Y: 20},
			Scale:     1,
			Vanishing: common.Vec2{X: 900, Y: 20},
		}
	}
	return NewLevelTable([]LevelDef{
		{
			Lower: 0, Upper: 10, ScalePerLargeUnit: 1, NavLevel: 0, Label: "1",
			Right: []RefObjConfig{obj("ant", 0)},
		},
		{
			Lower: 10, Upper: 100, ScalePerLargeUnit: 10, NavLevel: 1, Label: "10",
			Left:  []RefObjConfig{obj("ant", 1)},
			Right: []RefObjConfig{obj("mouse", 1), obj("sparrow", 1)},
		},
		{
			Lower: 100, Upper: 1000, ScalePerLargeUnit: 100, NavLevel: 2, Label: "100",
			Left:  []RefObjConfig{obj("mouse", 2), obj("sparrow", 2)},
			Right: []RefObjConfig{obj("dog", 2), obj("goat", 2)},
		},
		{
			Lower: 1000, Upper: 10000, ScalePerLargeUnit: 1000, NavLevel: 3, Label: "1000",
			Left:  []RefObjConfig{obj("dog", 3), obj("goat", 3)},
			Right: []RefObjConfig{obj("horse", 3)},
		},
	})
}

type engineFixture struct {
	table  *LevelTable
	scene  *fakeScene
	panels *fakePanels
	audio  *fakeAudio
	ind    *fakeIndicator
	chrome *fakeChrome
	rng    *fakeRand
	engine *Engine
}

func newEngineFixture(t *testing.T, table *LevelTable) *engineFixture {
	t.Helper()
	f := &engineFixture{
		table:  table,
		scene:  newFakeScene(table),
		panels: &fakePanels{nodes: map[string]*fakeNode{}},
		audio:  &fakeAudio{},
		ind:    &fakeIndicator{},
		chrome: &fakeChrome{},
		rng:    &fakeRand{},
	}
	// Give every level a panel and every candidate a box so the
	// description index is fully populated unless a test trims it.
	for level := 0; level < table.Len(); level++ {
		f.panels.nodes[DescPanelName(level)] = &fakeNode{}
		for cfg := range table.LeftAndRightCandidates(level) {
			f.panels.nodes[DescBoxName(cfg.Name)] = &fakeNode{}
		}
	}
	engine, err := NewEngine(table, f.scene, f.panels, f.audio, f.ind, f.chrome, f.rng)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	f.engine = engine
	return f
}
