package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/zoomboard/board"
	"github.com/milk9111/zoomboard/common"
	"github.com/milk9111/zoomboard/prefabs"
)

var boxSize = common.Vec2{X: 480, Y: 40}

// Scene owns every node the board animates: one RefObj per reference
// object name, one lookup panel per level, and one description box per
// described object. It satisfies both board.Scene and board.PanelLookup.
type Scene struct {
	refObjs map[string]*RefObj
	order   []string

	panels map[string]*Node
	boxes  []*Node
}

// NewScene builds the scene graph for a validated spec. Node names
// follow the board's deterministic lookup scheme, so the registry and
// the description index resolve everything they ask for.
func NewScene(spec *prefabs.BoardSpec) *Scene {
	s := &Scene{
		refObjs: make(map[string]*RefObj),
		panels:  make(map[string]*Node),
	}

	for _, name := range spec.RefObjNames() {
		s.refObjs[name] = newRefObj(name)
		s.order = append(s.order, name)
	}

	for i, lvl := range spec.Levels {
		panel := newNode(board.DescPanelName(i), common.Vec2{}, color.RGBA{}, "")
		panel.visible = true
		s.panels[panel.name] = panel

		for _, cand := range append(append([]prefabs.RefObjSpec{}, lvl.Left...), lvl.Right...) {
			if cand.Description == "" {
				continue
			}
			boxName := board.DescBoxName(cand.Name)
			if _, ok := s.panels[boxName]; ok {
				continue
			}
			box := newNode(boxName, boxSize, color.RGBA{R: 40, G: 48, B: 56, A: 230}, cand.Description)
			s.panels[boxName] = box
			s.boxes = append(s.boxes, box)
		}
	}

	return s
}

// Node resolves a reference object name to its handle.
func (s *Scene) Node(name string) (board.Handle, bool) {
	o, ok := s.refObjs[name]
	if !ok {
		return board.Handle{}, false
	}
	return board.Handle{Container: o.container, Inner: o.card}, true
}

// Panel resolves a description panel or box name.
func (s *Scene) Panel(name string) (board.Node, bool) {
	p, ok := s.panels[name]
	if !ok {
		return nil, false
	}
	return p, true
}

// Draw renders the reference objects in creation order, then stacks the
// visible description boxes along the bottom of the screen. Box
// positions are layout-owned; the board only toggles their visibility.
func (s *Scene) Draw(screen *ebiten.Image) {
	for _, name := range s.order {
		s.refObjs[name].Draw(screen)
	}

	bounds := screen.Bounds()
	y := float64(bounds.Dy()) - boxSize.Y/2 - 8
	for _, box := range s.boxes {
		if !box.visible {
			continue
		}
		box.drawAt(screen, common.Vec2{X: float64(bounds.Dx()) / 2, Y: y}, 1)
		y -= boxSize.Y + 6
	}
}
