// Package obj renders the board: reference object cards, description
// boxes, the scrolling background, the navigation bar, the numeric
// indicator, and the audio cues. It owns ebiten; the board package only
// ever sees the small interfaces these types satisfy.
package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/zoomboard/common"
)

// Node is one positioned, scalable drawable. The board drives it
// through the transform and visibility setters only; what the node
// actually looks like is this package's business.
type Node struct {
	name    string
	pos     common.Vec2
	scale   float64
	visible bool

	size  common.Vec2
	fill  color.RGBA
	label string
}

func newNode(name string, size common.Vec2, fill color.RGBA, label string) *Node {
	return &Node{name: name, scale: 1, size: size, fill: fill, label: label}
}

func (n *Node) Name() string { return n.name }

func (n *Node) LocalPosition() common.Vec2 { return n.pos }

func (n *Node) SetLocalPosition(p common.Vec2) { n.pos = p }

func (n *Node) LocalScale() float64 { return n.scale }

func (n *Node) SetLocalScale(s float64) { n.scale = s }

func (n *Node) Visible() bool { return n.visible }

func (n *Node) SetVisible(v bool) { n.visible = v }

// Draw renders the node as a card centered on its position. Hidden
// nodes and nodes without a size draw nothing.
func (n *Node) Draw(screen *ebiten.Image) {
	n.drawAt(screen, n.pos, n.scale)
}

func (n *Node) drawAt(screen *ebiten.Image, pos common.Vec2, scale float64) {
	if !n.visible || n.size.X <= 0 || n.size.Y <= 0 {
		return
	}
	w := n.size.X * scale
	h := n.size.Y * scale
	x := float32(pos.X - w/2)
	y := float32(pos.Y - h/2)
	vector.FillRect(screen, x, y, float32(w), float32(h), n.fill, false)
	vector.StrokeRect(screen, x, y, float32(w), float32(h), 1, colornames.Black, false)
	if n.label != "" {
		ebitenutil.DebugPrintAt(screen, n.label, int(pos.X-w/2)+4, int(pos.Y-h/2)+4)
	}
}

// RefObj pairs an animated container with the card that visualizes it.
// The container carries the transform the board animates; the card can
// be restyled without disturbing it.
type RefObj struct {
	container *Node
	card      *Node
}

func newRefObj(name string) *RefObj {
	card := newNode(name+"/card", cardSize, colorFor(name), name)
	card.visible = true
	return &RefObj{
		container: newNode(name, common.Vec2{}, color.RGBA{}, ""),
		card:      card,
	}
}

// Draw renders the card under the container's transform. The card's own
// transform compounds with it, so the inner node can be offset or
// shrunk independently of the animation.
func (o *RefObj) Draw(screen *ebiten.Image) {
	if !o.container.visible || !o.card.visible {
		return
	}
	pos := common.Vec2{
		X: o.container.pos.X + o.card.pos.X*o.container.scale,
		Y: o.container.pos.Y + o.card.pos.Y*o.container.scale,
	}
	o.card.drawAt(screen, pos, o.container.scale*o.card.scale)
}

var cardSize = common.Vec2{X: 160, Y: 110}

// cardPalette is cycled through by name hash so every object keeps a
// stable color across runs without per-object configuration.
var cardPalette = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkseagreen,
	colornames.Peru,
	colornames.Slateblue,
	colornames.Indianred,
	colornames.Cadetblue,
	colornames.Darkkhaki,
	colornames.Rosybrown,
}

func colorFor(name string) color.RGBA {
	var h uint32
	for _, c := range []byte(name) {
		h = h*31 + uint32(c)
	}
	return cardPalette[int(h)%len(cardPalette)]
}
