package board

import "github.com/milk9111/zoomboard/common"

// Node is a handle to one positionable, scalable, showable thing owned
// by the presentation layer. The engine only ever mutates local
// transform and visibility through it.
type Node interface {
	LocalPosition() common.Vec2
	SetLocalPosition(common.Vec2)
	LocalScale() float64
	SetLocalScale(float64)
	Visible() bool
	SetVisible(bool)
}

// Handle pairs a reference object's container with its inner visual.
// The engine animates the container; the inner node exists so the
// presentation layer can swap visuals without disturbing the transform.
type Handle struct {
	Container Node
	Inner     Node
}

// Scene resolves reference object names to handles. Resolution happens
// once at setup; a name the scene does not know is a broken level table.
type Scene interface {
	Node(name string) (Handle, bool)
}

// PanelLookup resolves deterministic description panel and box names to
// nodes. Absence is valid configuration, not an error.
type PanelLookup interface {
	Panel(name string) (Node, bool)
}

// Cue identifies one of the board's fire-and-forget sound effects.
type Cue int

const (
	CueJump Cue = iota
	CueSlide
	CueInteract
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueSlide:
		return "slide"
	case CueInteract:
		return "interact"
	}
	return "unknown"
}

// Audio plays a named cue, fire-and-forget.
type Audio interface {
	Play(Cue)
}

// Rand supplies uniform integers in [0, n). Satisfied by *rand.Rand.
type Rand interface {
	Intn(n int) int
}

// Indicator is the numeric readout for the submitted value.
type Indicator interface {
	Show(value, max float64)
	Hide()
}

// Chrome is the board's non-object dressing: skin, lighting mask,
// navigation bar, and the scrolling background gradient.
type Chrome interface {
	SetSkin(on bool)
	SetLightingMask(visible bool)
	SetNavVisible(visible bool)
	SetNav(navLevel float64, label string, scalePerUnit float64)
	ScrollBackground(offset float64)
}
