package obj

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	gradientWidth = 512
	navBarHeight  = 28
)

// Chrome draws everything around the reference objects: the scrolling
// background gradient, the dim overlay shown while the board is off,
// the lighting mask, and the navigation bar. It satisfies board.Chrome.
type Chrome struct {
	skinOn      bool
	maskVisible bool
	navVisible  bool

	navLevel float64
	navLabel string
	navScale float64
	offset   float64

	gradient *ebiten.Image
	mask     *ebiten.Image
}

func NewChrome() *Chrome {
	return &Chrome{}
}

func (c *Chrome) SetSkin(on bool) { c.skinOn = on }

func (c *Chrome) SetLightingMask(visible bool) { c.maskVisible = visible }

func (c *Chrome) SetNavVisible(visible bool) { c.navVisible = visible }

func (c *Chrome) SetNav(navLevel float64, label string, scalePerUnit float64) {
	c.navLevel = navLevel
	c.navLabel = label
	c.navScale = scalePerUnit
}

// ScrollBackground sets the background phase in [0, 1). The gradient
// wraps, so scrolling past the end lands back at the start seamlessly.
func (c *Chrome) ScrollBackground(offset float64) {
	c.offset = offset
}

// Draw renders the chrome under everything else on the screen.
func (c *Chrome) Draw(screen *ebiten.Image) {
	c.ensureImages()

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	// Two copies of the strip, shifted by the phase, cover the screen
	// across the wrap point.
	shift := c.offset * w
	for _, x := range []float64{-shift, w - shift} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/gradientWidth, h)
		op.GeoM.Translate(x, 0)
		screen.DrawImage(c.gradient, op)
	}

	if c.maskVisible {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, h/float64(c.mask.Bounds().Dy()))
		screen.DrawImage(c.mask, op)
	}

	if !c.skinOn {
		vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: 176}, false)
	}

	if c.navVisible {
		c.drawNav(screen, w)
	}
}

func (c *Chrome) drawNav(screen *ebiten.Image, w float64) {
	vector.FillRect(screen, 0, 0, float32(w), navBarHeight, color.RGBA{R: 16, G: 20, B: 26, A: 220}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("magnitude %s  (%g units per row)", c.navLabel, c.navScale), 8, 6)

	// Marker tracks the same phase as the background scroll.
	const margin = 220.0
	x := float32(margin + c.offset*(w-margin-20))
	vector.FillRect(screen, x, 4, 10, navBarHeight-8, colornames.Gold, false)
}

func (c *Chrome) ensureImages() {
	if c.gradient == nil {
		c.gradient = newGradientStrip()
	}
	if c.mask == nil {
		c.mask = newLightingMask()
	}
}

// newGradientStrip builds a 1px tall horizontal blend that Draw scales
// to the full screen. The two ends share a color so tiling is seamless.
func newGradientStrip() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, gradientWidth, 1))
	from := colornames.Midnightblue
	mid := colornames.Darkslateblue
	for x := 0; x < gradientWidth; x++ {
		// Triangle wave: from -> mid -> from across the strip.
		t := float64(x) / gradientWidth * 2
		if t > 1 {
			t = 2 - t
		}
		img.SetRGBA(x, 0, lerpRGBA(from, mid, t))
	}
	return ebiten.NewImageFromImage(img)
}

// newLightingMask builds a 1px wide vertical vignette, transparent in
// the middle and darkening toward the top and bottom edges.
func newLightingMask() *ebiten.Image {
	const height = 256
	img := image.NewRGBA(image.Rect(0, 0, 1, height))
	for y := 0; y < height; y++ {
		d := float64(y)/height*2 - 1
		if d < 0 {
			d = -d
		}
		a := uint8(d * d * 120)
		img.SetRGBA(0, y, color.RGBA{A: a})
	}
	return ebiten.NewImageFromImage(img)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
