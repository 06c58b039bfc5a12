package obj

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/zoomboard/common"
)

// Indicator is the numeric readout: a vertical fill bar on the right
// edge plus the formatted value. It satisfies board.Indicator.
type Indicator struct {
	visible bool
	value   float64
	max     float64
}

func NewIndicator() *Indicator {
	return &Indicator{}
}

func (i *Indicator) Show(value, max float64) {
	i.visible = true
	i.value = value
	i.max = max
}

func (i *Indicator) Hide() {
	i.visible = false
}

// Value returns the shown value, false while hidden.
func (i *Indicator) Value() (float64, bool) {
	return i.value, i.visible
}

func (i *Indicator) Draw(screen *ebiten.Image) {
	if !i.visible {
		return
	}

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	const barWidth = 26.0
	top := float64(navBarHeight) + 12
	bottom := h - 16
	x := w - barWidth - 16

	vector.StrokeRect(screen, float32(x), float32(top), barWidth, float32(bottom-top), 1, colornames.Lightgrey, false)

	fill := 0.0
	if i.max > 0 {
		fill = common.Clamp(i.value/i.max, 0, 1)
	}
	fh := (bottom - top) * fill
	vector.FillRect(screen, float32(x)+1, float32(bottom-fh), barWidth-2, float32(fh), colornames.Gold, false)

	label := strconv.FormatFloat(i.value, 'g', 8, 64)
	ebitenutil.DebugPrintAt(screen, label, int(x)-len(label)*6-8, int(top))
}
