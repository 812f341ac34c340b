package stream

import (
	"github.com/fogleman/ease"
	"github.com/matt-g-everett/lifecompass/util"
)

// ConfidenceIcon is an Animation of a document icon rising into view and
// pulsing gently, the closing call to action.
type ConfidenceIcon struct {
	width  int
	height int
}

// NewConfidenceIcon creates an instance of a ConfidenceIcon object.
func NewConfidenceIcon(width, height int) *ConfidenceIcon {
	c := new(ConfidenceIcon)
	c.width = width
	c.height = height
	return c
}

// CalculateFrame creates a new Frame instance.
func (c *ConfidenceIcon) CalculateFrame(elapsedMs int64) *Frame {
	f := NewFrame(c.width, c.height)
	f.fillDiagonal(ColorStops{gray800, gray900, black})

	enter := ease.OutCubic(util.Progress(elapsedMs, 0, 800))
	if enter <= 0 {
		return f
	}
	pulse := util.Keyframes(util.Loop(elapsedMs, 2000), 1, 1.1, 1)

	h := 0.36 * pulse
	w := h * 0.75 / f.aspect()
	cx := 0.5
	cy := 0.45 + 0.04*(1-enter)
	x0, x1 := cx-w/2, cx+w/2
	y0, y1 := cy-h/2, cy+h/2
	fold := w * 0.3

	// Page outline with the top-right corner folded.
	f.line(x0, y0, x1-fold, y0, amber500, enter)
	f.line(x1-fold, y0, x1, y0+fold*f.aspect(), amber500, enter)
	f.line(x1, y0+fold*f.aspect(), x1, y1, amber500, enter)
	f.line(x1, y1, x0, y1, amber500, enter)
	f.line(x0, y1, x0, y0, amber500, enter)

	// Two lines of writing.
	for _, v := range []float64{0.55, 0.72} {
		y := y0 + h*v
		f.line(x0+w*0.25, y, x1-w*0.25, y, amber500, enter)
	}

	return f
}
