package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/matt-g-everett/lifecompass/util"
)

// CompassReveal is an Animation of light gathering into a glowing compass:
// the ring spins and grows into place, then the north needle extends.
type CompassReveal struct {
	width  int
	height int
	radius float64
}

// NewCompassReveal creates an instance of a CompassReveal object.
func NewCompassReveal(width, height int) *CompassReveal {
	c := new(CompassReveal)
	c.width = width
	c.height = height
	c.radius = 0.32
	return c
}

// CalculateFrame creates a new Frame instance.
func (c *CompassReveal) CalculateFrame(elapsedMs int64) *Frame {
	f := NewFrame(c.width, c.height)
	f.Fill(black)

	grow := ease.OutQuad(util.Progress(elapsedMs, 0, 1500))
	if grow <= 0 {
		return f
	}
	rotation := -math.Pi * (1 - grow)
	radius := c.radius * grow

	// Radii and distances are in frame heights.
	cx, cy := 0.5, 0.5
	glow := util.Keyframes(util.Loop(elapsedMs, 2000), 0.5, 0.8, 0.5)
	f.ring(cx, cy, radius, radius*0.45, amber500, glow*0.35)
	f.ring(cx, cy, radius, radius*0.16, amber500, 1)

	aspect := f.aspect()
	point := func(angle, dist float64) (float64, float64) {
		a := angle + rotation
		return cx + math.Sin(a)*dist/aspect, cy - math.Cos(a)*dist
	}

	for i := 0; i < 4; i++ {
		x, y := point(float64(i)*math.Pi/2, radius*0.82)
		f.disc(x, y, radius*0.06, amber400, 1)
	}

	needle := util.Progress(elapsedMs, 500, 500)
	if needle > 0 {
		tipX, tipY := point(0, radius*0.75*needle)
		f.line(cx, cy, tipX, tipY, amber400.BlendRgb(amber600, 1-needle), 1)
	}

	f.disc(cx, cy, radius*0.1, amber500, 1)

	return f
}
