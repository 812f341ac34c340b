package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/lifecompass/util"
)

// ForkedPath is an Animation of a figure standing where a road forks, with
// fog drifting across the scene.
type ForkedPath struct {
	width  int
	height int
}

// NewForkedPath creates an instance of a ForkedPath object.
func NewForkedPath(width, height int) *ForkedPath {
	p := new(ForkedPath)
	p.width = width
	p.height = height
	return p
}

// pathPoint maps the road's 100x100 viewbox onto the bottom three quarters
// of the frame.
func pathPoint(vx, vy float64) (float64, float64) {
	return vx / 100, 0.25 + 0.75*(vy/100)
}

// CalculateFrame creates a new Frame instance.
func (p *ForkedPath) CalculateFrame(elapsedMs int64) *Frame {
	f := NewFrame(p.width, p.height)
	f.fillVertical(ColorStops{gray700, gray800, gray900})

	fog := util.Keyframes(util.Loop(elapsedMs, 2000), 0.3, 0.6, 0.3)
	for y := 0; y < p.height; y++ {
		_, ny := f.pixelCentre(0, y)
		band := 1 - math.Abs(ny-0.5)*2
		for x := 0; x < p.width; x++ {
			f.Blend(x, y, gray600, fog*0.3*band)
		}
	}

	for _, side := range []float64{-1, 1} {
		x0, y0 := pathPoint(50, 100)
		x1, y1 := pathPoint(50+10*side, 50)
		x2, y2 := pathPoint(50+30*side, 0)
		f.line(x0, y0, x1, y1, gray600, 0.5)
		f.line(x1, y1, x2, y2, gray600, 0.5)
	}

	scale := 0.8 + 0.2*ease.OutQuad(util.Progress(elapsedMs, 0, 500))
	w := 0.08 * scale
	h := 0.22 * scale
	bottom := 2.0 / 3.0
	f.rect(0.5-w/2, bottom-h, 0.5+w/2, bottom, func(u, v float64) colorful.Color {
		return gray800.BlendRgb(gray700, v)
	}, 0.9)

	return f
}
