package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/lifecompass/util"
)

// A Hero is the idle Animation: a title band with an amber gradient trail
// cycling across it and a pulsing start control below.
type Hero struct {
	width       int
	height      int
	gradient    GradientTable
	trailLength float64
	pixelsPerMs float64
}

// NewHero creates an instance of a Hero object.
func NewHero(width, height int) *Hero {
	h := new(Hero)
	h.width = width
	h.height = height
	h.gradient = heroGradient
	h.trailLength = float64(width)
	h.pixelsPerMs = 0.01
	return h
}

// CalculateFrame creates a new Frame instance.
func (h *Hero) CalculateFrame(elapsedMs int64) *Frame {
	f := NewFrame(h.width, h.height)
	f.fillVertical(ColorStops{black, gray900, black})

	current := math.Mod(float64(elapsedMs)*h.pixelsPerMs, h.trailLength)
	for x := 0; x < h.width; x++ {
		t := math.Mod(float64(x+h.width)-current, h.trailLength) / h.trailLength
		c := h.gradient.GetColor(t, 0.7, 0.75)
		for y := 0; y < h.height; y++ {
			_, ny := f.pixelCentre(x, y)
			if ny >= 0.3 && ny <= 0.45 {
				f.Blend(x, y, c, 0.9)
			} else if ny > 0.5 && ny <= 0.55 {
				f.Blend(x, y, gray600, 0.6)
			}
		}
	}

	pulse := util.Keyframes(util.Loop(elapsedMs, 2000), 0.6, 1, 0.6)
	f.rect(0.35, 0.68, 0.65, 0.78, func(u, v float64) colorful.Color {
		return amber500.BlendRgb(amber600, u)
	}, pulse)

	// Fade in from black when entering the idle state.
	intro := ease.OutQuad(util.Progress(elapsedMs, 0, 500))
	f.scale(intro)

	return f
}
