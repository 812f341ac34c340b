package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/lifecompass/util"
)

// BookReveal is an Animation of the book cover turning towards the viewer.
type BookReveal struct {
	width  int
	height int
}

// NewBookReveal creates an instance of a BookReveal object.
func NewBookReveal(width, height int) *BookReveal {
	b := new(BookReveal)
	b.width = width
	b.height = height
	return b
}

// CalculateFrame creates a new Frame instance.
func (b *BookReveal) CalculateFrame(elapsedMs int64) *Frame {
	f := NewFrame(b.width, b.height)
	f.fillDiagonal(ColorStops{gray900, black, black.BlendRgb(amber900, 0.2)})

	turn := ease.OutQuad(util.Progress(elapsedMs, 0, 1000))
	// rotateY from -90 to 0 degrees, seen face on.
	widthScale := math.Cos((1 - turn) * math.Pi / 2)
	if turn <= 0 || widthScale <= 0 {
		return f
	}

	coverH := 0.64
	coverW := coverH * 0.8 / f.aspect() * widthScale
	x0, x1 := 0.5-coverW/2, 0.5+coverW/2
	y0, y1 := 0.5-coverH/2, 0.5+coverH/2

	cover := ColorStops{amber700, amber600, amber800}
	f.rect(x0, y0, x1, y1, func(u, v float64) colorful.Color {
		c := cover.At((u + v) / 2)
		// Shadow rising from the bottom edge.
		return c.BlendRgb(black, 0.3*v)
	}, turn)

	// Compass emblem on the upper half of the cover.
	emblemR := 0.09
	f.ring(0.5, y0+coverH*0.3, emblemR*widthScale, 0.03, white, 0.8*turn)

	// Title and subtitle rules.
	f.rect(0.5-coverW*0.3, y0+coverH*0.58, 0.5+coverW*0.3, y0+coverH*0.64, func(u, v float64) colorful.Color {
		return white
	}, turn)
	f.rect(0.5-coverW*0.2, y0+coverH*0.72, 0.5+coverW*0.2, y0+coverH*0.75, func(u, v float64) colorful.Color {
		return white
	}, 0.9*turn)

	return f
}
