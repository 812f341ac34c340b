package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Past the last keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// ColorStops is a gradient between colours spaced evenly over [0, 1].
type ColorStops []colorful.Color

// At returns the colour at t, blended in Lab space.
func (c ColorStops) At(t float64) colorful.Color {
	switch len(c) {
	case 0:
		return colorful.Color{}
	case 1:
		return c[0]
	}

	if t <= 0 {
		return c[0]
	}
	if t >= 1 {
		return c[len(c)-1]
	}

	segments := float64(len(c) - 1)
	pos := t * segments
	i := int(pos)
	return c[i].BlendLab(c[i+1], pos-float64(i)).Clamped()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette of the presentation.
var (
	black    = mustHex("#000000")
	gray900  = mustHex("#111827")
	gray800  = mustHex("#1f2937")
	gray700  = mustHex("#374151")
	gray600  = mustHex("#4b5563")
	amber400 = mustHex("#fbbf24")
	amber500 = mustHex("#f59e0b")
	amber600 = mustHex("#d97706")
	amber700 = mustHex("#b45309")
	amber800 = mustHex("#92400e")
	amber900 = mustHex("#78350f")
	white    = mustHex("#ffffff")
)

// heroGradient cycles through warm amber hues for the idle screen.
var heroGradient = GradientTable{
	{30.0, 0.0},
	{60.0, 0.35},
	{80.0, 0.5},
	{60.0, 0.65},
	{30.0, 1.0},
}
