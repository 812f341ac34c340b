package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Drawing helpers work in normalised coordinates: (0, 0) is the top-left
// corner and (1, 1) the bottom-right corner of the frame. Pixels are sampled
// at their centres.

func (f *Frame) pixelCentre(x, y int) (float64, float64) {
	return (float64(x) + 0.5) / float64(f.width), (float64(y) + 0.5) / float64(f.height)
}

// aspect is width over height, used to keep circles round.
func (f *Frame) aspect() float64 {
	return float64(f.width) / float64(f.height)
}

// fillVertical paints a top-to-bottom gradient.
func (f *Frame) fillVertical(stops ColorStops) {
	for y := 0; y < f.height; y++ {
		_, ny := f.pixelCentre(0, y)
		c := stops.At(ny)
		for x := 0; x < f.width; x++ {
			f.Set(x, y, c)
		}
	}
}

// fillDiagonal paints a top-left to bottom-right gradient.
func (f *Frame) fillDiagonal(stops ColorStops) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			nx, ny := f.pixelCentre(x, y)
			f.Set(x, y, stops.At((nx+ny)/2))
		}
	}
}

// fillRadial paints a gradient from the centre outwards.
func (f *Frame) fillRadial(stops ColorStops) {
	maxDist := math.Hypot(0.5*f.aspect(), 0.5)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			nx, ny := f.pixelCentre(x, y)
			d := math.Hypot((nx-0.5)*f.aspect(), ny-0.5)
			f.Set(x, y, stops.At(d/maxDist))
		}
	}
}

// glow blends c around (cx, cy) with a soft falloff of the given radius
// (in frame heights).
func (f *Frame) glow(cx, cy, radius float64, c colorful.Color, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			nx, ny := f.pixelCentre(x, y)
			d := math.Hypot((nx-cx)*f.aspect(), ny-cy)
			if d < radius {
				f.Blend(x, y, c, alpha*(1-d/radius))
			}
		}
	}
}

// ring paints a circle outline of the given radius and thickness (in frame heights).
func (f *Frame) ring(cx, cy, radius, thickness float64, c colorful.Color, alpha float64) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			nx, ny := f.pixelCentre(x, y)
			d := math.Hypot((nx-cx)*f.aspect(), ny-cy)
			if math.Abs(d-radius) <= thickness/2 {
				f.Blend(x, y, c, alpha)
			}
		}
	}
}

// disc paints a filled circle.
func (f *Frame) disc(cx, cy, radius float64, c colorful.Color, alpha float64) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			nx, ny := f.pixelCentre(x, y)
			if math.Hypot((nx-cx)*f.aspect(), ny-cy) <= radius {
				f.Blend(x, y, c, alpha)
			}
		}
	}
}

// rect paints a filled rectangle, colouring each pixel by its position inside
// the rectangle via shade.
func (f *Frame) rect(x0, y0, x1, y1 float64, shade func(u, v float64) colorful.Color, alpha float64) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			nx, ny := f.pixelCentre(x, y)
			if nx < x0 || nx > x1 || ny < y0 || ny > y1 {
				continue
			}
			f.Blend(x, y, shade((nx-x0)/(x1-x0), (ny-y0)/(y1-y0)), alpha)
		}
	}
}

// line paints a segment by stepping through it at sub-pixel resolution.
func (f *Frame) line(x0, y0, x1, y1 float64, c colorful.Color, alpha float64) {
	dx := (x1 - x0) * float64(f.width)
	dy := (y1 - y0) * float64(f.height)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) * 2))
	if steps == 0 {
		steps = 1
	}

	last := -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor((x0 + (x1-x0)*t) * float64(f.width)))
		py := int(math.Floor((y0 + (y1-y0)*t) * float64(f.height)))
		idx := py*f.width + px
		if idx == last {
			continue
		}
		last = idx
		f.Blend(px, py, c, alpha)
	}
}

// darkenBottom fades the bottom share of the frame towards black.
func (f *Frame) darkenBottom(share, alpha float64) {
	if share <= 0 || alpha <= 0 {
		return
	}
	top := 1 - share
	for y := 0; y < f.height; y++ {
		_, ny := f.pixelCentre(0, y)
		if ny < top {
			continue
		}
		depth := (ny - top) / share
		for x := 0; x < f.width; x++ {
			f.Blend(x, y, black, alpha*(0.4+0.5*depth))
		}
	}
}

// scale applies a brightness factor to every pixel.
func (f *Frame) scale(factor float64) {
	for i, p := range f.pixels {
		f.pixels[i] = black.BlendRgb(p, factor)
	}
}
