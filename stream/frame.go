package stream

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a grid of RGB pixels to display on the LED matrix.
type Frame struct {
	width  int
	height int
	pixels []colorful.Color
}

// NewFrame creates a new black Frame.
func NewFrame(width, height int) *Frame {
	f := new(Frame)
	f.width = width
	f.height = height
	f.pixels = make([]colorful.Color, width*height)
	return f
}

// Width of the frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height of the frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// At returns the pixel at x, y.
func (f *Frame) At(x, y int) colorful.Color {
	return f.pixels[y*f.width+x]
}

// Set writes a pixel, ignoring coordinates outside the frame.
func (f *Frame) Set(x, y int, c colorful.Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = c
}

// Blend mixes c into the pixel at x, y by amount t.
func (f *Frame) Blend(x, y int, c colorful.Color, t float64) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height || t <= 0 {
		return
	}
	if t > 1 {
		t = 1
	}
	i := y*f.width + x
	f.pixels[i] = f.pixels[i].BlendRgb(c, t)
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// InterpolateFrame merges two frames of the same size.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f.width, f.height)
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint).Clamped()
	}

	return out
}

// MarshalBinary converts a Frame into binary data: width and height as
// little endian uint16 followed by RGB bytes in row-major order.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 4, (len(f.pixels)*3)+4)
	binary.LittleEndian.PutUint16(data[0:], uint16(f.width))
	binary.LittleEndian.PutUint16(data[2:], uint16(f.height))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

// Image converts the frame to an RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			r, g, b := f.At(x, y).Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
