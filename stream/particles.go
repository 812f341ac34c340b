package stream

import (
	"math/rand"

	"github.com/matt-g-everett/lifecompass/util"
)

const (
	particleCount    = 20
	particleCycleMs  = 2000
	particlePeakGain = 0.8
)

// Particles is an Animation of amber lights drifting over a dark background.
// Every particle travels between two random points and fades in then out,
// repeating every two seconds after a random delay.
type Particles struct {
	width  int
	height int
	seed   int64
	lut    []float64
}

// NewParticles creates an instance of a Particles object. The same seed
// always produces the same particle paths.
func NewParticles(width, height int, seed int64, lut []float64) *Particles {
	p := new(Particles)
	p.width = width
	p.height = height
	p.seed = seed
	p.lut = lut
	return p
}

// CalculateFrame creates a new Frame instance.
func (p *Particles) CalculateFrame(elapsedMs int64) *Frame {
	f := NewFrame(p.width, p.height)
	f.fillRadial(ColorStops{gray800, black})

	radius := 1.2 / float64(p.height)
	r := rand.New(rand.NewSource(p.seed))
	for i := 0; i < particleCount; i++ {
		x0, y0 := r.Float64(), r.Float64()
		x1, y1 := r.Float64(), r.Float64()
		delay := int64(r.Float64() * particleCycleMs)

		local := elapsedMs - delay
		if local < 0 {
			continue
		}

		phase := util.Loop(local, particleCycleMs)
		x := x0 + (x1-x0)*phase
		y := y0 + (y1-y0)*phase
		f.glow(x, y, radius, amber400, particlePeakGain*util.Sample(p.lut, phase))
	}

	return f
}
