package util

import (
	"math"
	"sync"

	"github.com/fogleman/ease"
)

// GenerateLut builds a rise-then-fall gain table of the given length, eased with InOutQuad.
func GenerateLut(length int) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}

// Memoizer caches LUTs by length.
type Memoizer struct {
	mu   sync.Mutex
	luts map[int][]float64
}

// GenerateLutMemoized returns a cached LUT of the given length, generating it on first use.
func GenerateLutMemoized(length int, m *Memoizer) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.luts == nil {
		m.luts = make(map[int][]float64)
	}
	if lut, ok := m.luts[length]; ok {
		return lut
	}

	lut := GenerateLut(length)
	m.luts[length] = lut
	return lut
}

// Sample reads a LUT at t in [0, 1].
func Sample(lut []float64, t float64) float64 {
	if len(lut) == 0 {
		return 0
	}
	t = Clamp(t, 0, 1)
	return lut[int(math.Round(t*float64(len(lut)-1)))]
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Progress returns how far elapsedMs is through a window starting at delayMs
// and lasting durationMs, clamped to [0, 1].
func Progress(elapsedMs, delayMs, durationMs int64) float64 {
	if durationMs <= 0 {
		if elapsedMs >= delayMs {
			return 1
		}
		return 0
	}
	return Clamp(float64(elapsedMs-delayMs)/float64(durationMs), 0, 1)
}

// Loop returns the phase in [0, 1) of a repeating cycle of periodMs.
func Loop(elapsedMs, periodMs int64) float64 {
	if periodMs <= 0 {
		return 0
	}
	phase := elapsedMs % periodMs
	if phase < 0 {
		phase += periodMs
	}
	return float64(phase) / float64(periodMs)
}

// Keyframes linearly interpolates values spread evenly over t in [0, 1].
func Keyframes(t float64, values ...float64) float64 {
	switch len(values) {
	case 0:
		return 0
	case 1:
		return values[0]
	}

	t = Clamp(t, 0, 1)
	segments := float64(len(values) - 1)
	pos := t * segments
	i := int(math.Floor(pos))
	if i >= len(values)-1 {
		return values[len(values)-1]
	}
	frac := pos - float64(i)
	return values[i] + (values[i+1]-values[i])*frac
}
