package util

import (
	"math"
	"testing"
)

func TestGenerateLut(t *testing.T) {
	lut := GenerateLut(20)
	if len(lut) != 20 {
		t.Fatalf("Expected 20 entries, got %d", len(lut))
	}

	if lut[0] != 0 || lut[19] != 0 {
		t.Errorf("LUT should start and end at 0, got %f and %f", lut[0], lut[19])
	}

	for i := 0; i < 10; i++ {
		if lut[i] != lut[19-i] {
			t.Errorf("LUT not symmetric at %d: %f vs %f", i, lut[i], lut[19-i])
		}
	}

	for i := 1; i < 10; i++ {
		if lut[i] < lut[i-1] {
			t.Errorf("LUT should rise in first half, %f after %f", lut[i], lut[i-1])
		}
	}
}

func TestGenerateLutMemoized(t *testing.T) {
	m := &Memoizer{}
	a := GenerateLutMemoized(12, m)
	b := GenerateLutMemoized(12, m)
	if &a[0] != &b[0] {
		t.Error("Expected memoized LUT to be reused")
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		elapsed, delay, duration int64
		want                     float64
	}{
		{0, 0, 1000, 0},
		{500, 0, 1000, 0.5},
		{2000, 0, 1000, 1},
		{100, 500, 500, 0},
		{750, 500, 500, 0.5},
		{10, 0, 0, 1},
	}

	for _, tt := range tests {
		got := Progress(tt.elapsed, tt.delay, tt.duration)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Progress(%d, %d, %d) = %f, want %f", tt.elapsed, tt.delay, tt.duration, got, tt.want)
		}
	}
}

func TestLoop(t *testing.T) {
	if got := Loop(2500, 2000); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Expected 0.25, got %f", got)
	}
	if got := Loop(-500, 2000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Expected 0.75, got %f", got)
	}
}

func TestKeyframes(t *testing.T) {
	if got := Keyframes(0.5, 0, 0.8, 0); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Expected peak 0.8, got %f", got)
	}
	if got := Keyframes(0.25, 0, 0.8, 0); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("Expected 0.4, got %f", got)
	}
	if got := Keyframes(1, 1, 1.1, 1); got != 1 {
		t.Errorf("Expected 1 at the end, got %f", got)
	}
}
