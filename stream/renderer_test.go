package stream

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/matt-g-everett/lifecompass/scene"
	"github.com/matt-g-everett/lifecompass/sequencer"
)

const (
	testWidth  = 32
	testHeight = 18
)

var testStart = time.Unix(1700000000, 0)

func playingSnapshot(scenes scene.List, index int) sequencer.Snapshot {
	d := scenes.At(index)
	return sequencer.Snapshot{
		State:        sequencer.Playing,
		Index:        index,
		Scene:        &d,
		Progress:     float64(index+1) / float64(scenes.Len()),
		SceneStarted: testStart,
		Version:      uint64(index + 1),
	}
}

func frameBytes(t *testing.T, f *Frame) []byte {
	t.Helper()
	b, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	return b
}

func TestRenderIsPure(t *testing.T) {
	scenes := scene.MustDefault()
	r := NewRenderer(testWidth, testHeight, scenes)

	for i := 0; i < scenes.Len(); i++ {
		snap := playingSnapshot(scenes, i)
		for _, at := range []time.Duration{0, 250 * time.Millisecond, 1200 * time.Millisecond} {
			a := frameBytes(t, r.Render(snap, testStart.Add(at)))
			b := frameBytes(t, r.Render(snap, testStart.Add(at)))
			if !bytes.Equal(a, b) {
				t.Errorf("Scene %d at %v: repeated renders differ", i+1, at)
			}
		}
	}
}

func TestRenderIdle(t *testing.T) {
	r := NewRenderer(testWidth, testHeight, scene.MustDefault())
	snap := sequencer.Snapshot{State: sequencer.Idle, SceneStarted: testStart}

	f := r.Render(snap, testStart.Add(time.Second))
	if f.Width() != testWidth || f.Height() != testHeight {
		t.Fatalf("Unexpected frame size %dx%d", f.Width(), f.Height())
	}

	want := frameBytes(t, NewHero(testWidth, testHeight).CalculateFrame(1000))
	if !bytes.Equal(frameBytes(t, f), want) {
		t.Error("Idle render should be the hero frame")
	}
}

func TestAnimationDispatch(t *testing.T) {
	r := NewRenderer(testWidth, testHeight, scene.MustDefault())

	tests := []struct {
		variant scene.Variant
		check   func(Animation) bool
	}{
		{scene.VariantParticles, func(a Animation) bool { _, ok := a.(*Particles); return ok }},
		{scene.VariantForkedPath, func(a Animation) bool { _, ok := a.(*ForkedPath); return ok }},
		{scene.VariantCompassReveal, func(a Animation) bool { _, ok := a.(*CompassReveal); return ok }},
		{scene.VariantBookReveal, func(a Animation) bool { _, ok := a.(*BookReveal); return ok }},
		{scene.VariantConfidenceIcon, func(a Animation) bool { _, ok := a.(*ConfidenceIcon); return ok }},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			a := r.Animation(scene.Descriptor{ID: 1, DurationMs: 1000, Variant: tt.variant})
			if !tt.check(a) {
				t.Errorf("Unexpected animation %T for %s", a, tt.variant)
			}
		})
	}
}

func TestFirstSceneFadesFromBlack(t *testing.T) {
	scenes := scene.MustDefault()
	r := NewRenderer(testWidth, testHeight, scenes)

	f := r.Render(playingSnapshot(scenes, 0), testStart)
	for y := 1; y < testHeight; y++ {
		for x := 0; x < testWidth; x++ {
			if !f.At(x, y).AlmostEqualRgb(black) {
				t.Fatalf("Pixel %d,%d should be black at scene entry, got %s", x, y, f.At(x, y).Hex())
			}
		}
	}
}

func TestSceneAfterTransition(t *testing.T) {
	scenes := scene.MustDefault()
	r := NewRenderer(testWidth, testHeight, scenes)

	for i := 0; i < scenes.Len(); i++ {
		elapsed := int64(900)
		got := r.Render(playingSnapshot(scenes, i), testStart.Add(time.Duration(elapsed)*time.Millisecond))
		want := r.Animation(scenes.At(i)).CalculateFrame(elapsed)

		// Rows between the progress bar and the caption band are the scene's own.
		for y := 1; float64(y)+0.5 < float64(testHeight)*(1-captionShare); y++ {
			for x := 0; x < testWidth; x++ {
				if got.At(x, y) != want.At(x, y) {
					t.Fatalf("Scene %d: pixel %d,%d differs from the animation", i+1, x, y)
				}
			}
		}
	}
}

func TestProgressBar(t *testing.T) {
	scenes := scene.MustDefault()
	r := NewRenderer(testWidth, testHeight, scenes)

	for i := 0; i < scenes.Len(); i++ {
		snap := playingSnapshot(scenes, i)
		f := r.Render(snap, testStart.Add(time.Second))

		filled := int(math.Round(snap.Progress * testWidth))
		for x := 0; x < testWidth; x++ {
			want := gray800
			if x < filled {
				want = amber500
			}
			if f.At(x, 0) != want {
				t.Errorf("Scene %d: progress pixel %d is %s, want %s", i+1, x, f.At(x, 0).Hex(), want.Hex())
			}
		}
	}

	last := playingSnapshot(scenes, scenes.Len()-1)
	f := r.Render(last, testStart.Add(time.Second))
	for x := 0; x < testWidth; x++ {
		if f.At(x, 0) != amber500 {
			t.Fatalf("Last scene should fill the progress bar, pixel %d is %s", x, f.At(x, 0).Hex())
		}
	}
}

func TestProgressBarSlides(t *testing.T) {
	scenes := scene.MustDefault()
	r := NewRenderer(testWidth, testHeight, scenes)
	snap := playingSnapshot(scenes, 1)

	count := func(f *Frame) int {
		n := 0
		for x := 0; x < f.Width(); x++ {
			if f.At(x, 0) == amber500 {
				n++
			}
		}
		return n
	}

	atEntry := count(r.Render(snap, testStart))
	settled := count(r.Render(snap, testStart.Add(time.Second)))
	if atEntry >= settled {
		t.Errorf("Progress should grow into place: %d at entry, %d settled", atEntry, settled)
	}
}

func TestCaptionBandDarkens(t *testing.T) {
	scenes := scene.MustDefault()
	r := NewRenderer(testWidth, testHeight, scenes)
	snap := playingSnapshot(scenes, 3)

	at := int64(1500)
	got := r.Render(snap, testStart.Add(time.Duration(at)*time.Millisecond))
	plain := r.Animation(scenes.At(3)).CalculateFrame(at)

	y := testHeight - 1
	for x := 0; x < testWidth; x++ {
		_, _, lGot := got.At(x, y).Hcl()
		_, _, lPlain := plain.At(x, y).Hcl()
		if lGot > lPlain+1e-9 {
			t.Errorf("Caption band should not brighten pixel %d: %f > %f", x, lGot, lPlain)
		}
	}
}

func TestParticlesDeterministicBySeed(t *testing.T) {
	r := NewRenderer(testWidth, testHeight, scene.MustDefault())
	a := r.Animation(scene.Descriptor{ID: 1, DurationMs: 2000, Variant: scene.VariantParticles}).CalculateFrame(1500)
	b := r.Animation(scene.Descriptor{ID: 1, DurationMs: 2000, Variant: scene.VariantParticles}).CalculateFrame(1500)
	if !bytes.Equal(frameBytes(t, a), frameBytes(t, b)) {
		t.Error("Particles with the same seed should render identically")
	}
}
