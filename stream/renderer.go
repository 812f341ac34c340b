package stream

import (
	"math"
	"time"

	"github.com/fogleman/ease"
	"github.com/matt-g-everett/lifecompass/scene"
	"github.com/matt-g-everett/lifecompass/sequencer"
	"github.com/matt-g-everett/lifecompass/util"
)

const (
	transitionMs    = 500
	captionDelayMs  = 300
	captionFadeMs   = 500
	captionShare    = 0.3
	progressStepMs  = 300
	particleLutSize = 48
)

// Renderer turns sequencer snapshots into frames. It keeps no playback state:
// every frame is derived from the snapshot and the time it is rendered at.
type Renderer struct {
	width    int
	height   int
	scenes   scene.List
	memoizer *util.Memoizer
}

// NewRenderer creates a Renderer for frames of the given size.
func NewRenderer(width, height int, scenes scene.List) *Renderer {
	r := new(Renderer)
	r.width = width
	r.height = height
	r.scenes = scenes
	r.memoizer = &util.Memoizer{}
	return r
}

// Width of rendered frames.
func (r *Renderer) Width() int {
	return r.width
}

// Height of rendered frames.
func (r *Renderer) Height() int {
	return r.height
}

// Animation returns the decorative treatment for d.
func (r *Renderer) Animation(d scene.Descriptor) Animation {
	switch d.Variant {
	case scene.VariantParticles:
		return NewParticles(r.width, r.height, int64(d.ID), util.GenerateLutMemoized(particleLutSize, r.memoizer))
	case scene.VariantForkedPath:
		return NewForkedPath(r.width, r.height)
	case scene.VariantCompassReveal:
		return NewCompassReveal(r.width, r.height)
	case scene.VariantBookReveal:
		return NewBookReveal(r.width, r.height)
	case scene.VariantConfidenceIcon:
		return NewConfidenceIcon(r.width, r.height)
	default:
		return NewHero(r.width, r.height)
	}
}

// Render draws the frame for snap at time now.
func (r *Renderer) Render(snap sequencer.Snapshot, now time.Time) *Frame {
	elapsed := now.Sub(snap.SceneStarted).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}

	if !snap.Playing() || snap.Scene == nil {
		return NewHero(r.width, r.height).CalculateFrame(elapsed)
	}

	f := r.Animation(*snap.Scene).CalculateFrame(elapsed)
	if elapsed < transitionMs {
		f = r.previous(snap).InterpolateFrame(f, ease.InOutQuad(util.Progress(elapsed, 0, transitionMs)))
	}

	f.darkenBottom(captionShare, util.Progress(elapsed, captionDelayMs, captionFadeMs))
	r.drawProgress(f, snap, elapsed)
	return f
}

// previous is the frame the scene cross-fades from: the end of the prior
// scene, or black for the first scene.
func (r *Renderer) previous(snap sequencer.Snapshot) *Frame {
	if snap.Index == 0 || snap.Index > r.scenes.Len() {
		return NewFrame(r.width, r.height)
	}
	prev := r.scenes.At(snap.Index - 1)
	return r.Animation(prev).CalculateFrame(prev.DurationMs)
}

// drawProgress fills the top row in proportion to the snapshot's progress,
// sliding from the previous scene's progress.
func (r *Renderer) drawProgress(f *Frame, snap sequencer.Snapshot, elapsed int64) {
	n := float64(r.scenes.Len())
	from := float64(snap.Index) / n
	progress := from + (snap.Progress-from)*util.Progress(elapsed, 0, progressStepMs)

	filled := int(math.Round(progress * float64(f.Width())))
	for x := 0; x < f.Width(); x++ {
		if x < filled {
			f.Set(x, 0, amber500)
		} else {
			f.Set(x, 0, gray800)
		}
	}
}
