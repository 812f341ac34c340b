// Package scene describes the timed units of the presentation.
package scene

import (
	"errors"
	"fmt"
	"time"
)

// Variant selects the decorative treatment the renderer applies to a scene.
type Variant string

const (
	VariantParticles      Variant = "particles"
	VariantForkedPath     Variant = "forkedPath"
	VariantCompassReveal  Variant = "compassReveal"
	VariantBookReveal     Variant = "bookReveal"
	VariantConfidenceIcon Variant = "confidenceIcon"
)

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantParticles, VariantForkedPath, VariantCompassReveal, VariantBookReveal, VariantConfidenceIcon:
		return true
	default:
		return false
	}
}

var (
	ErrEmpty    = errors.New("scene list is empty")
	ErrOrdinal  = errors.New("scene ids must run 1..N without gaps")
	ErrDuration = errors.New("scene duration must be positive")
	ErrVariant  = errors.New("unknown scene variant")
)

// Descriptor is one scene of the script.
type Descriptor struct {
	ID          int     `yaml:"id" json:"id"`
	DurationMs  int64   `yaml:"durationMs" json:"durationMs"`
	Caption     string  `yaml:"caption" json:"caption"`
	Description string  `yaml:"description" json:"description"`
	Variant     Variant `yaml:"variant" json:"variant"`
}

// Duration is how long the scene stays active before the sequencer advances.
func (d Descriptor) Duration() time.Duration {
	return time.Duration(d.DurationMs) * time.Millisecond
}

// List is a validated, immutable scene script.
type List struct {
	scenes []Descriptor
}

// NewList validates scenes and copies them into a List.
func NewList(scenes []Descriptor) (List, error) {
	if err := Validate(scenes); err != nil {
		return List{}, err
	}

	copied := make([]Descriptor, len(scenes))
	copy(copied, scenes)
	return List{scenes: copied}, nil
}

// Validate checks the ordering, duration and variant invariants of a script.
func Validate(scenes []Descriptor) error {
	if len(scenes) == 0 {
		return ErrEmpty
	}

	for i, s := range scenes {
		if s.ID != i+1 {
			return fmt.Errorf("scene at position %d has id %d: %w", i+1, s.ID, ErrOrdinal)
		}
		if s.DurationMs <= 0 {
			return fmt.Errorf("scene %d: %w", s.ID, ErrDuration)
		}
		if !s.Variant.Valid() {
			return fmt.Errorf("scene %d variant %q: %w", s.ID, s.Variant, ErrVariant)
		}
	}

	return nil
}

// Len returns the number of scenes.
func (l List) Len() int {
	return len(l.scenes)
}

// At returns the scene at index i (zero based).
func (l List) At(i int) Descriptor {
	return l.scenes[i]
}

// All returns a copy of the script.
func (l List) All() []Descriptor {
	out := make([]Descriptor, len(l.scenes))
	copy(out, l.scenes)
	return out
}

// TotalDuration sums every scene duration.
func (l List) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range l.scenes {
		total += s.Duration()
	}
	return total
}
