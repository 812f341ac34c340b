package scene

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultScript(t *testing.T) {
	l := MustDefault()

	if l.Len() != 5 {
		t.Fatalf("Expected 5 scenes, got %d", l.Len())
	}

	wantDurations := []time.Duration{2 * time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second, 3 * time.Second}
	wantVariants := []Variant{VariantParticles, VariantForkedPath, VariantCompassReveal, VariantBookReveal, VariantConfidenceIcon}
	for i := 0; i < l.Len(); i++ {
		s := l.At(i)
		if s.ID != i+1 {
			t.Errorf("Scene %d: expected id %d, got %d", i, i+1, s.ID)
		}
		if s.Duration() != wantDurations[i] {
			t.Errorf("Scene %d: expected duration %v, got %v", s.ID, wantDurations[i], s.Duration())
		}
		if s.Variant != wantVariants[i] {
			t.Errorf("Scene %d: expected variant %s, got %s", s.ID, wantVariants[i], s.Variant)
		}
		if s.Caption == "" {
			t.Errorf("Scene %d has no caption", s.ID)
		}
	}

	if l.TotalDuration() != 13*time.Second {
		t.Errorf("Expected total 13s, got %v", l.TotalDuration())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		scenes []Descriptor
		want   error
	}{
		{"empty", nil, ErrEmpty},
		{"gap", []Descriptor{
			{ID: 1, DurationMs: 100, Variant: VariantParticles},
			{ID: 3, DurationMs: 100, Variant: VariantParticles},
		}, ErrOrdinal},
		{"starts at zero", []Descriptor{{ID: 0, DurationMs: 100, Variant: VariantParticles}}, ErrOrdinal},
		{"zero duration", []Descriptor{{ID: 1, DurationMs: 0, Variant: VariantParticles}}, ErrDuration},
		{"negative duration", []Descriptor{{ID: 1, DurationMs: -5, Variant: VariantBookReveal}}, ErrDuration},
		{"unknown variant", []Descriptor{{ID: 1, DurationMs: 100, Variant: "fireworks"}}, ErrVariant},
		{"valid", []Descriptor{
			{ID: 1, DurationMs: 100, Variant: VariantParticles},
			{ID: 2, DurationMs: 1, Variant: VariantConfidenceIcon},
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.scenes)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewListCopiesInput(t *testing.T) {
	scenes := Default()
	l, err := NewList(scenes)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}

	scenes[0].Caption = "changed"
	if l.At(0).Caption == "changed" {
		t.Error("List should not share the caller's slice")
	}

	all := l.All()
	all[1].DurationMs = 1
	if l.At(1).DurationMs != 2000 {
		t.Error("All should return a copy")
	}
}
