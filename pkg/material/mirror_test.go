package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-lighttracer/pkg/core"
)

func TestMirror_Sample(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	mirror := NewMirror(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	si := flatInteraction(core.NewVec3(1, 0, 1))
	sample := mirror.Sample(si, Importance, sampler)

	if sample.Event != EventReflect {
		t.Fatalf("Expected reflect event, got %v", sample.Event)
	}

	expected := core.NewVec3(-1, 0, 1).Normalize()
	if sample.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Reflection: got %v, expected %v", sample.Direction, expected)
	}
	if sample.Color != albedo {
		t.Errorf("Color should carry the albedo: got %v", sample.Color)
	}
	if sample.PDF != 0 {
		t.Errorf("Dirac lobe should report zero PDF, got %f", sample.PDF)
	}
}

func TestMirror_EvaluateIsZero(t *testing.T) {
	mirror := NewMirror(core.NewVec3(1, 1, 1))
	si := flatInteraction(core.NewVec3(1, 0, 1))

	eval := mirror.Evaluate(core.NewVec3(-1, 0, 1).Normalize(), si.FromDirection, si, Importance)
	if !eval.Color.IsZero() {
		t.Errorf("Expected zero evaluation for a delta lobe, got %v", eval.Color)
	}
}

func TestNonScatteringMaterials(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	si := flatInteraction(core.NewVec3(0, 0, 1))

	tests := []struct {
		name     string
		bxdf     BxDF
		expected Event
	}{
		{"emissive", NewEmissive(core.NewVec3(5, 5, 5)), EventEmission},
		{"absorber", NewAbsorber(), EventNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := tt.bxdf.Sample(si, Importance, sampler)
			if sample.Event != tt.expected {
				t.Errorf("Event: got %v, expected %v", sample.Event, tt.expected)
			}
			if !sample.Color.IsZero() {
				t.Errorf("Expected no scattered energy, got %v", sample.Color)
			}
		})
	}
}
