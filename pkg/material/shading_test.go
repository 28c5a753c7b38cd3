package material

import (
	"math"
	"testing"

	"github.com/df07/go-lighttracer/pkg/core"
)

func TestShadingCorrection(t *testing.T) {
	from := core.NewVec3(0, 0.5, 1).Normalize()
	sampled := core.NewVec3(0.7, 0, 1).Normalize()

	// Matching normals: correction is exactly one
	flat := flatInteraction(from)
	if c := ShadingCorrection(sampled, from, flat, Importance); math.Abs(c-1) > 1e-12 {
		t.Errorf("Expected 1 with matching normals, got %f", c)
	}

	// Perturbed shading normal
	bumped := flatInteraction(from)
	bumped.ShadingNormal = core.NewVec3(0.2, 0, 1).Normalize()

	expected := from.AbsDot(bumped.ShadingNormal) * sampled.AbsDot(bumped.Normal) /
		(from.AbsDot(bumped.Normal) * sampled.AbsDot(bumped.ShadingNormal))
	if c := ShadingCorrection(sampled, from, bumped, Importance); math.Abs(c-expected) > 1e-12 {
		t.Errorf("Importance correction: got %f, expected %f", c, expected)
	}
	if c := ShadingCorrection(sampled, from, bumped, Radiance); c != 1 {
		t.Errorf("Radiance mode must not correct, got %f", c)
	}

	// Grazing arrival makes the correction undefined: report zero
	grazing := flatInteraction(core.NewVec3(1, 0, 0))
	grazing.ShadingNormal = core.NewVec3(0.2, 0, 1).Normalize()
	if c := ShadingCorrection(sampled, grazing.FromDirection, grazing, Importance); c != 0 {
		t.Errorf("Expected 0 for a vanishing denominator, got %f", c)
	}
}
