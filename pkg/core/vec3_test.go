package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"X cross Y", UnitX, UnitY, UnitZ},
		{"Y cross Z", UnitY, UnitZ, UnitX},
		{"Z cross X", UnitZ, UnitX, UnitY},
		{"Parallel", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// The zero vector stays zero instead of producing NaNs
	zero := Vec3{}.Normalize()
	if !zero.IsZero() {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.Inf(1), 0, 0).IsFinite() {
		t.Error("Expected +Inf to be rejected")
	}
	if NewVec3(0, math.NaN(), 0).IsFinite() {
		t.Error("Expected NaN to be rejected")
	}
}

func TestRaySection(t *testing.T) {
	ray := NewRaySection(NewVec3(1, 0, 0), UnitY, RayEpsilon)
	if ray.TMin != RayEpsilon {
		t.Errorf("Expected TMin %g, got %g", RayEpsilon, ray.TMin)
	}

	p := ray.At(2)
	if p != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1,2,0), got %v", p)
	}
}
