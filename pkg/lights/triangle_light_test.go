package lights

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-lighttracer/pkg/core"
)

func newTestTriangleLight(t *testing.T) *TriangleLight {
	t.Helper()
	light, err := NewTriangleLight(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 3, 0),
		core.NewVec3(4, 4, 4),
	)
	if err != nil {
		t.Fatalf("NewTriangleLight failed: %v", err)
	}
	return light
}

func TestTriangleLight_AreaPDF(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c core.Vec3
	}{
		{"right triangle", core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 0)},
		{"tilted", core.NewVec3(1, 2, 3), core.NewVec3(4, -1, 0), core.NewVec3(0, 5, 2)},
		{"tiny", core.NewVec3(0, 0, 0), core.NewVec3(1e-3, 0, 0), core.NewVec3(0, 0, 1e-3)},
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light, err := NewTriangleLight(tt.a, tt.b, tt.c, core.NewVec3(1, 1, 1))
			if err != nil {
				t.Fatalf("NewTriangleLight failed: %v", err)
			}

			edge1 := tt.b.Subtract(tt.a)
			edge2 := tt.c.Subtract(tt.a)
			expected := 1.0 / (0.5 * edge1.Cross(edge2).Length())

			sample := light.Emit(sampler)
			if sample.AreaPDF != expected {
				t.Errorf("AreaPDF: got %v, expected exactly %v", sample.AreaPDF, expected)
			}
		})
	}
}

func TestTriangleLight_DirectionDensity(t *testing.T) {
	light := newTestTriangleLight(t)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	const numSamples = 100000
	sum := 0.0
	for i := 0; i < numSamples; i++ {
		sample := light.Emit(sampler)

		cosTheta := sample.Direction.Dot(light.Normal())
		if cosTheta < 0 {
			t.Fatalf("Direction %v leaves the back side", sample.Direction)
		}
		if math.Abs(sample.DirectionPDF-cosTheta/math.Pi) > 1e-9 {
			t.Fatalf("DirectionPDF %f does not match cos/π = %f", sample.DirectionPDF, cosTheta/math.Pi)
		}
		if sample.DirectionPDF > 0 {
			sum += cosTheta / sample.DirectionPDF
		}
	}

	mean := sum / numSamples
	if math.Abs(mean-math.Pi) > 1e-3 {
		t.Errorf("Mean cos/pdf: got %f, expected π", mean)
	}
}

func TestTriangleLight_EnergyScaledByCosine(t *testing.T) {
	light := newTestTriangleLight(t)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(9)))

	for i := 0; i < 100; i++ {
		sample := light.Emit(sampler)
		cosTheta := sample.Direction.Dot(light.Normal())
		expected := light.Radiance.Multiply(cosTheta)
		if sample.Energy.Subtract(expected).Length() > 1e-9 {
			t.Fatalf("Energy: got %v, expected %v", sample.Energy, expected)
		}
	}
}

func TestTriangleLight_PointsOnSurface(t *testing.T) {
	light := newTestTriangleLight(t)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(2)))

	for i := 0; i < 1000; i++ {
		p := light.Emit(sampler).Point
		// Triangle (0,0)-(2,0)-(0,3) in the z=0 plane: x/2 + y/3 <= 1
		if p.Z != 0 || p.X < 0 || p.Y < 0 || p.X/2+p.Y/3 > 1+1e-12 {
			t.Fatalf("Point %v outside the triangle", p)
		}
	}
}

func TestTriangleLight_RejectsDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c core.Vec3
	}{
		{"collinear", core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2)},
		{"coincident", core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangleLight(tt.a, tt.b, tt.c, core.NewVec3(1, 1, 1))
			if !errors.Is(err, ErrDegenerateEmitter) {
				t.Errorf("Expected ErrDegenerateEmitter, got %v", err)
			}
		})
	}
}

func TestTriangleLight_Capabilities(t *testing.T) {
	light := newTestTriangleLight(t)
	if light.Type() != EmitterArea {
		t.Errorf("Type: got %v, expected area", light.Type())
	}
	if light.IsDirac() {
		t.Error("Area emitters can be hit by rays")
	}

	if light.Area() != 3 {
		t.Errorf("Area: got %f, expected 3", light.Area())
	}
	a, b, c := light.Vertices()
	if a != core.NewVec3(0, 0, 0) || b != core.NewVec3(2, 0, 0) || c != core.NewVec3(0, 3, 0) {
		t.Errorf("Vertices: got %v %v %v", a, b, c)
	}

	expectedPower := math.Pi * light.Area() * light.Radiance.Luminance()
	if math.Abs(light.Power()-expectedPower) > 1e-9 {
		t.Errorf("Power: got %f, expected %f", light.Power(), expectedPower)
	}
}
