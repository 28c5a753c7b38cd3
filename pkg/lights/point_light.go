package lights

import (
	"math"

	"github.com/df07/go-lighttracer/pkg/core"
)

// PointLight is an isotropic point emitter
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3 // Radiant intensity (power per steradian)
}

// NewPointLight creates a point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Emit implements the Emitter interface. The position is fixed, so its
// density is one.
func (pl *PointLight) Emit(sampler core.Sampler) EmitterSample {
	return EmitterSample{
		Energy:       pl.Intensity,
		Point:        pl.Position,
		Direction:    core.SampleOnUnitSphere(sampler.Get2D()),
		DirectionPDF: core.UniformSpherePDF(),
		AreaPDF:      1.0,
	}
}

func (pl *PointLight) Type() EmitterType { return EmitterPoint }

func (pl *PointLight) IsDirac() bool { return true }

// Power is 4π · I
func (pl *PointLight) Power() float64 {
	return 4 * math.Pi * pl.Intensity.Luminance()
}
