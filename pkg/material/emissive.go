package material

import (
	"github.com/df07/go-lighttracer/pkg/core"
)

// Emissive tags the surface of a light source. Emission itself is sampled
// through the emitter; particles that reach this surface stop here.
type Emissive struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Sample implements the BxDF interface for emissive materials
func (e *Emissive) Sample(si *SurfaceInteraction, mode TransportMode, sampler core.Sampler) BxDFSample {
	return BxDFSample{Event: EventEmission}
}

// Evaluate implements the BxDF interface. Lights don't reflect - they only emit
func (e *Emissive) Evaluate(to, from core.Vec3, si *SurfaceInteraction, mode TransportMode) BxDFEval {
	return BxDFEval{}
}

// Absorber swallows every particle that reaches it
type Absorber struct{}

// NewAbsorber creates a black, non-scattering material
func NewAbsorber() *Absorber {
	return &Absorber{}
}

func (a *Absorber) Sample(si *SurfaceInteraction, mode TransportMode, sampler core.Sampler) BxDFSample {
	return BxDFSample{Event: EventNone}
}

func (a *Absorber) Evaluate(to, from core.Vec3, si *SurfaceInteraction, mode TransportMode) BxDFEval {
	return BxDFEval{}
}
