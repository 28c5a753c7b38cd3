package material

import (
	"github.com/df07/go-lighttracer/pkg/core"
)

// Mirror represents a perfect specular reflector
type Mirror struct {
	Albedo core.Vec3 // Reflectance
}

// NewMirror creates a new mirror material
func NewMirror(albedo core.Vec3) *Mirror {
	return &Mirror{Albedo: albedo}
}

// Sample implements the BxDF interface. The reflection is deterministic, so
// the returned color already carries the cos/pdf ratio and PDF is zero.
func (m *Mirror) Sample(si *SurfaceInteraction, mode TransportMode, sampler core.Sampler) BxDFSample {
	normal := facingNormal(si.FromDirection, si)
	reflected := reflect(si.FromDirection.Negate(), normal)

	if !sameHemisphere(reflected, si.FromDirection, si) {
		return BxDFSample{Event: EventNone}
	}

	return BxDFSample{
		Color:     m.Albedo, // No π factor for specular
		Direction: reflected,
		Event:     EventReflect,
		PDF:       0,
		CosTheta:  reflected.AbsDot(normal),
	}
}

// Evaluate implements the BxDF interface. A fixed direction pair has zero
// probability of matching the delta lobe.
func (m *Mirror) Evaluate(to, from core.Vec3, si *SurfaceInteraction, mode TransportMode) BxDFEval {
	return BxDFEval{}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
