package material

import (
	"math"

	"github.com/df07/go-lighttracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Sample implements the BxDF interface with cosine-weighted hemisphere sampling
func (l *Lambertian) Sample(si *SurfaceInteraction, mode TransportMode, sampler core.Sampler) BxDFSample {
	normal := facingNormal(si.FromDirection, si)
	direction := core.SampleCosineHemisphere(normal, sampler.Get2D())

	cosTheta := direction.Dot(normal)
	pdf := core.CosineHemispherePDF(cosTheta)

	// Shading normals can push the sample through the geometric surface
	if pdf <= 0 || !sameHemisphere(direction, si.FromDirection, si) {
		return BxDFSample{Event: EventNone}
	}

	return BxDFSample{
		Color:     l.Albedo.Multiply(1.0 / math.Pi),
		Direction: direction,
		Event:     EventDiffuse,
		PDF:       pdf,
		CosTheta:  cosTheta,
	}
}

// Evaluate implements the BxDF interface. The BRDF is constant: albedo / π
func (l *Lambertian) Evaluate(to, from core.Vec3, si *SurfaceInteraction, mode TransportMode) BxDFEval {
	if !sameHemisphere(to, from, si) {
		return BxDFEval{}
	}

	cosTheta := to.AbsDot(si.ShadingNormal)
	return BxDFEval{
		Color:    l.Albedo.Multiply(1.0 / math.Pi),
		PDF:      core.CosineHemispherePDF(cosTheta),
		CosTheta: cosTheta,
	}
}
