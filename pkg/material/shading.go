package material

import (
	"github.com/df07/go-lighttracer/pkg/core"
)

// ShadingCorrection restores reciprocity for importance transport on surfaces
// whose shading normal differs from the geometric normal (Veach, ch. 5.3).
// `sampled` is the direction leaving the vertex, `from` the direction back
// toward the previous vertex. Radiance transport needs no correction.
func ShadingCorrection(sampled, from core.Vec3, si *SurfaceInteraction, mode TransportMode) float64 {
	if mode == Radiance {
		return 1.0
	}

	num := from.AbsDot(si.ShadingNormal) * sampled.AbsDot(si.Normal)
	denom := from.AbsDot(si.Normal) * sampled.AbsDot(si.ShadingNormal)
	if denom == 0 {
		return 0.0
	}
	return num / denom
}

// facingNormal returns the shading normal flipped onto the side of `from`
func facingNormal(from core.Vec3, si *SurfaceInteraction) core.Vec3 {
	if from.Dot(si.ShadingNormal) < 0 {
		return si.ShadingNormal.Negate()
	}
	return si.ShadingNormal
}

// sameHemisphere reports whether a and b lie strictly on the same side of the geometric normal
func sameHemisphere(a, b core.Vec3, si *SurfaceInteraction) bool {
	return a.Dot(si.Normal)*b.Dot(si.Normal) > 0
}
