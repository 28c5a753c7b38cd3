package core

// RayEpsilon is the minimum hit distance used for rays leaving a surface and
// the slack trimmed from both ends of visibility segments.
const RayEpsilon = 1e-4

// Ray is a ray section: an origin, a unit direction and the minimum distance
// at which hits count. A new section is built at every vertex instead of
// mutating the previous one.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
}

// NewRay creates a ray that accepts hits from distance zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRaySection creates a ray that ignores hits closer than tMin
func NewRaySection(origin, direction Vec3, tMin float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
