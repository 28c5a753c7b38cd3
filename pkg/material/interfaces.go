package material

import (
	"github.com/df07/go-lighttracer/pkg/core"
)

// TransportMode selects the direction convention used when scattering
type TransportMode int

const (
	// Radiance transport: paths travel from the camera toward lights
	Radiance TransportMode = iota
	// Importance transport: paths travel from lights toward the camera
	Importance
)

func (m TransportMode) String() string {
	if m == Importance {
		return "importance"
	}
	return "radiance"
}

// Event is the kind of scattering a BxDF sampled
type Event int

const (
	EventNone Event = iota
	EventEmission
	EventDiffuse
	EventReflect
)

func (e Event) String() string {
	switch e {
	case EventEmission:
		return "emission"
	case EventDiffuse:
		return "diffuse"
	case EventReflect:
		return "reflect"
	default:
		return "none"
	}
}

// SurfaceInteraction describes a ray-surface hit
type SurfaceInteraction struct {
	Point         core.Vec3 // Point of intersection
	Normal        core.Vec3 // Geometric normal, facing the incoming ray
	ShadingNormal core.Vec3 // Shading normal, same side as Normal
	FromDirection core.Vec3 // Unit direction from the hit back toward the ray origin
	T             float64   // Distance along the ray
	FrontFace     bool      // Whether the ray hit the front face
	MaterialID    int       // Index of the surface material in the scene
}

// BxDFSample is the result of sampling a scattering direction
type BxDFSample struct {
	Color     core.Vec3 // BxDF value; for EventReflect the cos/pdf ratio is folded in
	Direction core.Vec3 // Sampled direction, leaving the surface
	Event     Event
	PDF       float64 // Solid angle density of Direction (0 for Dirac events)
	CosTheta  float64 // |Direction · shading normal|
}

// BxDFEval is the result of evaluating a fixed direction pair
type BxDFEval struct {
	Color    core.Vec3
	PDF      float64
	CosTheta float64 // |to · shading normal|
}

// BxDF is the scattering contract the integrators consume
type BxDF interface {
	// Sample draws an outgoing direction for a path arriving along si.FromDirection
	Sample(si *SurfaceInteraction, mode TransportMode, sampler core.Sampler) BxDFSample

	// Evaluate returns the response for light leaving toward `to` having arrived from `from`
	Evaluate(to, from core.Vec3, si *SurfaceInteraction, mode TransportMode) BxDFEval
}
