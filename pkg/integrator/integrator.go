package integrator

import (
	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/lights"
	"github.com/df07/go-lighttracer/pkg/material"
)

// Scene is the read-only view of the world the integrators trace against
type Scene interface {
	// RandomEmitter selects the emitter that starts a path
	RandomEmitter(sampler core.Sampler) int
	// Emitter returns the emitter and its selection probability
	Emitter(id int) (lights.Emitter, float64)
	// Intersect finds the closest hit beyond ray.TMin
	Intersect(ray core.Ray) (bool, float64, material.SurfaceInteraction)
	// Occluded reports any hit between ray.TMin and maxDistance
	Occluded(ray core.Ray, maxDistance float64) bool
	Material(id int) material.BxDF
}

// Sensor accumulates contributions at continuous pixel positions. It must
// accept concurrent, out-of-order and out-of-range splats.
type Sensor interface {
	Splash(x, y float64, c core.Vec3)
}

// Camera is the part of a camera that light paths connect to
type Camera interface {
	SampleLens(sampler core.Sampler) core.Vec3
	Sensor(worldPoint, lensPoint core.Vec3) (float64, float64, bool)
	PDF(worldPoint, lensPoint core.Vec3) float64
}

// Integrator runs the light transport work for one pixel task
type Integrator interface {
	Process(x, y int)
}
