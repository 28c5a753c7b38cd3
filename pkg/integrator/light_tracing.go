package integrator

import (
	"sync/atomic"

	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/material"
)

// Termination tells why an emission path stopped
type Termination int

const (
	TerminatedNoEmitter Termination = iota // No emitter or a zero emission density
	TerminatedMiss                         // The ray left the scene
	TerminatedAbsorbed                     // Non-scattering or emission event
	TerminatedDepth                        // Path length cap reached
)

func (t Termination) String() string {
	switch t {
	case TerminatedMiss:
		return "miss"
	case TerminatedAbsorbed:
		return "absorbed"
	case TerminatedDepth:
		return "depth"
	default:
		return "no-emitter"
	}
}

// PathStats summarizes one emission path
type PathStats struct {
	Vertices    int // Surface hits
	Scatters    int // Diffuse and reflect events
	Splats      int // Camera connections splatted onto the sensor
	Termination Termination
}

// Stats are running totals over every path a tracer has traced
type Stats struct {
	Paths    int64
	Scatters int64
	Splats   int64
}

// LightTracer traces particles from the emitters and connects every diffuse
// vertex to the camera. Paths carry importance transport; there is no
// Russian roulette and no weighting against other techniques.
type LightTracer struct {
	camera Camera
	sensor Sensor
	scene  Scene
	config core.Config

	paths    atomic.Int64
	scatters atomic.Int64
	splats   atomic.Int64
}

// NewLightTracer creates a light tracer splatting into sensor
func NewLightTracer(camera Camera, sensor Sensor, scene Scene, config core.Config) *LightTracer {
	return &LightTracer{
		camera: camera,
		sensor: sensor,
		scene:  scene,
		config: config,
	}
}

// Process traces MaxSamples emission paths with a sampler seeded from the
// pixel coordinates. The pixel only picks the seed: contributions land
// wherever the paths are seen from the camera.
func (lt *LightTracer) Process(x, y int) {
	sampler := core.NewPixelSampler(x, y)
	for s := 0; s < lt.config.MaxSamples; s++ {
		stats := lt.traceEmissionPath(sampler)
		lt.paths.Add(1)
		lt.scatters.Add(int64(stats.Scatters))
		lt.splats.Add(int64(stats.Splats))
	}
}

// Stats returns the totals accumulated so far
func (lt *LightTracer) Stats() Stats {
	return Stats{
		Paths:    lt.paths.Load(),
		Scatters: lt.scatters.Load(),
		Splats:   lt.splats.Load(),
	}
}

// traceEmissionPath follows one particle from an emitter until it leaves the
// scene, stops scattering or exceeds the path length cap
func (lt *LightTracer) traceEmissionPath(sampler core.Sampler) PathStats {
	var stats PathStats

	emitter, selectProbability := lt.scene.Emitter(lt.scene.RandomEmitter(sampler))
	if emitter == nil || selectProbability <= 0 {
		stats.Termination = TerminatedNoEmitter
		return stats
	}

	emission := emitter.Emit(sampler)
	density := selectProbability * emission.DirectionPDF * emission.AreaPDF
	if !(density > 0) {
		stats.Termination = TerminatedNoEmitter
		return stats
	}

	// Energy per unit of the joint area × solid angle sample
	throughput := emission.Energy.Multiply(1.0 / density)

	ray := core.NewRaySection(emission.Point, emission.Direction, core.RayEpsilon)
	depth := 1

	// The lens point stays fixed for all connections of this path
	lensPoint := lt.camera.SampleLens(sampler)

	for {
		hit, _, si := lt.scene.Intersect(ray)
		if !hit {
			stats.Termination = TerminatedMiss
			return stats
		}
		stats.Vertices++

		bxdf := lt.scene.Material(si.MaterialID)
		sample := bxdf.Sample(&si, material.Importance, sampler)

		switch sample.Event {
		case material.EventDiffuse:
			stats.Scatters++
			if lt.connectToCamera(throughput, &si, bxdf, lensPoint) {
				stats.Splats++
			}

			correction := material.ShadingCorrection(sample.Direction, si.FromDirection, &si, material.Importance)
			throughput = throughput.MultiplyVec(sample.Color).Multiply(sample.CosTheta / sample.PDF * correction)

		case material.EventReflect:
			stats.Scatters++
			// cos/pdf is already folded into the color
			correction := material.ShadingCorrection(sample.Direction, si.FromDirection, &si, material.Importance)
			throughput = throughput.MultiplyVec(sample.Color).Multiply(correction)

		default:
			stats.Termination = TerminatedAbsorbed
			return stats
		}

		depth++
		if depth > lt.config.MaxPathLength {
			stats.Termination = TerminatedDepth
			return stats
		}

		ray = core.NewRaySection(si.Point, sample.Direction, core.RayEpsilon)
	}
}

// connectToCamera splats the contribution of a diffuse vertex seen through
// lensPoint. Returns false when the vertex is outside the frame or occluded.
func (lt *LightTracer) connectToCamera(throughput core.Vec3, si *material.SurfaceInteraction, bxdf material.BxDF, lensPoint core.Vec3) bool {
	x, y, ok := lt.camera.Sensor(si.Point, lensPoint)
	if !ok {
		return false
	}

	delta := si.Point.Subtract(lensPoint)
	distance := delta.Length()
	direction := delta.Multiply(1.0 / distance) // lens toward vertex

	// Trim epsilon from both ends so neither endpoint surface occludes
	visibility := core.NewRaySection(lensPoint, direction, core.RayEpsilon)
	if lt.scene.Occluded(visibility, distance-2*core.RayEpsilon) {
		return false
	}

	eval := bxdf.Evaluate(direction.Negate(), si.FromDirection, si, material.Importance)
	correction := material.ShadingCorrection(direction, si.FromDirection, si, material.Importance)

	// Image to surface factor (Veach): cos at the vertex and the camera
	// importance, converted to area measure by the inverse square distance
	weight := correction * eval.CosTheta * lt.camera.PDF(si.Point, lensPoint) / (distance * distance)
	lt.sensor.Splash(x, y, throughput.MultiplyVec(eval.Color).Multiply(weight))
	return true
}
