package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-lighttracer/pkg/camera"
	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/geometry"
	"github.com/df07/go-lighttracer/pkg/lights"
	"github.com/df07/go-lighttracer/pkg/log"
	"github.com/df07/go-lighttracer/pkg/material"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering. Queries are valid
// after Build; the scene is read-only from then on, so workers share it
// without locking.
type Scene struct {
	Name   string
	Camera *camera.Pinhole

	materials      []material.BxDF
	shapes         []geometry.Shape // Objects in the scene, searched linearly
	emitters       []lights.Emitter
	emitterSampler *lights.EmitterSampler

	err error // First error raised while adding elements
}

// New creates an empty scene
func New(name string) *Scene {
	return &Scene{Name: name}
}

// AddMaterial registers a material and returns its id
func (s *Scene) AddMaterial(m material.BxDF) int {
	s.materials = append(s.materials, m)
	return len(s.materials) - 1
}

func (s *Scene) checkMaterial(id int) bool {
	if id < 0 || id >= len(s.materials) {
		s.fail(fmt.Errorf("%w: id %d", ErrUnknownMaterial, id))
		return false
	}
	return true
}

func (s *Scene) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// AddShape adds a shape whose material id is already registered
func (s *Scene) AddShape(shape geometry.Shape) {
	s.shapes = append(s.shapes, shape)
}

// AddTriangle adds a triangle with the given material
func (s *Scene) AddTriangle(a, b, c core.Vec3, materialID int) {
	if s.checkMaterial(materialID) {
		s.AddShape(geometry.NewTriangle(a, b, c, materialID))
	}
}

// AddQuad adds the parallelogram spanned by u and v at corner
func (s *Scene) AddQuad(corner, u, v core.Vec3, materialID int) {
	if !s.checkMaterial(materialID) {
		return
	}
	for _, tri := range geometry.NewQuad(corner, u, v, materialID) {
		s.AddShape(tri)
	}
}

// AddBox adds an axis-aligned box between the corners min and max
func (s *Scene) AddBox(minCorner, maxCorner core.Vec3, materialID int) {
	d := maxCorner.Subtract(minCorner)
	dx := core.NewVec3(d.X, 0, 0)
	dy := core.NewVec3(0, d.Y, 0)
	dz := core.NewVec3(0, 0, d.Z)

	s.AddQuad(minCorner, dx, dy, materialID)
	s.AddQuad(minCorner.Add(dz), dx, dy, materialID)
	s.AddQuad(minCorner, dx, dz, materialID)
	s.AddQuad(minCorner.Add(dy), dx, dz, materialID)
	s.AddQuad(minCorner, dy, dz, materialID)
	s.AddQuad(minCorner.Add(dx), dy, dz, materialID)
}

// AddTriangleLight adds a one-sided area emitter and its emissive surface
func (s *Scene) AddTriangleLight(a, b, c core.Vec3, radiance core.Vec3) {
	light, err := lights.NewTriangleLight(a, b, c, radiance)
	if err != nil {
		s.fail(err)
		return
	}

	s.emitters = append(s.emitters, light)
	s.AddTriangle(a, b, c, s.AddMaterial(material.NewEmissive(radiance)))
}

// AddQuadLight adds a quad emitter as two triangle emitters facing u × v
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, radiance core.Vec3) {
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	s.AddTriangleLight(corner, p1, p2, radiance)
	s.AddTriangleLight(corner, p2, p3, radiance)
}

// AddPointLight adds a point emitter. It has no geometry.
func (s *Scene) AddPointLight(position, intensity core.Vec3) {
	s.emitters = append(s.emitters, lights.NewPointLight(position, intensity))
}

// Build validates the scene and prepares emitter selection
func (s *Scene) Build(weighting lights.Weighting) error {
	if s.err != nil {
		return s.err
	}
	if len(s.emitters) == 0 {
		return fmt.Errorf("%w: %q", ErrNoEmitters, s.Name)
	}

	sampler, err := lights.NewEmitterSampler(s.emitters, weighting)
	if err != nil {
		return err
	}
	s.emitterSampler = sampler

	logger.Debugf("built scene %q: %d shapes, %d materials, %d emitters %s", s.Name, len(s.shapes), len(s.materials), sampler.Count(), sampler)
	return nil
}

// RandomEmitter selects the emitter that starts the next emission path.
// Returns -1 until Build has succeeded.
func (s *Scene) RandomEmitter(sampler core.Sampler) int {
	if s.emitterSampler == nil {
		return -1
	}
	return s.emitterSampler.Sample(sampler.Get1D())
}

// Emitter returns an emitter and its selection probability, or (nil, 0) for
// an unknown id or a scene that is not built
func (s *Scene) Emitter(id int) (lights.Emitter, float64) {
	if s.emitterSampler == nil {
		return nil, 0
	}
	return s.emitterSampler.Emitter(id)
}

// Built reports whether Build has succeeded
func (s *Scene) Built() bool {
	return s.emitterSampler != nil
}

// Intersect finds the closest hit beyond ray.TMin
func (s *Scene) Intersect(ray core.Ray) (bool, float64, material.SurfaceInteraction) {
	var closest *material.SurfaceInteraction
	tMax := math.Inf(1)

	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray, ray.TMin, tMax); ok {
			closest = hit
			tMax = hit.T
		}
	}

	if closest == nil {
		return false, 0, material.SurfaceInteraction{}
	}
	return true, closest.T, *closest
}

// Occluded reports whether anything lies on the ray between TMin and maxDistance
func (s *Scene) Occluded(ray core.Ray, maxDistance float64) bool {
	for _, shape := range s.shapes {
		if _, ok := shape.Hit(ray, ray.TMin, maxDistance); ok {
			return true
		}
	}
	return false
}

// Material returns the material with the given id
func (s *Scene) Material(id int) material.BxDF {
	return s.materials[id]
}

// EmitterCount returns the number of emitters
func (s *Scene) EmitterCount() int {
	return len(s.emitters)
}

// ShapeCount returns the number of shapes
func (s *Scene) ShapeCount() int {
	return len(s.shapes)
}
