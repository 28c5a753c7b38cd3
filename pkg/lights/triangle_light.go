package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-lighttracer/pkg/core"
)

// TriangleLight is a one-sided Lambertian area emitter. It emits into the
// hemisphere above the normal of (b-a) × (c-a).
type TriangleLight struct {
	position core.Vec3 // a
	edge1    core.Vec3 // b-a
	edge2    core.Vec3 // c-a
	normal   core.Vec3

	localSpace core.Frame

	Radiance core.Vec3

	area    float64
	areaPDF float64
}

// NewTriangleLight creates a triangle emitter with constant radiance.
// Zero-area triangles are rejected with ErrDegenerateEmitter.
func NewTriangleLight(a, b, c core.Vec3, radiance core.Vec3) (*TriangleLight, error) {
	edge1 := b.Subtract(a)
	edge2 := c.Subtract(a)
	crossProduct := edge1.Cross(edge2)

	area := 0.5 * crossProduct.Length()
	if !(area > 0) || math.IsInf(area, 0) {
		return nil, fmt.Errorf("%w: triangle %v %v %v has area %g", ErrDegenerateEmitter, a, b, c, area)
	}

	normal := crossProduct.Normalize()
	return &TriangleLight{
		position:   a,
		edge1:      edge1,
		edge2:      edge2,
		normal:     normal,
		localSpace: core.NewFrame(normal),
		Radiance:   radiance,
		area:       area,
		areaPDF:    1.0 / area,
	}, nil
}

// Emit implements the Emitter interface
func (tl *TriangleLight) Emit(sampler core.Sampler) EmitterSample {
	u, v := core.SampleUniformTriangle(sampler.Get2D())
	point := tl.position.Add(tl.edge1.Multiply(u)).Add(tl.edge2.Multiply(v))

	local := core.SampleCosineHemisphereLocal(sampler.Get2D())
	direction := tl.localSpace.ToWorld(local)

	return EmitterSample{
		Energy:       tl.Radiance.Multiply(local.Z),
		Point:        point,
		Direction:    direction,
		DirectionPDF: local.Z / math.Pi,
		AreaPDF:      tl.areaPDF,
	}
}

func (tl *TriangleLight) Type() EmitterType { return EmitterArea }

func (tl *TriangleLight) IsDirac() bool { return false }

// Power is the flux of a one-sided Lambertian emitter: π · A · L
func (tl *TriangleLight) Power() float64 {
	return math.Pi * tl.area * tl.Radiance.Luminance()
}

// Area returns the surface area of the triangle
func (tl *TriangleLight) Area() float64 {
	return tl.area
}

// Normal returns the emitting side's unit normal
func (tl *TriangleLight) Normal() core.Vec3 {
	return tl.normal
}

// Vertices returns a, b and c
func (tl *TriangleLight) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return tl.position, tl.position.Add(tl.edge1), tl.position.Add(tl.edge2)
}
