package geometry

import (
	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	MaterialID int       // Index of the triangle's material in the scene

	normal        core.Vec3     // Cached geometric normal
	vertexNormals *[3]core.Vec3 // Optional per-vertex shading normals
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, materialID int) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	return &Triangle{
		V0:         v0,
		V1:         v1,
		V2:         v2,
		MaterialID: materialID,
		normal:     edge1.Cross(edge2).Normalize(),
	}
}

// NewSmoothTriangle creates a triangle whose shading normal is interpolated
// from per-vertex normals
func NewSmoothTriangle(v0, v1, v2 core.Vec3, n0, n1, n2 core.Vec3, materialID int) *Triangle {
	t := NewTriangle(v0, v1, v2, materialID)
	t.vertexNormals = &[3]core.Vec3{n0.Normalize(), n1.Normalize(), n2.Normalize()}
	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	shadingNormal := t.normal
	if t.vertexNormals != nil {
		n := t.vertexNormals
		shadingNormal = n[0].Multiply(1 - u - v).Add(n[1].Multiply(u)).Add(n[2].Multiply(v)).Normalize()
	}

	// Orient both normals toward the side the ray came from
	frontFace := ray.Direction.Dot(t.normal) < 0
	normal := t.normal
	if !frontFace {
		normal = normal.Negate()
	}
	if shadingNormal.Dot(normal) < 0 {
		shadingNormal = shadingNormal.Negate()
	}

	return &material.SurfaceInteraction{
		Point:         ray.At(tParam),
		Normal:        normal,
		ShadingNormal: shadingNormal,
		FromDirection: ray.Direction.Negate(),
		T:             tParam,
		FrontFace:     frontFace,
		MaterialID:    t.MaterialID,
	}, true
}

// GetNormal returns the triangle's geometric normal
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// NewQuad splits the parallelogram corner, corner+u, corner+u+v, corner+v
// into two triangles sharing the normal u × v
func NewQuad(corner, u, v core.Vec3, materialID int) []*Triangle {
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	return []*Triangle{
		NewTriangle(corner, p1, p2, materialID),
		NewTriangle(corner, p2, p3, materialID),
	}
}
