package core

import "math"

// Frame is an orthonormal basis with Normal as its local z axis
type Frame struct {
	Tangent   Vec3
	Bitangent Vec3
	Normal    Vec3
}

// NewFrame builds an orthonormal basis around a unit normal
func NewFrame(normal Vec3) Frame {
	// Find a vector that is not parallel to the normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = UnitY
	} else {
		nt = UnitX
	}

	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return Frame{Tangent: tangent, Bitangent: bitangent, Normal: normal}
}

// ToWorld maps a direction expressed in the frame to world space
func (f Frame) ToWorld(local Vec3) Vec3 {
	return f.Tangent.Multiply(local.X).
		Add(f.Bitangent.Multiply(local.Y)).
		Add(f.Normal.Multiply(local.Z))
}

// ToLocal maps a world space direction into the frame
func (f Frame) ToLocal(world Vec3) Vec3 {
	return Vec3{
		X: world.Dot(f.Tangent),
		Y: world.Dot(f.Bitangent),
		Z: world.Dot(f.Normal),
	}
}
