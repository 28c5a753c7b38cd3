package geometry

import (
	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)
}
