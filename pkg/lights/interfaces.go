package lights

import (
	"errors"

	"github.com/df07/go-lighttracer/pkg/core"
)

// ErrDegenerateEmitter is returned for emitters without a usable surface
var ErrDegenerateEmitter = errors.New("lights: degenerate emitter geometry")

// EmitterType enumerates the supported kinds of light source
type EmitterType int

const (
	EmitterArea EmitterType = iota
	EmitterDirectional
	EmitterEnvironment
	EmitterPoint
)

func (t EmitterType) String() string {
	switch t {
	case EmitterArea:
		return "area"
	case EmitterDirectional:
		return "directional"
	case EmitterEnvironment:
		return "environment"
	case EmitterPoint:
		return "point"
	default:
		return "unknown"
	}
}

// EmitterSample is one particle leaving a light source
type EmitterSample struct {
	Energy       core.Vec3 // Emitted radiance at Point, already scaled by the emission profile
	Point        core.Vec3 // Point on the emitter
	Direction    core.Vec3 // Unit direction leaving the emitter
	DirectionPDF float64   // Solid angle density of Direction
	AreaPDF      float64   // Area density of Point
}

// Emitter is a light source that can start emission paths
type Emitter interface {
	// Emit samples a particle. Calls are independent and do not mutate the emitter.
	Emit(sampler core.Sampler) EmitterSample

	Type() EmitterType

	// IsDirac reports emitters with zero measure in the scene (point, directional).
	// They can never be hit by an intersection query, only sampled explicitly.
	IsDirac() bool

	// Power returns the total emitted flux, used for importance-weighted selection
	Power() float64
}
