// Package camera implements the pinhole camera used for both primary ray
// generation and importance transport from light paths.
//
// The virtual sensor is placed one unit in front of the eye, which keeps the
// importance density a function of direction only. Real sensors sit behind
// the pinhole; mirroring the plane in front of it flips nothing else.
package camera

import (
	"fmt"
	"math"

	"github.com/df07/go-lighttracer/pkg/core"
)

// SensorWidth is the physical sensor width in mm (full frame). The sensor
// height follows from the image aspect ratio, assuming square pixels.
const SensorWidth = 36.0

// minViewDistance is the smallest accepted distance between eye and target
const minViewDistance = 0.001

// Pinhole is an immutable pinhole camera
type Pinhole struct {
	position core.Vec3

	// View basis
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3

	width       int
	height      int
	aspectRatio float64

	focalLength float64 // In mm

	// Sensor half-extent scale at unit distance: SensorWidth / focalLength
	scalar float64

	// Sensor area at unit distance
	sensorArea float64
}

// NewPinhole creates a camera at position looking at lookAt
func NewPinhole(position, lookAt core.Vec3, focalLength float64, width, height int) (*Pinhole, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, width, height)
	}
	if !(focalLength > 0) || math.IsInf(focalLength, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidFocalLength, focalLength)
	}

	delta := lookAt.Subtract(position)
	if delta.Length() < minViewDistance {
		return nil, fmt.Errorf("%w: %v and %v", ErrDegenerateView, position, lookAt)
	}
	forward := delta.Normalize()

	// Swap world up when looking (almost) straight along it
	worldUp := core.UnitZ
	if math.Abs(forward.Dot(worldUp)) >= 0.99 {
		worldUp = core.UnitX
	}
	right := forward.Cross(worldUp).Normalize()
	// Image rows grow downward, so up points toward the bottom of the frame
	up := forward.Cross(right).Normalize()

	aspectRatio := float64(width) / float64(height)
	scalar := SensorWidth / focalLength

	return &Pinhole{
		position:    position,
		forward:     forward,
		right:       right,
		up:          up,
		width:       width,
		height:      height,
		aspectRatio: aspectRatio,
		focalLength: focalLength,
		scalar:      scalar,
		sensorArea:  scalar * scalar / aspectRatio,
	}, nil
}

// GenerateRay creates a primary ray through a random point of pixel (x, y).
// Pixel (x, y) covers [x, x+1) × [y, y+1) in sensor pixel coordinates.
func (c *Pinhole) GenerateRay(x, y int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	sx := (float64(x)+jitter.X)/float64(c.width) - 0.5
	sy := (float64(y)+jitter.Y)/float64(c.height) - 0.5

	direction := c.forward.
		Add(c.right.Multiply(c.scalar * sx)).
		Add(c.up.Multiply(c.scalar / c.aspectRatio * sy))

	return core.NewRay(c.position, direction.Normalize())
}

// SampleLens returns a point on the lens. A pinhole has a single one.
func (c *Pinhole) SampleLens(sampler core.Sampler) core.Vec3 {
	return c.position
}

// project maps a world point seen from lensPoint onto the normalized sensor
// plane. ok is false behind the camera or outside the [-0.5, 0.5]² extent.
func (c *Pinhole) project(worldPoint, lensPoint core.Vec3) (x, y, cosTheta float64, ok bool) {
	delta := worldPoint.Subtract(lensPoint)
	depth := delta.Dot(c.forward)
	if depth <= 0 {
		return 0, 0, 0, false
	}

	// Stretch the direction onto the plane at unit distance
	x = delta.Dot(c.right) / (depth * c.scalar)
	y = delta.Dot(c.up) / (depth * c.scalar / c.aspectRatio)
	if math.Abs(x) > 0.5 || math.Abs(y) > 0.5 {
		return 0, 0, 0, false
	}
	return x, y, depth / delta.Length(), true
}

// Sensor finds the pixel position where the connection from worldPoint
// through lensPoint lands. Coordinates are continuous; floor gives the pixel.
// Points on the far sensor edges land in the last row or column.
func (c *Pinhole) Sensor(worldPoint, lensPoint core.Vec3) (float64, float64, bool) {
	x, y, _, ok := c.project(worldPoint, lensPoint)
	if !ok {
		return 0, 0, false
	}
	width, height := float64(c.width), float64(c.height)
	px := math.Min((x+0.5)*width, math.Nextafter(width, 0))
	py := math.Min((y+0.5)*height, math.Nextafter(height, 0))
	return px, py, true
}

// PDF returns the importance density pdf_We of the connection toward
// worldPoint: cos³θ / A for the sensor area A at unit distance. It depends on
// direction only.
func (c *Pinhole) PDF(worldPoint, lensPoint core.Vec3) float64 {
	_, _, cosTheta, ok := c.project(worldPoint, lensPoint)
	if !ok {
		return 0.0
	}
	return cosTheta * cosTheta * cosTheta / c.sensorArea
}

// IsDirac is always true: the aperture has no area, so rays never hit it
func (c *Pinhole) IsDirac() bool { return true }

// Position returns the eye position
func (c *Pinhole) Position() core.Vec3 { return c.position }

// Basis returns the forward, right and up axes
func (c *Pinhole) Basis() (core.Vec3, core.Vec3, core.Vec3) {
	return c.forward, c.right, c.up
}

// Resolution returns the image size in pixels
func (c *Pinhole) Resolution() (int, int) { return c.width, c.height }

// SensorArea returns the virtual sensor area at unit distance
func (c *Pinhole) SensorArea() float64 { return c.sensorArea }

func (c *Pinhole) String() string {
	return fmt.Sprintf("Pinhole{pos=%v fwd=%v f=%gmm %dx%d}", c.position, c.forward, c.focalLength, c.width, c.height)
}
