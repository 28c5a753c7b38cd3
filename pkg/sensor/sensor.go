// Package sensor accumulates light tracing contributions into an image.
package sensor

import (
	"image"
	"image/color"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/image/math/f32"

	"github.com/df07/go-lighttracer/pkg/core"
)

const numShards = 1024 // power of two so the shard is a mask

type shardLocks struct{ mu [numShards]sync.Mutex }

func (sl *shardLocks) lock(idx int)   { sl.mu[idx&(numShards-1)].Lock() }
func (sl *shardLocks) unlock(idx int) { sl.mu[idx&(numShards-1)].Unlock() }

// DisplayGamma is the gamma applied when exporting 8-bit images
const DisplayGamma = 2.2

// Sensor is a film of accumulated RGB contributions. Splash may be called
// from many goroutines at once.
type Sensor struct {
	width, height int
	pixels        []core.Vec3
	locks         shardLocks

	accepted int64
	dropped  int64
}

// New creates a black sensor
func New(width, height int) *Sensor {
	return &Sensor{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Splash adds color to the pixel containing the continuous position (x, y).
// Non-finite colors and positions outside the film are dropped.
func (s *Sensor) Splash(x, y float64, c core.Vec3) {
	px, py, ok := s.pixelIndex(x, y)
	if !ok || !c.IsFinite() {
		atomic.AddInt64(&s.dropped, 1)
		return
	}

	idx := py*s.width + px
	s.locks.lock(idx)
	s.pixels[idx] = s.pixels[idx].Add(c)
	s.locks.unlock(idx)
	atomic.AddInt64(&s.accepted, 1)
}

func (s *Sensor) pixelIndex(x, y float64) (int, int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || x < 0 || y < 0 {
		return 0, 0, false
	}
	fx, fy := math.Floor(x), math.Floor(y)
	if fx >= float64(s.width) || fy >= float64(s.height) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Pixel returns the accumulated sum for pixel (x, y)
func (s *Sensor) Pixel(x, y int) core.Vec3 {
	idx := y*s.width + x
	s.locks.lock(idx)
	defer s.locks.unlock(idx)
	return s.pixels[idx]
}

// Resolution returns the film size in pixels
func (s *Sensor) Resolution() (int, int) { return s.width, s.height }

// Counts returns how many splats were accumulated and how many were dropped
func (s *Sensor) Counts() (accepted, dropped int64) {
	return atomic.LoadInt64(&s.accepted), atomic.LoadInt64(&s.dropped)
}

// Total returns the sum over all pixels
func (s *Sensor) Total() core.Vec3 {
	var total core.Vec3
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			total = total.Add(s.Pixel(x, y))
		}
	}
	return total
}

// Frame returns the linear per-sample estimate of every pixel, row by row
func (s *Sensor) Frame(samplesPerPixel int) []f32.Vec3 {
	scale := 1.0 / float64(max(samplesPerPixel, 1))
	frame := make([]f32.Vec3, 0, len(s.pixels))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.Pixel(x, y).Multiply(scale)
			frame = append(frame, f32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)})
		}
	}
	return frame
}

// Image tone maps the film into an 8-bit image: average over the samples
// per pixel, scale by exposure, clamp and gamma correct
func (s *Sensor) Image(samplesPerPixel int, exposure float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	frame := s.Frame(samplesPerPixel)

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			v := frame[y*s.width+x]
			c := core.NewVec3(float64(v[0]), float64(v[1]), float64(v[2])).Multiply(exposure)
			img.SetRGBA(x, y, toRGBA(c))
		}
	}
	return img
}

func toRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0).GammaCorrect(DisplayGamma)
	return color.RGBA{
		R: uint8(math.Round(255 * c.X)),
		G: uint8(math.Round(255 * c.Y)),
		B: uint8(math.Round(255 * c.Z)),
		A: 255,
	}
}

// Reset clears the film and counters
func (s *Sensor) Reset() {
	for i := range s.pixels {
		s.locks.lock(i)
		s.pixels[i] = core.Vec3{}
		s.locks.unlock(i)
	}
	atomic.StoreInt64(&s.accepted, 0)
	atomic.StoreInt64(&s.dropped, 0)
}
