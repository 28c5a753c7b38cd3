package sensor

import (
	"github.com/df07/go-lighttracer/pkg/core"
)

// Splat is one contribution at a continuous sensor position
type Splat struct {
	X, Y  float64
	Color core.Vec3
}

// Splasher receives splats: a Sensor or another queue
type Splasher interface {
	Splash(x, y float64, c core.Vec3)
}

// SplatQueue buffers the contributions of one worker so the shared sensor
// is touched in batches. It is not safe for concurrent use; each worker owns
// its queue.
type SplatQueue struct {
	splats []Splat
}

// NewSplatQueue creates a queue with a pre-allocated buffer
func NewSplatQueue() *SplatQueue {
	return &SplatQueue{splats: make([]Splat, 0, 4096)}
}

// Splash records a contribution
func (sq *SplatQueue) Splash(x, y float64, c core.Vec3) {
	sq.splats = append(sq.splats, Splat{X: x, Y: y, Color: c})
}

// Splats returns the pending splats in insertion order. The slice is reused
// after the next Flush or Clear.
func (sq *SplatQueue) Splats() []Splat {
	return sq.splats
}

// Len returns the number of pending splats
func (sq *SplatQueue) Len() int {
	return len(sq.splats)
}

// Flush hands every pending splat to into, in order, and empties the queue.
// Returns the number of splats flushed.
func (sq *SplatQueue) Flush(into Splasher) int {
	n := len(sq.splats)
	for _, s := range sq.splats {
		into.Splash(s.X, s.Y, s.Color)
	}
	sq.Clear()
	return n
}

// Clear removes all pending splats, keeping the buffer
func (sq *SplatQueue) Clear() {
	sq.splats = sq.splats[:0]
}
