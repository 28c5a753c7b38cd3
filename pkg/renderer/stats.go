package renderer

import (
	"time"

	"github.com/df07/go-lighttracer/pkg/integrator"
)

// WorkerStats holds the work done by one worker
type WorkerStats struct {
	ID       int
	Rows     int
	Paths    int64
	Scatters int64
	Splats   int64 // Splats flushed to the sensor

	// Time spent tracing, excluding waits for tasks
	RenderTime time.Duration
}

func (ws *WorkerStats) add(rows int, tracer integrator.Stats, elapsed time.Duration) {
	ws.Rows += rows
	ws.Paths += tracer.Paths
	ws.Scatters += tracer.Scatters
	ws.Splats += tracer.Splats
	ws.RenderTime += elapsed
}

// RenderStats contains statistics about a finished (or interrupted) render
type RenderStats struct {
	Rows     int   // Rows completed
	Pixels   int   // Pixel tasks completed
	Paths    int64 // Emission paths traced
	Scatters int64 // Scattering events along those paths
	Splats   int64 // Camera connections splatted
	Dropped  int64 // Splats the sensor rejected

	Workers       int
	WorkerDetails []WorkerStats

	// Wall time for the whole frame
	RenderTime time.Duration
}

// PathsPerSecond returns the tracing throughput
func (rs RenderStats) PathsPerSecond() float64 {
	if rs.RenderTime <= 0 {
		return 0
	}
	return float64(rs.Paths) / rs.RenderTime.Seconds()
}
