// Package renderer drives the light tracer over a full frame with a pool of
// workers.
package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/integrator"
	"github.com/df07/go-lighttracer/pkg/log"
	"github.com/df07/go-lighttracer/pkg/sensor"
)

var logger = log.New("renderer")

// builder is implemented by scenes that need a Build step before rendering
type builder interface {
	Built() bool
}

// Renderer renders one frame: every pixel task runs MaxSamples emission paths
type Renderer struct {
	scene  integrator.Scene
	camera integrator.Camera
	sensor *sensor.Sensor
	config core.Config
}

// New creates a renderer with a black sensor of the configured size
func New(sc integrator.Scene, cam integrator.Camera, config core.Config) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if b, ok := sc.(builder); ok && !b.Built() {
		return nil, ErrSceneNotBuilt
	}
	if cam == nil {
		return nil, ErrCameraNotDefined
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		scene:  sc,
		camera: cam,
		sensor: sensor.New(config.Width, config.Height),
		config: config,
	}, nil
}

// Render processes every row of the frame. When ctx is cancelled the rows
// already finished stay on the sensor and the partial stats are returned
// with an ErrInterrupted error.
func (r *Renderer) Render(ctx context.Context) (RenderStats, error) {
	start := time.Now()
	numWorkers := min(r.config.Workers(), r.config.Height)

	logger.Infof("rendering %dx%d with %d paths per pixel, max path length %d, %d workers",
		r.config.Width, r.config.Height, r.config.MaxSamples, r.config.MaxPathLength, numWorkers)

	pool := NewWorkerPool(r.scene, r.camera, r.sensor, r.config, numWorkers)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for y := 0; y < r.config.Height; y++ {
			if !pool.SubmitTask(ctx, RowTask{Y: y}) {
				return
			}
		}
	}()

	stats := RenderStats{
		Workers:       pool.NumWorkers(),
		WorkerDetails: make([]WorkerStats, pool.NumWorkers()),
	}
	for i := range stats.WorkerDetails {
		stats.WorkerDetails[i].ID = i
	}

	progressStep := max(r.config.Height/10, 1)
	for result := range pool.Results() {
		stats.Rows++
		stats.Pixels += r.config.Width
		stats.Paths += result.Stats.Paths
		stats.Scatters += result.Stats.Scatters
		stats.Splats += int64(result.Flushed)
		stats.WorkerDetails[result.WorkerID].add(1, result.Stats, result.Elapsed)

		if stats.Rows%progressStep == 0 {
			logger.Debugf("%d/%d rows done", stats.Rows, r.config.Height)
		}
	}

	_, stats.Dropped = r.sensor.Counts()
	stats.RenderTime = time.Since(start)

	if err := ctx.Err(); err != nil && stats.Rows < r.config.Height {
		logger.Warningf("render interrupted after %d/%d rows", stats.Rows, r.config.Height)
		return stats, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	logger.Infof("rendered %d paths in %s (%d splats, %d dropped)", stats.Paths, stats.RenderTime, stats.Splats, stats.Dropped)
	return stats, nil
}

// Sensor returns the accumulation target
func (r *Renderer) Sensor() *sensor.Sensor {
	return r.sensor
}

// Image returns the tone-mapped frame
func (r *Renderer) Image(exposure float64) *image.RGBA {
	return r.sensor.Image(r.config.MaxSamples, exposure)
}

// Config returns the render settings
func (r *Renderer) Config() core.Config {
	return r.config
}
