package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/integrator"
	"github.com/df07/go-lighttracer/pkg/sensor"
)

// RowTask asks a worker to process every pixel of one image row
type RowTask struct {
	Y int
}

// RowResult reports a finished row
type RowResult struct {
	Y        int
	WorkerID int
	Stats    integrator.Stats // Totals for this row only
	Flushed  int              // Splats moved to the sensor
	Elapsed  time.Duration
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker owns a light tracer that splats into a private queue. The queue is
// flushed into the shared sensor after each row.
type Worker struct {
	ID     int
	tracer *integrator.LightTracer
	queue  *sensor.SplatQueue
	target sensor.Splasher
	width  int
}

// NewWorkerPool creates numWorkers workers. Queues are sized for a full frame
// so that no worker ever blocks on a result.
func NewWorkerPool(sc integrator.Scene, cam integrator.Camera, target sensor.Splasher, config core.Config, numWorkers int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, config.Height),
		resultQueue: make(chan RowResult, config.Height),
	}

	for i := 0; i < numWorkers; i++ {
		queue := sensor.NewSplatQueue()
		wp.workers = append(wp.workers, &Worker{
			ID:     i,
			tracer: integrator.NewLightTracer(cam, queue, sc, config),
			queue:  queue,
			target: target,
			width:  config.Width,
		})
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, wp.taskQueue, wp.resultQueue, &wp.wg)
	}

	// Close the result queue once every worker has drained the tasks
	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()
}

// SubmitTask submits a row task, giving up when ctx is done
func (wp *WorkerPool) SubmitTask(ctx context.Context, task RowTask) bool {
	select {
	case wp.taskQueue <- task:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close signals that no more tasks will be submitted
func (wp *WorkerPool) Close() {
	close(wp.taskQueue)
}

// Results returns the result stream; it is closed after the last worker exits
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return len(wp.workers)
}

// run is the main worker loop. Cancellation is checked between rows.
func (w *Worker) run(ctx context.Context, tasks <-chan RowTask, results chan<- RowResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range tasks {
		if ctx.Err() != nil {
			continue // Drain remaining tasks without rendering
		}

		start := time.Now()
		before := w.tracer.Stats()
		for x := 0; x < w.width; x++ {
			w.tracer.Process(x, task.Y)
		}
		after := w.tracer.Stats()
		flushed := w.queue.Flush(w.target)

		results <- RowResult{
			Y:        task.Y,
			WorkerID: w.ID,
			Stats: integrator.Stats{
				Paths:    after.Paths - before.Paths,
				Scatters: after.Scatters - before.Scatters,
				Splats:   after.Splats - before.Splats,
			},
			Flushed: flushed,
			Elapsed: time.Since(start),
		}
	}
}
