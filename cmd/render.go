package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/renderer"
	"github.com/df07/go-lighttracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	config := core.Config{
		Width:         ctx.Int("width"),
		Height:        ctx.Int("height"),
		MaxSamples:    ctx.Int("spp"),
		MaxPathLength: ctx.Int("max-path-length"),
		NumWorkers:    ctx.Int("workers"),
	}
	if err := config.Validate(); err != nil {
		return err
	}

	sceneID := ctx.String("scene")
	sc, err := scene.Load(sceneID, config.Width, config.Height)
	if err != nil {
		return err
	}
	logger.Infof("loaded scene %q: %d shapes, %d emitters, camera %s", sceneID, sc.ShapeCount(), sc.EmitterCount(), sc.Camera)

	r, err := renderer.New(sc, sc.Camera, config)
	if err != nil {
		return err
	}

	// Ctrl+C stops after the rows in flight; the partial frame is still saved
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, renderErr := r.Render(sigCtx)
	if renderErr != nil {
		logger.Warning(renderErr)
	}

	out := ctx.String("out")
	if out == "" {
		out = filepath.Join("output", sceneID, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	}
	if err := writePNG(out, r.Image(ctx.Float64("exposure"))); err != nil {
		return err
	}
	logger.Noticef("render saved as %s", out)

	displayRenderStats(stats)
	return renderErr
}

func writePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return file.Close()
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Paths", "Scatters", "Splats", "Render time"})
	for _, ws := range stats.WorkerDetails {
		table.Append([]string{
			fmt.Sprintf("%d", ws.ID),
			fmt.Sprintf("%d", ws.Rows),
			fmt.Sprintf("%d", ws.Paths),
			fmt.Sprintf("%d", ws.Scatters),
			fmt.Sprintf("%d", ws.Splats),
			ws.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Rows),
		fmt.Sprintf("%d", stats.Paths),
		fmt.Sprintf("%d", stats.Scatters),
		fmt.Sprintf("%d (%d dropped)", stats.Splats, stats.Dropped),
		stats.RenderTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics (%.0f paths/s)\n%s", stats.PathsPerSecond(), buf.String())
}
