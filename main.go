package main

import (
	"fmt"
	"os"

	"github.com/df07/go-lighttracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// The default version flag also claims -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lighttracer"
	app.Usage = "render scenes by tracing light paths into a pinhole camera"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Trace max-path-length bounded particle paths from the scene emitters and
connect every diffuse vertex to the camera. Each pixel task traces spp paths.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "built-in scene to render (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 400,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "emission paths per pixel task",
				},
				cli.IntFlag{
					Name:  "max-path-length",
					Value: 5,
					Usage: "maximum number of scattering events per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = number of CPUs)",
				},
				cli.Float64Flag{
					Name:  "exposure",
					Value: 1.0,
					Usage: "camera exposure for tone-mapping",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame (default output/<scene>/render_<timestamp>.png)",
				},
			},
			Action: cmd.RenderFrame,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
