package cmd

import (
	"github.com/df07/go-lighttracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Emitters", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.DisplayName, info.Emitters, info.Description})
	}
	table.Render()
	return nil
}
