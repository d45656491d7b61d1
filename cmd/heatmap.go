package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/chartkit"
)

type heatmapCmd struct {
	chartOptions
}

func (*heatmapCmd) Name() string     { return "heatmap" }
func (*heatmapCmd) Synopsis() string { return "renders a heatmap from a grid file" }
func (*heatmapCmd) Usage() string {
	return `ckt heatmap [-title <t>] [-o <out.svg>] [<grid.json>]

  Renders a colored grid from a JSON file (stdin by default):

  {"x": ["Jan", "Feb"], "y": ["BTC", "ETH"], "values": [[1, 2], [3, 4]]}

  Row i of values belongs to y[i], column j to x[j]. Cells are colored along
  a ramp from the smallest to the largest finite value.

`
}

func (c *heatmapCmd) SetFlags(f *flag.FlagSet) {
	c.chartOptions.setFlags(f)
}

// heatmapGrid is the JSON input of the heatmap command.
type heatmapGrid struct {
	X      []string    `json:"x"`
	Y      []string    `json:"y"`
	Values [][]float64 `json:"values"`
}

func readGrid(name string) (heatmapGrid, error) {
	var grid heatmapGrid
	content, err := readInput(name)
	if err != nil {
		return grid, err
	}
	if err := json.Unmarshal(content, &grid); err != nil {
		return grid, fmt.Errorf("invalid grid file: %w", err)
	}
	return grid, nil
}

func (c *heatmapCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		return fail("%v", err)
	}
	theme, err := c.theme(s)
	if err != nil {
		return fail("%v", err)
	}
	grid, err := readGrid(f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}

	out := c.outputFile(s)
	h := chartkit.NewHeatmap(scaled(theme, s, out), grid.X, grid.Y, grid.Values)
	h.Title = c.title

	if err := h.Export(out); err != nil {
		return fail("cannot export chart: %v", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return subcommands.ExitSuccess
}
