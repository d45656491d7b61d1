package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/chartkit"
)

type scatterCmd struct {
	chartOptions
	period string
}

func (*scatterCmd) Name() string     { return "scatter" }
func (*scatterCmd) Synopsis() string { return "renders a scatter chart from a series file" }
func (*scatterCmd) Usage() string {
	return `ckt scatter [-title <t>] [-period <p>] [-o <out.svg>] [<series.json>]

  Renders unconnected points from a JSON series file (stdin by default).
  Accepts the same flags as the line command.

`
}

func (c *scatterCmd) SetFlags(f *flag.FlagSet) {
	c.chartOptions.setFlags(f)
	f.StringVar(&c.period, "period", "", "annotate the time axis: week, month, quarter or year")
}

func (c *scatterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return renderSeriesChart(&c.chartOptions, c.period, f.Arg(0), chartkit.NewScatterChart)
}
