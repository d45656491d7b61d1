package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/chartkit"
)

type barsCmd struct {
	chartOptions
	horizontal bool
}

func (*barsCmd) Name() string     { return "bars" }
func (*barsCmd) Synopsis() string { return "renders a bar chart from a labeled values file" }
func (*barsCmd) Usage() string {
	return `ckt bars [-title <t>] [-horizontal] [-o <out.svg>] [<bars.json>]

  Renders one bar per labeled value from a JSON file (stdin by default).
  Bars grow vertically by default, along the x-axis with -horizontal.

`
}

func (c *barsCmd) SetFlags(f *flag.FlagSet) {
	c.chartOptions.setFlags(f)
	f.BoolVar(&c.horizontal, "horizontal", false, "draw horizontal bars")
}

func (c *barsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		return fail("%v", err)
	}
	theme, err := c.theme(s)
	if err != nil {
		return fail("%v", err)
	}
	bars, err := readBars(f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}

	out := c.outputFile(s)
	fig := chartkit.NewBarChart(scaled(theme, s, out), c.horizontal, bars...)
	c.apply(fig)

	if err := fig.Export(out); err != nil {
		return fail("cannot export chart: %v", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return subcommands.ExitSuccess
}
