package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/chartkit"
	"github.com/etnz/chartkit/date"
)

type lineCmd struct {
	chartOptions
	period string
}

func (*lineCmd) Name() string     { return "line" }
func (*lineCmd) Synopsis() string { return "renders a line chart from a series file" }
func (*lineCmd) Usage() string {
	return `ckt line [-title <t>] [-period <p>] [-o <out.svg>] [<series.json>]

  Renders one line per series from a JSON series file (stdin by default).
  With -period, replaces the time ticks with period boundaries and centered
  period labels.

Usage Examples:
# Render a quarterly-annotated line chart.
$ ckt fetch -crypto BTC -series | ckt line -period quarter -o btc.svg

`
}

func (c *lineCmd) SetFlags(f *flag.FlagSet) {
	c.chartOptions.setFlags(f)
	f.StringVar(&c.period, "period", "", "annotate the time axis: week, month, quarter or year")
}

func (c *lineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return renderSeriesChart(&c.chartOptions, c.period, f.Arg(0), chartkit.NewLineChart)
}

// renderSeriesChart is the shared execution of the line and scatter commands.
func renderSeriesChart(o *chartOptions, period, input string, newFigure func(chartkit.Theme, ...chartkit.TimeSeries) *chartkit.Figure) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		return fail("%v", err)
	}
	theme, err := o.theme(s)
	if err != nil {
		return fail("%v", err)
	}
	series, err := readSeries(input)
	if err != nil {
		return fail("%v", err)
	}

	out := o.outputFile(s)
	fig := newFigure(scaled(theme, s, out), series...)
	o.apply(fig)

	if period != "" {
		p, err := date.ParsePeriod(period)
		if err != nil {
			return fail("%v", err)
		}
		if err := fig.AnnotatePeriods(p); err != nil {
			return fail("cannot annotate periods: %v", err)
		}
	}

	if err := fig.Export(out); err != nil {
		return fail("cannot export chart: %v", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return subcommands.ExitSuccess
}
