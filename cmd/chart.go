package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/chartkit"
	"github.com/etnz/chartkit/settings"
)

// chartOptions are the flags shared by every chart rendering subcommand.
type chartOptions struct {
	title  string
	xlabel string
	ylabel string
	size   string
	margin string
	output string
}

func (o *chartOptions) setFlags(f *flag.FlagSet) {
	f.StringVar(&o.title, "title", "", "chart title")
	f.StringVar(&o.xlabel, "x", "", "x-axis label")
	f.StringVar(&o.ylabel, "y", "", "y-axis label")
	f.StringVar(&o.size, "size", "", "size preset: full, half, 18:9, 3:1, 1:1")
	f.StringVar(&o.margin, "margin", "", "margin preset: minimal, standard, wide")
	f.StringVar(&o.output, "o", "", "output file, the extension selects svg or png")
}

// theme builds the figure theme from the options and the settings defaults.
func (o *chartOptions) theme(s settings.Settings) (chartkit.Theme, error) {
	t := chartkit.DefaultTheme()
	t.Size = chartkit.Size{Width: s.ChartWidth, Height: s.ChartHeight}
	if o.size != "" {
		size, ok := chartkit.SizePreset(o.size)
		if !ok {
			return t, fmt.Errorf("unknown size preset %q", o.size)
		}
		t.Size = size
	}
	if o.margin != "" {
		margin, ok := chartkit.MarginPreset(o.margin)
		if !ok {
			return t, fmt.Errorf("unknown margin preset %q", o.margin)
		}
		t.Margin = margin
	}
	return t, nil
}

// outputFile returns the export destination, defaulting to chart.<format>
// from the settings.
func (o *chartOptions) outputFile(s settings.Settings) string {
	if o.output != "" {
		return o.output
	}
	return "chart." + s.ExportFormat
}

// scaled applies the export scale to raster outputs. Vector formats keep the
// base size, they scale at display time.
func scaled(t chartkit.Theme, s settings.Settings, out string) chartkit.Theme {
	if s.ExportScale > 1 && strings.EqualFold(filepath.Ext(out), ".png") {
		t.Size.Width *= s.ExportScale
		t.Size.Height *= s.ExportScale
	}
	return t
}

// apply copies the labeling options onto the figure.
func (o *chartOptions) apply(fig *chartkit.Figure) {
	fig.Title = o.title
	fig.XLabel = o.xlabel
	fig.YLabel = o.ylabel
}

// readInput opens the input file named by the first positional argument.
// An empty name or "-" reads stdin.
func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// readSeries decodes a JSON array of time series:
// [{"name": ..., "dates": [...], "values": [...]}, ...]
func readSeries(name string) ([]chartkit.TimeSeries, error) {
	content, err := readInput(name)
	if err != nil {
		return nil, err
	}
	var series []chartkit.TimeSeries
	if err := json.Unmarshal(content, &series); err != nil {
		return nil, fmt.Errorf("invalid series file: %w", err)
	}
	for _, s := range series {
		if len(s.Dates) != len(s.Values) {
			return nil, fmt.Errorf("series %q has %d dates for %d values", s.Name, len(s.Dates), len(s.Values))
		}
	}
	return series, nil
}

// readBars decodes a JSON array of labeled values:
// [{"label": ..., "value": ...}, ...]
func readBars(name string) ([]chartkit.BarValue, error) {
	content, err := readInput(name)
	if err != nil {
		return nil, err
	}
	var bars []chartkit.BarValue
	if err := json.Unmarshal(content, &bars); err != nil {
		return nil, fmt.Errorf("invalid bars file: %w", err)
	}
	return bars, nil
}
