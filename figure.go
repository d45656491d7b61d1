package chartkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/chartkit/date"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Kind is the type of figure to render.
type Kind int

const (
	Line Kind = iota
	Scatter
	Bar
)

// Format is a supported export format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// TimeSeries is a named trace of dated values.
type TimeSeries struct {
	Name   string      `json:"name"`
	Dates  []date.Date `json:"dates"`
	Values []float64   `json:"values"`
}

// BarValue is one bar of a bar chart.
type BarValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Figure describes a styled chart: its kind, orientation, traces and theme.
// It is the unit handed to Render or Export.
type Figure struct {
	Kind       Kind
	Horizontal bool // bar charts only
	Theme      Theme
	Title      string
	XLabel     string
	YLabel     string
	Series     []TimeSeries // line and scatter figures
	Bars       []BarValue   // bar figures

	ticks  []BoundaryTick
	labels []PeriodLabel
	window date.Range
	marked bool
}

// NewLineChart returns a line figure for the given traces.
func NewLineChart(t Theme, series ...TimeSeries) *Figure {
	return &Figure{Kind: Line, Theme: t, Series: series}
}

// NewScatterChart returns a scatter figure for the given traces.
func NewScatterChart(t Theme, series ...TimeSeries) *Figure {
	return &Figure{Kind: Scatter, Theme: t, Series: series}
}

// NewBarChart returns a bar figure. Horizontal bars grow along the x-axis.
func NewBarChart(t Theme, horizontal bool, bars ...BarValue) *Figure {
	return &Figure{Kind: Bar, Theme: t, Horizontal: horizontal, Bars: bars}
}

// ValueAxis returns the axis carrying the plotted values: the x-axis for a
// horizontal bar chart, the y-axis for everything else. This is the axis the
// buffered range applies to.
func (f *Figure) ValueAxis() Axis {
	if f.Kind == Bar && f.Horizontal {
		return AxisX
	}
	return AxisY
}

// Values returns every value plotted on the value axis, across all traces.
func (f *Figure) Values() []float64 {
	if f.Kind == Bar {
		out := make([]float64, len(f.Bars))
		for i, b := range f.Bars {
			out[i] = b.Value
		}
		return out
	}
	var out []float64
	for _, s := range f.Series {
		out = append(out, s.Values...)
	}
	return out
}

// extent returns the date range covered by the figure's traces.
func (f *Figure) extent() (date.Range, bool) {
	var r date.Range
	found := false
	for _, s := range f.Series {
		for _, d := range s.Dates {
			if !found {
				r = date.Range{From: d, To: d}
				found = true
				continue
			}
			if d.Before(r.From) {
				r.From = d
			}
			if d.After(r.To) {
				r.To = d
			}
		}
	}
	return r, found
}

// AnnotatePeriods computes period marks over the date extent of the figure's
// traces and attaches them to the time axis: boundary ticks without text, and
// midpoint labels drawn below the plot area. The bottom margin is raised to
// at least MinAnnotatedBottomMargin.
func (f *Figure) AnnotatePeriods(p date.Period, opts ...MarkOption) error {
	if f.Kind == Bar {
		return fmt.Errorf("bar charts have no time axis to annotate")
	}
	window, ok := f.extent()
	if !ok {
		return fmt.Errorf("no dated values to annotate")
	}
	ticks, labels, err := PeriodMarks(window.From, window.To, p, opts...)
	if err != nil {
		return err
	}
	f.ticks, f.labels, f.window, f.marked = ticks, labels, window, true
	return nil
}

// Marks returns the period marks attached by AnnotatePeriods, if any.
func (f *Figure) Marks() ([]BoundaryTick, []PeriodLabel) { return f.ticks, f.labels }

// rendererProvider maps a format to its go-chart renderer.
func rendererProvider(format Format) (chart.RendererProvider, error) {
	switch format {
	case SVG:
		return chart.SVG, nil
	case PNG:
		return chart.PNG, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// exportFile renders to a file, deriving the format from the extension.
func exportFile(filename string, render func(io.Writer, Format) error) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	format := Format(ext)
	if format != SVG && format != PNG {
		return fmt.Errorf("unsupported export extension %q (want .svg or .png)", filepath.Ext(filename))
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	return render(out, format)
}

// Render draws the figure to w in the given format.
func (f *Figure) Render(w io.Writer, format Format) error {
	provider, err := rendererProvider(format)
	if err != nil {
		return err
	}

	switch f.Kind {
	case Line, Scatter:
		c, err := f.chart()
		if err != nil {
			return err
		}
		return c.Render(provider, w)
	case Bar:
		if f.Horizontal {
			return f.horizontalBars().Render(provider, w)
		}
		return f.verticalBars().Render(provider, w)
	default:
		return fmt.Errorf("unknown figure kind %d", f.Kind)
	}
}

// Export renders the figure to a file, deriving the format from the extension.
func (f *Figure) Export(filename string) error {
	return exportFile(filename, f.Render)
}

func timeToFloat64(t time.Time) float64 { return float64(t.UnixNano()) }

// chart builds the go-chart figure for line and scatter kinds.
func (f *Figure) chart() (chart.Chart, error) {
	t := f.Theme
	palette := Palette(len(f.Series))

	var series []chart.Series
	named := 0
	for i, s := range f.Series {
		if len(s.Dates) != len(s.Values) {
			return chart.Chart{}, fmt.Errorf("trace %q has %d dates for %d values", s.Name, len(s.Dates), len(s.Values))
		}
		if s.Name != "" {
			named++
		}
		xs := make([]time.Time, len(s.Dates))
		for j, d := range s.Dates {
			xs[j] = d.Time()
		}
		st := chart.Style{StrokeColor: palette[i], StrokeWidth: 2}
		if f.Kind == Scatter {
			st = chart.Style{StrokeWidth: chart.Disabled, DotColor: palette[i], DotWidth: 5}
		}
		series = append(series, chart.TimeSeries{Name: s.Name, Style: st, XValues: xs, YValues: s.Values})
	}

	c := chart.Chart{
		Title:      f.Title,
		TitleStyle: t.textStyle(),
		Width:      t.Size.Width,
		Height:     t.Size.Height,
		Background: chart.Style{FillColor: t.Background, Padding: t.padding()},
		Canvas:     chart.Style{FillColor: t.Background},
		XAxis: chart.XAxis{
			Name:           f.XLabel,
			NameStyle:      t.textStyle(),
			Style:          t.axisStyle(),
			ValueFormatter: chart.TimeValueFormatterWithFormat(date.Format),
		},
		YAxis: chart.YAxis{
			Name:           f.YLabel,
			NameStyle:      t.textStyle(),
			Style:          t.axisStyle(),
			GridMajorStyle: t.gridStyle(),
		},
		Series: series,
	}

	if span, ok := BufferedRange(f.Values()); ok {
		c.YAxis.Range = &chart.ContinuousRange{Min: span.Min, Max: span.Max}
	}

	if f.marked {
		c.XAxis.Range = &chart.ContinuousRange{
			Min: timeToFloat64(f.window.From.Time()),
			Max: timeToFloat64(f.window.To.Time()),
		}
		c.XAxis.Ticks = boundaryTicks(f.ticks)
		if c.Background.Padding.Bottom < MinAnnotatedBottomMargin {
			c.Background.Padding.Bottom = MinAnnotatedBottomMargin
		}
		c.Elements = append(c.Elements, periodLabelElement(f.labels, f.window, t))
	}

	if named > 1 {
		c.Elements = append(c.Elements, chart.Legend(&c, t.textStyle()))
	}
	return c, nil
}

// boundaryTicks converts boundary marks to go-chart ticks with empty label
// strings, so the ticks draw without any text of their own.
func boundaryTicks(ticks []BoundaryTick) []chart.Tick {
	out := make([]chart.Tick, 0, len(ticks))
	for _, bt := range ticks {
		out = append(out, chart.Tick{Value: timeToFloat64(bt.On.Time()), Label: ""})
	}
	return out
}

// periodLabelElement draws midpoint labels below the plot area, each centered
// on its anchor date.
func periodLabelElement(labels []PeriodLabel, window date.Range, t Theme) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		xr := chart.ContinuousRange{
			Min:    timeToFloat64(window.From.Time()),
			Max:    timeToFloat64(window.To.Time()),
			Domain: canvasBox.Width(),
		}
		r.SetFont(defaults.GetFont())
		r.SetFontSize(t.FontSize)
		r.SetFontColor(t.Text)
		for _, l := range labels {
			x := canvasBox.Left + xr.Translate(timeToFloat64(l.On.Time()))
			tb := r.MeasureText(l.Text)
			r.Text(l.Text, x-tb.Width()/2, canvasBox.Bottom+int(l.YOffset))
		}
	}
}

// verticalBars builds the go-chart figure for a vertical bar chart.
func (f *Figure) verticalBars() chart.BarChart {
	t := f.Theme
	palette := Palette(len(f.Bars))

	bars := make([]chart.Value, 0, len(f.Bars))
	for i, b := range f.Bars {
		bars = append(bars, chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{FillColor: palette[i], StrokeColor: palette[i]},
		})
	}

	bc := chart.BarChart{
		Title:      f.Title,
		TitleStyle: t.textStyle(),
		Width:      t.Size.Width,
		Height:     t.Size.Height,
		Background: chart.Style{FillColor: t.Background, Padding: t.padding()},
		Canvas:     chart.Style{FillColor: t.Background},
		XAxis:      t.axisStyle(),
		YAxis: chart.YAxis{
			Name:           f.YLabel,
			NameStyle:      t.textStyle(),
			Style:          t.axisStyle(),
			GridMajorStyle: t.gridStyle(),
		},
		Bars: bars,
	}
	if span, ok := BufferedRange(f.Values()); ok {
		bc.YAxis.Range = &chart.ContinuousRange{Min: span.Min, Max: span.Max}
	}
	return bc
}

// horizontalBars builds the go-chart figure for a horizontal bar chart.
//
// go-chart's stacked bar chart scales each bar's segments relative to their
// total, so every bar carries a transparent filler segment up to the buffered
// maximum: bar lengths stay proportional to their values, and the pad keeps
// the longest bar clear of the plot edge.
func (f *Figure) horizontalBars() chart.StackedBarChart {
	t := f.Theme
	palette := Palette(len(f.Bars))

	span, ok := BufferedRange(f.Values())
	bars := make([]chart.StackedBar, 0, len(f.Bars))
	for i, b := range f.Bars {
		values := []chart.Value{{
			Value: b.Value,
			Style: chart.Style{FillColor: palette[i], StrokeColor: palette[i]},
		}}
		if ok && span.Max > b.Value {
			values = append(values, chart.Value{
				Value: span.Max - b.Value,
				Style: chart.Style{
					FillColor:   drawing.ColorTransparent,
					StrokeColor: drawing.ColorTransparent,
				},
			})
		}
		bars = append(bars, chart.StackedBar{Name: b.Label, Values: values})
	}

	return chart.StackedBarChart{
		Title:        f.Title,
		TitleStyle:   t.textStyle(),
		Width:        t.Size.Width,
		Height:       t.Size.Height,
		Background:   chart.Style{FillColor: t.Background, Padding: t.padding()},
		Canvas:       chart.Style{FillColor: t.Background},
		XAxis:        t.axisStyle(),
		YAxis:        t.axisStyle(),
		IsHorizontal: true,
		Bars:         bars,
	}
}
