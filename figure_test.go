package chartkit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/etnz/chartkit/date"
)

func demoSeries() TimeSeries {
	dates := make([]date.Date, 0, 12)
	values := make([]float64, 0, 12)
	for m := time.January; m <= time.December; m++ {
		dates = append(dates, date.New(2023, m, 15))
		values = append(values, 100+10*float64(m))
	}
	return TimeSeries{Name: "DEMO", Dates: dates, Values: values}
}

func TestFigure_ValueAxis(t *testing.T) {
	testCases := []struct {
		name string
		fig  *Figure
		want Axis
	}{
		{"line", NewLineChart(DefaultTheme()), AxisY},
		{"scatter", NewScatterChart(DefaultTheme()), AxisY},
		{"vertical bars", NewBarChart(DefaultTheme(), false), AxisY},
		{"horizontal bars", NewBarChart(DefaultTheme(), true), AxisX},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fig.ValueAxis(); got != tc.want {
				t.Errorf("ValueAxis() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFigure_Values(t *testing.T) {
	fig := NewBarChart(DefaultTheme(), false, BarValue{"a", 1}, BarValue{"b", 2})
	if got := fig.Values(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Values() = %v", got)
	}
}

func TestFigure_AnnotatePeriods(t *testing.T) {
	fig := NewLineChart(DefaultTheme(), demoSeries())
	if err := fig.AnnotatePeriods(date.Quarterly); err != nil {
		t.Fatalf("AnnotatePeriods() unexpected error = %v", err)
	}
	ticks, labels := fig.Marks()
	if len(ticks) == 0 {
		t.Error("AnnotatePeriods() attached no ticks")
	}
	// The extent runs Jan 15 to Dec 15: all four quarter midpoints are inside.
	if len(labels) != 4 {
		t.Errorf("AnnotatePeriods() attached %d labels, want 4", len(labels))
	}
}

func TestFigure_AnnotatePeriods_errors(t *testing.T) {
	if err := NewBarChart(DefaultTheme(), false).AnnotatePeriods(date.Quarterly); err == nil {
		t.Error("AnnotatePeriods() on a bar chart should fail")
	}
	if err := NewLineChart(DefaultTheme()).AnnotatePeriods(date.Quarterly); err == nil {
		t.Error("AnnotatePeriods() without traces should fail")
	}
	if err := NewLineChart(DefaultTheme(), demoSeries()).AnnotatePeriods(date.Daily); err == nil {
		t.Error("AnnotatePeriods(Daily) should fail")
	}
}

func TestFigure_annotatedBottomMargin(t *testing.T) {
	// Annotation raises the bottom padding to MinAnnotatedBottomMargin so
	// the label row has room, but never shrinks a larger margin.
	fig := NewLineChart(DefaultTheme(), demoSeries()) // minimal margin, bottom 20
	if err := fig.AnnotatePeriods(date.Quarterly); err != nil {
		t.Fatalf("AnnotatePeriods() error: %v", err)
	}
	c, err := fig.chart()
	if err != nil {
		t.Fatalf("chart() error: %v", err)
	}
	if got, want := c.Background.Padding.Bottom, MinAnnotatedBottomMargin; got != want {
		t.Errorf("annotated Padding.Bottom = %d, want %d", got, want)
	}

	theme := DefaultTheme()
	theme.Margin.Bottom = 90
	fig = NewLineChart(theme, demoSeries())
	if err := fig.AnnotatePeriods(date.Quarterly); err != nil {
		t.Fatalf("AnnotatePeriods() error: %v", err)
	}
	if c, err = fig.chart(); err != nil {
		t.Fatalf("chart() error: %v", err)
	}
	if got, want := c.Background.Padding.Bottom, 90; got != want {
		t.Errorf("wide-margin Padding.Bottom = %d, want %d", got, want)
	}

	// Without annotation the theme margin stands.
	fig = NewLineChart(DefaultTheme(), demoSeries())
	if c, err = fig.chart(); err != nil {
		t.Fatalf("chart() error: %v", err)
	}
	if got, want := c.Background.Padding.Bottom, 20; got != want {
		t.Errorf("plain Padding.Bottom = %d, want %d", got, want)
	}
}

func TestFigure_RenderSVG(t *testing.T) {
	fig := NewLineChart(DefaultTheme().WithSize("half"), demoSeries())
	if err := fig.AnnotatePeriods(date.Quarterly); err != nil {
		t.Fatalf("AnnotatePeriods() unexpected error = %v", err)
	}
	var buf bytes.Buffer
	if err := fig.Render(&buf, SVG); err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("Render(SVG) did not produce svg output")
	}
	// Period labels ride along as text, boundary ticks stay textless.
	if !strings.Contains(buf.String(), "Q2") {
		t.Error("Render(SVG) is missing the period labels")
	}
}

func TestFigure_RenderBars(t *testing.T) {
	bars := []BarValue{{"BTC", 45}, {"ETH", 30}, {"SOL", 12}}
	for _, horizontal := range []bool{false, true} {
		fig := NewBarChart(DefaultTheme().WithSize("half"), horizontal, bars...)
		var buf bytes.Buffer
		if err := fig.Render(&buf, SVG); err != nil {
			t.Fatalf("Render(horizontal=%v) unexpected error = %v", horizontal, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Render(horizontal=%v) produced no output", horizontal)
		}
	}
}

func TestFigure_Render_badFormat(t *testing.T) {
	fig := NewLineChart(DefaultTheme(), demoSeries())
	if err := fig.Render(&bytes.Buffer{}, Format("pdf")); err == nil {
		t.Error("Render(pdf) should fail")
	}
}

func TestFigure_Export_badExtension(t *testing.T) {
	fig := NewLineChart(DefaultTheme(), demoSeries())
	if err := fig.Export(t.TempDir() + "/chart.pdf"); err == nil {
		t.Error("Export(.pdf) should fail")
	}
}

func TestFigure_Export(t *testing.T) {
	fig := NewBarChart(DefaultTheme().WithSize("half"), false, BarValue{"a", 1}, BarValue{"b", 3})
	path := t.TempDir() + "/chart.svg"
	if err := fig.Export(path); err != nil {
		t.Fatalf("Export() unexpected error = %v", err)
	}
}

func TestFigure_chart_mismatchedTrace(t *testing.T) {
	fig := NewLineChart(DefaultTheme(), TimeSeries{
		Name:   "broken",
		Dates:  []date.Date{date.New(2023, time.January, 1)},
		Values: []float64{1, 2},
	})
	if err := fig.Render(&bytes.Buffer{}, SVG); err == nil {
		t.Error("Render() with mismatched trace lengths should fail")
	}
}
