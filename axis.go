package chartkit

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/etnz/chartkit/date"
)

// ErrUnsupportedPeriod is returned when a period cannot be used to annotate a
// time axis. Only weeks, months, quarters and years are supported.
var ErrUnsupportedPeriod = errors.New("unsupported period")

// MinAnnotatedBottomMargin is the minimum bottom margin of a figure whose time
// axis carries period labels, so the label text has room below the plot area.
const MinAnnotatedBottomMargin = 70

// labelOffset is how far below the plot area period labels are anchored.
const labelOffset = 30.0

// BoundaryTick marks a period boundary on the time axis. Boundary ticks carry
// no text: the tick geometry and the label text are decoupled on purpose.
type BoundaryTick struct {
	On date.Date
}

// PeriodLabel is a text annotation anchored at a period midpoint, horizontally
// centered and drawn YOffset pixels below the plot area.
type PeriodLabel struct {
	On      date.Date
	Text    string
	YOffset float64
}

// LabelFormatter produces the text of a period label. It receives the calendar
// year of the period instance and its index within the year cycle (quarter
// number, month number, ISO week number, or the year itself for yearly).
type LabelFormatter func(year, index int) string

type markConfig struct {
	format        LabelFormatter
	startBoundary bool
	endBoundary   bool
}

// MarkOption configures PeriodMarks.
type MarkOption func(*markConfig)

// WithLabelFormatter overrides the default label format of the period.
func WithLabelFormatter(f LabelFormatter) MarkOption {
	return func(c *markConfig) { c.format = f }
}

// WithoutStartBoundary drops the tick at the very first boundary of the range.
func WithoutStartBoundary() MarkOption {
	return func(c *markConfig) { c.startBoundary = false }
}

// WithoutEndBoundary drops the tick at the very last boundary of the range.
func WithoutEndBoundary() MarkOption {
	return func(c *markConfig) { c.endBoundary = false }
}

// defaultFormatter returns the label format each period owns by default:
// "Q3 '23" for quarters, "2023" for years, "Aug '23" for months and "W34"
// for weeks.
func defaultFormatter(p date.Period) LabelFormatter {
	switch p {
	case date.Quarterly:
		return func(year, q int) string { return fmt.Sprintf("Q%d '%02d", q, year%100) }
	case date.Yearly:
		return func(year, _ int) string { return strconv.Itoa(year) }
	case date.Monthly:
		return func(year, m int) string { return fmt.Sprintf("%s '%02d", time.Month(m).String()[:3], year%100) }
	case date.Weekly:
		return func(_, w int) string { return fmt.Sprintf("W%d", w) }
	default:
		return func(year, i int) string { return fmt.Sprintf("%d-%d", year, i) }
	}
}

// midpoint returns the label anchor of a period instance: the middle day of
// its range, except for years which anchor on July 1st.
func midpoint(p date.Period, r date.Range) date.Date {
	if p == date.Yearly {
		return date.New(r.From.Year(), time.July, 1)
	}
	return r.Midpoint()
}

// PeriodMarks computes the boundary ticks and midpoint labels annotating the
// time axis of a figure spanning [start, end] at the given period granularity.
//
// Ticks are placed at the calendar start of every period instance overlapping
// the range, plus the calendar end of the last one, as long as the boundary
// falls inside the range. Labels are placed at period midpoints, and only when
// the midpoint itself falls inside the range, so a truncated partial period is
// never labeled misleadingly.
//
// An inverted range (start after end) yields empty marks rather than an
// error. Daily granularity is rejected with ErrUnsupportedPeriod.
func PeriodMarks(start, end date.Date, p date.Period, opts ...MarkOption) ([]BoundaryTick, []PeriodLabel, error) {
	if p == date.Daily {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedPeriod, p)
	}
	if start.After(end) {
		return nil, nil, nil
	}

	cfg := markConfig{format: defaultFormatter(p), startBoundary: true, endBoundary: true}
	for _, o := range opts {
		o(&cfg)
	}

	window := date.Range{From: start, To: end}
	var ticks []BoundaryTick
	var labels []PeriodLabel
	first := true
	for cur := start; !cur.After(end); cur = cur.EndOf(p).Add(1) {
		pr := p.Range(cur)
		last := !pr.To.Before(end)

		switch {
		case window.Contains(pr.From):
			// The gate applies only to the very first boundary of the range;
			// see WithoutStartBoundary.
			if !first || cfg.startBoundary {
				ticks = append(ticks, BoundaryTick{On: pr.From})
			}
		case window.Contains(pr.To) && !last:
			// A leading partial period still marks its in-range end boundary.
			ticks = append(ticks, BoundaryTick{On: pr.To})
		}
		if last && cfg.endBoundary && window.Contains(pr.To) {
			ticks = append(ticks, BoundaryTick{On: pr.To})
		}

		if mid := midpoint(p, pr); window.Contains(mid) {
			labels = append(labels, PeriodLabel{
				On:      mid,
				Text:    cfg.format(pr.From.Year(), p.Index(pr.From)),
				YOffset: labelOffset,
			})
		}
		first = false
	}
	return ticks, labels, nil
}
