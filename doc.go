// Package chartkit provides a consistent visual identity for analyst charts:
// a theme and color palette, thin figure wrappers over the go-chart rendering
// library, calendar-aware time-axis annotation, and value-axis buffering.
//
// The core helpers are:
//   - PeriodMarks: computes boundary ticks and midpoint labels for a time
//     axis sliced by calendar weeks, months, quarters or years.
//   - BufferedRange: pads the upper bound of a value axis so the maximum
//     plotted value is not clipped against the plot edge.
//   - Figure: a styled line, scatter or bar chart built from dated traces,
//     exported to SVG or PNG.
//
// Styling is explicit: a Theme is a plain value passed to figure
// constructors, and nothing in this package mutates process-wide state, so
// all helpers are safe for concurrent use.
//
// Companion packages fetch price histories (bitwise), format numbers and
// currencies (format), load environment settings (settings), and install the
// brand fonts (fonts). The `ckt` command-line tool exposes the lot.
package chartkit
