// Package format provides the number and date formatting helpers shared by
// chart annotations, tables and reports.
package format

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/etnz/chartkit/date"
)

// Options controls how Number renders a value.
type Options struct {
	Decimals     int
	ThousandsSep string // defaults to ","
	DecimalSep   string // defaults to "."
	Prefix       string
	Suffix       string
}

// Number formats a value with grouped thousands and a fixed number of
// decimals, e.g. Number(1234567.8, Options{Decimals: 1}) is "1,234,567.8".
func Number(v float64, o Options) string {
	if o.ThousandsSep == "" {
		o.ThousandsSep = ","
	}
	if o.DecimalSep == "" {
		o.DecimalSep = "."
	}

	d := decimal.NewFromFloat(v).Round(int32(o.Decimals))
	neg := d.IsNegative()
	d = d.Abs()

	fixed := d.StringFixed(int32(o.Decimals))
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(o.Prefix)
	b.WriteString(group(intPart, o.ThousandsSep))
	if o.Decimals > 0 {
		b.WriteString(o.DecimalSep)
		b.WriteString(fracPart)
	}
	b.WriteString(o.Suffix)
	return b.String()
}

// group inserts the thousands separator into a plain digit string.
func group(digits, sep string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Percent formats a ratio as a percentage: Percent(0.052, 1) is "5.2%".
func Percent(v float64, decimals int) string {
	return Number(v*100, Options{Decimals: decimals, Suffix: "%"})
}

// Currency formats a value in the given ISO currency code, using the
// currency's own symbol, fraction and grouping rules, e.g.
// Currency(1234.5, "USD") is "$1,234.50".
func Currency(v float64, code string) string {
	// The zero-amount constructor is the way to obtain a never-nil currency.
	cur := *money.New(0, code).Currency()
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Abbreviated formats large values with K/M/B/T suffixes:
// Abbreviated(1_260_000, 1) is "1.3M".
func Abbreviated(v float64, decimals int) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 1e3:
		return Number(v, Options{})
	case abs < 1e6:
		return fmt.Sprintf("%.*fK", decimals, v/1e3)
	case abs < 1e9:
		return fmt.Sprintf("%.*fM", decimals, v/1e6)
	case abs < 1e12:
		return fmt.Sprintf("%.*fB", decimals, v/1e9)
	default:
		return fmt.Sprintf("%.*fT", decimals, v/1e12)
	}
}

// Duration formats a number of seconds for humans. The short form is compact
// ("3h"), the long form spells out the two largest units
// ("3 hours, 20 minutes").
func Duration(seconds int, long bool) string {
	if !long {
		switch {
		case seconds < 60:
			return fmt.Sprintf("%ds", seconds)
		case seconds < 3600:
			return fmt.Sprintf("%dm", seconds/60)
		case seconds < 86400:
			return fmt.Sprintf("%dh", seconds/3600)
		default:
			return fmt.Sprintf("%dd", seconds/86400)
		}
	}

	unit := func(n int, name string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, name)
		}
		return fmt.Sprintf("%d %ss", n, name)
	}
	switch {
	case seconds < 60:
		return unit(seconds, "second")
	case seconds < 3600:
		m, s := seconds/60, seconds%60
		if s == 0 {
			return unit(m, "minute")
		}
		return unit(m, "minute") + ", " + unit(s, "second")
	case seconds < 86400:
		h, m := seconds/3600, (seconds%3600)/60
		if m == 0 {
			return unit(h, "hour")
		}
		return unit(h, "hour") + ", " + unit(m, "minute")
	default:
		d, h := seconds/86400, (seconds%86400)/3600
		if h == 0 {
			return unit(d, "day")
		}
		return unit(d, "day") + ", " + unit(h, "hour")
	}
}

// Day formats a date with the given layout, defaulting to ISO-8601.
func Day(d date.Date, layout string) string {
	if layout == "" {
		layout = date.Format
	}
	return d.Layout(layout)
}
