package chartkit

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/etnz/chartkit/date"
)

func labelTexts(labels []PeriodLabel) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPeriodMarks_quarterlyFullYear(t *testing.T) {
	start, end := date.New(2023, time.January, 1), date.New(2023, time.December, 31)
	ticks, labels, err := PeriodMarks(start, end, date.Quarterly)
	if err != nil {
		t.Fatalf("PeriodMarks() unexpected error = %v", err)
	}

	wantTicks := []date.Date{
		date.New(2023, time.January, 1),
		date.New(2023, time.April, 1),
		date.New(2023, time.July, 1),
		date.New(2023, time.October, 1),
		date.New(2023, time.December, 31),
	}
	if len(ticks) != len(wantTicks) {
		t.Fatalf("PeriodMarks() %d ticks, want %d", len(ticks), len(wantTicks))
	}
	for i, want := range wantTicks {
		if ticks[i].On != want {
			t.Errorf("tick[%d] = %v, want %v", i, ticks[i].On, want)
		}
	}

	want := []string{"Q1 '23", "Q2 '23", "Q3 '23", "Q4 '23"}
	if got := labelTexts(labels); !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestPeriodMarks_yearlyCustomFormatter(t *testing.T) {
	start, end := date.New(2020, time.January, 1), date.New(2022, time.December, 31)
	_, labels, err := PeriodMarks(start, end, date.Yearly,
		WithLabelFormatter(func(year, _ int) string { return strconv.Itoa(year) }))
	if err != nil {
		t.Fatalf("PeriodMarks() unexpected error = %v", err)
	}
	want := []string{"2020", "2021", "2022"}
	if got := labelTexts(labels); !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	// Yearly labels anchor on July 1st.
	if got, want := labels[0].On, date.New(2020, time.July, 1); got != want {
		t.Errorf("label[0] anchor = %v, want %v", got, want)
	}
}

func TestPeriodMarks_positionsStayInRange(t *testing.T) {
	testCases := []struct {
		name       string
		start, end date.Date
		period     date.Period
	}{
		{"quarters mid-period", date.New(2023, time.February, 15), date.New(2024, time.May, 10), date.Quarterly},
		{"months partial", date.New(2023, time.January, 20), date.New(2023, time.March, 5), date.Monthly},
		{"weeks", date.New(2025, time.September, 3), date.New(2025, time.October, 20), date.Weekly},
		{"years truncated", date.New(2020, time.June, 1), date.New(2022, time.March, 1), date.Yearly},
		{"single day", date.New(2023, time.May, 10), date.New(2023, time.May, 10), date.Monthly},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ticks, labels, err := PeriodMarks(tc.start, tc.end, tc.period)
			if err != nil {
				t.Fatalf("PeriodMarks() unexpected error = %v", err)
			}
			window := date.Range{From: tc.start, To: tc.end}
			for _, bt := range ticks {
				if !window.Contains(bt.On) {
					t.Errorf("tick %v outside [%v, %v]", bt.On, tc.start, tc.end)
				}
			}
			for _, l := range labels {
				if !window.Contains(l.On) {
					t.Errorf("label %q at %v outside [%v, %v]", l.Text, l.On, tc.start, tc.end)
				}
			}
		})
	}
}

func TestPeriodMarks_monthlyDefaultFormat(t *testing.T) {
	start, end := date.New(2023, time.November, 1), date.New(2024, time.February, 29)
	_, labels, err := PeriodMarks(start, end, date.Monthly)
	if err != nil {
		t.Fatalf("PeriodMarks() unexpected error = %v", err)
	}
	want := []string{"Nov '23", "Dec '23", "Jan '24", "Feb '24"}
	if got := labelTexts(labels); !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestPeriodMarks_weeklyDefaultFormat(t *testing.T) {
	// 2025-01-06 is a Monday starting ISO week 2.
	start, end := date.New(2025, time.January, 6), date.New(2025, time.January, 19)
	_, labels, err := PeriodMarks(start, end, date.Weekly)
	if err != nil {
		t.Fatalf("PeriodMarks() unexpected error = %v", err)
	}
	want := []string{"W2", "W3"}
	if got := labelTexts(labels); !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestPeriodMarks_daily(t *testing.T) {
	_, _, err := PeriodMarks(date.New(2023, time.January, 1), date.New(2023, time.January, 31), date.Daily)
	if !errors.Is(err, ErrUnsupportedPeriod) {
		t.Errorf("PeriodMarks(Daily) error = %v, want ErrUnsupportedPeriod", err)
	}
}

func TestPeriodMarks_invertedRange(t *testing.T) {
	ticks, labels, err := PeriodMarks(date.New(2023, time.June, 1), date.New(2023, time.January, 1), date.Monthly)
	if err != nil {
		t.Fatalf("PeriodMarks() unexpected error = %v", err)
	}
	if len(ticks) != 0 || len(labels) != 0 {
		t.Errorf("inverted range yielded %d ticks and %d labels, want none", len(ticks), len(labels))
	}
}

func TestPeriodMarks_boundaryGates(t *testing.T) {
	start, end := date.New(2023, time.January, 1), date.New(2023, time.June, 30)

	ticks, _, err := PeriodMarks(start, end, date.Quarterly, WithoutStartBoundary())
	if err != nil {
		t.Fatalf("PeriodMarks() unexpected error = %v", err)
	}
	if len(ticks) == 0 || ticks[0].On == start {
		t.Errorf("WithoutStartBoundary: first tick = %v, want after %v", ticks[0].On, start)
	}

	ticks, _, err = PeriodMarks(start, end, date.Quarterly, WithoutEndBoundary())
	if err != nil {
		t.Fatalf("PeriodMarks() unexpected error = %v", err)
	}
	if len(ticks) == 0 || ticks[len(ticks)-1].On == end {
		t.Errorf("WithoutEndBoundary: last tick = %v, want before %v", ticks[len(ticks)-1].On, end)
	}
}

func TestPeriodMarks_truncatedMidpointNotLabeled(t *testing.T) {
	// The range starts after Q1's midpoint (2023-02-14): Q1 must not be labeled.
	start, end := date.New(2023, time.February, 20), date.New(2023, time.June, 30)
	_, labels, err := PeriodMarks(start, end, date.Quarterly)
	if err != nil {
		t.Fatalf("PeriodMarks() unexpected error = %v", err)
	}
	want := []string{"Q2 '23"}
	if got := labelTexts(labels); !equalStrings(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}
