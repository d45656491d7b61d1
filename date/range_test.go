package date

import (
	"testing"
	"time"
)

func TestRange_Midpoint(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want Date
	}{
		{"quarter Q1", Quarterly.Range(New(2023, time.February, 10)), New(2023, time.February, 14)},
		{"full month", Monthly.Range(New(2023, time.January, 1)), New(2023, time.January, 16)},
		{"week", Weekly.Range(New(2025, time.September, 10)), New(2025, time.September, 11)},
		{"single day", Daily.Range(New(2025, time.September, 10)), New(2025, time.September, 10)},
		{"even span rounds down", Range{From: New(2025, time.May, 1), To: New(2025, time.May, 4)}, New(2025, time.May, 2)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Midpoint(); got != tc.want {
				t.Errorf("Midpoint() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	r := Monthly.Range(New(2024, time.February, 15))
	if got := r.Days(); got != 29 {
		t.Errorf("Days() = %d, want 29", got)
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"daily", Daily.Range(New(2025, time.September, 8)), "2025-09-08"},
		{"weekly", Weekly.Range(New(2025, time.September, 8)), "2025-W37"},
		{"monthly", Monthly.Range(New(2025, time.September, 1)), "2025-09"},
		{"quarterly", Quarterly.Range(New(2025, time.July, 1)), "2025-Q3"},
		{"yearly", Yearly.Range(New(2025, time.January, 1)), "2025"},
		{"special", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewRange_swaps(t *testing.T) {
	from, to := New(2025, time.May, 10), New(2025, time.May, 1)
	got := NewRange(from, to)
	if got.From != to || got.To != from {
		t.Errorf("NewRange() = %v, want swapped boundaries", got)
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{From: New(2025, time.May, 1), To: New(2025, time.May, 31)}
	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Error("Contains() should include boundaries")
	}
	if r.Contains(New(2025, time.April, 30)) || r.Contains(New(2025, time.June, 1)) {
		t.Error("Contains() should exclude dates outside the range")
	}
}
