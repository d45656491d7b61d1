package bitwise

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/etnz/chartkit/date"
)

func newTestClient(handler http.Handler) (*Client, func()) {
	srv := httptest.NewServer(handler)
	c := &Client{APIKey: "test-key", BaseURL: srv.URL, HTTP: srv.Client()}
	return c, srv.Close
}

func TestCryptoHistory(t *testing.T) {
	c, close := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.URL.Path, "/api/v1/assets/BTC/quotes"; got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
		if got, want := r.URL.Query().Get("apiKey"), "test-key"; got != want {
			t.Errorf("apiKey = %q, want %q", got, want)
		}
		// out of order on purpose, the client must sort chronologically.
		fmt.Fprint(w, `[
			{"timestamp": "2024-02-14T00:00:00.000Z", "price": 51800.10},
			{"timestamp": "2024-02-13T00:00:00.000Z", "price": 49742.35},
			{"timestamp": "2024-02-15T00:00:00.000Z", "price": 51234.00}
		]`)
	}))
	defer close()

	h, err := c.CryptoHistory("BTC")
	if err != nil {
		t.Fatalf("CryptoHistory() error: %v", err)
	}
	if got, want := len(h.Quotes), 3; got != want {
		t.Fatalf("len(Quotes) = %d, want %d", got, want)
	}
	if got, want := h.Quotes[0].Day, date.New(2024, time.February, 13); got != want {
		t.Errorf("first day = %v, want %v", got, want)
	}
	if got, want := h.Min().String(), "49742.35"; got != want {
		t.Errorf("Min() = %s, want %s", got, want)
	}
	if got, want := h.Max().String(), "51800.1"; got != want {
		t.Errorf("Max() = %s, want %s", got, want)
	}
	if got, want := h.Last().String(), "51234"; got != want {
		t.Errorf("Last() = %s, want %s", got, want)
	}
	r := h.Range()
	if got, want := r.From, date.New(2024, time.February, 13); got != want {
		t.Errorf("Range().From = %v, want %v", got, want)
	}
	if got, want := r.To, date.New(2024, time.February, 15); got != want {
		t.Errorf("Range().To = %v, want %v", got, want)
	}
}

func TestIndexHistory(t *testing.T) {
	c, close := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.URL.Path, "/api/v1/indexes/DEFI/history"; got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
		if got, want := r.URL.Query().Get("exclude_backtests"), "true"; got != want {
			t.Errorf("exclude_backtests = %q, want %q", got, want)
		}
		fmt.Fprint(w, `[
			["2024-02-13T00:00:00.000Z", 102.45],
			["2024-02-14T00:00:00.000Z", 104.10]
		]`)
	}))
	defer close()

	h, err := c.IndexHistory("DEFI")
	if err != nil {
		t.Fatalf("IndexHistory() error: %v", err)
	}
	if got, want := len(h.Quotes), 2; got != want {
		t.Fatalf("len(Quotes) = %d, want %d", got, want)
	}
	if got, want := h.Quotes[1].Price.String(), "104.1"; got != want {
		t.Errorf("last price = %s, want %s", got, want)
	}
	if got, want := h.Values(), []float64{102.45, 104.1}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestIndexHistory_badRow(t *testing.T) {
	c, close := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[["2024-02-13T00:00:00.000Z"]]`)
	}))
	defer close()

	if _, err := c.IndexHistory("DEFI"); err == nil {
		t.Error("IndexHistory() = nil error, want row error")
	}
}

func TestCryptoHistory_httpError(t *testing.T) {
	c, close := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer close()

	if _, err := c.CryptoHistory("BTC"); err == nil {
		t.Error("CryptoHistory() = nil error, want status error")
	}
}

func TestHistory_empty(t *testing.T) {
	var h History
	if !h.Last().IsZero() {
		t.Errorf("Last() = %s, want 0", h.Last())
	}
	if got := h.Range(); !got.From.IsZero() || !got.To.IsZero() {
		t.Errorf("Range() = %v, want zero range", got)
	}
}

func TestParseDay(t *testing.T) {
	testCases := []struct {
		ts   string
		want date.Date
	}{
		{"2024-02-13T00:00:00.000Z", date.New(2024, time.February, 13)},
		{"2024-02-13T10:30:00Z", date.New(2024, time.February, 13)},
		{"2024-02-13", date.New(2024, time.February, 13)},
	}
	for _, tc := range testCases {
		t.Run(tc.ts, func(t *testing.T) {
			got, err := parseDay(tc.ts)
			if err != nil {
				t.Fatalf("parseDay(%q) error: %v", tc.ts, err)
			}
			if got != tc.want {
				t.Errorf("parseDay(%q) = %v, want %v", tc.ts, got, tc.want)
			}
		})
	}
	if _, err := parseDay("yesterday"); err == nil {
		t.Error("parseDay(yesterday) = nil error, want error")
	}
}
