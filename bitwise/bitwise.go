// Package bitwise fetches price histories from the Bitwise Investments API,
// for both individual crypto assets and Bitwise indexes.
package bitwise

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/etnz/chartkit/date"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.bitwiseinvestments.com"

// Quote is a single daily observation in a price history.
type Quote struct {
	Day   date.Date
	Price decimal.Decimal
}

// History is a chronological price series for one symbol.
type History struct {
	Symbol string
	Quotes []Quote
}

// Range returns the date range covered by the history.
func (h History) Range() date.Range {
	if len(h.Quotes) == 0 {
		return date.Range{}
	}
	return date.NewRange(h.Quotes[0].Day, h.Quotes[len(h.Quotes)-1].Day)
}

// Min returns the lowest price in the history.
func (h History) Min() decimal.Decimal {
	var min decimal.Decimal
	for i, q := range h.Quotes {
		if i == 0 || q.Price.LessThan(min) {
			min = q.Price
		}
	}
	return min
}

// Max returns the highest price in the history.
func (h History) Max() decimal.Decimal {
	var max decimal.Decimal
	for i, q := range h.Quotes {
		if i == 0 || q.Price.GreaterThan(max) {
			max = q.Price
		}
	}
	return max
}

// Last returns the most recent price, or zero for an empty history.
func (h History) Last() decimal.Decimal {
	if len(h.Quotes) == 0 {
		return decimal.Zero
	}
	return h.Quotes[len(h.Quotes)-1].Price
}

// Values returns the prices as float64, in chronological order.
func (h History) Values() []float64 {
	values := make([]float64, len(h.Quotes))
	for i, q := range h.Quotes {
		values[i], _ = q.Price.Float64()
	}
	return values
}

// Days returns the observation dates, in chronological order.
func (h History) Days() []date.Date {
	days := make([]date.Date, len(h.Quotes))
	for i, q := range h.Quotes {
		days[i] = q.Day
	}
	return days
}

// Client accesses the Bitwise API. The zero value is not usable, use
// NewClient.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client for the production API, with an http.Client
// whose disk cache expires daily.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		HTTP:    newDailyCachingClient(),
	}
}

// CryptoHistory fetches the complete daily price history of a crypto asset
// (e.g. "BTC", "ETH").
func (c *Client) CryptoHistory(symbol string) (History, error) {
	// https://api.bitwiseinvestments.com/api/v1/assets/BTC/quotes?apiKey=...
	// [
	//	{
	//		"timestamp": "2024-02-13T00:00:00.000Z",
	//		"price": 49742.35
	//	},

	addr := fmt.Sprintf("%s/api/v1/assets/%s/quotes?apiKey=%s", c.BaseURL, symbol, c.APIKey)

	type quote struct {
		Timestamp string          `json:"timestamp"`
		Price     decimal.Decimal `json:"price"`
	}

	// that's the payload
	content := make([]quote, 0)
	if err := jwget(c.HTTP, addr, &content); err != nil {
		return History{}, err
	}

	h := History{Symbol: symbol, Quotes: make([]Quote, 0, len(content))}
	for _, q := range content {
		day, err := parseDay(q.Timestamp)
		if err != nil {
			return History{}, fmt.Errorf("invalid timestamp for %s: %w", symbol, err)
		}
		h.Quotes = append(h.Quotes, Quote{Day: day, Price: q.Price})
	}
	sortQuotes(h.Quotes)
	return h, nil
}

// IndexHistory fetches the complete history of a Bitwise index (e.g. "DEFI",
// "BITW"), excluding backtested values.
func (c *Client) IndexHistory(symbol string) (History, error) {
	// https://api.bitwiseinvestments.com/api/v1/indexes/DEFI/history?exclude_backtests=true&apiKey=...
	// rows are pairs: [ ["2024-02-13T00:00:00.000Z", 102.45], ... ]

	addr := fmt.Sprintf("%s/api/v1/indexes/%s/history?exclude_backtests=true&apiKey=%s", c.BaseURL, symbol, c.APIKey)

	content := make([][]json.RawMessage, 0)
	if err := jwget(c.HTTP, addr, &content); err != nil {
		return History{}, err
	}

	h := History{Symbol: symbol, Quotes: make([]Quote, 0, len(content))}
	for _, row := range content {
		if len(row) < 2 {
			return History{}, fmt.Errorf("invalid history row for %s: %d columns", symbol, len(row))
		}
		var ts string
		if err := json.Unmarshal(row[0], &ts); err != nil {
			return History{}, fmt.Errorf("invalid timestamp for %s: %w", symbol, err)
		}
		day, err := parseDay(ts)
		if err != nil {
			return History{}, fmt.Errorf("invalid timestamp for %s: %w", symbol, err)
		}
		var price decimal.Decimal
		if err := json.Unmarshal(row[1], &price); err != nil {
			return History{}, fmt.Errorf("invalid value for %s: %w", symbol, err)
		}
		h.Quotes = append(h.Quotes, Quote{Day: day, Price: price})
	}
	sortQuotes(h.Quotes)
	return h, nil
}

// parseDay accepts the timestamp formats the API is known to return.
func parseDay(ts string) (date.Date, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", date.Format} {
		if t, err := time.Parse(layout, ts); err == nil {
			return date.New(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return date.Date{}, fmt.Errorf("unparseable timestamp %q", ts)
}

func sortQuotes(quotes []Quote) {
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Day.Before(quotes[j].Day) })
}

// Cryptos returns the crypto symbols known to be served by the API.
func Cryptos() []string {
	return []string{
		"BTC", "ETH", "SOL", "ADA", "DOT", "LINK", "UNI", "AVAX",
		"MATIC", "ATOM", "LTC", "BCH", "XRP", "DOGE", "SHIB",
	}
}

// Indices returns the Bitwise index symbols known to be served by the API.
func Indices() []string {
	return []string{"DEFI", "BIT10", "BITW", "BITQ", "BITC", "BITI"}
}
