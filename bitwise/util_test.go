package bitwise

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDiskCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"price": 42}`)
	}))
	defer srv.Close()

	// The httptest URL carries a random port, so the cache key is unique to
	// this run.
	client := &http.Client{Transport: &diskCache{base: http.DefaultTransport}}
	addr := srv.URL + "/quotes"

	var first, second struct {
		Price float64 `json:"price"`
	}
	if err := jwget(client, addr, &first); err != nil {
		t.Fatalf("first jwget() error: %v", err)
	}
	if err := jwget(client, addr, &second); err != nil {
		t.Fatalf("second jwget() error: %v", err)
	}

	if got, want := hits, 1; got != want {
		t.Errorf("server hits = %d, want %d (second request should be served from cache)", got, want)
	}
	if first.Price != 42 || second.Price != 42 {
		t.Errorf("responses = %v, %v, want 42 from both", first.Price, second.Price)
	}
}

func TestDiskCache_errorNotCached(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &diskCache{base: http.DefaultTransport}}
	addr := srv.URL + "/quotes"

	var data interface{}
	if err := jwget(client, addr, &data); err == nil {
		t.Fatal("jwget() = nil error, want status error")
	}
	if err := jwget(client, addr, &data); err == nil {
		t.Fatal("jwget() = nil error, want status error")
	}

	if got, want := hits, 2; got != want {
		t.Errorf("server hits = %d, want %d (error responses must not be cached)", got, want)
	}
}
