package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"NFTMarketBackend/src/config"
)

func testConfig() config.Metadata {
	return config.Metadata{TimeoutSeconds: 2, RetryMax: 2, CacheTtlSeconds: 60}
}

func TestFetchParsesAndCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"name":"Token #1","image":"ipfs://img/1"}`))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig())
	ctx := context.Background()

	doc, err := f.Fetch(ctx, srv.URL, false)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if doc["name"] != "Token #1" {
		t.Fatalf("doc = %v", doc)
	}

	// Second read comes from the cache.
	if _, err := f.Fetch(ctx, srv.URL, false); err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("origin hits = %d, want 1", n)
	}

	// A refresh goes back to the origin.
	if _, err := f.Fetch(ctx, srv.URL, true); err != nil {
		t.Fatalf("refresh fetch: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("origin hits = %d, want 2", n)
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"name":"Recovered"}`))
	}))
	defer srv.Close()

	doc, err := NewFetcher(testConfig()).Fetch(context.Background(), srv.URL, false)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if doc["name"] != "Recovered" {
		t.Fatalf("doc = %v", doc)
	}
}

func TestFetchRejectsBadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if _, err := NewFetcher(testConfig()).Fetch(context.Background(), srv.URL, false); err == nil {
		t.Fatal("malformed document should fail")
	}
}

func TestFetchRejectsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := NewFetcher(testConfig()).Fetch(context.Background(), srv.URL, false); err == nil {
		t.Fatal("404 should fail")
	}
}
