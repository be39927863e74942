package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Fetch.RequestsPerSecond = 100
	cfg.Fetch.Burst = 100
	cfg.HTTP.Timeout = 5 * time.Second
	return cfg
}

func TestFetchReturnsBody(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		hits++
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "eeatgrade/") {
			t.Errorf("user agent = %q", got)
		}
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := New(testConfig())
	res, err := f.Fetch(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !strings.Contains(res.HTML, "hello") {
		t.Errorf("body = %q", res.HTML)
	}
	if res.FromCache {
		t.Error("first fetch should not be cached")
	}

	// second fetch comes from cache
	res, err = f.Fetch(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("Fetch (cached): %v", err)
	}
	if !res.FromCache {
		t.Error("second fetch should hit the cache")
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestFetchRespectsRobotsDisallow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\n"))
			return
		}
		_, _ = w.Write([]byte("secret"))
	}))
	defer srv.Close()

	f := New(testConfig())
	_, err := f.Fetch(context.Background(), srv.URL+"/private/page")
	if err == nil {
		t.Fatal("expected robots disallow error")
	}
	if !model.IsInputError(err) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestFetchBodySizeCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(strings.Repeat("x", 5000)))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.HTTP.MaxBodyBytes = 1000
	cfg.Cache.Enabled = false

	f := New(cfg)
	res, err := f.Fetch(context.Background(), srv.URL+"/big")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(res.HTML) != 1000 {
		t.Errorf("body length = %d, want capped at 1000", len(res.HTML))
	}
}

func TestFetchNon200IsInputError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Cache.Enabled = false

	f := New(cfg)
	_, err := f.Fetch(context.Background(), srv.URL+"/missing")
	if !model.IsInputError(err) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestFetchRejectsBadScheme(t *testing.T) {
	f := New(testConfig())
	_, err := f.Fetch(context.Background(), "ftp://example.com/file")
	if !model.IsInputError(err) {
		t.Fatalf("expected input error, got %v", err)
	}
}
