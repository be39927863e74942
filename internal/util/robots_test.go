package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCanFetch(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		fetches++
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\nCrawl-delay: 1\n"))
	}))
	defer srv.Close()

	checker := NewRobotsChecker("eeatgrade/1.0 (+https://example.com)", 5*time.Second)
	ctx := context.Background()

	allowed, delay, err := checker.CanFetch(ctx, srv.URL+"/public/page")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("/public/page should be allowed")
	}
	if delay != time.Second {
		t.Errorf("crawl delay = %v, want 1s", delay)
	}

	if checker.IsAllowed(ctx, srv.URL+"/private/docs") {
		t.Error("/private/docs should be disallowed")
	}

	// Second host lookup must come from the cache
	checker.IsAllowed(ctx, srv.URL+"/public/other")
	if fetches != 1 {
		t.Errorf("robots.txt fetched %d times, want 1", fetches)
	}
}

func TestCanFetchNoRobots(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	checker := NewRobotsChecker("eeatgrade/1.0", 5*time.Second)
	if !checker.IsAllowed(context.Background(), srv.URL+"/anything") {
		t.Error("missing robots.txt should allow everything")
	}
}

func TestCanFetchUnreachableHost(t *testing.T) {
	checker := NewRobotsChecker("eeatgrade/1.0", 500*time.Millisecond)
	allowed, _, err := checker.CanFetch(context.Background(), "http://127.0.0.1:1/page")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("unreachable robots.txt should allow the fetch")
	}
}

func TestNormalizeUserAgent(t *testing.T) {
	cases := []struct{ in, want string }{
		{"eeatgrade/1.0 (+https://github.com/eeatgrade/eeatgrade)", "eeatgrade"},
		{"SimpleBot", "SimpleBot"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeUserAgent(tc.in); got != tc.want {
			t.Errorf("NormalizeUserAgent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
