// Package fetch retrieves page HTML politely: robots.txt is honored,
// requests are rate-limited per domain, and bodies are cached.
package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/eeatgrade/eeatgrade/internal/cache"
	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/util"
)

// Fetcher fetches HTML content from URLs
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64

	robots *util.RobotsChecker // nil when robots checking is disabled
	cache  cache.Cache         // nil when caching is disabled

	rps   float64
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Result contains the fetched HTML and metadata
type Result struct {
	HTML      string
	FinalURL  string
	FromCache bool
}

// New creates a Fetcher from configuration
func New(cfg *model.Config) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
			Transport: transport,
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		rps:       cfg.Fetch.RequestsPerSecond,
		burst:     cfg.Fetch.Burst,
		limiters:  make(map[string]*rate.Limiter),
	}

	if cfg.Fetch.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			f.cache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			f.cache = cache.NewMemoryCache(cfg.Cache.TTL)
		}
	}

	return f
}

// Fetch retrieves HTML content from the given URL
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, model.NewInputError(fmt.Sprintf("invalid URL: %s", rawURL), err)
	}

	key := cache.PageKey(rawURL)
	if f.cache != nil {
		if body, found := f.cache.Get(key); found {
			return &Result{HTML: string(body), FinalURL: rawURL, FromCache: true}, nil
		}
	}

	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, model.NewInputError(fmt.Sprintf("robots.txt disallows fetching %s", rawURL), nil)
		}
		if crawlDelay > 0 {
			select {
			case <-time.After(crawlDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	if err := f.limiter(parsed.Hostname()).Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, model.NewInputError(fmt.Sprintf("unexpected status fetching %s: %d %s", rawURL, resp.StatusCode, resp.Status), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if f.cache != nil {
		_ = f.cache.Set(key, body, 0)
	}

	return &Result{
		HTML:     string(body),
		FinalURL: resp.Request.URL.String(),
	}, nil
}

// limiter returns the per-domain rate limiter, creating it on first use
func (f *Fetcher) limiter(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	lim, ok := f.limiters[host]
	if !ok {
		rps := f.rps
		if rps <= 0 {
			rps = 1
		}
		burst := f.burst
		if burst <= 0 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(rps), burst)
		f.limiters[host] = lim
	}
	return lim
}
