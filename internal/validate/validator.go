// Package validate probes outbound citation links for liveness so the
// claims auditor can downgrade claims whose support is a dead link.
package validate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/util"
)

const maxRetries = 3

// sleepFunc is the sleep between retries (injectable for tests)
var sleepFunc = time.Sleep

// Validator probes links concurrently with a worker cap
type Validator struct {
	httpClient *http.Client
	userAgent  string
	maxWorkers int
}

// New creates a validator from configuration
func New(cfg *model.Config) *Validator {
	workers := cfg.Validation.Workers
	if workers <= 0 {
		workers = 20
	}
	timeout := cfg.Validation.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Validator{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent:  cfg.HTTP.UserAgent,
		maxWorkers: workers,
	}
}

// MarkBroken probes every outbound link and sets Link.Broken in place.
// Probe failures never fail the analysis; an unreachable link is just a
// broken one.
func (v *Validator) MarkBroken(ctx context.Context, doc *model.Document) {
	if doc == nil || len(doc.OutboundLinks) == 0 {
		return
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, v.maxWorkers)

	for i := range doc.OutboundLinks {
		wg.Add(1)
		go func(link *model.Link) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			link.Broken = !v.aliveWithRetry(ctx, link.URL)
		}(&doc.OutboundLinks[i])
	}

	wg.Wait()
}

// alive sends a HEAD request and reports whether the URL answered with
// a non-error status.
func (v *Validator) alive(ctx context.Context, rawURL string) (ok bool, retryable bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false, false
	}
	req.Header.Set("User-Agent", v.userAgent)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, isRetryableNetworkError(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		return true, false
	case resp.StatusCode == http.StatusTooManyRequests:
		return false, true
	case resp.StatusCode >= 500:
		return false, true
	default:
		return false, false
	}
}

// aliveWithRetry retries transient failures with exponential backoff
func (v *Validator) aliveWithRetry(ctx context.Context, rawURL string) bool {
	for attempt := 0; attempt < maxRetries; attempt++ {
		ok, retryable := v.alive(ctx, rawURL)
		if ok || !retryable {
			return ok
		}
		if attempt < maxRetries-1 {
			sleepFunc(time.Duration(1<<uint(attempt)) * time.Second)
		}
	}
	return false
}

// isRetryableNetworkError checks error strings for transient network failures
func isRetryableNetworkError(errMsg string) bool {
	s := strings.ToLower(errMsg)
	return strings.Contains(s, "timeout") ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset")
}
