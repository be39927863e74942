package rater

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// Rater wraps a Provider with the fail-open policy: a nil provider or
// any provider error yields no soft signals and no error.
type Rater struct {
	provider Provider
	timeout  time.Duration
	verbose  bool
}

// New builds a Rater from configuration. A config with no provider
// returns a Rater that is disabled but safe to call.
func New(config model.RaterConfig, verbose bool) (*Rater, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Rater{provider: provider, timeout: timeout, verbose: verbose}, nil
}

// Enabled reports whether a provider is configured.
func (r *Rater) Enabled() bool {
	return r != nil && r.provider != nil
}

// Augment asks the provider to rate the document's soft signals.
// On any failure it logs to stderr and returns empty results: analysis
// with a broken rater must be indistinguishable from analysis with the
// rater disabled.
func (r *Rater) Augment(ctx context.Context, doc *model.Document, presetName string) ([]model.Signal, map[model.Dimension]string) {
	if !r.Enabled() || doc.Empty() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	judgment, err := r.provider.Judge(ctx, JudgeRequest{
		Title:   doc.Title,
		Excerpt: doc.PlainText,
		Preset:  presetName,
	})
	if err != nil {
		if r.verbose {
			fmt.Fprintf(os.Stderr, "soft-signal rater failed, continuing without it: %v\n", err)
		}
		return nil, nil
	}

	return judgment.Signals, judgment.Summaries
}
