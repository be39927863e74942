// Package rater asks an LLM to judge soft quality signals that keyword
// rules cannot detect: authenticity of experience language, depth of
// expertise, tone. The rater is optional and fails open - any provider
// error degrades the analysis to deterministic signals only.
package rater

import (
	"context"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Judge rates the soft signals for a document excerpt
	Judge(ctx context.Context, req JudgeRequest) (*Judgment, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// JudgeRequest contains the input for soft-signal rating
type JudgeRequest struct {
	// Title and Excerpt are the document text shown to the model.
	// Excerpt is capped before it reaches the provider.
	Title   string
	Excerpt string

	// Preset hints at the content type so the model rates against the
	// right expectations (legal guide vs product review)
	Preset string

	// Model overrides the configured model for this request
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// Judgment is the parsed provider output: soft signals per dimension
// plus a one-line summary of each dimension's quality.
type Judgment struct {
	Signals   []model.Signal
	Summaries map[model.Dimension]string

	// Model is the model that produced the judgment
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}
