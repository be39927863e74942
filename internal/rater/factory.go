package rater

import (
	"fmt"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// NewProvider creates an LLM provider based on configuration
func NewProvider(config model.RaterConfig) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - rater disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown rater provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}
