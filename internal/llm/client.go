package llm

import (
	"context"
	"fmt"

	"github.com/jonathan/job-search-agent/internal/config"
)

// CompletionOptions controls a single completion request
type CompletionOptions struct {
	Tier      ModelTier
	MaxTokens int
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete sends prompt as a single user message and returns the reply text.
	// It returns the empty string when the reply does not start with a text block.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
	// Model returns the provider model serving a tier
	Model(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// Factory builds a client for one request from the key looked up for that request.
type Factory func(ctx context.Context, apiKey string) (Client, error)

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, cfg *Config, apiKey string) (Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if apiKey == "" {
		return nil, &ConfigError{Var: config.APIKeyEnv(string(cfg.Provider))}
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg, apiKey)
	default:
		return NewAnthropicClient(cfg, apiKey), nil
	}
}

// NewFactory returns a Factory bound to cfg.
func NewFactory(cfg *Config) Factory {
	return func(ctx context.Context, apiKey string) (Client, error) {
		return NewClient(ctx, cfg, apiKey)
	}
}

func modelFor(cfg *Config, tier ModelTier) (string, error) {
	modelName := cfg.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}
	return modelName, nil
}
