package llm

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// defaultMaxTokens is used when a caller does not set CompletionOptions.MaxTokens
const defaultMaxTokens = 1024

// AnthropicClient implements Client for the Anthropic Messages API
type AnthropicClient struct {
	client anthropic.Client
	config *Config
}

// NewAnthropicClient creates a new Anthropic client. Requests are sent once; the SDK's
// automatic retries are disabled.
func NewAnthropicClient(config *Config, apiKey string, opts ...option.RequestOption) *AnthropicClient {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(config.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &AnthropicClient{
		client: anthropic.NewClient(reqOpts...),
		config: config,
	}
}

// Complete sends a single user-role message and returns the first content block's text
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	modelName, err := modelFor(c.config, opts.Tier)
	if err != nil {
		return "", err
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelName),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &RequestError{Message: "anthropic messages call failed", Cause: err}
	}

	if len(message.Content) == 0 || message.Content[0].Type != "text" {
		return "", nil
	}
	return message.Content[0].Text, nil
}

// Model returns the model name for a tier
func (c *AnthropicClient) Model(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the SDK client holds no resources of its own
func (c *AnthropicClient) Close() error {
	return nil
}
