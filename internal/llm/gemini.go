package llm

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &RequestError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete generates text content using the specified model tier
func (c *GeminiClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	modelName, err := modelFor(c.config, opts.Tier)
	if err != nil {
		return "", err
	}

	model := c.client.GenerativeModel(modelName)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &RequestError{Message: "gemini generate content failed", Cause: err}
	}

	return firstText(resp), nil
}

// Model returns the model name for a tier
func (c *GeminiClient) Model(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// firstText returns the first part of the first candidate, or "" when that part is not text
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	text, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return ""
	}
	return string(text)
}
