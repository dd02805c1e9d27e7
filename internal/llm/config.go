// Package llm provides centralized LLM configuration and client abstractions.
// Handlers ask for a model tier; the configuration decides which provider model serves it.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short lookups, classification
	TierLite ModelTier = "lite"
	// TierStandard is for structured output: job listings, contact guesses
	TierStandard ModelTier = "standard"
	// TierAdvanced is for free-form writing: outreach drafts
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderAnthropic is the Anthropic Messages API
	ProviderAnthropic Provider = "anthropic"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultAnthropicModel is the model every tier uses unless configured otherwise.
const DefaultAnthropicModel = "claude-sonnet-4-20250514"

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// BaseURL overrides the provider endpoint. Only the Anthropic client honours it.
	BaseURL string
}

// DefaultConfig returns the default configuration (Anthropic)
func DefaultConfig() *Config {
	return DefaultAnthropicConfig()
}

// DefaultAnthropicConfig returns the default Anthropic configuration
func DefaultAnthropicConfig() *Config {
	return &Config{
		Provider: ProviderAnthropic,
		Models: map[ModelTier]string{
			TierLite:     DefaultAnthropicModel,
			TierStandard: DefaultAnthropicModel,
			TierAdvanced: DefaultAnthropicModel,
		},
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// ConfigFor returns the default configuration of a provider. Unknown providers get Anthropic.
func ConfigFor(provider Provider) *Config {
	if provider == ProviderGemini {
		return DefaultGeminiConfig()
	}
	return DefaultAnthropicConfig()
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := c.clone()
	newConfig.Models[tier] = model
	return newConfig
}

// WithAllModels returns a new Config that serves every tier with one model
func (c *Config) WithAllModels(model string) *Config {
	newConfig := c.clone()
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		newConfig.Models[tier] = model
	}
	return newConfig
}

func (c *Config) clone() *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)),
		BaseURL:  c.BaseURL,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	return newConfig
}
