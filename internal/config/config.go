// Package config provides configuration loading and validation for the job search agent.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported provider names.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config represents the agent configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or come from CLI flags and the environment.
// The LLM API key is not part of Config; it is looked up on every request (see LookupAPIKey).
type Config struct {
	Port      int               `json:"port,omitempty" yaml:"port,omitempty"`             // HTTP listen port
	Provider  string            `json:"provider,omitempty" yaml:"provider,omitempty"`     // anthropic or gemini
	Model     string            `json:"model,omitempty" yaml:"model,omitempty"`           // Overrides the model for every tier
	Models    map[string]string `json:"models,omitempty" yaml:"models,omitempty"`         // Per-tier overrides, applied after Model
	BaseURL   string            `json:"base_url,omitempty" yaml:"base_url,omitempty"`     // Alternate API endpoint (anthropic only)
	LogLevel  string            `json:"log_level,omitempty" yaml:"log_level,omitempty"`   // logrus level name
	LogFormat string            `json:"log_format,omitempty" yaml:"log_format,omitempty"` // text or json
}

// Tiers are the model tier names accepted as keys of Models.
var Tiers = []string{"lite", "standard", "advanced"}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:      8080,
		Provider:  ProviderAnthropic,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.Provider {
	case "", ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: 'log_format' must be text or json")
	}

	for tier := range c.Models {
		if !slices.Contains(Tiers, tier) {
			return fmt.Errorf("config error: unknown model tier %q in 'models'", tier)
		}
	}

	if c.BaseURL != "" && c.Provider == ProviderGemini {
		return fmt.Errorf("config error: 'base_url' is only supported for the anthropic provider")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Models == nil {
		result.Models = defaults.Models
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}

// ApplyEnv overrides fields from environment variables when they are set.
func (c *Config) ApplyEnv() {
	c.Port = getEnvInt("PORT", c.Port)
	c.Provider = getEnvString("LLM_PROVIDER", c.Provider)
	c.Model = getEnvString("LLM_MODEL", c.Model)
	c.BaseURL = getEnvString("LLM_BASE_URL", c.BaseURL)
	c.LogLevel = getEnvString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvString("LOG_FORMAT", c.LogFormat)
}

func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
