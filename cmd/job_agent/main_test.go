package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-search-agent/internal/config"
	"github.com/jonathan/job-search-agent/internal/llm"
)

func TestLLMConfig(t *testing.T) {
	cfg := llmConfig(config.Config{Provider: config.ProviderAnthropic, BaseURL: "http://localhost:9999"})
	assert.Equal(t, llm.ProviderAnthropic, cfg.Provider)
	assert.Equal(t, llm.DefaultAnthropicModel, cfg.GetModel(llm.TierAdvanced))
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)

	cfg = llmConfig(config.Config{Provider: config.ProviderGemini, Model: "gemini-2.5-pro"})
	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(llm.TierLite))

	cfg = llmConfig(config.Config{
		Provider: config.ProviderAnthropic,
		Model:    "claude-sonnet",
		Models:   map[string]string{"lite": "claude-haiku"},
	})
	assert.Equal(t, "claude-haiku", cfg.GetModel(llm.TierLite))
	assert.Equal(t, "claude-sonnet", cfg.GetModel(llm.TierStandard))
	assert.Equal(t, "claude-sonnet", cfg.GetModel(llm.TierAdvanced))
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\nlog_level: debug\n"), 0o600))
	t.Setenv("LOG_FORMAT", "json")

	configPath, logLevel, logFormat = path, "", ""
	saved := logger
	t.Cleanup(func() {
		configPath = ""
		logger = saved
	})

	require.NoError(t, loadSettings(nil, nil))
	assert.Equal(t, 9090, settings.Port)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, config.ProviderAnthropic, settings.Provider)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	configPath, logLevel, logFormat = "", "", ""

	err := loadSettings(nil, nil)
	assert.ErrorContains(t, err, "unknown provider")
}
