package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"provider": "gemini",
		"model": "gemini-2.5-pro",
		"log_level": "debug"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := "port: 7000\nprovider: anthropic\nbase_url: http://localhost:9999\nlog_format: json\n"

	tmpFile := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_TierModelsYAML(t *testing.T) {
	content := "model: claude-sonnet\nmodels:\n  lite: claude-haiku\n  advanced: claude-opus\n"

	tmpFile := filepath.Join(t.TempDir(), "agent.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"lite": "claude-haiku", "advanced": "claude-opus"}, cfg.Models)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("port: [unclosed"), 0644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "empty", cfg: Config{}},
		{name: "bad port", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "bad provider", cfg: Config{Provider: "openai"}, wantErr: "unknown provider"},
		{name: "bad log format", cfg: Config{LogFormat: "xml"}, wantErr: "log_format"},
		{name: "tier models", cfg: Config{Models: map[string]string{"lite": "claude-haiku", "advanced": "claude-opus"}}},
		{name: "unknown tier", cfg: Config{Models: map[string]string{"turbo": "x"}}, wantErr: "unknown model tier"},
		{name: "base url with gemini", cfg: Config{Provider: ProviderGemini, BaseURL: "http://x"}, wantErr: "base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Provider: ProviderGemini}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, ProviderGemini, merged.Provider)
	assert.Equal(t, "info", merged.LogLevel)
	assert.Equal(t, "text", merged.LogFormat)
	assert.Equal(t, "", cfg.LogLevel, "original should be unchanged")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("LLM_MODEL", "claude-test")
	t.Setenv("LOG_LEVEL", "")

	cfg := Defaults()
	cfg.ApplyEnv()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "claude-test", cfg.Model)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLookupAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	_, ok := LookupAPIKey(ProviderAnthropic)
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "your-api-key-here")
	_, ok = LookupAPIKey(ProviderAnthropic)
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", " sk-ant-test ")
	key, ok := LookupAPIKey(ProviderAnthropic)
	assert.True(t, ok)
	assert.Equal(t, "sk-ant-test", key)

	t.Setenv("GEMINI_API_KEY", "gem-key")
	key, ok = LookupAPIKey(ProviderGemini)
	assert.True(t, ok)
	assert.Equal(t, "gem-key", key)
}

func TestAPIKeyEnv(t *testing.T) {
	assert.Equal(t, "ANTHROPIC_API_KEY", APIKeyEnv(ProviderAnthropic))
	assert.Equal(t, "ANTHROPIC_API_KEY", APIKeyEnv(""))
	assert.Equal(t, "GEMINI_API_KEY", APIKeyEnv(ProviderGemini))
}
