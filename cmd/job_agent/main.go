// Package main provides the entry point for the job search assistant: an HTTP API
// server, one-shot commands and an interactive terminal session.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-search-agent/internal/assistant"
	"github.com/jonathan/job-search-agent/internal/config"
	"github.com/jonathan/job-search-agent/internal/llm"
	"github.com/jonathan/job-search-agent/internal/observability"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	settings config.Config
	logger   *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "job_agent",
	Short: "AI job search assistant",
	Long: "job_agent suggests job openings for a profile, guesses the hiring manager for a role " +
		"and drafts a LinkedIn outreach note, using a hosted LLM.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text or json)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves configuration from file, environment and flags, in increasing priority.
func loadSettings(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	cfg.ApplyEnv()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	logger = observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	return nil
}

// llmConfig turns the resolved settings into the model configuration.
func llmConfig(cfg config.Config) *llm.Config {
	out := llm.ConfigFor(llm.Provider(cfg.Provider))
	if cfg.Model != "" {
		out = out.WithAllModels(cfg.Model)
	}
	for tier, model := range cfg.Models {
		out = out.WithModel(llm.ModelTier(tier), model)
	}
	out.BaseURL = cfg.BaseURL
	return out
}

// newService builds the in-process assistant from the resolved settings.
func newService() *assistant.Service {
	return assistant.New(
		assistant.WithLLMConfig(llmConfig(settings)),
		assistant.WithLogger(logger),
	)
}
