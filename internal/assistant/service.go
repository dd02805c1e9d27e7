// Package assistant implements the job search assistant's request handlers: job search,
// hiring-manager lookup and outreach drafting. Each call builds a prompt, sends it to the
// configured model once and interprets the reply.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/job-search-agent/internal/config"
	"github.com/jonathan/job-search-agent/internal/llm"
	"github.com/jonathan/job-search-agent/internal/parsing"
	"github.com/jonathan/job-search-agent/internal/types"
)

// Output token budgets per handler.
const (
	searchMaxTokens   = 2500
	managerMaxTokens  = 1000
	outreachMaxTokens = 500
)

// Service is stateless between calls; it is safe for concurrent use.
type Service struct {
	llmConfig *llm.Config
	newClient llm.Factory
	lookupKey func() (string, bool)
	logger    *logrus.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLLMConfig selects the provider and models.
func WithLLMConfig(cfg *llm.Config) Option {
	return func(s *Service) { s.llmConfig = cfg }
}

// WithClientFactory replaces how per-request clients are built.
func WithClientFactory(factory llm.Factory) Option {
	return func(s *Service) { s.newClient = factory }
}

// WithKeyLookup replaces the environment lookup of the API key.
func WithKeyLookup(lookup func() (string, bool)) Option {
	return func(s *Service) { s.lookupKey = lookup }
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates a Service. Without options it talks to Anthropic with the key from ANTHROPIC_API_KEY.
func New(opts ...Option) *Service {
	s := &Service{
		llmConfig: llm.DefaultConfig(),
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.newClient == nil {
		s.newClient = llm.NewFactory(s.llmConfig)
	}
	if s.lookupKey == nil {
		provider := string(s.llmConfig.Provider)
		s.lookupKey = func() (string, bool) { return config.LookupAPIKey(provider) }
	}
	return s
}

// SearchJobs returns job listings for profile. The only error it reports is a missing
// API key; upstream failures and unreadable replies yield FallbackJobs.
func (s *Service) SearchJobs(ctx context.Context, profile types.Profile) ([]types.Job, error) {
	text, err := s.complete(ctx, "search-jobs", BuildSearchJobsPrompt(profile),
		llm.CompletionOptions{Tier: llm.TierStandard, MaxTokens: searchMaxTokens})
	if err != nil {
		var cfgErr *llm.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		s.logger.WithError(err).Warn("Job search request failed, serving fallback listings")
		return FallbackJobs(), nil
	}

	jobs, err := parsing.ParseJobs(text)
	if err != nil {
		s.logger.WithError(err).
			WithField("reply_prefix", Truncate(text, 300)).
			Warn("Job search reply unreadable, serving fallback listings")
		return FallbackJobs(), nil
	}

	return jobs, nil
}

// FindHiringManager guesses who is hiring for job. Errors are *llm.ConfigError,
// *llm.RequestError or *parsing.ParseError; there is no fallback guess.
func (s *Service) FindHiringManager(ctx context.Context, job types.Job) (*types.HiringManagerResult, error) {
	text, err := s.complete(ctx, "find-hiring-manager", BuildHiringManagerPrompt(job),
		llm.CompletionOptions{Tier: llm.TierStandard, MaxTokens: managerMaxTokens})
	if err != nil {
		return nil, err
	}

	result, err := parsing.ParseHiringManager(text)
	if err != nil {
		s.logger.WithError(err).WithField("company", job.Company).Warn("Hiring manager reply unreadable")
		return nil, err
	}

	return result, nil
}

// DraftOutreach returns the model's outreach message for job, verbatim.
func (s *Service) DraftOutreach(ctx context.Context, job types.Job, profile types.Profile) (string, error) {
	text, err := s.complete(ctx, "draft-outreach", BuildOutreachPrompt(job, profile),
		llm.CompletionOptions{Tier: llm.TierAdvanced, MaxTokens: outreachMaxTokens})
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", &parsing.ParseError{Message: "model returned no text"}
	}

	return text, nil
}

// complete looks up the key, builds a client and sends one request.
func (s *Service) complete(ctx context.Context, operation, prompt string, opts llm.CompletionOptions) (string, error) {
	apiKey, ok := s.lookupKey()
	if !ok {
		return "", &llm.ConfigError{Var: config.APIKeyEnv(string(s.llmConfig.Provider))}
	}

	client, err := s.newClient(ctx, apiKey)
	if err != nil {
		return "", err
	}
	defer func() { _ = client.Close() }()

	start := time.Now()
	text, err := client.Complete(ctx, prompt, opts)

	entry := s.logger.WithFields(logrus.Fields{
		"operation":   operation,
		"model":       client.Model(opts.Tier),
		"prompt_len":  len(prompt),
		"reply_len":   len(text),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Error("LLM request failed")
		return "", err
	}
	entry.Debug("LLM request completed")

	return text, nil
}
