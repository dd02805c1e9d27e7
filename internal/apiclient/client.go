// Package apiclient talks to a running job search assistant server over its JSON API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/job-search-agent/internal/types"
)

const defaultTimeout = 90 * time.Second

// APIError is an {"error": ...} reply from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client calls the assistant's HTTP endpoints. It satisfies session.Assistant.
type Client struct {
	baseURL string
	hc      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchJobs calls POST /search-jobs.
func (c *Client) SearchJobs(ctx context.Context, profile types.Profile) ([]types.Job, error) {
	var resp struct {
		types.SearchJobsResponse
		Error string `json:"error"`
	}
	if err := c.post(ctx, "/search-jobs", types.SearchJobsRequest{Profile: &profile}, &resp, &resp.Error); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// FindHiringManager calls POST /find-hiring-manager. A 200 reply carrying
// only an error is reported as an *APIError.
func (c *Client) FindHiringManager(ctx context.Context, job types.Job) (*types.HiringManagerResult, error) {
	var resp struct {
		types.HiringManagerResult
		Error string `json:"error"`
	}
	if err := c.post(ctx, "/find-hiring-manager", types.FindHiringManagerRequest{Job: &job}, &resp, &resp.Error); err != nil {
		return nil, err
	}
	return &resp.HiringManagerResult, nil
}

// DraftOutreach calls POST /draft-outreach.
func (c *Client) DraftOutreach(ctx context.Context, job types.Job, profile types.Profile) (string, error) {
	var resp struct {
		types.DraftOutreachResponse
		Error string `json:"error"`
	}
	req := types.DraftOutreachRequest{Job: &job, Profile: &profile}
	if err := c.post(ctx, "/draft-outreach", req, &resp, &resp.Error); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// post sends body as JSON and decodes the reply into out. errField must point
// into out; a non-empty value after decoding becomes an *APIError.
func (c *Client) post(ctx context.Context, path string, body, out any, errField *string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return &APIError{Status: res.StatusCode, Message: strings.TrimSpace(string(data))}
		}
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if *errField != "" {
		return &APIError{Status: res.StatusCode, Message: *errField}
	}
	if res.StatusCode >= http.StatusBadRequest {
		return &APIError{Status: res.StatusCode, Message: http.StatusText(res.StatusCode)}
	}
	return nil
}
