// Package client is a Go client for the assessrec HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kailas-cloud/assessrec/internal/version"
)

// maxResponseBody caps how much of a response is read.
const maxResponseBody = 1 << 20

// Client talks to an assessrec server.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("assessrec: parse base URL: %w", err)
	}

	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if cfg.userAgent == "" {
		cfg.userAgent = "assessrec-go/" + version.Version
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.apiKey,
		userAgent:  cfg.userAgent,
		httpClient: cfg.httpClient,
	}, nil
}

// Recommend returns up to 10 assessments for a hiring query.
func (c *Client) Recommend(ctx context.Context, query string) ([]Assessment, error) {
	body, err := json.Marshal(recommendRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("assessrec: encode request: %w", err)
	}

	var resp recommendResponse
	if err := c.do(ctx, http.MethodPost, "/recommend", body, &resp); err != nil {
		return nil, err
	}
	if resp.RecommendedAssessments == nil {
		return []Assessment{}, nil
	}
	return resp.RecommendedAssessments, nil
}

// Health fetches the health report. A degraded service answers 503 with a
// valid body; that case returns the report without an error.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable && h.Status != "" {
		return h, nil
	}
	if err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("assessrec: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("assessrec: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("assessrec: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
		var eb errorBody
		if len(raw) > 0 && json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			apiErr.Title = eb.Error
			apiErr.Message = eb.Message
		}
		// A degraded health report still carries a body worth decoding.
		if out != nil && len(raw) > 0 {
			_ = json.Unmarshal(raw, out)
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("assessrec: decode response: %w", err)
	}
	return nil
}
