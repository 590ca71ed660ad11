// Package ai consumes the text-generation provider used by the content composer.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mkn-console/internal/domain"
	"mkn-console/internal/metrics"
)

// GenerationRequest carries the shared composer settings sent with every call.
type GenerationRequest struct {
	Topic          string `json:"topic"`
	Tone           string `json:"tone,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
	BrandContext   string `json:"brand_context,omitempty"`
	Instructions   string `json:"instructions,omitempty"`
}

// Client talks to the generation provider. No retries: a failed call surfaces
// its error once and the caller decides what to do.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a generation client with an explicit request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	GenerationRequest
	Platform  string   `json:"platform,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
}

type generateResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Content string            `json:"content,omitempty"`
	Results map[string]string `json:"results,omitempty"`
}

func (c *Client) post(ctx context.Context, op, path string, payload generateRequest) (out *generateResponse, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObserveRemoteCall("ai_provider", op, err, timer.Elapsed()) }()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call generation provider: %w", err)
	}
	defer resp.Body.Close()

	out = &generateResponse{}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("generation provider: %s: %w", msg, domain.ErrRemoteOperation)
	}
	return out, nil
}

// GeneratePost generates content for a single platform.
func (c *Client) GeneratePost(ctx context.Context, req GenerationRequest, platform domain.PlatformID) (string, error) {
	out, err := c.post(ctx, "generate", "/v1/generate", generateRequest{
		GenerationRequest: req,
		Platform:          string(platform),
	})
	if err != nil {
		return "", err
	}
	return out.Content, nil
}

// GenerateBatch generates content for all given platforms in one call.
// Either every platform gets a result or none does.
func (c *Client) GenerateBatch(ctx context.Context, req GenerationRequest, platforms []domain.PlatformID) (map[domain.PlatformID]string, error) {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	out, err := c.post(ctx, "generate_batch", "/v1/generate-batch", generateRequest{
		GenerationRequest: req,
		Platforms:         names,
	})
	if err != nil {
		return nil, err
	}

	results := make(map[domain.PlatformID]string, len(out.Results))
	for name, content := range out.Results {
		results[domain.PlatformID(name)] = content
	}
	for _, p := range platforms {
		if _, ok := results[p]; !ok {
			return nil, fmt.Errorf("generation provider: missing result for %s: %w", p, domain.ErrRemoteOperation)
		}
	}
	return results, nil
}
