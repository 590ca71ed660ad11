// Package images consumes the image search provider. The client keeps a single
// in-flight search: issuing a new one cancels its predecessor, so only the
// latest query's results are ever delivered (last-request-wins).
package images

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"mkn-console/internal/domain"
	"mkn-console/internal/metrics"
)

// Image is one result descriptor.
type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt,omitempty"`
}

// Client talks to the image search provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu      sync.Mutex
	current *searchHandle
}

// searchHandle identifies one in-flight search so a finished search only
// clears its own slot, never a successor's.
type searchHandle struct {
	cancel context.CancelFunc
}

// NewClient creates an image search client with an explicit request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
	Images  []Image `json:"images,omitempty"`
}

// Search queries the provider. A search superseded by a newer one returns
// context.Canceled; callers discard that result rather than treating it as a
// failure.
func (c *Client) Search(ctx context.Context, query string, limit int) (results []Image, err error) {
	timer := metrics.NewTimer()
	defer func() {
		// Superseded searches are routine, not provider failures.
		if errors.Is(err, context.Canceled) {
			return
		}
		metrics.ObserveRemoteCall("image_search", "search", err, timer.Elapsed())
	}()

	ctx, cancel := context.WithCancel(ctx)
	h := &searchHandle{cancel: cancel}

	c.mu.Lock()
	if c.current != nil {
		c.current.cancel()
	}
	c.current = h
	c.mu.Unlock()

	defer func() {
		cancel()
		c.mu.Lock()
		if c.current == h {
			c.current = nil
		}
		c.mu.Unlock()
	}()

	u := fmt.Sprintf("%s/v1/search?q=%s&limit=%s",
		c.baseURL, url.QueryEscape(query), strconv.Itoa(limit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build image search request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call image search: %w", err)
	}
	defer resp.Body.Close()

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode image search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("image search: %s: %w", msg, domain.ErrRemoteOperation)
	}
	return out.Images, nil
}
