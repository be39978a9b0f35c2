// Package hfserver provides the emotion classifier client for an HTTP
// text-classification inference server.
package hfserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mindwell/chat-service/internal/core/emotion"
)

// Config holds the inference client configuration.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client implements emotion.Classifier against an inference server that
// returns [[{"label": ..., "score": ...}]] for a text input.
type Client struct {
	url        string
	httpClient *http.Client
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// NewClient creates a new inference client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("inference URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 5 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		url:        cfg.URL,
		httpClient: httpClient,
	}, nil
}

// Classify scores the text against the model's emotion label set.
func (c *Client) Classify(ctx context.Context, text string) ([]emotion.Prediction, error) {
	body, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// The server wraps predictions for a single input in an outer array.
	var batches [][]emotion.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&batches); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(batches) == 0 {
		return nil, fmt.Errorf("empty classification result")
	}

	return batches[0], nil
}
