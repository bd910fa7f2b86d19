// Package openai is a minimal chat-completions client used for the
// trading behavior analysis. One request per call, no retries, no
// streaming.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/TradingIntent/Intentnew/internal/config"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

var ErrMissingAPIKey = errors.New("openai api key missing")

// Client calls the OpenAI chat-completions endpoint
type Client struct {
	cfg        config.OpenAIConfig
	httpClient *http.Client
}

// NewClient creates a new Client
func NewClient(cfg config.OpenAIConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
	}
}

// Generate sends a single-user-message prompt and returns the model's
// text reply.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	body := map[string]any{
		"model":    c.cfg.Model,
		"messages": []map[string]string{{"role": "user", "content": prompt}},
	}
	bb, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, completionsURL, bytes.NewReader(bb))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}

	if len(r.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	return strings.TrimSpace(r.Choices[0].Message.Content), nil
}
