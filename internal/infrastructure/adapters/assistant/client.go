// Package assistant talks to an OpenAI-compatible chat completions API.
package assistant

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lumenhq/lumen/internal/infrastructure/adapters/httpclient"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 20 * time.Second
	maxTokens      = 220
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg sharedConfig.AssistantConfig, log logger.Interface) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      model,
		httpClient: httpclient.New(sharedConfig.Seconds(cfg.TimeoutSeconds, defaultTimeout)),
		logger:     log,
	}
}

// Complete returns the assistant's reply. key overrides the configured key.
func (c *Client) Complete(ctx context.Context, key, system, user string) (string, error) {
	if key == "" {
		key = c.apiKey
	}
	if key == "" {
		return "", resilient.ErrNotConfigured
	}

	req := completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}

	var resp completionResponse
	header := http.Header{"Authorization": {"Bearer " + key}}
	if err := httpclient.PostJSON(ctx, c.httpClient, c.baseURL+"/chat/completions", header, req, &resp); err != nil {
		return "", fmt.Errorf("failed to request completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion has no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("completion is empty")
	}
	return text, nil
}
