package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Typed gateway failures. Handlers map these onto the status codes the
// frontend expects; everything else is a generic analysis failure.
var (
	ErrRateLimited    = errors.New("llm gateway: rate limit exceeded")
	ErrQuotaExhausted = errors.New("llm gateway: quota exhausted")
	ErrEmptyReply     = errors.New("llm gateway: empty reply")
)

// Message is a single chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Config holds gateway configuration
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// LoadConfig reads gateway config from env.
// LLM_API_KEY is required; URL and model have hosted defaults.
func LoadConfig() (Config, error) {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return Config{}, fmt.Errorf("LLM_API_KEY is not configured")
	}
	baseURL := os.Getenv("LLM_GATEWAY_URL")
	if baseURL == "" {
		baseURL = "https://ai.gateway.lovable.dev/v1/chat/completions"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "google/gemini-2.5-flash"
	}
	return Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}, nil
}

// MetricsRecorder interface for recording gateway round trips
type MetricsRecorder interface {
	RecordGatewayDuration(ctx context.Context, durationMs float64, statusCode int)
}

// Client calls an OpenAI-style chat-completions endpoint over HTTPS with a
// bearer credential. One request, one response, no streaming, no retries.
type Client struct {
	cfg        Config
	httpClient *http.Client
	metrics    MetricsRecorder
}

// NewClient creates a gateway client. metrics may be nil.
func NewClient(cfg Config, metrics MetricsRecorder) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		metrics: metrics,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Complete sends system+user messages and returns the raw text of the first
// choice. 429 and 402 map to typed errors so callers can surface them
// verbatim; any other non-2xx status is a generic failure.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:    c.cfg.Model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordGatewayDuration(ctx, float64(time.Since(start).Milliseconds()), 0)
		}
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordGatewayDuration(ctx, float64(time.Since(start).Milliseconds()), resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", ErrQuotaExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(errText))
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyReply
	}

	return parsed.Choices[0].Message.Content, nil
}
