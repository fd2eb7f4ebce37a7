package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kingdom/internal/logger"
)

const (
	// DefaultOpenAIBaseURL is used when no base URL is configured.
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	// DefaultOpenAIModel is the default chat model.
	DefaultOpenAIModel = "gpt-4o-mini"
	// DefaultGeminiModel is the default Gemini model.
	DefaultGeminiModel = "gemini-1.5-flash"
	// DefaultTimeout bounds a single AI call.
	DefaultTimeout = 30 * time.Second
	// SystemPrompt instructs the model to answer with one JSON object.
	SystemPrompt = "You are a social media marketing assistant for creators and small businesses. " +
		"Always respond with a single valid JSON object and no other text."
)

// Providers accepted by New.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// Generator sends a prompt to a text model and returns the JSON object it
// answered with. Any failure yields an empty, non-nil map; callers apply their
// own defaults for missing fields.
type Generator interface {
	CallAI(ctx context.Context, prompt string) map[string]any
}

// Config selects and configures a Generator.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// New builds the Generator for cfg. A missing key or provider "none" gives a
// NoopClient so the rest of the system runs on fallbacks.
func New(ctx context.Context, cfg Config) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderOpenAI
	}
	if provider == ProviderNone || cfg.APIKey == "" {
		logger.Info("AI provider not configured, using fallback scores", "provider", provider)
		return NoopClient{}, nil
	}

	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// NoopClient never calls out and always returns an empty object.
type NoopClient struct{}

// CallAI implements Generator.
func (NoopClient) CallAI(context.Context, string) map[string]any {
	return map[string]any{}
}

// OpenAIClient talks to an OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIClient creates a client for {baseURL}/chat/completions.
func NewOpenAIClient(baseURL, apiKey, model string, timeout time.Duration) *OpenAIClient {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string { return c.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CallAI implements Generator. Failures are logged and produce {}.
func (c *OpenAIClient) CallAI(ctx context.Context, prompt string) map[string]any {
	content, err := c.complete(ctx, prompt)
	if err != nil {
		logger.Warn("AI call failed", "provider", ProviderOpenAI, "model", c.model, "error", err.Error())
		return map[string]any{}
	}

	obj, err := ParseJSONObject(content)
	if err != nil {
		logger.Warn("AI response was not a JSON object", "provider", ProviderOpenAI, "error", err.Error())
		return map[string]any{}
	}
	return obj
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt cannot be empty")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("chat API error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("chat response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// ParseJSONObject decodes a model reply into an object, tolerating a
// surrounding markdown code fence.
func ParseJSONObject(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return nil, errors.New("empty response from model")
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("parse model JSON: %w", err)
	}
	if obj == nil {
		return nil, errors.New("model returned null")
	}
	return obj, nil
}
