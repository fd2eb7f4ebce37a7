package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"kingdom/internal/logger"
)

// GeminiClient implements Generator on top of the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewGeminiClient creates a Gemini-backed generator.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
		timeout:   timeout,
	}, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string { return c.modelName }

// Close releases the underlying client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// CallAI implements Generator. Failures are logged and produce {}.
func (c *GeminiClient) CallAI(ctx context.Context, prompt string) map[string]any {
	text, err := c.generate(ctx, prompt)
	if err != nil {
		logger.Warn("AI call failed", "provider", ProviderGemini, "model", c.modelName, "error", err.Error())
		return map[string]any{}
	}

	obj, err := ParseJSONObject(text)
	if err != nil {
		logger.Warn("AI response was not a JSON object", "provider", ProviderGemini, "error", err.Error())
		return map[string]any{}
	}
	return obj
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.modelName)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = genai.NewUserContent(genai.Text(SystemPrompt))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}
