package llm

import (
	"context"
	"time"

	"kingdom/internal/logger"
	"kingdom/internal/metrics"
)

// TracedClient wraps a Generator and records call counts and latency.
type TracedClient struct {
	next     Generator
	provider string
	recorder *metrics.Recorder
}

// NewTracedClient wraps next. A nil recorder only logs.
func NewTracedClient(next Generator, provider string, recorder *metrics.Recorder) *TracedClient {
	return &TracedClient{
		next:     next,
		provider: provider,
		recorder: recorder,
	}
}

// Underlying returns the wrapped generator.
func (tc *TracedClient) Underlying() Generator {
	return tc.next
}

// CallAI implements Generator. An empty object counts as a failed call.
func (tc *TracedClient) CallAI(ctx context.Context, prompt string) map[string]any {
	start := time.Now()
	result := tc.next.CallAI(ctx, prompt)
	if result == nil {
		result = map[string]any{}
	}
	elapsed := time.Since(start)

	ok := len(result) > 0
	tc.recorder.AICall(tc.provider, ok, elapsed)
	logger.Debug("AI call completed",
		"provider", tc.provider,
		"ok", ok,
		"prompt_tokens", estimateTokens(prompt),
		"latency_ms", elapsed.Milliseconds())
	return result
}

// estimateTokens is a rough token count (about four characters per token).
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}
