package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kingdom/internal/core"
	"kingdom/internal/llm"
	"kingdom/internal/metrics"
)

type stubAI map[string]any

func (s stubAI) CallAI(context.Context, string) map[string]any {
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func failingOpenAI(t *testing.T) llm.Generator {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)
	return llm.NewOpenAIClient(server.URL, "key", "model", time.Second)
}

func jsonOpenAI(t *testing.T, content string) llm.Generator {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
		})
	}))
	t.Cleanup(server.Close)
	return llm.NewOpenAIClient(server.URL, "key", "model", time.Second)
}

func TestAnalyzeContentFallbackOnHTTPFailure(t *testing.T) {
	svc := NewService(failingOpenAI(t), metrics.NewRecorder())

	for i := 0; i < 3; i++ {
		faith := svc.AnalyzeContent(context.Background(), core.ModeFaith, "Blessed Sunday shoot", core.PlatformInstagram)
		assert.Equal(t, FallbackScore(core.ModeFaith), faith)
		require.NotNil(t, faith.FaithAlignment)
		assert.Equal(t, 75.0, *faith.FaithAlignment)
		assert.Equal(t, 70.0, faith.Overall)
		assert.Equal(t, 65.0, faith.Engagement)
		assert.Equal(t, 60.0, faith.Reach)
		assert.Equal(t, 55.0, faith.Conversion)
		assert.Equal(t, 50.0, faith.Virality)

		enc := svc.AnalyzeContent(context.Background(), core.ModeEncouragement, "Keep going", core.PlatformInstagram)
		assert.Equal(t, FallbackScore(core.ModeEncouragement), enc)
		assert.Nil(t, enc.FaithAlignment)
	}
}

func TestAnalyzeContentFieldByFieldFallback(t *testing.T) {
	svc := NewService(jsonOpenAI(t, `{"overall": 88, "reach": "91", "virality": 140, "conversion": "n/a"}`), nil)

	score := svc.AnalyzeContent(context.Background(), core.ModeFaith, "post", core.PlatformTikTok)
	assert.Equal(t, 88.0, score.Overall)
	assert.Equal(t, FallbackEngagement, score.Engagement)
	assert.Equal(t, 91.0, score.Reach)
	assert.Equal(t, FallbackConversion, score.Conversion)
	assert.Equal(t, 100.0, score.Virality, "scores are clamped to 100")
	require.NotNil(t, score.FaithAlignment)
	assert.Equal(t, FallbackFaithAlignment, *score.FaithAlignment)
}

func TestAnalyzeContentEncouragementIgnoresFaithAlignment(t *testing.T) {
	svc := NewService(stubAI{"overall": 80.0, "faithAlignment": 10.0}, nil)
	score := svc.AnalyzeContent(context.Background(), core.ModeEncouragement, "post", core.PlatformInstagram)
	assert.Nil(t, score.FaithAlignment)
	assert.Equal(t, 80.0, score.Overall)
}

func TestNilGeneratorUsesFallbacks(t *testing.T) {
	svc := NewService(nil, nil)
	assert.Equal(t, FallbackScore(core.ModeFaith),
		svc.AnalyzeContent(context.Background(), core.ModeFaith, "x", core.PlatformInstagram))
}

func TestPredictViralPotential(t *testing.T) {
	t.Run("ai answer", func(t *testing.T) {
		svc := NewService(stubAI{"score": 77.0, "factors": []any{"Strong hook", 3, ""}}, nil)
		p := svc.PredictViralPotential(context.Background(), core.ModeFaith, "Behind the scenes?", core.PlatformInstagram)
		assert.Equal(t, 77.0, p.Score)
		assert.Equal(t, []string{"Strong hook"}, p.Factors)
		assert.NotEmpty(t, p.Recommendations, "missing recommendations come from heuristics")
	})

	t.Run("heuristic fallback", func(t *testing.T) {
		svc := NewService(failingOpenAI(t), nil)
		content := "Behind the scenes of today's wedding. What would you ask the couple? #weddingday"
		p := svc.PredictViralPotential(context.Background(), core.ModeEncouragement, content, core.PlatformTikTok)
		assert.Equal(t, 90.0, p.Score)
		assert.Len(t, p.Factors, 5)
		assert.NotNil(t, p.Recommendations)

		again := svc.PredictViralPotential(context.Background(), core.ModeEncouragement, content, core.PlatformTikTok)
		assert.Equal(t, p, again)
	})

	t.Run("empty content", func(t *testing.T) {
		svc := NewService(nil, nil)
		p := svc.PredictViralPotential(context.Background(), core.ModeFaith, "", core.PlatformLinkedIn)
		assert.Equal(t, 40.0, p.Score)
		assert.Empty(t, p.Factors)
		assert.NotEmpty(t, p.Recommendations)
	})
}

func TestGenerateVariations(t *testing.T) {
	svc := NewService(stubAI{"variations": []any{"One", "Two", "One", "  "}}, nil)
	got := svc.GenerateVariations(context.Background(), core.ModeFaith, "Book your fall session", core.PlatformInstagram, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "One", got[0])
	assert.Equal(t, "Two", got[1])
	assert.Equal(t, "Grateful to share this: Book your fall session", got[2])

	fallback := NewService(nil, nil).GenerateVariations(context.Background(), core.ModeEncouragement, "Hello", core.PlatformInstagram, 0)
	assert.Len(t, fallback, DefaultVariations)

	assert.Empty(t, NewService(nil, nil).GenerateVariations(context.Background(), core.ModeFaith, "   ", core.PlatformInstagram, 2))
}

func TestGenerateVariationsClampsCount(t *testing.T) {
	many := make([]any, 0, 15)
	for i := 0; i < 15; i++ {
		many = append(many, fmt.Sprintf("Rewrite %d", i))
	}
	svc := NewService(stubAI{"variations": many}, nil)

	got := svc.GenerateVariations(context.Background(), core.ModeFaith, "Book now", core.PlatformInstagram, 4000000000000000000)
	require.Len(t, got, MaxVariations)
	assert.Equal(t, "Rewrite 0", got[0])
}

func TestABTestLifecycle(t *testing.T) {
	svc := NewService(nil, nil)

	test, err := svc.CreateABTest("Caption test", []string{"Version one", "", "Version two", "Version three"})
	require.NoError(t, err)
	require.Len(t, test.Variants, 3)
	assert.Equal(t, "Variant A", test.Variants[0].Name)
	assert.Equal(t, "Variant C", test.Variants[2].Name)

	a, b, c := test.Variants[0].ID, test.Variants[1].ID, test.Variants[2].ID
	require.NoError(t, svc.RecordMetrics(test.ID, a, core.VariantMetrics{Impressions: 1000, Engagement: 50}))
	require.NoError(t, svc.RecordMetrics(test.ID, b, core.VariantMetrics{Impressions: 500, Engagement: 60}))
	require.NoError(t, svc.RecordMetrics(test.ID, b, core.VariantMetrics{Impressions: 500, Engagement: 60, Conversions: 2}))
	require.NoError(t, svc.RecordMetrics(test.ID, c, core.VariantMetrics{Impressions: 1000, Engagement: 20}))

	result, err := svc.ABTestResult(test.ID)
	require.NoError(t, err)
	assert.Equal(t, test.ID, result.TestID)
	assert.Equal(t, b, result.Winner)
	assert.Equal(t, 1000, result.Variants[1].Metrics.Impressions)
	assert.Greater(t, result.Confidence, 0.99)
	assert.LessOrEqual(t, result.Confidence, 1.0)

	ids := make(map[string]bool)
	for _, v := range result.Variants {
		ids[v.ID] = true
	}
	assert.True(t, ids[result.Winner], "winner must be one of the variants")
}

func TestABTestResultWithoutData(t *testing.T) {
	svc := NewService(nil, nil)
	test, err := svc.CreateABTest("", []string{"only one"})
	require.NoError(t, err)
	assert.NotEmpty(t, test.Name)

	result, err := svc.ABTestResult(test.ID)
	require.NoError(t, err)
	assert.Equal(t, test.Variants[0].ID, result.Winner)
	assert.Zero(t, result.Confidence)
}

func TestABTestErrors(t *testing.T) {
	svc := NewService(nil, nil)

	_, err := svc.ABTestResult("missing")
	assert.ErrorIs(t, err, ErrTestNotFound)

	assert.ErrorIs(t, svc.RecordMetrics("missing", "v", core.VariantMetrics{}), ErrTestNotFound)

	test, err := svc.CreateABTest("t", []string{"a", "b"})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.RecordMetrics(test.ID, "nope", core.VariantMetrics{}), ErrVariantNotFound)

	_, err = svc.CreateABTest("empty", []string{"", "  "})
	assert.ErrorIs(t, err, ErrNoVariants)
}

func TestABTestsReturnsCopies(t *testing.T) {
	svc := NewService(nil, nil)
	test, err := svc.CreateABTest("copy", []string{"a", "b"})
	require.NoError(t, err)

	test.Variants[0].Content = "mutated"
	stored, err := svc.ABTest(test.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", stored.Variants[0].Content)

	assert.Len(t, svc.ABTests(), 1)
}

func TestABTestConcurrentMetrics(t *testing.T) {
	svc := NewService(nil, nil)
	test, err := svc.CreateABTest("concurrent", []string{"a", "b"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.RecordMetrics(test.ID, test.Variants[0].ID, core.VariantMetrics{Impressions: 2, Engagement: 1})
			_, _ = svc.ABTestResult(test.ID)
		}()
	}
	wg.Wait()

	stored, err := svc.ABTest(test.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Variants[0].Metrics.Impressions)
	assert.Equal(t, 50, stored.Variants[0].Metrics.Engagement)
}

func TestConfidence(t *testing.T) {
	assert.Zero(t, confidence(core.VariantMetrics{}, core.VariantMetrics{Impressions: 10}))
	same := core.VariantMetrics{Impressions: 100, Engagement: 10}
	assert.Zero(t, confidence(same, same))
	all := core.VariantMetrics{Impressions: 10, Engagement: 10}
	assert.Zero(t, confidence(all, all), "zero variance gives zero confidence")
}
