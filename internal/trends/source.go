package trends

import (
	"context"
	"math"
	"strings"

	"kingdom/internal/core"
	"kingdom/internal/logger"
	"kingdom/internal/metrics"
)

// Source supplies trending topics for a platform.
type Source interface {
	TrendingTopics(ctx context.Context, platform core.Platform) ([]core.TrendingTopic, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, platform core.Platform) ([]core.TrendingTopic, error)

// TrendingTopics implements Source.
func (f SourceFunc) TrendingTopics(ctx context.Context, platform core.Platform) ([]core.TrendingTopic, error) {
	return f(ctx, platform)
}

// Valid reports whether a topic carries the fields ranking depends on.
func Valid(t core.TrendingTopic) bool {
	if strings.TrimSpace(t.Keyword) == "" {
		return false
	}
	if math.IsNaN(t.TrendScore) || math.IsInf(t.TrendScore, 0) || t.TrendScore <= 0 {
		return false
	}
	return true
}

// Sanitize drops invalid topics and clamps trend scores to [0,100].
// It returns the kept topics and how many were skipped.
func Sanitize(topics []core.TrendingTopic) ([]core.TrendingTopic, int) {
	kept := make([]core.TrendingTopic, 0, len(topics))
	skipped := 0
	for _, t := range topics {
		if !Valid(t) {
			skipped++
			continue
		}
		t.Keyword = strings.TrimSpace(t.Keyword)
		t.TrendScore = math.Min(t.TrendScore, 100)
		kept = append(kept, t)
	}
	return kept, skipped
}

// Fetch calls src and returns only valid topics. Source errors are logged and
// produce an empty list; they never reach the caller.
func Fetch(ctx context.Context, src Source, platform core.Platform, rec *metrics.Recorder) []core.TrendingTopic {
	if src == nil {
		return []core.TrendingTopic{}
	}

	topics, err := src.TrendingTopics(ctx, platform)
	if err != nil {
		logger.Warn("Trend source failed, continuing without trends", "platform", string(platform), "error", err.Error())
		rec.TrendFetch(string(platform), false, 0)
		rec.Fallback("trending_topics")
		return []core.TrendingTopic{}
	}

	kept, skipped := Sanitize(topics)
	if skipped > 0 {
		logger.Debug("Dropped malformed trending topics", "platform", string(platform), "skipped", skipped)
	}
	rec.TrendFetch(string(platform), true, skipped)
	return kept
}
