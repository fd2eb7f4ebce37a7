package hashtags

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"kingdom/internal/core"
	"kingdom/internal/estimate"
	"kingdom/internal/metrics"
	"kingdom/internal/trends"
)

func newTestService(src trends.Source) *Service {
	s := NewService(src, estimate.NewRand(7), metrics.NewRecorder())
	s.now = func() time.Time { return time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC) }
	return s
}

func assertRanked(t *testing.T, got []core.HashtagSuggestion, limit int) {
	t.Helper()
	if len(got) == 0 {
		t.Fatal("Expected non-empty suggestions")
	}
	if len(got) > limit {
		t.Errorf("Expected at most %d suggestions, got %d", limit, len(got))
	}
	for i, s := range got {
		if !s.Category.Valid() {
			t.Errorf("Suggestion %s has invalid category %q", s.Hashtag, s.Category)
		}
		if !strings.HasPrefix(s.Hashtag, "#") {
			t.Errorf("Expected hashtag to start with #, got %q", s.Hashtag)
		}
		if i > 0 && got[i-1].CompositeScore() < s.CompositeScore() {
			t.Errorf("Suggestions not sorted at %d: %.2f < %.2f", i, got[i-1].CompositeScore(), s.CompositeScore())
		}
	}
}

func TestPersonalizedHashtagsLaunchExample(t *testing.T) {
	s := newTestService(trends.NewStaticSource())

	got := s.PersonalizedHashtags(context.Background(), Request{
		Mode:     core.ModeFaith,
		Content:  "I launched my new business today",
		Platform: core.PlatformInstagram,
	})

	assertRanked(t, got, 30)

	var sawContent bool
	for _, sug := range got {
		if sug.Hashtag == "#business" && sug.Category == core.CategoryContent {
			sawContent = true
			// "business" is part of the "small business" trend.
			if sug.TrendingScore != ContentScore+ContentTrendingBoost {
				t.Errorf("Expected boosted content score, got %.0f", sug.TrendingScore)
			}
		}
		if sug.UserAffinityScore != estimate.NeutralAffinity {
			t.Errorf("Expected neutral affinity with empty history, got %.2f for %s", sug.UserAffinityScore, sug.Hashtag)
		}
	}
	if !sawContent {
		t.Error("Expected #business from the content pool")
	}
}

func TestPersonalizedHashtagsUsesHistoryAffinity(t *testing.T) {
	s := newTestService(nil)
	history := []core.HashtagPerformance{{Hashtag: "#blessed", TimesUsed: 4, AvgEngagement: 800}}

	got := s.PersonalizedHashtags(context.Background(), Request{
		Mode:     core.ModeFaith,
		Platform: core.PlatformInstagram,
		History:  history,
	})
	assertRanked(t, got, 30)

	for _, sug := range got {
		if sug.Hashtag == "#blessed" {
			if math.Abs(sug.UserAffinityScore-0.8) > 1e-9 {
				t.Errorf("Expected affinity 0.8, got %.2f", sug.UserAffinityScore)
			}
			return
		}
	}
	t.Error("Expected #blessed in suggestions")
}

func TestPersonalizedHashtagsRespectsPlatformCap(t *testing.T) {
	s := newTestService(trends.NewStaticSource())
	got := s.PersonalizedHashtags(context.Background(), Request{
		Mode:     core.ModeEncouragement,
		Content:  "Morning workout motivation before opening the bakery downtown",
		Platform: core.PlatformTwitter,
		Niche:    "fitness",
		Season:   "winter",
	})
	assertRanked(t, got, 5)
	if len(got) != 5 {
		t.Errorf("Expected exactly 5 twitter suggestions, got %d", len(got))
	}
}

func TestPersonalizedHashtagsSurvivesTrendFailure(t *testing.T) {
	failing := trends.SourceFunc(func(ctx context.Context, p core.Platform) ([]core.TrendingTopic, error) {
		return nil, errors.New("timeout")
	})
	s := newTestService(failing)

	got := s.PersonalizedHashtags(context.Background(), Request{
		Mode:     core.ModeEncouragement,
		Content:  "new product launch",
		Platform: core.PlatformInstagram,
	})
	assertRanked(t, got, 30)
	for _, sug := range got {
		if sug.Category == core.CategoryTrending {
			t.Errorf("Expected no trending candidates after source failure, got %s", sug.Hashtag)
		}
	}
}

func TestPersonalizedHashtagsKeepsDuplicates(t *testing.T) {
	src := trends.SourceFunc(func(ctx context.Context, p core.Platform) ([]core.TrendingTopic, error) {
		return []core.TrendingTopic{{Keyword: "golden hour", TrendScore: 95, RelatedHashtags: []string{"#goldenhour"}}}, nil
	})
	s := newTestService(src)

	// July is summer, whose bank also carries #goldenhour.
	got := s.PersonalizedHashtags(context.Background(), Request{Mode: core.ModeFaith, Platform: core.PlatformInstagram})
	count := 0
	for _, sug := range got {
		if sug.Hashtag == "#goldenhour" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("Expected #goldenhour from both pools, got %d", count)
	}
}

func TestTrendingHashtags(t *testing.T) {
	s := newTestService(trends.NewStaticSource())
	got := s.TrendingHashtags(context.Background(), core.ModeFaith, core.PlatformTikTok)
	assertRanked(t, got, 10)
	for _, sug := range got {
		if sug.Category != core.CategoryTrending {
			t.Errorf("Expected trending category, got %s", sug.Category)
		}
	}

	fallback := s.TrendingHashtags(context.Background(), core.ModeFaith, "myspace")
	assertRanked(t, fallback, 30)
	if fallback[0].Category != core.CategoryCommunity {
		t.Errorf("Expected community fallback, got %s", fallback[0].Category)
	}
}

func TestAnalyzePerformance(t *testing.T) {
	s := newTestService(nil)

	empty := s.AnalyzePerformance(nil)
	if len(empty.TopPerformers) != 0 || len(empty.Recommendations) == 0 {
		t.Errorf("Unexpected report for empty history: %+v", empty)
	}

	history := []core.HashtagPerformance{
		{Hashtag: "#blessed", TimesUsed: 10, AvgEngagement: 900, ConversionRate: 0.5},
		{Hashtag: "#faith", TimesUsed: 8, AvgEngagement: 600},
		{Hashtag: "#random", TimesUsed: 5, AvgEngagement: 50},
		{Hashtag: "#once", TimesUsed: 1, AvgEngagement: 10},
	}
	report := s.AnalyzePerformance(history)

	if len(report.TopPerformers) != 2 || report.TopPerformers[0].Hashtag != "#blessed" {
		t.Errorf("Unexpected top performers: %+v", report.TopPerformers)
	}
	if len(report.Underperformers) != 1 || report.Underperformers[0].Hashtag != "#random" {
		t.Errorf("Expected only #random as underperformer, got %+v", report.Underperformers)
	}
	joined := strings.Join(report.Recommendations, "\n")
	for _, want := range []string{"#blessed", "Consider replacing #random", "call to action"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected recommendations to mention %q, got:\n%s", want, joined)
		}
	}
}

func TestRecordUsage(t *testing.T) {
	first := RecordUsage(nil, Usage{Hashtag: "Blessed", Engagement: 200, ReachIncrease: 10, Conversions: 2})
	if first.Hashtag != "#blessed" || first.TimesUsed != 1 || first.AvgEngagement != 200 {
		t.Errorf("Unexpected first record: %+v", first)
	}
	if first.ConversionRate != 1 {
		t.Errorf("Expected conversion rate 1%%, got %.2f", first.ConversionRate)
	}

	second := RecordUsage(&first, Usage{Hashtag: "#blessed", Engagement: 400, ReachIncrease: 30})
	if second.TimesUsed != 2 || second.AvgEngagement != 300 || second.ReachIncrease != 20 {
		t.Errorf("Unexpected running averages: %+v", second)
	}
	if second.ConversionRate != 0.5 {
		t.Errorf("Expected averaged conversion rate 0.5, got %.2f", second.ConversionRate)
	}
	if first.TimesUsed != 1 {
		t.Error("Expected previous record to be left untouched")
	}
}

func TestPostUsage(t *testing.T) {
	fold := PostUsage(core.Post{Engagement: 150, Conversions: 3}, 12)

	rec := fold(nil, "#launch")
	if rec.Hashtag != "#launch" || rec.TimesUsed != 1 || rec.AvgEngagement != 150 || rec.ReachIncrease != 12 {
		t.Errorf("Unexpected record: %+v", rec)
	}
	rec = fold(&rec, "#launch")
	if rec.TimesUsed != 2 || rec.ConversionRate != 2 {
		t.Errorf("Unexpected folded record: %+v", rec)
	}
}
