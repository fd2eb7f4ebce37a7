// Package hashtags builds personalized hashtag suggestions from content keywords,
// trending topics and the static tag banks.
package hashtags

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"kingdom/internal/catalog"
	"kingdom/internal/core"
	"kingdom/internal/estimate"
	"kingdom/internal/keywords"
	"kingdom/internal/logger"
	"kingdom/internal/metrics"
	"kingdom/internal/ranking"
	"kingdom/internal/trends"
)

// Baseline trending scores for candidates that do not come with one.
const (
	ContentScore         = 60.0
	ContentTrendingBoost = 15.0
)

// Request carries everything PersonalizedHashtags needs. Season defaults to
// the current season when empty; Niche is optional.
type Request struct {
	Mode     core.Mode                 `json:"mode"`
	Content  string                    `json:"content"`
	Platform core.Platform             `json:"platform"`
	History  []core.HashtagPerformance `json:"history"`
	Niche    string                    `json:"niche,omitempty"`
	Season   string                    `json:"season,omitempty"`
}

// Service produces hashtag suggestions.
type Service struct {
	source   trends.Source
	rng      estimate.Rand
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewService creates a hashtag service. A nil rng uses the process-wide source.
func NewService(source trends.Source, rng estimate.Rand, recorder *metrics.Recorder) *Service {
	if rng == nil {
		rng = estimate.DefaultRand()
	}
	return &Service{
		source:   source,
		rng:      rng,
		recorder: recorder,
		now:      time.Now,
	}
}

// PersonalizedHashtags ranks candidates from five pools: content keywords,
// trending topics, the mode bank, the seasonal bank and the niche bank.
// The result never exceeds the platform cap.
func (s *Service) PersonalizedHashtags(ctx context.Context, req Request) []core.HashtagSuggestion {
	platform := core.NormalizePlatform(string(req.Platform))
	idx := estimate.Index(req.History)
	topics := trends.Fetch(ctx, s.source, platform, s.recorder)

	season := req.Season
	if season == "" {
		season = catalog.SeasonForMonth(s.now().Month())
	}

	pools := [][]core.HashtagSuggestion{
		s.contentPool(req.Content, topics, platform, idx),
		s.trendingPool(topics, platform, idx),
		s.bankPool(catalog.ModeHashtags(req.Mode), modeCategory(req.Mode), platform, idx, "Core "+string(req.Mode)+" community tag"),
		s.bankPool(catalog.SeasonalHashtags(season), core.CategorySeasonal, platform, idx, "Seasonal tag for "+season),
	}
	if req.Niche != "" {
		pools = append(pools, s.bankPool(catalog.NicheHashtags(req.Niche), core.CategoryNiche, platform, idx, "Popular in the "+req.Niche+" niche"))
	}

	ranked := ranking.RankHashtags(pools, ranking.PlatformCap(platform))
	s.recorder.Suggestions("hashtag", len(ranked))
	logger.Debug("Generated personalized hashtags", "platform", string(platform), "mode", string(req.Mode), "count", len(ranked))
	return ranked
}

// TrendingHashtags returns hashtags from the platform's trending topics. When no
// trends are available the mode bank is returned instead so callers always get
// something to show.
func (s *Service) TrendingHashtags(ctx context.Context, mode core.Mode, platform core.Platform) []core.HashtagSuggestion {
	platform = core.NormalizePlatform(string(platform))
	topics := trends.Fetch(ctx, s.source, platform, s.recorder)

	pool := s.trendingPool(topics, platform, nil)
	if len(pool) == 0 {
		pool = s.bankPool(catalog.ModeHashtags(mode), core.CategoryCommunity, platform, nil, "Evergreen community tag")
	}
	ranked := ranking.RankHashtags([][]core.HashtagSuggestion{pool}, ranking.PlatformCap(platform))
	s.recorder.Suggestions("trending_hashtag", len(ranked))
	return ranked
}

func (s *Service) suggest(tag string, category core.HashtagCategory, trending float64, platform core.Platform, idx map[string]core.HashtagPerformance, reasoning string) core.HashtagSuggestion {
	return core.HashtagSuggestion{
		Hashtag:            tag,
		Platform:           platform,
		Category:           category,
		TrendingScore:      trending,
		UserAffinityScore:  estimate.AffinityFromIndex(tag, idx),
		ExpectedEngagement: estimate.EstimateEngagement(tag, platform, s.rng),
		Reasoning:          reasoning,
	}
}

func (s *Service) contentPool(content string, topics []core.TrendingTopic, platform core.Platform, idx map[string]core.HashtagPerformance) []core.HashtagSuggestion {
	trendingWords := make(map[string]struct{})
	for _, t := range topics {
		for kw := range keywords.Extract(t.Keyword) {
			trendingWords[kw] = struct{}{}
		}
	}

	var pool []core.HashtagSuggestion
	for _, kw := range keywords.ExtractSorted(content) {
		score := ContentScore
		reasoning := fmt.Sprintf("Matches %q from your content", kw)
		if _, ok := trendingWords[kw]; ok {
			score += ContentTrendingBoost
			reasoning += " and a current trend"
		}
		pool = append(pool, s.suggest("#"+kw, core.CategoryContent, score, platform, idx, reasoning))
	}
	return pool
}

func (s *Service) trendingPool(topics []core.TrendingTopic, platform core.Platform, idx map[string]core.HashtagPerformance) []core.HashtagSuggestion {
	var pool []core.HashtagSuggestion
	for _, t := range topics {
		tags := t.RelatedHashtags
		if len(tags) == 0 {
			tags = []string{t.Keyword}
		}
		for _, tag := range tags {
			tag = core.NormalizeHashtag(tag)
			if tag == "" {
				continue
			}
			pool = append(pool, s.suggest(tag, core.CategoryTrending, t.TrendScore, platform, idx,
				fmt.Sprintf("Trending on %s: %s", platform, t.Keyword)))
		}
	}
	return pool
}

func (s *Service) bankPool(bank []catalog.TagEntry, category core.HashtagCategory, platform core.Platform, idx map[string]core.HashtagPerformance, reasoning string) []core.HashtagSuggestion {
	pool := make([]core.HashtagSuggestion, 0, len(bank))
	for _, e := range bank {
		pool = append(pool, s.suggest(e.Tag, category, e.Score, platform, idx, reasoning))
	}
	return pool
}

func modeCategory(mode core.Mode) core.HashtagCategory {
	if mode.IsFaith() {
		return core.CategoryFaith
	}
	return core.CategoryEncouragement
}

// Thresholds used by AnalyzePerformance.
const (
	TopPerformerLimit    = 5
	UnderperformerRatio  = 0.5
	MinUsesForJudgement  = 3
	LowConversionPercent = 1.0
)

// AnalyzePerformance summarizes a hashtag history: the best tags by average
// engagement, tags used often that earn under half the mean, and plain-language
// recommendations.
func (s *Service) AnalyzePerformance(history []core.HashtagPerformance) core.HashtagReport {
	report := core.HashtagReport{
		TopPerformers:   []core.HashtagPerformance{},
		Underperformers: []core.HashtagPerformance{},
		Recommendations: []string{},
	}
	if len(history) == 0 {
		report.Recommendations = append(report.Recommendations,
			"Start recording hashtag results so suggestions can learn what works for you")
		return report
	}

	sorted := make([]core.HashtagPerformance, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AvgEngagement > sorted[j].AvgEngagement
	})

	var total float64
	for _, h := range sorted {
		total += h.AvgEngagement
	}
	mean := total / float64(len(sorted))

	for _, h := range sorted {
		if len(report.TopPerformers) < TopPerformerLimit && h.AvgEngagement >= mean {
			report.TopPerformers = append(report.TopPerformers, h)
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		h := sorted[i]
		if h.TimesUsed >= MinUsesForJudgement && h.AvgEngagement < mean*UnderperformerRatio {
			report.Underperformers = append(report.Underperformers, h)
		}
	}

	if len(report.TopPerformers) > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Keep using %s, it is your strongest hashtag", report.TopPerformers[0].Hashtag))
	}
	if len(report.Underperformers) > 0 {
		tags := make([]string, 0, len(report.Underperformers))
		for _, h := range report.Underperformers {
			tags = append(tags, h.Hashtag)
		}
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Consider replacing %s", strings.Join(tags, ", ")))
	}
	for _, h := range report.TopPerformers {
		if h.ConversionRate > 0 && h.ConversionRate < LowConversionPercent {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("%s gets attention but few conversions; pair it with a clearer call to action", h.Hashtag))
			break
		}
	}
	if len(history) < 10 {
		report.Recommendations = append(report.Recommendations,
			"Try a few new niche hashtags each week to widen your reach")
	}
	return report
}

// Usage is one observed use of a hashtag.
type Usage struct {
	Hashtag       string  `json:"hashtag"`
	Engagement    float64 `json:"engagement"`
	ReachIncrease float64 `json:"reachIncrease"`
	Conversions   int     `json:"conversions"`
}

// RecordUsage folds one use into a performance record as running averages.
// A nil prev starts a new record. Records are only ever created or updated.
func RecordUsage(prev *core.HashtagPerformance, u Usage) core.HashtagPerformance {
	var rec core.HashtagPerformance
	if prev != nil {
		rec = *prev
	} else {
		rec.Hashtag = core.NormalizeHashtag(u.Hashtag)
	}

	conversionRate := 0.0
	if u.Engagement > 0 {
		conversionRate = float64(u.Conversions) / u.Engagement * 100
	}

	n := float64(rec.TimesUsed)
	rec.AvgEngagement = (rec.AvgEngagement*n + u.Engagement) / (n + 1)
	rec.ReachIncrease = (rec.ReachIncrease*n + u.ReachIncrease) / (n + 1)
	rec.ConversionRate = (rec.ConversionRate*n + conversionRate) / (n + 1)
	rec.TimesUsed++
	return rec
}

// PostUsage returns a folder that records one use of each of a post's tags.
// reachIncrease is attributed to every tag on the post.
func PostUsage(post core.Post, reachIncrease float64) func(prev *core.HashtagPerformance, tag string) core.HashtagPerformance {
	return func(prev *core.HashtagPerformance, tag string) core.HashtagPerformance {
		return RecordUsage(prev, Usage{
			Hashtag:       tag,
			Engagement:    post.Engagement,
			ReachIncrease: reachIncrease,
			Conversions:   post.Conversions,
		})
	}
}
