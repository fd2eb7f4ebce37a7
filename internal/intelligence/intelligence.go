// Package intelligence scores content with an AI collaborator and tracks A/B
// tests. Every AI-backed call degrades to a documented fallback value.
package intelligence

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"kingdom/internal/core"
	"kingdom/internal/llm"
	"kingdom/internal/logger"
	"kingdom/internal/metrics"
)

// Fallback scores used when the AI answer is missing a field.
const (
	FallbackOverall        = 70.0
	FallbackEngagement     = 65.0
	FallbackReach          = 60.0
	FallbackConversion     = 55.0
	FallbackVirality       = 50.0
	FallbackFaithAlignment = 75.0
)

// DefaultVariations is how many variations GenerateVariations returns when n <= 0.
const DefaultVariations = 3

// MaxVariations caps the variations GenerateVariations returns.
const MaxVariations = 10

// FallbackScore is the score returned when the AI call fails entirely.
func FallbackScore(mode core.Mode) core.ContentScore {
	score := core.ContentScore{
		Overall:    FallbackOverall,
		Engagement: FallbackEngagement,
		Reach:      FallbackReach,
		Conversion: FallbackConversion,
		Virality:   FallbackVirality,
	}
	if mode.IsFaith() {
		faith := FallbackFaithAlignment
		score.FaithAlignment = &faith
	}
	return score
}

// Service provides AI-assisted content analysis and A/B testing. Construct one
// per configuration with NewService.
type Service struct {
	ai       llm.Generator
	recorder *metrics.Recorder
	tests    *registry
}

// NewService creates a service. A nil generator behaves like llm.NoopClient.
func NewService(ai llm.Generator, recorder *metrics.Recorder) *Service {
	if ai == nil {
		ai = llm.NoopClient{}
	}
	return &Service{
		ai:       ai,
		recorder: recorder,
		tests:    newRegistry(),
	}
}

// AnalyzeContent scores content for a platform. Each field the AI answer lacks
// falls back independently; FaithAlignment is only set in faith mode.
func (s *Service) AnalyzeContent(ctx context.Context, mode core.Mode, content string, platform core.Platform) core.ContentScore {
	raw := s.ai.CallAI(ctx, analyzePrompt(mode, content, platform))
	if len(raw) == 0 {
		logger.Debug("Using fallback content score", "platform", string(platform), "mode", string(mode))
		s.recorder.Fallback("analyze_content")
		return FallbackScore(mode)
	}

	score := core.ContentScore{
		Overall:    scoreField(raw, "overall", FallbackOverall),
		Engagement: scoreField(raw, "engagement", FallbackEngagement),
		Reach:      scoreField(raw, "reach", FallbackReach),
		Conversion: scoreField(raw, "conversion", FallbackConversion),
		Virality:   scoreField(raw, "virality", FallbackVirality),
	}
	if mode.IsFaith() {
		faith := scoreField(raw, "faithAlignment", FallbackFaithAlignment)
		score.FaithAlignment = &faith
	}
	return score
}

// PredictViralPotential estimates how likely content is to spread. Without an
// AI answer the prediction comes from simple content heuristics.
func (s *Service) PredictViralPotential(ctx context.Context, mode core.Mode, content string, platform core.Platform) core.ViralPrediction {
	local := heuristicPrediction(mode, content, platform)

	raw := s.ai.CallAI(ctx, viralPrompt(mode, content, platform))
	if len(raw) == 0 {
		s.recorder.Fallback("predict_viral")
		return local
	}

	prediction := core.ViralPrediction{
		Score:           scoreField(raw, "score", local.Score),
		Factors:         stringList(raw, "factors"),
		Recommendations: stringList(raw, "recommendations"),
	}
	if len(prediction.Factors) == 0 {
		prediction.Factors = local.Factors
	}
	if len(prediction.Recommendations) == 0 {
		prediction.Recommendations = local.Recommendations
	}
	return prediction
}

// GenerateVariations returns up to n rewrites of content for A/B testing,
// n clamped to MaxVariations. Missing AI output is filled with template rewrites.
func (s *Service) GenerateVariations(ctx context.Context, mode core.Mode, content string, platform core.Platform, n int) []string {
	if n <= 0 {
		n = DefaultVariations
	}
	n = min(n, MaxVariations)

	raw := s.ai.CallAI(ctx, variationsPrompt(mode, content, platform, n))
	variations := stringList(raw, "variations")
	if len(variations) == 0 {
		s.recorder.Fallback("generate_variations")
	}

	seen := make(map[string]bool, n)
	out := make([]string, 0, n)
	for _, v := range append(variations, templateVariations(mode, content)...) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

func analyzePrompt(mode core.Mode, content string, platform core.Platform) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this %s post and score it from 0 to 100.\n", platform)
	b.WriteString(`Respond with JSON: {"overall": n, "engagement": n, "reach": n, "conversion": n, "virality": n`)
	if mode.IsFaith() {
		b.WriteString(`, "faithAlignment": n`)
	}
	b.WriteString("}\n")
	if mode.IsFaith() {
		b.WriteString("faithAlignment measures how well the post reflects Christian values with authenticity.\n")
	}
	fmt.Fprintf(&b, "\nPost:\n%s\n", content)
	return b.String()
}

func viralPrompt(mode core.Mode, content string, platform core.Platform) string {
	tone := "encouraging and uplifting"
	if mode.IsFaith() {
		tone = "faith-centered and authentic"
	}
	return fmt.Sprintf("Predict the viral potential of this %s post for a %s creator.\n"+
		`Respond with JSON: {"score": 0-100, "factors": [string], "recommendations": [string]}`+
		"\n\nPost:\n%s\n", platform, tone, content)
}

func variationsPrompt(mode core.Mode, content string, platform core.Platform, n int) string {
	tone := "encouraging"
	if mode.IsFaith() {
		tone = "faith-centered"
	}
	return fmt.Sprintf("Write %d %s variations of this %s caption for A/B testing. Keep the core message.\n"+
		`Respond with JSON: {"variations": [string]}`+
		"\n\nCaption:\n%s\n", n, tone, platform, content)
}

// scoreField reads a numeric field, clamped to [0,100]. Missing, non-numeric
// or non-finite values give def.
func scoreField(raw map[string]any, key string, def float64) float64 {
	var v float64
	switch x := raw[key].(type) {
	case float64:
		v = x
	case int:
		v = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return def
		}
		v = parsed
	default:
		return def
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return math.Max(0, math.Min(100, v))
}

func stringList(raw map[string]any, key string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func heuristicPrediction(mode core.Mode, content string, platform core.Platform) core.ViralPrediction {
	score := 40.0
	var factors, recs []string

	length := utf8.RuneCountInString(strings.TrimSpace(content))
	switch {
	case length == 0:
		recs = append(recs, "Write a caption; posts without context rarely spread")
	case length < 40:
		recs = append(recs, "Add a short story or context to give people a reason to share")
	case length <= 300:
		score += 15
		factors = append(factors, "Caption length is in the sweet spot")
	default:
		score += 5
		recs = append(recs, "Tighten the caption so the key message lands in the first line")
	}

	if strings.Contains(content, "?") {
		score += 10
		factors = append(factors, "Asks the audience a question")
	} else {
		recs = append(recs, "End with a question to invite comments")
	}

	if strings.Contains(content, "#") {
		score += 10
		factors = append(factors, "Uses hashtags for discovery")
	} else {
		recs = append(recs, "Add a few targeted hashtags")
	}

	lower := strings.ToLower(content)
	for _, hook := range []string{"how to", "secret", "behind the scenes", "before and after", "story"} {
		if strings.Contains(lower, hook) {
			score += 10
			factors = append(factors, fmt.Sprintf("Uses a proven hook (%q)", hook))
			break
		}
	}

	if platform == core.PlatformTikTok || platform == core.PlatformInstagram {
		score += 5
		factors = append(factors, fmt.Sprintf("%s favors shareable short-form content", platform))
	}

	if mode.IsFaith() && !containsAny(lower, "god", "faith", "bless", "pray", "grace") {
		recs = append(recs, "Share the faith behind your work to connect with your community")
	}

	return core.ViralPrediction{
		Score:           math.Min(score, 100),
		Factors:         nonNil(factors),
		Recommendations: nonNil(recs),
	}
}

func templateVariations(mode core.Mode, content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	if mode.IsFaith() {
		return []string{
			"Grateful to share this: " + content,
			content + "\n\nGive thanks in all circumstances.",
			"What is God teaching you this week? " + content,
			content + "\n\nTag someone who needs this encouragement today.",
		}
	}
	return []string{
		"You've got this! " + content,
		content + "\n\nWhat is one small win you are celebrating today?",
		"Quick reminder: " + content,
		content + "\n\nSave this for the days you need it.",
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
