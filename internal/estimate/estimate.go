// Package estimate scores hashtag candidates against platform baselines and a user's history.
package estimate

import (
	"math"
	"math/rand/v2"
	"strings"

	"kingdom/internal/core"
)

const (
	// DefaultBaseEngagement is used for platforms without a documented baseline.
	DefaultBaseEngagement = 250.0
	// NeutralAffinity is returned for hashtags the user has never used.
	NeutralAffinity = 0.5
	// ViralMultiplier applies when the tag text contains "viral".
	ViralMultiplier = 1.5
	// JitterMin and JitterMax bound the random engagement multiplier.
	JitterMin = 0.8
	JitterMax = 1.2
	// AffinityScale is the average engagement that maps to full affinity.
	AffinityScale = 1000.0
)

var baseEngagement = map[core.Platform]float64{
	core.PlatformInstagram: 500,
	core.PlatformTikTok:    800,
	core.PlatformFacebook:  300,
	core.PlatformTwitter:   200,
	core.PlatformLinkedIn:  250,
	core.PlatformYouTube:   600,
	core.PlatformPinterest: 350,
}

// Rand is the random source used for engagement jitter and template choice.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a seeded generator for reproducible results.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// DefaultRand returns the goroutine-safe global entropy source.
func DefaultRand() Rand { return globalRand{} }

// BaseEngagement returns the baseline engagement for a platform.
func BaseEngagement(platform core.Platform) float64 {
	if base, ok := baseEngagement[core.NormalizePlatform(string(platform))]; ok {
		return base
	}
	return DefaultBaseEngagement
}

// Multiplier returns the tag-text multiplier applied before jitter.
func Multiplier(tag string) float64 {
	if strings.Contains(strings.ToLower(tag), "viral") {
		return ViralMultiplier
	}
	return 1.0
}

// EstimateEngagement returns base * multiplier * jitter with jitter in [0.8, 1.2).
// The result is stochastic unless rng is seeded.
func EstimateEngagement(tag string, platform core.Platform, rng Rand) float64 {
	if rng == nil {
		rng = DefaultRand()
	}
	jitter := JitterMin + rng.Float64()*(JitterMax-JitterMin)
	return BaseEngagement(platform) * Multiplier(tag) * jitter
}

// CalculateAffinity returns min(avgEngagement/1000, 1) for a tag in the user's history
// and NeutralAffinity otherwise. Tags are matched case-insensitively with '#' optional.
func CalculateAffinity(tag string, history []core.HashtagPerformance) float64 {
	key := core.NormalizeHashtag(tag)
	for _, h := range history {
		if core.NormalizeHashtag(h.Hashtag) == key {
			return affinityFor(h)
		}
	}
	return NeutralAffinity
}

// Index builds a lookup from normalized hashtag to its history record.
func Index(history []core.HashtagPerformance) map[string]core.HashtagPerformance {
	idx := make(map[string]core.HashtagPerformance, len(history))
	for _, h := range history {
		key := core.NormalizeHashtag(h.Hashtag)
		if _, seen := idx[key]; !seen {
			idx[key] = h
		}
	}
	return idx
}

// AffinityFromIndex is CalculateAffinity over a prebuilt index.
func AffinityFromIndex(tag string, idx map[string]core.HashtagPerformance) float64 {
	if h, ok := idx[core.NormalizeHashtag(tag)]; ok {
		return affinityFor(h)
	}
	return NeutralAffinity
}

func affinityFor(h core.HashtagPerformance) float64 {
	return math.Max(0, math.Min(h.AvgEngagement/AffinityScale, 1))
}
