// Package ranking merges candidate pools into capped, ordered suggestion lists.
package ranking

import (
	"sort"

	"kingdom/internal/core"
)

// DefaultCap applies to platforms without a specific hashtag limit.
const DefaultCap = 30

var platformCaps = map[core.Platform]int{
	core.PlatformInstagram: 30,
	core.PlatformTikTok:    10,
	core.PlatformFacebook:  10,
	core.PlatformTwitter:   5,
	core.PlatformLinkedIn:  10,
	core.PlatformYouTube:   15,
	core.PlatformPinterest: 20,
}

// PlatformCap returns how many hashtags to suggest for a platform.
func PlatformCap(platform core.Platform) int {
	if c, ok := platformCaps[core.NormalizePlatform(string(platform))]; ok {
		return c
	}
	return DefaultCap
}

// RankHashtags concatenates pools, orders them by composite score descending
// and keeps the first limit entries. Ties keep pool order. Duplicate hashtags
// across pools are not merged; use Dedupe first if that is wanted.
func RankHashtags(pools [][]core.HashtagSuggestion, limit int) []core.HashtagSuggestion {
	if limit <= 0 {
		return []core.HashtagSuggestion{}
	}

	total := 0
	for _, p := range pools {
		total += len(p)
	}
	all := make([]core.HashtagSuggestion, 0, total)
	for _, p := range pools {
		all = append(all, p...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CompositeScore() > all[j].CompositeScore()
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Dedupe keeps the highest scoring entry per normalized hashtag, preserving
// the position of the first occurrence.
//
// The hashtag service does not call it: ranked lists keep duplicates across
// pools. Callers that want one entry per tag apply it themselves.
func Dedupe(suggestions []core.HashtagSuggestion) []core.HashtagSuggestion {
	index := make(map[string]int, len(suggestions))
	out := make([]core.HashtagSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		key := core.NormalizeHashtag(s.Hashtag)
		if i, ok := index[key]; ok {
			if s.CompositeScore() > out[i].CompositeScore() {
				out[i] = s
			}
			continue
		}
		index[key] = len(out)
		out = append(out, s)
	}
	return out
}

// RankIdeas orders ideas by expected engagement descending and keeps at most
// limit. limit <= 0 keeps everything.
func RankIdeas(ideas []core.ContentIdea, limit int) []core.ContentIdea {
	out := make([]core.ContentIdea, len(ideas))
	copy(out, ideas)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpectedEngagement > out[j].ExpectedEngagement
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
