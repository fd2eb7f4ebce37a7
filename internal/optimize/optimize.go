// Package optimize turns a content score into prioritized improvement tips.
package optimize

import (
	"fmt"
	"sort"
	"strings"

	"kingdom/internal/core"
	"kingdom/internal/ranking"
)

// Thresholds below which a rule fires.
const (
	ReachThreshold          = 70.0
	EngagementThreshold     = 65.0
	OverallThreshold        = 70.0
	FaithAlignmentThreshold = 75.0
)

// Suggestion types.
const (
	TypeHashtags = "hashtag_optimization"
	TypeTiming   = "timing_optimization"
	TypeContent  = "content_enhancement"
	TypeFaith    = "faith_alignment"
)

var bestTimes = map[core.Platform]string{
	core.PlatformInstagram: "weekdays 11am-1pm and 7-9pm",
	core.PlatformTikTok:    "evenings 6-10pm",
	core.PlatformFacebook:  "weekdays 9am-1pm",
	core.PlatformTwitter:   "weekday mornings 8-10am",
	core.PlatformLinkedIn:  "Tuesday to Thursday 8-10am",
	core.PlatformYouTube:   "Thursday to Sunday 2-4pm",
	core.PlatformPinterest: "weekends 8-11pm",
}

// Suggestions evaluates every rule independently and returns the ones that fire,
// highest impact first. The result depends only on its arguments.
func Suggestions(mode core.Mode, content string, platform core.Platform, score core.ContentScore) []core.OptimizationSuggestion {
	platform = core.NormalizePlatform(string(platform))
	out := []core.OptimizationSuggestion{}

	if score.Reach < ReachThreshold {
		how := fmt.Sprintf("Use up to %d hashtags on %s, blending trending, niche and community tags.",
			ranking.PlatformCap(platform), platformName(platform))
		out = append(out, core.OptimizationSuggestion{
			Type:           TypeHashtags,
			Priority:       core.PriorityHigh,
			Title:          "Optimize your hashtags",
			Description:    fmt.Sprintf("Reach is %.0f. A focused mix of trending and niche hashtags can widen who sees this post.", score.Reach),
			Impact:         25,
			Implementation: how,
		})
	}

	if score.Engagement < EngagementThreshold {
		when, ok := bestTimes[platform]
		if !ok {
			when = "when your audience is most active"
		}
		out = append(out, core.OptimizationSuggestion{
			Type:           TypeTiming,
			Priority:       core.PriorityMedium,
			Title:          "Post at a better time",
			Description:    fmt.Sprintf("Engagement is %.0f. Posting when your audience is online gives the algorithm early signals.", score.Engagement),
			Impact:         20,
			Implementation: fmt.Sprintf("Schedule %s posts for %s and reply to comments in the first hour.", platformName(platform), when),
		})
	}

	if score.Overall < OverallThreshold {
		out = append(out, core.OptimizationSuggestion{
			Type:           TypeContent,
			Priority:       core.PriorityHigh,
			Title:          "Strengthen the content",
			Description:    fmt.Sprintf("Overall score is %.0f. %s", score.Overall, contentHint(content)),
			Impact:         30,
			Implementation: "Open with a hook in the first line, tell a short story and end with a clear call to action.",
		})
	}

	if mode.IsFaith() && score.FaithAlignment != nil && *score.FaithAlignment < FaithAlignmentThreshold {
		out = append(out, core.OptimizationSuggestion{
			Type:           TypeFaith,
			Priority:       core.PriorityMedium,
			Title:          "Let your faith shine through",
			Description:    fmt.Sprintf("Faith alignment is %.0f. Sharing the why behind your work connects with a faith-minded audience.", *score.FaithAlignment),
			Impact:         15,
			Implementation: "Add a short scripture, a word of gratitude or a testimony that fits the post naturally.",
			FaithMode:      true,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Impact > out[j].Impact
	})
	for i := range out {
		out[i].ID = fmt.Sprintf("opt-%s-%s", platform, out[i].Type)
	}
	return out
}

func contentHint(content string) string {
	words := len(strings.Fields(content))
	switch {
	case words == 0:
		return "Add a caption that tells people why this matters."
	case words < 15:
		return "The caption is short; add context or a personal story."
	case !strings.Contains(content, "?"):
		return "Ask your audience a question to invite replies."
	default:
		return "Tighten the message so the main point lands in the first line."
	}
}

func platformName(p core.Platform) string {
	if p == "" {
		return "this platform"
	}
	return string(p)
}
