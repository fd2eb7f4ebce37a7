package trends

import (
	"context"

	"kingdom/internal/core"
)

// StaticSource serves trending topics from built-in per-platform tables.
type StaticSource struct {
	topics map[core.Platform][]core.TrendingTopic
}

// NewStaticSource returns a source over the default tables.
func NewStaticSource() *StaticSource {
	return &StaticSource{topics: defaultTopics}
}

// NewStaticSourceFrom returns a source over custom tables.
func NewStaticSourceFrom(topics map[core.Platform][]core.TrendingTopic) *StaticSource {
	return &StaticSource{topics: topics}
}

// TrendingTopics implements Source. Unknown platforms have no trends.
func (s *StaticSource) TrendingTopics(ctx context.Context, platform core.Platform) ([]core.TrendingTopic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src := s.topics[core.NormalizePlatform(string(platform))]
	out := make([]core.TrendingTopic, len(src))
	for i, t := range src {
		t.Platform = core.NormalizePlatform(string(platform))
		t.RelatedHashtags = append([]string(nil), t.RelatedHashtags...)
		out[i] = t
	}
	return out, nil
}

var defaultTopics = map[core.Platform][]core.TrendingTopic{
	core.PlatformInstagram: {
		{Keyword: "golden hour", TrendScore: 88, Category: "photography", RelevanceToUser: 0.9, RelatedHashtags: []string{"#goldenhour", "#goldenhourphotography"}},
		{Keyword: "small business", TrendScore: 84, Category: "business", RelevanceToUser: 0.8, RelatedHashtags: []string{"#smallbusiness", "#supportsmallbusiness"}},
		{Keyword: "photo dump", TrendScore: 79, Category: "lifestyle", RelevanceToUser: 0.6, RelatedHashtags: []string{"#photodump"}},
		{Keyword: "faith journey", TrendScore: 71, Category: "faith", RelevanceToUser: 0.7, RelatedHashtags: []string{"#faithjourney", "#christianlife"}},
		{Keyword: "behind the scenes", TrendScore: 67, Category: "creator", RelevanceToUser: 0.75, RelatedHashtags: []string{"#behindthescenes", "#bts"}},
	},
	core.PlatformTikTok: {
		{Keyword: "day in the life", TrendScore: 91, Category: "creator", RelevanceToUser: 0.8, RelatedHashtags: []string{"#dayinthelife", "#ditl"}},
		{Keyword: "photography hacks", TrendScore: 85, Category: "photography", RelevanceToUser: 0.85, RelatedHashtags: []string{"#photographyhacks", "#phototips"}},
		{Keyword: "christian tiktok", TrendScore: 76, Category: "faith", RelevanceToUser: 0.7, RelatedHashtags: []string{"#christiantiktok", "#fyp"}},
		{Keyword: "going viral", TrendScore: 70, Category: "growth", RelevanceToUser: 0.5, RelatedHashtags: []string{"#viral", "#goviral"}},
	},
	core.PlatformFacebook: {
		{Keyword: "community events", TrendScore: 64, Category: "community", RelevanceToUser: 0.7, RelatedHashtags: []string{"#community", "#localevents"}},
		{Keyword: "family photos", TrendScore: 72, Category: "photography", RelevanceToUser: 0.85, RelatedHashtags: []string{"#familyphotos"}},
	},
	core.PlatformTwitter: {
		{Keyword: "creator economy", TrendScore: 69, Category: "business", RelevanceToUser: 0.6, RelatedHashtags: []string{"#creatoreconomy"}},
		{Keyword: "monday motivation", TrendScore: 74, Category: "encouragement", RelevanceToUser: 0.65, RelatedHashtags: []string{"#mondaymotivation"}},
	},
	core.PlatformLinkedIn: {
		{Keyword: "personal branding", TrendScore: 78, Category: "business", RelevanceToUser: 0.7, RelatedHashtags: []string{"#personalbranding", "#branding"}},
		{Keyword: "entrepreneurship", TrendScore: 73, Category: "business", RelevanceToUser: 0.75, RelatedHashtags: []string{"#entrepreneurship"}},
	},
	core.PlatformYouTube: {
		{Keyword: "photography tutorial", TrendScore: 80, Category: "photography", RelevanceToUser: 0.85, RelatedHashtags: []string{"#photographytutorial"}},
		{Keyword: "studio vlog", TrendScore: 62, Category: "creator", RelevanceToUser: 0.6, RelatedHashtags: []string{"#vlog"}},
	},
	core.PlatformPinterest: {
		{Keyword: "wedding inspiration", TrendScore: 86, Category: "wedding", RelevanceToUser: 0.8, RelatedHashtags: []string{"#weddinginspiration"}},
		{Keyword: "outfit ideas", TrendScore: 77, Category: "lifestyle", RelevanceToUser: 0.55, RelatedHashtags: []string{"#photoshootoutfits"}},
	},
}
