package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownMode is returned by ParseMode for anything other than faith or encouragement.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects between the parallel faith and encouragement template branches.
type Mode string

const (
	ModeFaith         Mode = "faith"
	ModeEncouragement Mode = "encouragement"
)

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFaith:
		return ModeFaith, nil
	case ModeEncouragement:
		return ModeEncouragement, nil
	default:
		return "", fmt.Errorf("%w: %q (expected faith or encouragement)", ErrUnknownMode, s)
	}
}

// IsFaith reports whether faith-specific rules apply.
func (m Mode) IsFaith() bool { return m == ModeFaith }

// Platform names a social network. Unknown platforms are accepted and fall back to defaults.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformPinterest Platform = "pinterest"
)

// NormalizePlatform lowercases and trims a platform name.
func NormalizePlatform(s string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(s)))
}

// ContentScore is the result of content analysis. Fields are conventionally in [0,100].
type ContentScore struct {
	Overall        float64  `json:"overall"`
	Engagement     float64  `json:"engagement"`
	Reach          float64  `json:"reach"`
	Conversion     float64  `json:"conversion"`
	Virality       float64  `json:"virality"`
	FaithAlignment *float64 `json:"faithAlignment,omitempty"`
}

// Priority ranks an optimization suggestion.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// OptimizationSuggestion is a single improvement tip produced from a ContentScore.
type OptimizationSuggestion struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Priority       Priority `json:"priority"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Impact         float64  `json:"impact"`
	Implementation string   `json:"implementation"`
	FaithMode      bool     `json:"faithMode,omitempty"`
}

// HashtagCategory groups hashtag suggestions by where they came from.
type HashtagCategory string

const (
	CategoryTrending      HashtagCategory = "trending"
	CategoryNiche         HashtagCategory = "niche"
	CategoryCommunity     HashtagCategory = "community"
	CategorySeasonal      HashtagCategory = "seasonal"
	CategoryFaith         HashtagCategory = "faith"
	CategoryEncouragement HashtagCategory = "encouragement"
	CategoryContent       HashtagCategory = "content"
	CategoryBranded       HashtagCategory = "branded"
)

// HashtagCategories lists every defined category.
var HashtagCategories = []HashtagCategory{
	CategoryTrending, CategoryNiche, CategoryCommunity, CategorySeasonal,
	CategoryFaith, CategoryEncouragement, CategoryContent, CategoryBranded,
}

// Valid reports whether c is one of HashtagCategories.
func (c HashtagCategory) Valid() bool {
	for _, known := range HashtagCategories {
		if c == known {
			return true
		}
	}
	return false
}

// HashtagSuggestion is a ranked hashtag recommendation.
//
// TrendingScore is on a [0,100] scale while UserAffinityScore is on [0,1]. The two are
// combined unscaled by CompositeScore.
type HashtagSuggestion struct {
	Hashtag            string          `json:"hashtag"`
	Platform           Platform        `json:"platform"`
	Category           HashtagCategory `json:"category"`
	TrendingScore      float64         `json:"trendingScore"`
	UserAffinityScore  float64         `json:"userAffinityScore"`
	ExpectedEngagement float64         `json:"expectedEngagement"`
	Reasoning          string          `json:"reasoning"`
}

// CompositeScore is the ranking key: trending*0.4 + affinity*0.6.
func (h HashtagSuggestion) CompositeScore() float64 {
	return h.TrendingScore*0.4 + h.UserAffinityScore*0.6
}

// HashtagPerformance is one user's history for a single hashtag.
type HashtagPerformance struct {
	Hashtag        string  `json:"hashtag"`
	TimesUsed      int     `json:"timesUsed"`
	AvgEngagement  float64 `json:"avgEngagement"`
	ReachIncrease  float64 `json:"reachIncrease"`
	ConversionRate float64 `json:"conversionRate"`
	TrendingScore  float64 `json:"trendingScore"`
}

// Post is a published piece of content recorded in the user's history.
type Post struct {
	ID          string    `json:"id"`
	Platform    Platform  `json:"platform"`
	Content     string    `json:"content"`
	Hashtags    []string  `json:"hashtags"`
	Engagement  float64   `json:"engagement"`
	Reach       float64   `json:"reach"`
	Conversions int       `json:"conversions"`
	PostedAt    time.Time `json:"postedAt"`
}

// TrendingTopic is supplied by a trend source and treated as read-only.
type TrendingTopic struct {
	Keyword         string   `json:"keyword"`
	Platform        Platform `json:"platform"`
	TrendScore      float64  `json:"trendScore"`
	Category        string   `json:"category"`
	RelevanceToUser float64  `json:"relevanceToUser"`
	RelatedHashtags []string `json:"relatedHashtags"`
}

// Difficulty estimates the production effort for a content idea.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ContentIdea is a structured recommendation for one piece of content.
type ContentIdea struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	ContentType        string     `json:"contentType"`
	Platforms          []Platform `json:"platform"`
	Difficulty         Difficulty `json:"difficulty"`
	ExpectedEngagement float64    `json:"expectedEngagement"`
	Hashtags           []string   `json:"hashtags"`
	BibleConnection    string     `json:"bibleConnection,omitempty"`
	SeasonalRelevance  string     `json:"seasonalRelevance,omitempty"`
}

// Goal statuses. Only active goals produce content.
const (
	GoalActive    = "active"
	GoalCompleted = "completed"
	GoalPaused    = "paused"
)

// MarketingGoal is caller-supplied context for goal-focused ideas.
type MarketingGoal struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`   // followers, engagement, sales, leads, bookings
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Deadline string  `json:"deadline,omitempty"`
	Status   string  `json:"status"`
}

// UserPersonality describes the creator the ideas are for.
type UserPersonality struct {
	Niche       string   `json:"niche"`
	Tone        string   `json:"tone"`
	Audience    string   `json:"audience"`
	Interests   []string `json:"interests"`
	ProductName string   `json:"productName,omitempty"`
	ProductType string   `json:"productType,omitempty"`
}

// SeasonalContext pins ideas to a season and, optionally, an upcoming holiday.
type SeasonalContext struct {
	Season  string `json:"season"`
	Holiday string `json:"holiday,omitempty"`
	Month   int    `json:"month,omitempty"`
}

// VariantMetrics are the counters collected for an A/B test variant.
type VariantMetrics struct {
	Impressions int `json:"impressions"`
	Engagement  int `json:"engagement"`
	Clicks      int `json:"clicks"`
	Conversions int `json:"conversions"`
}

// ABTestVariant is one arm of an A/B test.
type ABTestVariant struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Content string         `json:"content"`
	Metrics VariantMetrics `json:"metrics"`
}

// ABTestResult reports the winning variant. Winner always names an entry in Variants.
type ABTestResult struct {
	TestID     string          `json:"testId"`
	Variants   []ABTestVariant `json:"variants"`
	Winner     string          `json:"winner"`
	Confidence float64         `json:"confidence"`
}

// DailyPlan is one day of a weekly content plan.
type DailyPlan struct {
	Day         string      `json:"day"`
	Theme       string      `json:"theme"`
	ContentType string      `json:"contentType"`
	Idea        ContentIdea `json:"idea"`
}

// AudienceInsight is a short observation about the audience on a platform.
type AudienceInsight struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Detail string `json:"detail"`
}

// ContentStrategy is the composed weekly strategy for a user.
type ContentStrategy struct {
	WeeklyPlan       []DailyPlan       `json:"weeklyPlan"`
	TrendingTopics   []TrendingTopic   `json:"trendingTopics"`
	AudienceInsights []AudienceInsight `json:"audienceInsights"`
}

// EmptyStrategy is the fallback returned when strategy composition fails.
func EmptyStrategy() ContentStrategy {
	return ContentStrategy{
		WeeklyPlan:       []DailyPlan{},
		TrendingTopics:   []TrendingTopic{},
		AudienceInsights: []AudienceInsight{},
	}
}

// ViralPrediction estimates how likely a post is to spread.
type ViralPrediction struct {
	Score           float64  `json:"score"`
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// HashtagReport summarizes a user's hashtag history.
type HashtagReport struct {
	TopPerformers   []HashtagPerformance `json:"topPerformers"`
	Underperformers []HashtagPerformance `json:"underperformers"`
	Recommendations []string             `json:"recommendations"`
}

// NormalizeHashtag lowercases a tag, strips whitespace and ensures a single leading '#'.
func NormalizeHashtag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = strings.TrimLeft(tag, "#")
	if tag == "" {
		return ""
	}
	return "#" + strings.Join(strings.Fields(tag), "")
}
