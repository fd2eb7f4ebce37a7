// Package strategy composes content ideas and weekly plans from the catalog,
// caller goals and trending topics.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"kingdom/internal/catalog"
	"kingdom/internal/core"
	"kingdom/internal/estimate"
	"kingdom/internal/logger"
	"kingdom/internal/metrics"
	"kingdom/internal/ranking"
	"kingdom/internal/trends"
)

// MaxIdeas caps GeneratePersonalizedContent.
const MaxIdeas = 20

// MaxStrategyTopics caps the trending topics carried in a ContentStrategy.
const MaxStrategyTopics = 5

// trendIdeaFactor converts a [0,100] trend score into an engagement estimate.
const trendIdeaFactor = 6.0

var errIncompleteWeek = errors.New("weekly themes do not cover seven days")

// Composer builds strategies and idea lists. It is safe for concurrent use if
// its Rand is.
type Composer struct {
	source   trends.Source
	rng      estimate.Rand
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewComposer creates a composer. A nil rng uses the process-wide source.
func NewComposer(source trends.Source, rng estimate.Rand, recorder *metrics.Recorder) *Composer {
	if rng == nil {
		rng = estimate.DefaultRand()
	}
	return &Composer{
		source:   source,
		rng:      rng,
		recorder: recorder,
		now:      time.Now,
	}
}

// GenerateContentStrategy builds a seven-day plan, the platform's top trending
// topics and audience insights. If any part fails the empty strategy is
// returned and the failure is logged.
func (c *Composer) GenerateContentStrategy(ctx context.Context, mode core.Mode, userID string, platform core.Platform, goals []core.MarketingGoal) core.ContentStrategy {
	platform = core.NormalizePlatform(string(platform))

	strategy, err := c.composeStrategy(ctx, mode, platform, goals)
	if err != nil {
		logger.Warn("Content strategy generation failed, returning empty strategy",
			"user_id", userID, "platform", string(platform), "error", err.Error())
		c.recorder.Fallback("content_strategy")
		return core.EmptyStrategy()
	}

	logger.Debug("Generated content strategy", "user_id", userID, "platform", string(platform), "days", len(strategy.WeeklyPlan))
	return strategy
}

func (c *Composer) composeStrategy(ctx context.Context, mode core.Mode, platform core.Platform, goals []core.MarketingGoal) (core.ContentStrategy, error) {
	topics, err := c.trendingTopics(ctx, platform)
	if err != nil {
		return core.ContentStrategy{}, err
	}

	plan, err := c.weeklyPlan(mode, platform, goals)
	if err != nil {
		return core.ContentStrategy{}, err
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].TrendScore > topics[j].TrendScore
	})
	if len(topics) > MaxStrategyTopics {
		topics = topics[:MaxStrategyTopics]
	}

	return core.ContentStrategy{
		WeeklyPlan:       plan,
		TrendingTopics:   topics,
		AudienceInsights: audienceInsights(mode, platform, goals, topics),
	}, nil
}

// trendingTopics asks the source directly so that failures surface to the
// composer instead of being replaced by an empty list.
func (c *Composer) trendingTopics(ctx context.Context, platform core.Platform) ([]core.TrendingTopic, error) {
	if c.source == nil {
		return []core.TrendingTopic{}, nil
	}
	topics, err := c.source.TrendingTopics(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("trending topics for %s: %w", platform, err)
	}
	kept, skipped := trends.Sanitize(topics)
	c.recorder.TrendFetch(string(platform), true, skipped)
	return kept, nil
}

func (c *Composer) weeklyPlan(mode core.Mode, platform core.Platform, goals []core.MarketingGoal) ([]core.DailyPlan, error) {
	themes := catalog.WeeklyThemes(mode)
	if len(themes) != 7 {
		return nil, fmt.Errorf("%w: mode %q has %d", errIncompleteWeek, mode, len(themes))
	}

	platforms := []core.Platform{platform}
	candidates := c.GenerateGoalFocusedContent(mode, goals, platforms)
	for _, t := range catalog.EducationalTopics(mode) {
		candidates = append(candidates, ideaFromTemplate(t, platforms, ""))
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no idea templates for mode %q", mode)
	}

	scale := estimate.BaseEngagement(platform) / estimate.BaseEngagement(core.PlatformInstagram)
	plan := make([]core.DailyPlan, 0, len(themes))
	for i, theme := range themes {
		idea := candidates[i%len(candidates)]
		idea.Title = fmt.Sprintf("%s: %s", theme.Theme, idea.Title)
		idea.ContentType = theme.ContentType
		idea.ExpectedEngagement *= scale
		plan = append(plan, core.DailyPlan{
			Day:         theme.Day,
			Theme:       theme.Theme,
			ContentType: theme.ContentType,
			Idea:        idea,
		})
	}
	return plan, nil
}

var preferredFormats = map[core.Platform]string{
	core.PlatformInstagram: "reels and carousels",
	core.PlatformTikTok:    "short vertical video",
	core.PlatformFacebook:  "photo albums and live video",
	core.PlatformTwitter:   "short threads",
	core.PlatformLinkedIn:  "text posts with a single image",
	core.PlatformYouTube:   "tutorials and shorts",
	core.PlatformPinterest: "tall pins with text overlay",
}

func audienceInsights(mode core.Mode, platform core.Platform, goals []core.MarketingGoal, topics []core.TrendingTopic) []core.AudienceInsight {
	format, ok := preferredFormats[platform]
	if !ok {
		format = "a mix of photos and short video"
	}

	insights := []core.AudienceInsight{
		{
			Label:  "Preferred format",
			Value:  format,
			Detail: fmt.Sprintf("Your audience on %s responds best to %s.", platform, format),
		},
		{
			Label:  "Expected reach",
			Value:  fmt.Sprintf("%.0f", estimate.BaseEngagement(platform)),
			Detail: "Typical engagement per post before hashtags and timing are tuned.",
		},
	}

	if len(topics) > 0 {
		insights = append(insights, core.AudienceInsight{
			Label:  "Trending interest",
			Value:  topics[0].Keyword,
			Detail: fmt.Sprintf("%q is the strongest trend on %s right now.", topics[0].Keyword, platform),
		})
	}

	active := activeGoals(goals)
	if len(active) > 0 {
		insights = append(insights, core.AudienceInsight{
			Label:  "Active goals",
			Value:  fmt.Sprintf("%d", len(active)),
			Detail: fmt.Sprintf("This week's plan works toward %s.", goalLabel(active[0].Type)),
		})
	}

	if mode.IsFaith() {
		insights = append(insights, core.AudienceInsight{
			Label:  "Values",
			Value:  "faith-centered",
			Detail: "Posts that share the why behind your work build trust with a faith-minded audience.",
		})
	} else {
		insights = append(insights, core.AudienceInsight{
			Label:  "Values",
			Value:  "encouragement",
			Detail: "Uplifting, practical posts keep your audience coming back.",
		})
	}
	return insights
}

// GeneratePersonalizedContent aggregates seasonal, goal-focused, trending and
// educational ideas, plus niche and product ideas when the profile names them,
// and returns the top ideas by expected engagement. Any failure yields an
// empty list.
func (c *Composer) GeneratePersonalizedContent(ctx context.Context, mode core.Mode, profile core.UserPersonality, goals []core.MarketingGoal, seasonal core.SeasonalContext, platforms []core.Platform) []core.ContentIdea {
	ideas, err := c.composeIdeas(ctx, mode, profile, goals, seasonal, platforms)
	if err != nil {
		logger.Warn("Personalized content generation failed, returning no ideas",
			"niche", profile.Niche, "error", err.Error())
		c.recorder.Fallback("personalized_content")
		return []core.ContentIdea{}
	}

	ranked := ranking.RankIdeas(ideas, MaxIdeas)
	c.recorder.Suggestions("content_idea", len(ranked))
	return ranked
}

func (c *Composer) composeIdeas(ctx context.Context, mode core.Mode, profile core.UserPersonality, goals []core.MarketingGoal, seasonal core.SeasonalContext, platforms []core.Platform) ([]core.ContentIdea, error) {
	platforms = normalizePlatforms(platforms)

	var ideas []core.ContentIdea
	ideas = append(ideas, c.seasonalIdeas(mode, seasonal, platforms)...)
	ideas = append(ideas, c.GenerateGoalFocusedContent(mode, goals, platforms)...)

	trending, err := c.trendingIdeas(ctx, mode, platforms)
	if err != nil {
		return nil, err
	}
	ideas = append(ideas, trending...)

	for _, t := range catalog.EducationalTopics(mode) {
		ideas = append(ideas, ideaFromTemplate(t, platforms, ""))
	}
	if profile.Niche != "" {
		ideas = append(ideas, c.GenerateNicheContent(mode, profile.Niche, platforms)...)
	}
	if profile.ProductType != "" {
		ideas = append(ideas, c.GenerateProductContent(mode, profile.ProductType, profile.ProductName, platforms)...)
	}
	return ideas, nil
}

func (c *Composer) seasonalIdeas(mode core.Mode, seasonal core.SeasonalContext, platforms []core.Platform) []core.ContentIdea {
	season := seasonal.Season
	if season == "" {
		month := c.now().Month()
		if seasonal.Month >= 1 && seasonal.Month <= 12 {
			month = time.Month(seasonal.Month)
		}
		season = catalog.SeasonForMonth(month)
	}

	var ideas []core.ContentIdea
	for _, t := range catalog.Seasonal(mode, season) {
		ideas = append(ideas, ideaFromTemplate(t, platforms, season))
	}
	if seasonal.Holiday != "" {
		ideas = append(ideas, c.GenerateHolidayContent(mode, seasonal.Holiday, platforms)...)
	}
	return ideas
}

func (c *Composer) trendingIdeas(ctx context.Context, mode core.Mode, platforms []core.Platform) ([]core.ContentIdea, error) {
	var ideas []core.ContentIdea
	for _, p := range platforms {
		topics, err := c.trendingTopics(ctx, p)
		if err != nil {
			return nil, err
		}
		for _, t := range topics {
			ideas = append(ideas, trendIdea(mode, t, p))
		}
	}
	return ideas, nil
}

func trendIdea(mode core.Mode, t core.TrendingTopic, platform core.Platform) core.ContentIdea {
	idea := core.ContentIdea{
		Title:              fmt.Sprintf("Your Take on %s", titleCase(t.Keyword)),
		Description:        fmt.Sprintf("Join the %q conversation on %s with your own story and work.", t.Keyword, platform),
		ContentType:        "reel",
		Platforms:          []core.Platform{platform},
		Difficulty:         core.DifficultyMedium,
		ExpectedEngagement: t.TrendScore * trendIdeaFactor,
		Hashtags:           append([]string{}, t.RelatedHashtags...),
	}
	if mode.IsFaith() {
		idea.Description = fmt.Sprintf("Join the %q conversation on %s and share how faith shapes your work.", t.Keyword, platform)
		idea.BibleConnection = "Matthew 5:16"
	}
	return idea
}

// GenerateGoalFocusedContent returns one idea per active goal. The template for
// each goal is picked at random from the mode's goal templates.
func (c *Composer) GenerateGoalFocusedContent(mode core.Mode, goals []core.MarketingGoal, platforms []core.Platform) []core.ContentIdea {
	templates := catalog.GoalTemplates(mode)
	if len(templates) == 0 {
		return []core.ContentIdea{}
	}

	ideas := []core.ContentIdea{}
	for _, g := range activeGoals(goals) {
		t := templates[c.rng.IntN(len(templates))]
		t = catalog.Render(t, map[string]string{
			"goal":   goalLabel(g.Type),
			"target": fmt.Sprintf("%s %s", formatNumber(g.Target), g.Type),
		})
		idea := ideaFromTemplate(t, platforms, "")
		idea.Hashtags = append(idea.Hashtags, core.NormalizeHashtag(g.Type+"goals"))
		ideas = append(ideas, idea)
	}
	return ideas
}

// GenerateHolidayContent returns ideas for a holiday, or none if it is unknown.
func (c *Composer) GenerateHolidayContent(mode core.Mode, holiday string, platforms []core.Platform) []core.ContentIdea {
	platforms = normalizePlatforms(platforms)
	ideas := []core.ContentIdea{}
	for _, t := range catalog.Holiday(mode, holiday) {
		ideas = append(ideas, ideaFromTemplate(t, platforms, holiday))
	}
	return ideas
}

// GenerateProductContent returns launch and promotion ideas for a product type
// with the product name substituted in.
func (c *Composer) GenerateProductContent(mode core.Mode, productType, productName string, platforms []core.Platform) []core.ContentIdea {
	platforms = normalizePlatforms(platforms)
	if productName == "" {
		productName = "your " + productType
	}
	ideas := []core.ContentIdea{}
	for _, t := range catalog.Product(mode, productType) {
		t = catalog.Render(t, map[string]string{"product": productName})
		ideas = append(ideas, ideaFromTemplate(t, platforms, ""))
	}
	return ideas
}

// GenerateNicheContent returns ideas for a niche category.
func (c *Composer) GenerateNicheContent(mode core.Mode, niche string, platforms []core.Platform) []core.ContentIdea {
	platforms = normalizePlatforms(platforms)
	ideas := []core.ContentIdea{}
	for _, t := range catalog.Niche(mode, niche) {
		ideas = append(ideas, ideaFromTemplate(t, platforms, ""))
	}
	return ideas
}

// GenerateViralContent crosses every viral format with every topic and ranks
// the result by expected engagement.
func (c *Composer) GenerateViralContent(mode core.Mode, topics []string, platforms []core.Platform) []core.ContentIdea {
	platforms = normalizePlatforms(platforms)

	base := 0.0
	for _, p := range platforms {
		base += estimate.BaseEngagement(p)
	}
	if len(platforms) > 0 {
		base /= float64(len(platforms))
	} else {
		base = estimate.DefaultBaseEngagement
	}

	ideas := []core.ContentIdea{}
	for _, f := range catalog.ViralFormats() {
		for _, topic := range topics {
			if topic == "" {
				continue
			}
			idea := core.ContentIdea{
				Title:              fmt.Sprintf("%s: %s", f.Name, titleCase(topic)),
				Description:        fmt.Sprintf("A %s %s built around %s.", f.Name, f.ContentType, topic),
				ContentType:        f.ContentType,
				Platforms:          platforms,
				Difficulty:         f.Difficulty,
				ExpectedEngagement: base * f.Multiplier,
				Hashtags:           []string{core.NormalizeHashtag(topic), "#viral"},
			}
			if mode.IsFaith() {
				idea.Description += " Close with a line about the purpose behind it."
				idea.BibleConnection = "Colossians 3:23"
			}
			ideas = append(ideas, idea)
		}
	}
	return ranking.RankIdeas(ideas, 0)
}

func ideaFromTemplate(t catalog.Template, platforms []core.Platform, relevance string) core.ContentIdea {
	return core.ContentIdea{
		Title:              t.Title,
		Description:        t.Description,
		ContentType:        t.ContentType,
		Platforms:          append([]core.Platform{}, platforms...),
		Difficulty:         t.Difficulty,
		ExpectedEngagement: t.Engagement,
		Hashtags:           append([]string{}, t.Hashtags...),
		BibleConnection:    t.BibleConnection,
		SeasonalRelevance:  relevance,
	}
}

func activeGoals(goals []core.MarketingGoal) []core.MarketingGoal {
	var out []core.MarketingGoal
	for _, g := range goals {
		if g.Status == core.GoalActive {
			out = append(out, g)
		}
	}
	return out
}

func normalizePlatforms(in []core.Platform) []core.Platform {
	out := make([]core.Platform, 0, len(in))
	for _, p := range in {
		if n := core.NormalizePlatform(string(p)); n != "" {
			out = append(out, n)
		}
	}
	return out
}
