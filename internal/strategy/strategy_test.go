package strategy

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"kingdom/internal/catalog"
	"kingdom/internal/core"
	"kingdom/internal/estimate"
	"kingdom/internal/metrics"
	"kingdom/internal/trends"
)

var allPlatforms = []core.Platform{
	core.PlatformInstagram, core.PlatformTikTok, core.PlatformFacebook, core.PlatformTwitter,
	core.PlatformLinkedIn, core.PlatformYouTube, core.PlatformPinterest,
}

func newTestComposer(src trends.Source) *Composer {
	c := NewComposer(src, estimate.NewRand(99), metrics.NewRecorder())
	c.now = func() time.Time { return time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC) }
	return c
}

func failingSource() trends.Source {
	return trends.SourceFunc(func(ctx context.Context, p core.Platform) ([]core.TrendingTopic, error) {
		return nil, errors.New("trend API unavailable")
	})
}

func mixedGoals() []core.MarketingGoal {
	return []core.MarketingGoal{
		{ID: "g1", Type: "followers", Target: 1000, Status: core.GoalActive},
		{ID: "g2", Type: "sales", Target: 50, Status: core.GoalCompleted},
		{ID: "g3", Type: "bookings", Target: 12, Status: core.GoalActive},
		{ID: "g4", Type: "leads", Target: 30, Status: core.GoalPaused},
	}
}

func renderedGoalTitles(mode core.Mode, goalType string) map[string]bool {
	titles := make(map[string]bool)
	for _, t := range catalog.GoalTemplates(mode) {
		titles[catalog.Substitute(t.Title, "goal", goalLabel(goalType))] = true
	}
	return titles
}

func TestGenerateGoalFocusedContentFiltersInactiveGoals(t *testing.T) {
	c := newTestComposer(nil)

	for _, mode := range []core.Mode{core.ModeFaith, core.ModeEncouragement} {
		ideas := c.GenerateGoalFocusedContent(mode, mixedGoals(), []core.Platform{core.PlatformInstagram})
		if len(ideas) != 2 {
			t.Fatalf("%s: expected 2 ideas for 2 active goals, got %d", mode, len(ideas))
		}

		if !renderedGoalTitles(mode, "followers")[ideas[0].Title] {
			t.Errorf("%s: title %q not from the followers template set", mode, ideas[0].Title)
		}
		if !renderedGoalTitles(mode, "bookings")[ideas[1].Title] {
			t.Errorf("%s: title %q not from the bookings template set", mode, ideas[1].Title)
		}
		for _, idea := range ideas {
			if strings.Contains(idea.Title, "{") || strings.Contains(idea.Description, "{") {
				t.Errorf("%s: unsubstituted placeholder in %+v", mode, idea)
			}
		}
		if !strings.Contains(ideas[0].Description, "1,000 followers") {
			t.Errorf("%s: expected target in description, got %q", mode, ideas[0].Description)
		}
	}
}

func TestGenerateGoalFocusedContentNoActiveGoals(t *testing.T) {
	c := newTestComposer(nil)
	goals := []core.MarketingGoal{{Type: "sales", Status: core.GoalCompleted}}
	ideas := c.GenerateGoalFocusedContent(core.ModeFaith, goals, nil)
	if ideas == nil || len(ideas) != 0 {
		t.Errorf("Expected empty non-nil list, got %#v", ideas)
	}
}

func TestGeneratePersonalizedContent(t *testing.T) {
	c := newTestComposer(trends.NewStaticSource())

	ideas := c.GeneratePersonalizedContent(context.Background(), core.ModeFaith,
		core.UserPersonality{Niche: "photography"}, mixedGoals(),
		core.SeasonalContext{Season: "fall", Holiday: "thanksgiving"}, allPlatforms)

	if len(ideas) != MaxIdeas {
		t.Fatalf("Expected top %d ideas, got %d", MaxIdeas, len(ideas))
	}
	for i := 1; i < len(ideas); i++ {
		if ideas[i-1].ExpectedEngagement < ideas[i].ExpectedEngagement {
			t.Fatalf("Ideas not sorted by engagement at %d", i)
		}
	}
	for _, idea := range ideas {
		if idea.Title == "" || idea.Description == "" {
			t.Errorf("Expected populated idea, got %+v", idea)
		}
	}
}

func TestGeneratePersonalizedContentIncludesEducational(t *testing.T) {
	c := newTestComposer(nil)
	ideas := c.GeneratePersonalizedContent(context.Background(), core.ModeEncouragement,
		core.UserPersonality{}, nil, core.SeasonalContext{}, []core.Platform{core.PlatformInstagram})

	titles := make(map[string]bool)
	for _, idea := range ideas {
		titles[idea.Title] = true
	}
	for _, topic := range catalog.EducationalTopics(core.ModeEncouragement) {
		if !titles[topic.Title] {
			t.Errorf("Expected educational topic %q", topic.Title)
		}
	}

	// October falls back to the fall templates.
	for _, tmpl := range catalog.Seasonal(core.ModeEncouragement, "fall") {
		if !titles[tmpl.Title] {
			t.Errorf("Expected seasonal idea %q", tmpl.Title)
		}
	}
}

func TestGeneratePersonalizedContentFallback(t *testing.T) {
	c := newTestComposer(failingSource())
	ideas := c.GeneratePersonalizedContent(context.Background(), core.ModeFaith,
		core.UserPersonality{}, mixedGoals(), core.SeasonalContext{Season: "spring"},
		[]core.Platform{core.PlatformInstagram})
	if ideas == nil || len(ideas) != 0 {
		t.Errorf("Expected empty list on trend failure, got %d ideas", len(ideas))
	}
}

func TestGenerateContentStrategy(t *testing.T) {
	c := newTestComposer(trends.NewStaticSource())
	s := c.GenerateContentStrategy(context.Background(), core.ModeFaith, "user-1", core.PlatformInstagram, mixedGoals())

	if len(s.WeeklyPlan) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(s.WeeklyPlan))
	}
	if s.WeeklyPlan[0].Day != "Monday" || s.WeeklyPlan[6].Day != "Sunday" {
		t.Errorf("Expected Monday to Sunday, got %s to %s", s.WeeklyPlan[0].Day, s.WeeklyPlan[6].Day)
	}
	for _, day := range s.WeeklyPlan {
		if !strings.HasPrefix(day.Idea.Title, day.Theme+": ") {
			t.Errorf("Expected idea title prefixed with theme, got %q", day.Idea.Title)
		}
		if day.Idea.ContentType != day.ContentType {
			t.Errorf("Expected idea content type %s, got %s", day.ContentType, day.Idea.ContentType)
		}
	}

	if len(s.TrendingTopics) == 0 || len(s.TrendingTopics) > MaxStrategyTopics {
		t.Errorf("Expected 1..%d trending topics, got %d", MaxStrategyTopics, len(s.TrendingTopics))
	}
	for i := 1; i < len(s.TrendingTopics); i++ {
		if s.TrendingTopics[i-1].TrendScore < s.TrendingTopics[i].TrendScore {
			t.Errorf("Trending topics not sorted at %d", i)
		}
	}

	labels := make(map[string]bool)
	for _, in := range s.AudienceInsights {
		labels[in.Label] = true
	}
	for _, want := range []string{"Preferred format", "Trending interest", "Active goals", "Values"} {
		if !labels[want] {
			t.Errorf("Expected audience insight %q", want)
		}
	}
}

func TestGenerateContentStrategyFallback(t *testing.T) {
	c := newTestComposer(failingSource())
	s := c.GenerateContentStrategy(context.Background(), core.ModeEncouragement, "user-1", core.PlatformTikTok, nil)

	if s.WeeklyPlan == nil || s.TrendingTopics == nil || s.AudienceInsights == nil {
		t.Fatal("Expected empty, non-nil slices in fallback strategy")
	}
	if len(s.WeeklyPlan)+len(s.TrendingTopics)+len(s.AudienceInsights) != 0 {
		t.Errorf("Expected empty strategy, got %+v", s)
	}
}

func TestGenerateContentStrategyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestComposer(trends.NewStaticSource())
	s := c.GenerateContentStrategy(ctx, core.ModeFaith, "user-1", core.PlatformInstagram, nil)
	if len(s.WeeklyPlan) != 0 {
		t.Errorf("Expected empty strategy for cancelled context, got %d days", len(s.WeeklyPlan))
	}
}

func TestGenerateProductContent(t *testing.T) {
	c := newTestComposer(nil)
	for _, mode := range []core.Mode{core.ModeFaith, core.ModeEncouragement} {
		for _, productType := range catalog.ProductTypes() {
			ideas := c.GenerateProductContent(mode, productType, "Golden Hour Presets", []core.Platform{"Instagram"})
			if len(ideas) == 0 {
				t.Errorf("%s/%s: expected product ideas", mode, productType)
			}
			for _, idea := range ideas {
				if strings.Contains(idea.Title+idea.Description, "{product}") {
					t.Errorf("%s/%s: unsubstituted product in %q", mode, productType, idea.Title)
				}
				if idea.Platforms[0] != core.PlatformInstagram {
					t.Errorf("Expected normalized platform, got %v", idea.Platforms)
				}
			}
		}
	}

	if got := c.GenerateProductContent(core.ModeFaith, "spaceship", "X", nil); len(got) != 0 {
		t.Errorf("Expected no ideas for unknown product type, got %d", len(got))
	}
}

func TestGenerateHolidayAndNicheContent(t *testing.T) {
	c := newTestComposer(nil)

	holiday := c.GenerateHolidayContent(core.ModeFaith, "Christmas", nil)
	if len(holiday) == 0 {
		t.Fatal("Expected christmas ideas")
	}
	if holiday[0].SeasonalRelevance != "Christmas" {
		t.Errorf("Expected seasonal relevance, got %q", holiday[0].SeasonalRelevance)
	}

	if len(c.GenerateNicheContent(core.ModeEncouragement, "wedding", nil)) == 0 {
		t.Error("Expected wedding niche ideas")
	}
	if len(c.GenerateNicheContent(core.ModeEncouragement, "underwater basket weaving", nil)) != 0 {
		t.Error("Expected no ideas for unknown niche")
	}
}

func TestGenerateViralContent(t *testing.T) {
	c := newTestComposer(nil)
	topics := []string{"golden hour", "", "client gallery"}
	ideas := c.GenerateViralContent(core.ModeFaith, topics, []core.Platform{core.PlatformTikTok})

	want := len(catalog.ViralFormats()) * 2
	if len(ideas) != want {
		t.Fatalf("Expected %d ideas (formats x non-empty topics), got %d", want, len(ideas))
	}
	for i := 1; i < len(ideas); i++ {
		if ideas[i-1].ExpectedEngagement < ideas[i].ExpectedEngagement {
			t.Fatalf("Viral ideas not ranked at %d", i)
		}
	}
	if ideas[0].BibleConnection == "" {
		t.Error("Expected faith ideas to carry a bible connection")
	}
	if ideas[0].ExpectedEngagement != estimate.BaseEngagement(core.PlatformTikTok)*1.7 {
		t.Errorf("Expected top idea to use the strongest format, got %.1f", ideas[0].ExpectedEngagement)
	}
}

func TestFormatHelpers(t *testing.T) {
	tests := map[float64]string{0: "0", 12: "12", 1000: "1,000", 1234567: "1,234,567", -2500: "-2,500", 2.5: "2.5"}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
	if got := goalLabel("email_subscribers"); got != "Email Subscribers" {
		t.Errorf("Unexpected goal label %q", got)
	}
	if got := titleCase("golden  hour"); got != "Golden Hour" {
		t.Errorf("Unexpected title case %q", got)
	}
	if got := titleCase("éclair baking ñandú"); got != "Éclair Baking Ñandú" {
		t.Errorf("Unexpected title case %q", got)
	}
}

func TestGenerateViralContentNonASCIITopic(t *testing.T) {
	c := newTestComposer(nil)
	ideas := c.GenerateViralContent(core.ModeFaith, []string{"éclair baking"}, []core.Platform{core.PlatformTikTok})
	if len(ideas) == 0 {
		t.Fatal("Expected viral ideas")
	}
	for _, idea := range ideas {
		if !utf8.ValidString(idea.Title) {
			t.Errorf("Title is not valid UTF-8: %q", idea.Title)
		}
		if !strings.HasSuffix(idea.Title, ": Éclair Baking") {
			t.Errorf("Unexpected title %q", idea.Title)
		}
	}
}

func TestGeneratePersonalizedContentUsesProfile(t *testing.T) {
	c := newTestComposer(nil)
	profile := core.UserPersonality{Niche: "photography", ProductName: "Spring Minis", ProductType: "service"}
	ideas := c.GeneratePersonalizedContent(context.Background(), core.ModeEncouragement,
		profile, nil, core.SeasonalContext{Season: "spring"}, []core.Platform{core.PlatformInstagram})

	titles := make(map[string]bool)
	for _, idea := range ideas {
		titles[idea.Title] = true
	}
	for _, tmpl := range catalog.Niche(core.ModeEncouragement, "photography") {
		if !titles[tmpl.Title] {
			t.Errorf("Expected niche idea %q", tmpl.Title)
		}
	}
	if !titles["Is Spring Minis Right for You?"] {
		t.Errorf("Expected product idea for Spring Minis, got %v", titles)
	}
}
