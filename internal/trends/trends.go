package trends

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"kingdom/internal/core"
	"kingdom/internal/keywords"
)

// TrendMetric represents a specific metric being tracked over time
type TrendMetric struct {
	Name          string    `json:"name"`           // Metric name (e.g., "post_count", "avg_engagement")
	Value         float64   `json:"value"`          // Current value
	PreviousValue float64   `json:"previous_value"` // Previous period value
	Change        float64   `json:"change"`         // Absolute change
	ChangePercent float64   `json:"change_percent"` // Percentage change
	Period        string    `json:"period"`         // Time period (e.g., "week")
	LastUpdated   time.Time `json:"last_updated"`   // When this metric was last calculated
}

// TrendReport contains analysis of a user's posting history across two windows
type TrendReport struct {
	ID          string        `json:"id"`
	Platform    core.Platform `json:"platform"`
	Period      string        `json:"period"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Metrics     []TrendMetric `json:"metrics"`
	TopicTrends []TopicTrend  `json:"topic_trends"`
	KeyFindings []string      `json:"key_findings"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// TopicTrend represents trending information for a specific keyword
type TopicTrend struct {
	Topic           string  `json:"topic"`             // Keyword
	CurrentCount    int     `json:"current_count"`     // Posts mentioning it in current window
	PreviousCount   int     `json:"previous_count"`    // Posts mentioning it in previous window
	Change          int     `json:"change"`            // Change in post count
	ChangePercent   float64 `json:"change_percent"`    // Percentage change
	IsNewTopic      bool    `json:"is_new_topic"`      // True if topic is new this period
	IsEmergingTopic bool    `json:"is_emerging_topic"` // True if showing significant growth
}

// EmergingThreshold is the growth percentage above which a topic counts as emerging.
const EmergingThreshold = 50.0

// Analyzer compares keyword frequencies between two windows of posts.
type Analyzer struct {
	// MaxTopics caps TopicTrends in a report. Zero keeps everything.
	MaxTopics int
}

// NewAnalyzer creates a new trend analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{MaxTopics: 25}
}

// Analyze builds a window-over-window report from current and previous posts.
func (a *Analyzer) Analyze(platform core.Platform, current, previous []core.Post, start, end time.Time) *TrendReport {
	now := time.Now()
	report := &TrendReport{
		ID:          fmt.Sprintf("history-trend-%s-%d", platform, now.Unix()),
		Platform:    platform,
		Period:      periodLabel(end.Sub(start)),
		StartDate:   start,
		EndDate:     end,
		GeneratedAt: now,
	}

	report.Metrics = append(report.Metrics,
		metric("post_count", float64(len(current)), float64(len(previous)), report.Period, now),
		metric("avg_engagement", avgEngagement(current), avgEngagement(previous), report.Period, now),
	)

	report.TopicTrends = CompareTopicFrequencies(KeywordCounts(current), KeywordCounts(previous))
	if a.MaxTopics > 0 && len(report.TopicTrends) > a.MaxTopics {
		report.TopicTrends = report.TopicTrends[:a.MaxTopics]
	}
	report.KeyFindings = generateKeyFindings(report.Metrics, report.TopicTrends)
	return report
}

// KeywordCounts counts, for each keyword, how many posts mention it in their
// content or hashtags.
func KeywordCounts(posts []core.Post) map[string]int {
	counts := make(map[string]int)
	for _, p := range posts {
		text := p.Content + " " + strings.Join(p.Hashtags, " ")
		for kw := range keywords.Extract(text) {
			counts[kw]++
		}
	}
	return counts
}

// CompareTopicFrequencies compares topic frequencies between two periods.
// Results are ordered by change magnitude, then by topic name.
func CompareTopicFrequencies(current, previous map[string]int) []TopicTrend {
	allTopics := make(map[string]bool)
	for topic := range current {
		allTopics[topic] = true
	}
	for topic := range previous {
		allTopics[topic] = true
	}

	names := make([]string, 0, len(allTopics))
	for topic := range allTopics {
		names = append(names, topic)
	}
	sort.Strings(names)

	trends := make([]TopicTrend, 0, len(names))
	for _, topic := range names {
		currentCount := current[topic]
		previousCount := previous[topic]
		if currentCount == 0 && previousCount == 0 {
			continue
		}

		trend := TopicTrend{
			Topic:         topic,
			CurrentCount:  currentCount,
			PreviousCount: previousCount,
			Change:        currentCount - previousCount,
			IsNewTopic:    previousCount == 0 && currentCount > 0,
		}

		if previousCount > 0 {
			trend.ChangePercent = (float64(currentCount-previousCount) / float64(previousCount)) * 100
			trend.IsEmergingTopic = trend.ChangePercent > EmergingThreshold
		} else if currentCount > 0 {
			trend.ChangePercent = 100
			trend.IsEmergingTopic = true
		}

		trends = append(trends, trend)
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return abs(trends[i].Change) > abs(trends[j].Change)
	})
	return trends
}

// TopicsFromReport converts emerging topics into trending topics for ranking.
func TopicsFromReport(report *TrendReport) []core.TrendingTopic {
	var topics []core.TrendingTopic
	for _, t := range report.TopicTrends {
		if !t.IsEmergingTopic || t.Change <= 0 {
			continue
		}
		score := t.ChangePercent/2 + float64(t.CurrentCount)*10
		if score > 100 {
			score = 100
		}
		topics = append(topics, core.TrendingTopic{
			Keyword:         t.Topic,
			Platform:        report.Platform,
			TrendScore:      score,
			Category:        "history",
			RelevanceToUser: 1,
			RelatedHashtags: []string{core.NormalizeHashtag(t.Topic)},
		})
	}
	return topics
}

func metric(name string, value, previous float64, period string, now time.Time) TrendMetric {
	m := TrendMetric{
		Name:          name,
		Value:         value,
		PreviousValue: previous,
		Change:        value - previous,
		Period:        period,
		LastUpdated:   now,
	}
	if previous > 0 {
		m.ChangePercent = (value - previous) / previous * 100
	}
	return m
}

func avgEngagement(posts []core.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	var total float64
	for _, p := range posts {
		total += p.Engagement
	}
	return total / float64(len(posts))
}

func periodLabel(window time.Duration) string {
	days := int(window.Hours() / 24)
	switch {
	case days == 7:
		return "week-over-week"
	case days >= 28 && days <= 31:
		return "month-over-month"
	default:
		return fmt.Sprintf("%d-day windows", days)
	}
}

// generateKeyFindings creates human-readable findings from the trend data
func generateKeyFindings(metrics []TrendMetric, topicTrends []TopicTrend) []string {
	var findings []string

	for _, m := range metrics {
		if m.Name != "post_count" {
			continue
		}
		switch {
		case m.Change > 0:
			findings = append(findings, fmt.Sprintf("Posting volume increased by %d posts (%.1f%% growth)",
				int(m.Change), m.ChangePercent))
		case m.Change < 0:
			findings = append(findings, fmt.Sprintf("Posting volume decreased by %d posts (%.1f%% decline)",
				int(-m.Change), -m.ChangePercent))
		default:
			findings = append(findings, "Posting volume remained stable")
		}
	}

	var emergingTopics, decliningTopics, newTopics []string
	for _, trend := range topicTrends {
		switch {
		case trend.IsNewTopic:
			newTopics = append(newTopics, trend.Topic)
		case trend.IsEmergingTopic && trend.Change > 0:
			emergingTopics = append(emergingTopics, trend.Topic)
		case trend.Change < -2:
			decliningTopics = append(decliningTopics, trend.Topic)
		}
	}

	if len(newTopics) > 0 {
		findings = append(findings, fmt.Sprintf("New topics emerged: %s", strings.Join(newTopics[:min(len(newTopics), 3)], ", ")))
	}
	if len(emergingTopics) > 0 {
		findings = append(findings, fmt.Sprintf("Trending topics: %s", strings.Join(emergingTopics[:min(len(emergingTopics), 3)], ", ")))
	}
	if len(decliningTopics) > 0 {
		findings = append(findings, fmt.Sprintf("Declining topics: %s", strings.Join(decliningTopics[:min(len(decliningTopics), 3)], ", ")))
	}

	if len(findings) == 0 {
		findings = append(findings, "No significant trends detected in this period")
	}
	return findings
}

// FormatReport generates a human-readable markdown report
func FormatReport(report *TrendReport) string {
	var builder strings.Builder

	builder.WriteString("# Posting Trends\n")
	builder.WriteString(fmt.Sprintf("**Platform:** %s\n", report.Platform))
	builder.WriteString(fmt.Sprintf("**Period:** %s\n", report.Period))
	builder.WriteString(fmt.Sprintf("**Analysis Window:** %s to %s\n\n",
		report.StartDate.Format("2006-01-02"), report.EndDate.Format("2006-01-02")))

	builder.WriteString("## Key Findings\n")
	for _, finding := range report.KeyFindings {
		builder.WriteString(fmt.Sprintf("- %s\n", finding))
	}
	builder.WriteString("\n")

	builder.WriteString("## Metrics\n")
	for _, m := range report.Metrics {
		builder.WriteString(fmt.Sprintf("- **%s**: %.0f %s %.0f (%.1f%%)\n",
			strings.ReplaceAll(m.Name, "_", " "), m.PreviousValue, arrow(m.Change), m.Value, m.ChangePercent))
	}
	builder.WriteString("\n")

	builder.WriteString("## Topic Trends\n")
	for i, trend := range report.TopicTrends {
		if i >= 10 {
			break
		}
		status := ""
		if trend.IsNewTopic {
			status = " (New)"
		} else if trend.IsEmergingTopic {
			status = " (Trending)"
		}
		builder.WriteString(fmt.Sprintf("- **%s**%s: %d %s %d posts",
			trend.Topic, status, trend.PreviousCount, arrow(float64(trend.Change)), trend.CurrentCount))
		if trend.ChangePercent != 0 {
			builder.WriteString(fmt.Sprintf(" (%.1f%%)", trend.ChangePercent))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func arrow(change float64) string {
	switch {
	case change > 0:
		return "↗"
	case change < 0:
		return "↘"
	default:
		return "→"
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
