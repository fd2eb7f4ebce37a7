// Package render formats recommendation results for the terminal and writes
// reports to disk.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kingdom/internal/core"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tagStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	highStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	sectionStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
)

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Hashtags renders ranked suggestions, one per line.
func Hashtags(platform core.Platform, list []core.HashtagSuggestion) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Hashtags for %s (%d)", platform, len(list))))
	b.WriteString("\n")
	if len(list) == 0 {
		b.WriteString(mutedStyle.Render("No suggestions."))
		b.WriteString("\n")
		return b.String()
	}
	for i, h := range list {
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1,
			tagStyle.Render(h.Hashtag),
			mutedStyle.Render(fmt.Sprintf("[%s] score %.1f, ~%.0f engagement", h.Category, h.CompositeScore(), h.ExpectedEngagement)))
		if h.Reasoning != "" {
			fmt.Fprintf(&b, "    %s\n", h.Reasoning)
		}
	}
	return b.String()
}

// Ideas renders content ideas as numbered blocks.
func Ideas(ideas []core.ContentIdea) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Content ideas (%d)", len(ideas))))
	b.WriteString("\n")
	if len(ideas) == 0 {
		b.WriteString(mutedStyle.Render("No ideas."))
		b.WriteString("\n")
		return b.String()
	}
	for i, idea := range ideas {
		fmt.Fprintf(&b, "%d. %s\n", i+1, lipgloss.NewStyle().Bold(true).Render(idea.Title))
		writeIdeaBody(&b, idea, "   ")
	}
	return b.String()
}

func writeIdeaBody(b *strings.Builder, idea core.ContentIdea, indent string) {
	if idea.Description != "" {
		fmt.Fprintf(b, "%s%s\n", indent, idea.Description)
	}
	meta := fmt.Sprintf("%s | %s | ~%.0f engagement", idea.ContentType, idea.Difficulty, idea.ExpectedEngagement)
	if len(idea.Platforms) > 0 {
		names := make([]string, len(idea.Platforms))
		for i, p := range idea.Platforms {
			names[i] = string(p)
		}
		meta += " | " + strings.Join(names, ", ")
	}
	fmt.Fprintf(b, "%s%s\n", indent, mutedStyle.Render(meta))
	if len(idea.Hashtags) > 0 {
		fmt.Fprintf(b, "%s%s\n", indent, tagStyle.Render(strings.Join(idea.Hashtags, " ")))
	}
	if idea.BibleConnection != "" {
		fmt.Fprintf(b, "%sScripture: %s\n", indent, idea.BibleConnection)
	}
	if idea.SeasonalRelevance != "" {
		fmt.Fprintf(b, "%sSeason: %s\n", indent, idea.SeasonalRelevance)
	}
}

// Strategy renders a weekly plan with its trending topics and insights.
func Strategy(s core.ContentStrategy) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Weekly content plan"))
	b.WriteString("\n")
	if len(s.WeeklyPlan) == 0 {
		b.WriteString(warnStyle.Render("No plan could be generated right now."))
		b.WriteString("\n")
	}
	for _, day := range s.WeeklyPlan {
		fmt.Fprintf(&b, "%s  %s\n", lipgloss.NewStyle().Bold(true).Width(10).Render(day.Day), day.Idea.Title)
		writeIdeaBody(&b, day.Idea, "            ")
	}

	if len(s.TrendingTopics) > 0 {
		var topics strings.Builder
		for _, t := range s.TrendingTopics {
			fmt.Fprintf(&topics, "%s %s\n", t.Keyword, mutedStyle.Render(fmt.Sprintf("(%.0f)", t.TrendScore)))
		}
		b.WriteString(sectionStyle.Render("Trending\n" + strings.TrimRight(topics.String(), "\n")))
		b.WriteString("\n")
	}

	if len(s.AudienceInsights) > 0 {
		b.WriteString(titleStyle.Render("Audience"))
		b.WriteString("\n")
		for _, in := range s.AudienceInsights {
			fmt.Fprintf(&b, "- %s: %s", in.Label, in.Value)
			if in.Detail != "" {
				fmt.Fprintf(&b, " %s", mutedStyle.Render("("+in.Detail+")"))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Score renders a content score as a small table.
func Score(score core.ContentScore) string {
	rows := []struct {
		label string
		value float64
	}{
		{"Overall", score.Overall},
		{"Engagement", score.Engagement},
		{"Reach", score.Reach},
		{"Conversion", score.Conversion},
		{"Virality", score.Virality},
	}
	if score.FaithAlignment != nil {
		rows = append(rows, struct {
			label string
			value float64
		}{"Faith alignment", *score.FaithAlignment})
	}

	label := lipgloss.NewStyle().Width(16)
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s%5.1f %s\n", label.Render(r.label), r.value, bar(r.value))
	}
	return sectionStyle.Render(titleStyle.Render("Content score") + "\n" + strings.TrimRight(b.String(), "\n"))
}

func bar(v float64) string {
	n := int(v / 10)
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	return tagStyle.Render(strings.Repeat("█", n)) + mutedStyle.Render(strings.Repeat("░", 10-n))
}

// Suggestions renders optimization tips, highest impact first as given.
func Suggestions(list []core.OptimizationSuggestion) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Optimization suggestions"))
	b.WriteString("\n")
	if len(list) == 0 {
		b.WriteString(mutedStyle.Render("Looking good. Nothing to improve right now."))
		b.WriteString("\n")
		return b.String()
	}
	for _, s := range list {
		priority := mutedStyle
		switch s.Priority {
		case core.PriorityHigh:
			priority = highStyle
		case core.PriorityMedium:
			priority = warnStyle
		}
		fmt.Fprintf(&b, "%s %s %s\n", priority.Render("["+string(s.Priority)+"]"),
			lipgloss.NewStyle().Bold(true).Render(s.Title),
			mutedStyle.Render(fmt.Sprintf("+%.0f%%", s.Impact)))
		fmt.Fprintf(&b, "    %s\n", s.Description)
		for _, line := range strings.Split(s.Implementation, "\n") {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		}
	}
	return b.String()
}

// Viral renders a viral prediction.
func Viral(p core.ViralPrediction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %.0f/100\n", titleStyle.Render("Viral potential"), p.Score)
	for _, f := range p.Factors {
		fmt.Fprintf(&b, "  + %s\n", f)
	}
	for _, r := range p.Recommendations {
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("→"), r)
	}
	return b.String()
}

// Performance renders stored hashtag history.
func Performance(history []core.HashtagPerformance) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Hashtag history (%d)", len(history))))
	b.WriteString("\n")
	for _, p := range history {
		fmt.Fprintf(&b, "%s %s\n", tagStyle.Render(p.Hashtag),
			mutedStyle.Render(fmt.Sprintf("used %d×, avg %.1f engagement, %.1f%% conversion", p.TimesUsed, p.AvgEngagement, p.ConversionRate)))
	}
	return b.String()
}

// HashtagReport renders a performance report.
func HashtagReport(r core.HashtagReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Top performers"))
	b.WriteString("\n")
	for _, p := range r.TopPerformers {
		fmt.Fprintf(&b, "  %s %.1f\n", tagStyle.Render(p.Hashtag), p.AvgEngagement)
	}
	if len(r.Underperformers) > 0 {
		b.WriteString(titleStyle.Render("Underperformers"))
		b.WriteString("\n")
		for _, p := range r.Underperformers {
			fmt.Fprintf(&b, "  %s %.1f\n", warnStyle.Render(p.Hashtag), p.AvgEngagement)
		}
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	return b.String()
}

// WriteReportToFile writes content to outputDir/filename and returns the path.
func WriteReportToFile(content, outputDir, filename string) (string, error) {
	if outputDir == "" {
		outputDir = "reports"
	}

	err := os.MkdirAll(outputDir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	filePath := filepath.Join(outputDir, filename)

	err = os.WriteFile(filePath, []byte(content), 0644)
	if err != nil {
		return "", fmt.Errorf("failed to write report file %s: %w", filePath, err)
	}

	return filePath, nil
}
