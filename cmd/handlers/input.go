package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"kingdom/internal/core"
	"kingdom/internal/intelligence"
	"kingdom/internal/keywords"
)

// readContent returns post text from positional args or, when file is set,
// from a text or HTML file.
func readContent(args []string, file string) (string, error) {
	if file == "" {
		content := strings.TrimSpace(strings.Join(args, " "))
		if content == "" {
			return "", errors.New("no content given: pass it as arguments or with --file")
		}
		return content, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".html", ".htm":
		text, err := keywords.TextFromHTML(f)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", file, err)
		}
		return text, nil
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
}

// parseGoals reads goals from a JSON file and from "type:target" flags.
// Flag goals are always active.
func parseGoals(file string, specs []string) ([]core.MarketingGoal, error) {
	var goals []core.MarketingGoal
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read goals file: %w", err)
		}
		if err := json.Unmarshal(data, &goals); err != nil {
			return nil, fmt.Errorf("failed to parse goals file %s: %w", file, err)
		}
	}

	for i, spec := range specs {
		kind, target, ok := strings.Cut(spec, ":")
		if !ok || strings.TrimSpace(kind) == "" {
			return nil, fmt.Errorf("invalid goal %q: expected type:target, e.g. followers:1000", spec)
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(target), 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid goal target in %q", spec)
		}
		goals = append(goals, core.MarketingGoal{
			ID:     fmt.Sprintf("goal-%d", i+1),
			Type:   strings.ToLower(strings.TrimSpace(kind)),
			Target: n,
			Status: core.GoalActive,
		})
	}
	return goals, nil
}

// readHistory loads a JSON array of hashtag performance records.
func readHistory(file string) ([]core.HashtagPerformance, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	var history []core.HashtagPerformance
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse history file %s: %w", file, err)
	}
	return history, nil
}

func parsePlatforms(values []string) []core.Platform {
	out := make([]core.Platform, 0, len(values))
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			if n := core.NormalizePlatform(p); n != "" {
				out = append(out, n)
			}
		}
	}
	return out
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
		if n := core.NormalizeHashtag(t); n != "" {
			tags = append(tags, n)
		}
	}
	return tags
}

// parseScore builds a content score from name=value pairs. Unset fields use
// the same fallbacks as a failed analysis.
func parseScore(pairs []string, mode core.Mode) (core.ContentScore, error) {
	score := intelligence.FallbackScore(mode)
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return core.ContentScore{}, fmt.Errorf("invalid score %q: expected name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || v < 0 || v > 100 {
			return core.ContentScore{}, fmt.Errorf("invalid score value in %q: must be 0-100", pair)
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "overall":
			score.Overall = v
		case "engagement":
			score.Engagement = v
		case "reach":
			score.Reach = v
		case "conversion":
			score.Conversion = v
		case "virality":
			score.Virality = v
		case "faith", "faithalignment":
			score.FaithAlignment = &v
		default:
			return core.ContentScore{}, fmt.Errorf("unknown score %q", name)
		}
	}
	return score, nil
}
