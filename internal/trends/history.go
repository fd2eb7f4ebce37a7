package trends

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kingdom/internal/core"
)

// PostLister returns posts for a platform published at or after since.
type PostLister interface {
	ListPosts(ctx context.Context, platform core.Platform, since time.Time) ([]core.Post, error)
}

// HistorySource derives trending topics from the user's own posting history by
// comparing the latest window against the one before it.
type HistorySource struct {
	Posts    PostLister
	Window   time.Duration
	Analyzer *Analyzer
	Now      func() time.Time
}

// NewHistorySource creates a week-over-week history source.
func NewHistorySource(posts PostLister) *HistorySource {
	return &HistorySource{
		Posts:    posts,
		Window:   7 * 24 * time.Hour,
		Analyzer: NewAnalyzer(),
		Now:      time.Now,
	}
}

// Report builds the window-over-window report for a platform.
func (h *HistorySource) Report(ctx context.Context, platform core.Platform) (*TrendReport, error) {
	if h.Posts == nil {
		return nil, errors.New("history source has no post store")
	}
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}
	window := h.Window
	if window <= 0 {
		window = 7 * 24 * time.Hour
	}
	analyzer := h.Analyzer
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}

	split := now.Add(-window)
	posts, err := h.Posts.ListPosts(ctx, platform, now.Add(-2*window))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var current, previous []core.Post
	for _, p := range posts {
		if p.PostedAt.After(now) {
			continue
		}
		if p.PostedAt.Before(split) {
			previous = append(previous, p)
		} else {
			current = append(current, p)
		}
	}

	return analyzer.Analyze(platform, current, previous, split, now), nil
}

// TrendingTopics implements Source.
func (h *HistorySource) TrendingTopics(ctx context.Context, platform core.Platform) ([]core.TrendingTopic, error) {
	report, err := h.Report(ctx, platform)
	if err != nil {
		return nil, err
	}
	return TopicsFromReport(report), nil
}
