package optimize

import (
	"reflect"
	"testing"

	"kingdom/internal/core"
)

func ptr(f float64) *float64 { return &f }

func types(s []core.OptimizationSuggestion) []string {
	out := make([]string, len(s))
	for i, x := range s {
		out[i] = x.Type
	}
	return out
}

func TestSuggestionsRules(t *testing.T) {
	tests := []struct {
		name  string
		mode  core.Mode
		score core.ContentScore
		want  []string
	}{
		{
			name:  "all healthy",
			mode:  core.ModeFaith,
			score: core.ContentScore{Overall: 90, Engagement: 90, Reach: 90, FaithAlignment: ptr(90)},
			want:  []string{},
		},
		{
			name:  "everything low in faith mode",
			mode:  core.ModeFaith,
			score: core.ContentScore{Overall: 60, Engagement: 50, Reach: 40, FaithAlignment: ptr(10)},
			want:  []string{TypeContent, TypeHashtags, TypeTiming, TypeFaith},
		},
		{
			name:  "faith rule ignored in encouragement mode",
			mode:  core.ModeEncouragement,
			score: core.ContentScore{Overall: 90, Engagement: 90, Reach: 90, FaithAlignment: ptr(10)},
			want:  []string{},
		},
		{
			name:  "faith rule needs a faith alignment score",
			mode:  core.ModeFaith,
			score: core.ContentScore{Overall: 90, Engagement: 90, Reach: 90},
			want:  []string{},
		},
		{
			name:  "thresholds are strict",
			mode:  core.ModeFaith,
			score: core.ContentScore{Overall: 70, Engagement: 65, Reach: 70, FaithAlignment: ptr(75)},
			want:  []string{},
		},
		{
			name:  "reach only",
			mode:  core.ModeEncouragement,
			score: core.ContentScore{Overall: 80, Engagement: 80, Reach: 69.9},
			want:  []string{TypeHashtags},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggestions(tt.mode, "caption", core.PlatformInstagram, tt.score)
			if got == nil {
				t.Fatal("Expected non-nil slice")
			}
			if !reflect.DeepEqual(types(got), tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, types(got))
			}
		})
	}
}

func TestSuggestionsImpactAndPriority(t *testing.T) {
	got := Suggestions(core.ModeFaith, "", core.PlatformTikTok,
		core.ContentScore{Overall: 0, Engagement: 0, Reach: 0, FaithAlignment: ptr(0)})

	want := map[string]struct {
		impact   float64
		priority core.Priority
	}{
		TypeContent:  {30, core.PriorityHigh},
		TypeHashtags: {25, core.PriorityHigh},
		TypeTiming:   {20, core.PriorityMedium},
		TypeFaith:    {15, core.PriorityMedium},
	}

	for i, s := range got {
		w := want[s.Type]
		if s.Impact != w.impact || s.Priority != w.priority {
			t.Errorf("%s: expected impact %.0f/%s, got %.0f/%s", s.Type, w.impact, w.priority, s.Impact, s.Priority)
		}
		if i > 0 && got[i-1].Impact < s.Impact {
			t.Errorf("Expected descending impact at %d", i)
		}
		if s.ID == "" || s.Title == "" || s.Implementation == "" {
			t.Errorf("Expected populated suggestion, got %+v", s)
		}
		if s.FaithMode != (s.Type == TypeFaith) {
			t.Errorf("FaithMode flag wrong for %s", s.Type)
		}
	}
}

func TestSuggestionsDeterministic(t *testing.T) {
	score := core.ContentScore{Overall: 50, Engagement: 50, Reach: 50, FaithAlignment: ptr(50)}
	first := Suggestions(core.ModeFaith, "hello", "Instagram", score)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(first, Suggestions(core.ModeFaith, "hello", "Instagram", score)) {
			t.Fatal("Expected identical output for identical input")
		}
	}
	if first[0].ID != "opt-instagram-content_enhancement" {
		t.Errorf("Unexpected id %q", first[0].ID)
	}
}
