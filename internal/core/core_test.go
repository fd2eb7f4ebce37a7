package core

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"faith", ModeFaith, false},
		{" Faith ", ModeFaith, false},
		{"ENCOURAGEMENT", ModeEncouragement, false},
		{"professional", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownMode) {
				t.Errorf("ParseMode(%q) expected ErrUnknownMode, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestCompositeScore(t *testing.T) {
	s := HashtagSuggestion{TrendingScore: 90, UserAffinityScore: 1.0}
	want := 90*0.4 + 1.0*0.6
	if got := s.CompositeScore(); got != want {
		t.Errorf("Expected composite %.2f, got %.2f", want, got)
	}
}

func TestHashtagCategoryValid(t *testing.T) {
	for _, c := range HashtagCategories {
		if !c.Valid() {
			t.Errorf("Expected %s to be valid", c)
		}
	}
	if HashtagCategory("random").Valid() {
		t.Error("Expected unknown category to be invalid")
	}
}

func TestEmptyStrategy(t *testing.T) {
	s := EmptyStrategy()
	if s.WeeklyPlan == nil || s.TrendingTopics == nil || s.AudienceInsights == nil {
		t.Error("Expected empty strategy to use empty, non-nil slices")
	}
	if len(s.WeeklyPlan)+len(s.TrendingTopics)+len(s.AudienceInsights) != 0 {
		t.Error("Expected empty strategy to have no entries")
	}
}

func TestNormalizePlatform(t *testing.T) {
	if got := NormalizePlatform("  Instagram "); got != PlatformInstagram {
		t.Errorf("Expected instagram, got %s", got)
	}
}

func TestNormalizeHashtag(t *testing.T) {
	tests := map[string]string{
		"Blessed":         "#blessed",
		"##FaithOverFear": "#faithoverfear",
		" #golden hour ":  "#goldenhour",
		"#":               "",
		"":                "",
	}
	for in, want := range tests {
		if got := NormalizeHashtag(in); got != want {
			t.Errorf("NormalizeHashtag(%q) = %q, want %q", in, got, want)
		}
	}
}
