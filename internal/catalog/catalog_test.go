package catalog

import (
	"strings"
	"testing"
	"time"

	"kingdom/internal/core"
)

var modes = []core.Mode{core.ModeFaith, core.ModeEncouragement}

func TestEveryTemplateRendersNonEmpty(t *testing.T) {
	vars := map[string]string{"product": "Preset Pack", "goal": "1,000 followers", "target": "1000 followers"}

	groups := map[string]func(core.Mode, string) []Template{
		"seasonal": Seasonal,
		"holiday":  Holiday,
		"niche":    Niche,
		"product":  Product,
	}
	keys := map[string][]string{
		"seasonal": Seasons(),
		"holiday":  Holidays(),
		"niche":    Niches(),
		"product":  ProductTypes(),
	}

	for name, lookup := range groups {
		for _, key := range keys[name] {
			for _, mode := range modes {
				templates := lookup(mode, key)
				if len(templates) == 0 {
					t.Errorf("%s/%s/%s: expected at least one template", name, key, mode)
				}
				for _, tmpl := range templates {
					r := Render(tmpl, vars)
					if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Description) == "" {
						t.Errorf("%s/%s/%s: empty title or description after render", name, key, mode)
					}
					if strings.Contains(r.Title, "{") || strings.Contains(r.Description, "{") {
						t.Errorf("%s/%s/%s: unsubstituted token in %q / %q", name, key, mode, r.Title, r.Description)
					}
				}
			}
		}
	}
}

func TestUnknownKeysReturnEmpty(t *testing.T) {
	if got := Seasonal(core.ModeFaith, "monsoon"); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", got)
	}
	if len(Holiday(core.ModeFaith, "arbor_day")) != 0 {
		t.Error("Expected unknown holiday to return empty")
	}
	if len(Niche(core.ModeEncouragement, "astrophysics")) != 0 {
		t.Error("Expected unknown niche to return empty")
	}
	if len(Product(core.ModeFaith, "nft")) != 0 {
		t.Error("Expected unknown product type to return empty")
	}
	if len(SeasonalHashtags("monsoon")) != 0 || len(NicheHashtags("")) != 0 {
		t.Error("Expected unknown tag banks to return empty")
	}
}

func TestKeyNormalization(t *testing.T) {
	if len(Seasonal(core.ModeFaith, "Autumn")) == 0 {
		t.Error("Expected autumn to alias fall")
	}
	if len(Holiday(core.ModeFaith, "Mothers Day")) == 0 {
		t.Error("Expected 'Mothers Day' to resolve to mothers_day")
	}
	if len(Niche(core.ModeFaith, "small-business")) == 0 {
		t.Error("Expected small-business to resolve to small_business")
	}
}

func TestSubstituteFirstMatchOnly(t *testing.T) {
	got := Substitute("{product} and {product}", "product", "Presets")
	if got != "Presets and {product}" {
		t.Errorf("Expected first-match substitution, got %q", got)
	}
	if Substitute("no tokens", "product", "x") != "no tokens" {
		t.Error("Expected string without token to be unchanged")
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	first := Seasonal(core.ModeFaith, "spring")
	first[0].Title = "mutated"
	if Seasonal(core.ModeFaith, "spring")[0].Title == "mutated" {
		t.Error("Expected lookups to return copies")
	}
}

func TestFixedSizeTables(t *testing.T) {
	for _, mode := range modes {
		if n := len(EducationalTopics(mode)); n != 5 {
			t.Errorf("Expected 5 educational topics for %s, got %d", mode, n)
		}
		if n := len(GoalTemplates(mode)); n != 3 {
			t.Errorf("Expected 3 goal templates for %s, got %d", mode, n)
		}
		if n := len(WeeklyThemes(mode)); n != 7 {
			t.Errorf("Expected 7 weekly themes for %s, got %d", mode, n)
		}
		if len(ModeHashtags(mode)) == 0 {
			t.Errorf("Expected mode hashtags for %s", mode)
		}
	}
	if len(ViralFormats()) == 0 {
		t.Error("Expected viral formats")
	}
}

func TestFaithTemplatesCarryScripture(t *testing.T) {
	for _, tmpl := range EducationalTopics(core.ModeFaith) {
		if tmpl.BibleConnection == "" {
			t.Errorf("Expected faith educational topic %q to have a bible connection", tmpl.Title)
		}
	}
	for _, tmpl := range EducationalTopics(core.ModeEncouragement) {
		if tmpl.BibleConnection != "" {
			t.Errorf("Expected encouragement topic %q to have no bible connection", tmpl.Title)
		}
	}
}

func TestSeasonForMonth(t *testing.T) {
	tests := map[time.Month]string{
		time.January: "winter", time.April: "spring", time.July: "summer",
		time.October: "fall", time.December: "winter",
	}
	for month, want := range tests {
		if got := SeasonForMonth(month); got != want {
			t.Errorf("SeasonForMonth(%s) = %s, want %s", month, got, want)
		}
	}
	if HolidayForMonth(time.December) != "christmas" || HolidayForMonth(time.March) != "" {
		t.Error("Unexpected HolidayForMonth result")
	}
}
