// Package catalog holds the static lookup tables behind hashtag and content suggestions.
//
// Tables are keyed by category and then by mode. Lookups for an unknown key return an
// empty slice. Templates may contain literal {placeholder} tokens which callers fill in
// with Substitute or Render.
package catalog

import (
	"strings"
	"time"

	"kingdom/internal/core"
)

// Template is a content idea before runtime parameters are substituted.
type Template struct {
	Title           string
	Description     string
	ContentType     string
	Difficulty      core.Difficulty
	Engagement      float64 // expected engagement baseline
	Hashtags        []string
	BibleConnection string
}

// TagEntry is a hashtag from a tag bank with its baseline trending score in [0,100].
type TagEntry struct {
	Tag   string
	Score float64
}

// Format is a viral content format crossed with topics to produce ideas.
type Format struct {
	Name        string
	ContentType string
	Multiplier  float64
	Difficulty  core.Difficulty
}

// DayTheme is one day of the weekly rhythm.
type DayTheme struct {
	Day         string
	Theme       string
	ContentType string
}

type table map[string]map[core.Mode][]Template

func (t table) lookup(mode core.Mode, key string) []Template {
	byMode, ok := t[normalizeKey(key)]
	if !ok {
		return []Template{}
	}
	templates := byMode[mode]
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

func (t table) keys() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	return out
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(key)
	switch key {
	case "autumn":
		return "fall"
	case "valentines_day", "valentine":
		return "valentines"
	case "new_years", "new_years_day":
		return "new_year"
	}
	return key
}

// Substitute replaces the first literal {placeholder} in s with value.
func Substitute(s, placeholder, value string) string {
	return strings.Replace(s, "{"+placeholder+"}", value, 1)
}

// Render applies Substitute for every variable to the title and description.
func Render(t Template, vars map[string]string) Template {
	for k, v := range vars {
		t.Title = Substitute(t.Title, k, v)
		t.Description = Substitute(t.Description, k, v)
	}
	return t
}

// Seasonal returns season templates (spring, summer, fall, winter).
func Seasonal(mode core.Mode, season string) []Template { return seasonalTemplates.lookup(mode, season) }

// Holiday returns holiday templates.
func Holiday(mode core.Mode, holiday string) []Template { return holidayTemplates.lookup(mode, holiday) }

// Niche returns niche-category templates.
func Niche(mode core.Mode, category string) []Template { return nicheTemplates.lookup(mode, category) }

// Product returns product-type templates containing a {product} token.
func Product(mode core.Mode, productType string) []Template {
	return productTemplates.lookup(mode, productType)
}

// Seasons lists the season keys.
func Seasons() []string { return seasonalTemplates.keys() }

// Holidays lists the holiday keys.
func Holidays() []string { return holidayTemplates.keys() }

// Niches lists the niche keys.
func Niches() []string { return nicheTemplates.keys() }

// ProductTypes lists the product-type keys.
func ProductTypes() []string { return productTemplates.keys() }

// ModeHashtags returns the tag bank for a mode.
func ModeHashtags(mode core.Mode) []TagEntry {
	return cloneTags(modeTags[mode])
}

// SeasonalHashtags returns the tag bank for a season.
func SeasonalHashtags(season string) []TagEntry {
	return cloneTags(seasonTags[normalizeKey(season)])
}

// NicheHashtags returns the tag bank for a niche.
func NicheHashtags(niche string) []TagEntry {
	return cloneTags(nicheTags[normalizeKey(niche)])
}

// EducationalTopics returns the five educational topics for a mode.
func EducationalTopics(mode core.Mode) []Template {
	out := make([]Template, len(educational[mode]))
	copy(out, educational[mode])
	return out
}

// GoalTemplates returns the three goal-focused templates for a mode. Each contains
// {goal} and {target} tokens.
func GoalTemplates(mode core.Mode) []Template {
	out := make([]Template, len(goalTemplates[mode]))
	copy(out, goalTemplates[mode])
	return out
}

// ViralFormats returns the formats used for viral idea generation.
func ViralFormats() []Format {
	out := make([]Format, len(viralFormats))
	copy(out, viralFormats)
	return out
}

// WeeklyThemes returns the Monday-to-Sunday rhythm for a mode.
func WeeklyThemes(mode core.Mode) []DayTheme {
	out := make([]DayTheme, len(weeklyThemes[mode]))
	copy(out, weeklyThemes[mode])
	return out
}

// SeasonForMonth maps a month to a northern-hemisphere season.
func SeasonForMonth(m time.Month) string {
	switch m {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "fall"
	default:
		return "winter"
	}
}

// HolidayForMonth returns the holiday most content calendars plan around in a month, or "".
func HolidayForMonth(m time.Month) string {
	switch m {
	case time.January:
		return "new_year"
	case time.February:
		return "valentines"
	case time.April:
		return "easter"
	case time.May:
		return "mothers_day"
	case time.June:
		return "fathers_day"
	case time.August:
		return "back_to_school"
	case time.November:
		return "thanksgiving"
	case time.December:
		return "christmas"
	}
	return ""
}

func cloneTags(in []TagEntry) []TagEntry {
	out := make([]TagEntry, len(in))
	copy(out, in)
	return out
}
