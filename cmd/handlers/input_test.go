package handlers

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"kingdom/internal/core"
)

func TestReadContentFromArgs(t *testing.T) {
	got, err := readContent([]string{"  Grand", "opening ", "today"}, "")
	if err != nil {
		t.Fatalf("readContent() error = %v", err)
	}
	if got != "Grand opening  today" {
		t.Errorf("readContent() = %q", got)
	}

	if _, err := readContent(nil, ""); err == nil {
		t.Error("expected error for empty content")
	}
}

func TestReadContentFromFiles(t *testing.T) {
	dir := t.TempDir()

	htmlPath := filepath.Join(dir, "post.html")
	html := `<html><head><script>var x = 1;</script></head>
<body><nav>Menu</nav><p>Blessed   to share</p>
<p>our new shop</p></body></html>`
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := readContent(nil, htmlPath)
	if err != nil {
		t.Fatalf("readContent(html) error = %v", err)
	}
	if got != "Blessed to share our new shop" {
		t.Errorf("readContent(html) = %q", got)
	}

	txtPath := filepath.Join(dir, "post.txt")
	if err := os.WriteFile(txtPath, []byte("\nplain caption\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = readContent([]string{"ignored"}, txtPath)
	if err != nil {
		t.Fatalf("readContent(txt) error = %v", err)
	}
	if got != "plain caption" {
		t.Errorf("readContent(txt) = %q", got)
	}

	if _, err := readContent(nil, filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseGoals(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "goals.json")
	data := `[{"id":"g1","type":"sales","target":20,"current":5,"status":"paused"}]`
	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	goals, err := parseGoals(file, []string{"Followers:1000"})
	if err != nil {
		t.Fatalf("parseGoals() error = %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].ID != "g1" || goals[0].Status != core.GoalPaused {
		t.Errorf("file goal = %+v", goals[0])
	}
	want := core.MarketingGoal{ID: "goal-1", Type: "followers", Target: 1000, Status: core.GoalActive}
	if goals[1] != want {
		t.Errorf("flag goal = %+v, want %+v", goals[1], want)
	}

	for _, spec := range []string{"followers", ":10", "sales:abc", "sales:-5"} {
		if _, err := parseGoals("", []string{spec}); err == nil {
			t.Errorf("parseGoals(%q) expected error", spec)
		}
	}
}

func TestSplitTagsAndPlatforms(t *testing.T) {
	tags := splitTags("#Launch, smallbusiness  ,#, faith")
	want := []string{"#launch", "#smallbusiness", "#faith"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("splitTags() = %v, want %v", tags, want)
	}

	platforms := parsePlatforms([]string{"Instagram,tiktok", " ", "facebook"})
	wantPlatforms := []core.Platform{core.PlatformInstagram, core.PlatformTikTok, core.PlatformFacebook}
	if !reflect.DeepEqual(platforms, wantPlatforms) {
		t.Errorf("parsePlatforms() = %v, want %v", platforms, wantPlatforms)
	}
}

func TestParseScore(t *testing.T) {
	score, err := parseScore([]string{"reach=40", "Faith=90"}, core.ModeFaith)
	if err != nil {
		t.Fatalf("parseScore() error = %v", err)
	}
	if score.Reach != 40 {
		t.Errorf("reach = %v, want 40", score.Reach)
	}
	if score.Engagement != 65 {
		t.Errorf("engagement = %v, want fallback 65", score.Engagement)
	}
	if score.FaithAlignment == nil || *score.FaithAlignment != 90 {
		t.Errorf("faith alignment = %v, want 90", score.FaithAlignment)
	}

	plain, err := parseScore(nil, core.ModeEncouragement)
	if err != nil {
		t.Fatalf("parseScore() error = %v", err)
	}
	if plain.FaithAlignment != nil {
		t.Error("encouragement scores carry no faith alignment")
	}

	for _, pair := range []string{"reach", "reach=150", "reach=x", "mood=10"} {
		if _, err := parseScore([]string{pair}, core.ModeFaith); err == nil {
			t.Errorf("parseScore(%q) expected error", pair)
		}
	}
}

func TestRootCommandWiresSubcommands(t *testing.T) {
	root := NewRootCmd()
	want := []string{"hashtags", "trending", "ideas", "strategy", "analyze", "optimize", "viral", "history", "serve"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	history, _, err := root.Find([]string{"history"})
	if err != nil {
		t.Fatal(err)
	}
	if history.PersistentFlags().Lookup("user") == nil {
		t.Error("history should take a persistent --user flag")
	}

	ideas, _, err := root.Find([]string{"ideas"})
	if err != nil {
		t.Fatal(err)
	}
	if ideas.Flags().Lookup("viral-topic") == nil {
		t.Error("ideas should take a --viral-topic flag")
	}
}
