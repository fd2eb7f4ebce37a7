package keywords

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	got := ExtractSorted("I launched my new business today")
	want := []string{"business", "launched", "today"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractEmpty(t *testing.T) {
	if len(Extract("")) != 0 {
		t.Error("Expected empty set for empty content")
	}
	if len(Extract("a an the of")) != 0 {
		t.Error("Expected short tokens to be dropped")
	}
}

func TestExtractStripsPunctuationAndDedupes(t *testing.T) {
	got := ExtractSorted("Blessed!!! BLESSED, blessed... Photography's #1 joy")
	want := []string{"blessed", "photographys"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractLengthBoundary(t *testing.T) {
	set := Extract("love hope joy")
	if _, ok := set["love"]; !ok {
		t.Error("Expected 4-letter token to be kept")
	}
	if _, ok := set["joy"]; ok {
		t.Error("Expected 3-letter token to be dropped")
	}
}

func TestExtractNonASCII(t *testing.T) {
	// Non-ASCII letters are stripped rather than kept.
	set := Extract("café résumé journée")
	if _, ok := set["caf"]; ok {
		t.Error("Expected 'caf' (3 letters) to be dropped")
	}
	if _, ok := set["rsum"]; !ok {
		t.Errorf("Expected accented letters to be stripped, got %v", set)
	}
}

func TestOverlap(t *testing.T) {
	set := Extract("wedding photography in the spring")
	got := Overlap(set, []string{"Wedding Season", "Street Food", "spring vibes", "tech"})
	if got != 0.5 {
		t.Errorf("Expected overlap 0.5, got %.2f", got)
	}
	if Overlap(nil, []string{"x"}) != 0 {
		t.Error("Expected zero overlap for empty set")
	}
}

func TestTextFromHTML(t *testing.T) {
	html := `<html><head><style>.x{}</style></head><body><nav>Menu</nav>
<p>Golden hour   portraits</p><script>alert(1)</script>
<p>are magical</p></body></html>`

	text, err := TextFromHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("TextFromHTML failed: %v", err)
	}
	if text != "Golden hour portraits are magical" {
		t.Errorf("Unexpected text: %q", text)
	}
}
