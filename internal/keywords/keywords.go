// Package keywords turns free-form post text into candidate hashtag keywords.
package keywords

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MinLength is the shortest token kept; anything with length <= 3 is dropped.
const MinLength = 4

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Extract lowercases content, strips non-word characters, splits on whitespace
// and returns the distinct tokens longer than three characters.
//
// Go's \w is ASCII-only, so accented letters and other non-ASCII runes are stripped
// along with punctuation.
func Extract(content string) map[string]struct{} {
	set := make(map[string]struct{})
	if content == "" {
		return set
	}

	cleaned := nonWord.ReplaceAllString(strings.ToLower(content), "")
	for _, word := range strings.Fields(cleaned) {
		if len(word) < MinLength {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}

// ExtractSorted returns Extract's result in lexical order for stable iteration.
func ExtractSorted(content string) []string {
	set := Extract(content)
	out := make([]string, 0, len(set))
	for word := range set {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// Overlap returns the fraction of candidates that appear in set, in [0,1].
func Overlap(set map[string]struct{}, candidates []string) float64 {
	if len(set) == 0 || len(candidates) == 0 {
		return 0
	}
	hits := 0
	for _, c := range candidates {
		for word := range Extract(c) {
			if _, ok := set[word]; ok {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(candidates))
}

// TextFromHTML extracts visible text from an HTML caption or blog post.
func TextFromHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Remove common non-content elements
	doc.Find("script, style, nav, footer, header, aside, form, iframe, noscript").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(text), " "), nil
}
