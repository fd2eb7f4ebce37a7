package strategy

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var goalLabels = map[string]string{
	"followers":  "More Followers",
	"engagement": "Higher Engagement",
	"sales":      "More Sales",
	"leads":      "More Leads",
	"bookings":   "More Bookings",
}

func goalLabel(goalType string) string {
	if label, ok := goalLabels[strings.ToLower(goalType)]; ok {
		return label
	}
	if goalType == "" {
		return "Your Goal"
	}
	return titleCase(strings.ReplaceAll(goalType, "_", " "))
}

// formatNumber renders whole numbers with thousands separators.
func formatNumber(v float64) string {
	if v != math.Trunc(v) || math.Abs(v) >= 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	digits := strconv.FormatInt(int64(math.Abs(v)), 10)
	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
