// Package keyword decides whether a search phrase is specific enough to
// produce a meaningful ranking. Generic one-word queries ("crm", "shoes")
// make the generated list useless for brand position checks, so they are
// rejected before any service call is made.
package keyword

import "strings"

var comparisonPhrases = []string{
	"compared to",
	"better than",
	"alternatives to",
}

var qualifierWords = map[string]bool{
	"best":         true,
	"top":          true,
	"free":         true,
	"pricing":      true,
	"alternatives": true,
	"how":          true,
}

var questionWords = map[string]bool{
	"how":   true,
	"what":  true,
	"which": true,
	"where": true,
	"why":   true,
	"when":  true,
	"is":    true,
	"are":   true,
}

// Validate reports whether keyword is specific enough to search.
// The rules, any one of which suffices:
//   - at least 4 words
//   - a comparison marker ("vs"/"versus" token, or a comparison phrase)
//   - a qualifier word (best, top, free, pricing, alternatives, how)
//     combined with at least 3 words
//   - a leading question word
//
// Matching is case-insensitive over whitespace-split tokens. Pure function.
func Validate(keyword string) bool {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return false
	}

	lowered := strings.ToLower(trimmed)
	words := strings.Fields(lowered)

	if len(words) >= 4 {
		return true
	}

	if hasComparisonMarker(lowered, words) {
		return true
	}

	if len(words) >= 3 && hasQualifier(words) {
		return true
	}

	return questionWords[words[0]]
}

// hasComparisonMarker checks for "vs"/"versus" tokens or comparison phrases.
// A trailing period is stripped so "vs." counts as a token.
func hasComparisonMarker(lowered string, words []string) bool {
	for _, w := range words {
		w = strings.TrimSuffix(w, ".")
		if w == "vs" || w == "versus" {
			return true
		}
	}

	for _, phrase := range comparisonPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}

	return false
}

func hasQualifier(words []string) bool {
	for _, w := range words {
		if qualifierWords[w] {
			return true
		}
	}
	return false
}
