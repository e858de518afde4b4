package analyze

import (
	"strings"
	"unicode"
)

// Stop words to drop when building the job keyword set
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// tokenize splits text on non-letter, non-digit runes, lowercases, and
// removes stop words.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if word != "" && !stopWords[word] {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

// containsAny reports whether any of the needles occurs as a substring of
// haystack. Both sides are expected to be lower-cased already.
func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// countDistinct counts how many of the phrases occur in text at least once.
// Each phrase contributes at most one to the count.
func countDistinct(text string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(text, strings.ToLower(phrase)) {
			count++
		}
	}
	return count
}
