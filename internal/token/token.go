package token

import (
	"regexp"
	"strings"
)

// DefaultMinLength is the default minimum token length. Two-letter words
// are almost always noise in English paper corpora ("of", "in", "by").
const DefaultMinLength = 3

var (
	// nonLetterRe matches every character that is not an ASCII letter or
	// whitespace. Digits, punctuation, and non-ASCII bytes all become
	// word boundaries.
	nonLetterRe = regexp.MustCompile(`[^A-Za-z\s]`)

	// whitespaceRe collapses runs of whitespace to a single space.
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Clean normalizes text to lowercase ASCII words separated by single
// spaces. The result is either empty or matches `[a-z]+( [a-z]+)*`.
func Clean(text string) string {
	text = nonLetterRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokenize cleans text and splits it into words, keeping only tokens of
// at least minLen characters. Order and duplicates are preserved.
func Tokenize(text string, minLen int) []string {
	cleaned := Clean(text)
	if cleaned == "" {
		return nil
	}

	words := strings.Split(cleaned, " ")
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= minLen {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
