package extract

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// LaTeX cleaning patterns, applied in order. Every removed span is
// replaced with a single space to preserve word boundaries.
var (
	// commentRe matches from an unescaped % to the end of the line.
	// The leading group keeps the character before the % (or the line
	// start) so \% literals survive.
	commentRe = regexp.MustCompile(`(?m)(^|[^\\])%.*$`)

	// inlineMathRe matches $...$ non-greedily within a single line.
	inlineMathRe = regexp.MustCompile(`\$.*?\$`)

	// displayMathRe matches \[...\] non-greedily, spanning lines.
	displayMathRe = regexp.MustCompile(`(?s)\\\[.*?\\\]`)

	// argCommandRe matches commands whose brace argument carries no prose
	// (citations, labels, URLs) and removes the argument with them.
	argCommandRe = regexp.MustCompile(`\\(cite|ref|label|eqref|footnote|url|href)\{.*?\}`)

	// commandRe matches any remaining control sequence, optionally
	// starred, with an optional bracketed option and at most one brace
	// argument, e.g. \section*[short]{Title}.
	commandRe = regexp.MustCompile(`\\[a-zA-Z]+\*?(?:\[[^\]]*\])?(?:\{[^}]*\})?`)

	// braceReplacer clears brace characters left behind by nested or
	// unbalanced groups.
	braceReplacer = strings.NewReplacer("{", " ", "}", " ")
)

// LaTeXExtractor extracts prose from .tex sources by stripping markup.
type LaTeXExtractor struct{}

// NewLaTeXExtractor creates a LaTeX extractor.
func NewLaTeXExtractor() *LaTeXExtractor {
	return &LaTeXExtractor{}
}

// Name returns the extractor name.
func (e *LaTeXExtractor) Name() string {
	return "latex"
}

// Extract reads the file and strips LaTeX markup. Invalid UTF-8 byte
// sequences are dropped silently; the surrounding text is kept.
func (e *LaTeXExtractor) Extract(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided corpus path is intentional
	if err != nil {
		return "", fmt.Errorf("read latex source: %w", err)
	}
	return StripLaTeX(strings.ToValidUTF8(string(data), "")), nil
}

// StripLaTeX removes comments, math, reference commands, remaining
// control sequences, and leftover braces from LaTeX source, in that
// order.
func StripLaTeX(text string) string {
	text = commentRe.ReplaceAllString(text, "$1 ")
	text = inlineMathRe.ReplaceAllString(text, " ")
	text = displayMathRe.ReplaceAllString(text, " ")
	text = argCommandRe.ReplaceAllString(text, " ")
	text = commandRe.ReplaceAllString(text, " ")
	return braceReplacer.Replace(text)
}
