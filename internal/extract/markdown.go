package extract

import (
	"context"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// MarkdownExtractor extracts prose from .md files by parsing the
// document with goldmark and collecting its text nodes. Markup
// characters never reach the tokenizer this way, unlike a naive regex
// strip.
type MarkdownExtractor struct {
	md goldmark.Markdown
}

// NewMarkdownExtractor creates a Markdown extractor.
func NewMarkdownExtractor() *MarkdownExtractor {
	return &MarkdownExtractor{md: goldmark.New()}
}

// Name returns the extractor name.
func (e *MarkdownExtractor) Name() string {
	return "markdown"
}

// Extract parses the file and concatenates the values of its text
// segments, separated by spaces.
func (e *MarkdownExtractor) Extract(_ context.Context, path string) (string, error) {
	src, err := os.ReadFile(path) //nolint:gosec // User-provided corpus path is intentional
	if err != nil {
		return "", fmt.Errorf("read markdown source: %w", err)
	}

	doc := e.md.Parser().Parse(gmtext.NewReader(src))

	var out []byte
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			out = append(out, t.Segment.Value(src)...)
			out = append(out, ' ')
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walk markdown ast: %w", err)
	}

	return string(out), nil
}
