package extract

import (
	"context"

	"github.com/papercloud/papercloud/internal/model"
)

// Extractor converts a single input file into plain text.
type Extractor interface {
	// Extract reads the file at path and returns its text content.
	// The context is checked for cancellation on long extractions.
	Extract(ctx context.Context, path string) (string, error)

	// Name returns the extractor's name for logging purposes.
	Name() string
}

// Defaults returns the production extractor for each source kind.
func Defaults() map[model.SourceKind]Extractor {
	return map[model.SourceKind]Extractor{
		model.SourceLaTeX:    NewLaTeXExtractor(),
		model.SourcePDF:      NewPDFExtractor(),
		model.SourceMarkdown: NewMarkdownExtractor(),
	}
}
