package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts plain text from PDF files via ledongthuc/pdf.
// The extracted text is used as-is; no LaTeX-style cleaning is applied.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Name returns the extractor name.
func (e *PDFExtractor) Name() string {
	return "pdf"
}

// Extract opens the PDF and returns its full plain-text content.
// The pdf library panics on some malformed files, so the panic is
// recovered and surfaced as an error instead of killing the run.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction panicked for %s: %v", path, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text from pdf %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", fmt.Errorf("read pdf text %s: %w", path, err)
	}

	return buf.String(), nil
}
