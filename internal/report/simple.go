package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/papercloud/papercloud/internal/freq"
	"github.com/papercloud/papercloud/internal/model"
)

// SimpleWriter outputs the plain-text summary. The line formats here are
// the tool's CLI contract: scripts parse the "Top words:" line and the
// tab-separated listings, so changes to them are breaking changes.
type SimpleWriter struct {
	baseWriter

	// printTop, when positive, adds a tab-separated listing of the top
	// N filtered words.
	printTop int

	// debugWords lists words whose raw and filtered counts are printed.
	debugWords []string
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithPrintTop enables the extended top-N listing.
func WithPrintTop(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.printTop = n
	}
}

// WithDebugWords enables per-word raw/filtered count lines.
func WithDebugWords(words []string) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.debugWords = words
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary: saved path, top words, and the optional
// extended and debug listings.
func (w *SimpleWriter) Write(report *model.CloudReport) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Saved word cloud to: %s\n", report.OutputPath)

	parts := make([]string, 0, len(report.TopWords))
	for _, wc := range report.TopWords {
		parts = append(parts, fmt.Sprintf("%s(%d)", wc.Word, wc.Count))
	}
	fmt.Fprintf(&sb, "Top words: %s\n", strings.Join(parts, ", "))

	if w.printTop > 0 {
		fmt.Fprintf(&sb, "Top %d after filtering:\n", w.printTop)
		for _, wc := range freq.Table(report.Counts).TopN(w.printTop) {
			fmt.Fprintf(&sb, "%s\t%d\n", wc.Word, wc.Count)
		}
	}

	for _, word := range w.debugWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		fmt.Fprintf(&sb, "debug:%s\traw=%d\tfiltered=%d\n",
			word, report.RawCounts[word], report.Counts[word])
	}

	return w.output.Write([]byte(sb.String()))
}
