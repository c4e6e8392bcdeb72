package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/papercloud/papercloud/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.CloudReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeTopWords(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.CloudReport) {
	md.H1("Word Cloud Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input Folder", "`" + report.InputDir + "`"},
			{"Source Format", report.Source.String()},
			{"Files Processed", strconv.Itoa(len(report.Files))},
			{"Total Words", strconv.Itoa(report.WordTotal)},
			{"Distinct Words", strconv.Itoa(report.DistinctWords)},
			{"Output Image", "`" + report.OutputPath + "`"},
			{"Generated At", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.CloudReport) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeTopWords writes the most frequent words as a ranked table.
func (w *MarkdownWriter) writeTopWords(md *markdown.Markdown, report *model.CloudReport) {
	md.H2("Top Words")
	md.PlainText("")

	if len(report.TopWords) == 0 {
		md.PlainText("No words remained after filtering.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.TopWords))
	for i, wc := range report.TopWords {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			wc.Word,
			strconv.Itoa(wc.Count),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Word", "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [papercloud](https://github.com/papercloud/papercloud)*")
}
