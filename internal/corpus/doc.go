// Package corpus resolves the set of input files for a run.
//
// A corpus directory contains papers as LaTeX sources, PDFs, or Markdown
// files. Exactly one kind is processed per run: .tex files take precedence
// when present, then .pdf, then .md. Files within a kind are processed in
// lexicographic order so runs are reproducible.
package corpus
