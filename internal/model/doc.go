// Package model defines the core data structures used throughout papercloud.
//
// This package contains the following main types:
//   - SourceKind: The kind of input corpus (LaTeX, PDF, Markdown)
//   - CloudReport: The accumulator mutated by pipeline steps
//   - WordCount: A word paired with its occurrence count
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (corpus, pipeline, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
