// Package report provides run summary output in multiple formats.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Plain text for terminal display (the default)
//   - JSONWriter: Structured JSON for tool integration
//   - MarkdownWriter: Markdown for documentation and sharing
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) so new output formats can be added
// without modifying the core data structures. Writers implement the
// Writer interface, allowing them to be used interchangeably.
package report
