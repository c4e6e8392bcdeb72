// Package extract turns input files into plain text.
//
// Each source kind has its own Extractor: LaTeX sources are cleaned with
// regex substitutions (comments, math, citation commands), PDFs are
// handed to the ledongthuc/pdf library, and Markdown files are parsed
// with goldmark and reduced to their text nodes.
//
// Design decision: Extractor is an interface rather than a set of free
// functions so the pipeline receives extraction as an injected capability
// and tests can substitute fakes without touching the filesystem.
package extract
