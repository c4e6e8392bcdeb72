// Package main provides the entry point for the papercloud CLI.
//
// Papercloud generates a word-cloud image from a folder of research
// papers. It extracts text from LaTeX sources, PDFs, or Markdown notes,
// removes stopwords, counts word frequencies, and renders the most
// frequent words as a PNG.
//
// Usage:
//
//	papercloud --input papers --output wordcloud.png
//
// See --help for all available options.
package main

// main is the entry point for papercloud.
func main() {
	Execute()
}
