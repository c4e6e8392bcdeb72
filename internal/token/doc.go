// Package token turns raw extracted text into a clean word stream.
//
// Cleaning keeps only ASCII letters: everything else becomes a space,
// whitespace runs collapse, and the result is lowercased and split. Tokens
// shorter than the configured minimum are dropped. Order and duplicates
// are preserved because the counting stage needs the full stream.
package token
