// Package log provides structured logging setup for papercloud.
//
// Pipeline steps log attributes that can be very large: extracted
// document text, token streams, file lists. TruncatingHandler wraps any
// slog.Handler and caps string attribute values at a fixed length so
// debug logging stays readable and a verbose run cannot flood the
// terminal with megabytes of corpus text.
package log
