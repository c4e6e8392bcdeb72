package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyInputDir is returned when no input directory is configured.
	ErrEmptyInputDir = errors.New("empty input directory: provide --input")

	// ErrEmptyOutputPath is returned when no output path is configured.
	ErrEmptyOutputPath = errors.New("empty output path: provide --output")

	// ErrInvalidMinWordLen is returned when the minimum word length is
	// below one. A zero minimum would admit empty tokens.
	ErrInvalidMinWordLen = errors.New("invalid minimum word length: must be at least 1")

	// ErrInvalidMaxWords is returned when the cloud word cap is below one.
	// An empty cloud is never what the user wants.
	ErrInvalidMaxWords = errors.New("invalid max words: must be at least 1")

	// ErrInvalidPrintTop is returned when the extended listing size is
	// negative. Zero disables the listing.
	ErrInvalidPrintTop = errors.New("invalid print-top: must be non-negative")

	// ErrInvalidCanvasSize is returned when either canvas dimension is
	// below one pixel.
	ErrInvalidCanvasSize = errors.New("invalid canvas size: width and height must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
