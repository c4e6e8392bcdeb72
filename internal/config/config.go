package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values. Canvas and word-count defaults follow the
// original tool's fixed rendering configuration.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "papercloud"

	// DefaultInputDir is the corpus directory scanned when --input is
	// not given. Researchers conventionally keep their paper downloads
	// in a flat "papers" folder next to where they run the tool.
	DefaultInputDir = "papers"

	// DefaultOutputPath is where the rendered PNG is written.
	DefaultOutputPath = "wordcloud.png"

	// DefaultMinWordLen drops one- and two-letter tokens, which are
	// almost always noise in English paper corpora.
	DefaultMinWordLen = 3

	// DefaultMaxWords caps the distinct words in the cloud. Around 90
	// words fills a 1600x900 canvas without the tail becoming unreadable.
	DefaultMaxWords = 90

	// DefaultCanvasWidth is the rendered image width in pixels.
	DefaultCanvasWidth = 1600

	// DefaultCanvasHeight is the rendered image height in pixels.
	DefaultCanvasHeight = 900

	// DefaultBackground is the canvas background color name.
	DefaultBackground = "white"

	// DefaultTopWords is how many filtered words the summary line prints.
	DefaultTopWords = 20
)

// Config holds all configuration options for papercloud.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// InputDir is the directory containing the paper corpus.
	InputDir string

	// OutputPath is the PNG path the cloud is written to. Overwritten
	// if it exists.
	OutputPath string

	// MinWordLen is the minimum token length kept by the tokenizer.
	MinWordLen int

	// MaxWords caps the number of distinct words rendered in the cloud.
	MaxWords int

	// PrintTop, when positive, prints an extended tab-separated listing
	// of the top N filtered words after the summary.
	PrintTop int

	// DebugWords lists words whose raw and filtered counts are reported,
	// for diagnosing why a word did or did not appear in the cloud.
	DebugWords []string

	// StopwordsPath is an explicit stopword file. Empty means the
	// conventional fallback next to the executable is used if present.
	StopwordsPath string

	// ExtraStopwords are merged into the stopword set last.
	ExtraStopwords []string

	// FontPath is an explicit TrueType font for rendering. Empty means
	// well-known system font locations are probed.
	FontPath string

	// CanvasWidth and CanvasHeight are the rendered image dimensions.
	CanvasWidth  int
	CanvasHeight int

	// Background is the canvas background: a color name or #rrggbb.
	Background string

	// JSONReport switches the summary to indented JSON.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport switches the summary to Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, writes the summary there instead of stdout.
	ReportFile string

	// ConfigFilePath is an explicit .papercloud config file path. Empty
	// means the working directory and XDG config directory are searched.
	ConfigFilePath string

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (canvas size, word
// caps). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		InputDir:     DefaultInputDir,
		OutputPath:   DefaultOutputPath,
		MinWordLen:   DefaultMinWordLen,
		MaxWords:     DefaultMaxWords,
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		Background:   DefaultBackground,
	}
}

// Validate checks the configuration for contradictions and nonsense
// values. It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return ErrEmptyInputDir
	}
	if c.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	if c.MinWordLen < 1 {
		return ErrInvalidMinWordLen
	}
	if c.MaxWords < 1 {
		return ErrInvalidMaxWords
	}
	if c.PrintTop < 0 {
		return ErrInvalidPrintTop
	}
	if c.CanvasWidth < 1 || c.CanvasHeight < 1 {
		return ErrInvalidCanvasSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for papercloud.
// On Linux: ~/.config/papercloud
// On macOS: ~/Library/Application Support/papercloud
// On Windows: %APPDATA%\papercloud
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
