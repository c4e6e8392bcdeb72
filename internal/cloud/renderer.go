package cloud

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/psykhi/wordclouds"

	"github.com/papercloud/papercloud/internal/freq"
)

// Rendering defaults. Canvas and background match the original tool's
// fixed configuration; font sizes are tuned for a 1600x900 canvas.
const (
	// DefaultWidth is the canvas width in pixels.
	DefaultWidth = 1600

	// DefaultHeight is the canvas height in pixels.
	DefaultHeight = 900

	// DefaultMaxWords caps how many distinct words appear in the cloud.
	DefaultMaxWords = 90

	// defaultFontMaxSize bounds the largest rendered word.
	defaultFontMaxSize = 280

	// defaultFontMinSize bounds the smallest rendered word.
	defaultFontMinSize = 12
)

// ErrEmptyTable is returned when there is nothing to render, typically
// because every token was filtered out as a stopword.
var ErrEmptyTable = errors.New("no words to render after filtering")

// Renderer rasterizes a filtered frequency table into an image file.
type Renderer interface {
	// Render lays out the highest-weight words and writes a PNG to
	// outputPath, overwriting any existing file.
	Render(counts freq.Table, outputPath string) error
}

// WordCloudRenderer renders via psykhi/wordclouds.
type WordCloudRenderer struct {
	// width and height are the canvas dimensions in pixels.
	width  int
	height int

	// background fills the canvas behind the words.
	background color.Color

	// maxWords caps how many distinct words are laid out.
	maxWords int

	// fontPath is the resolved TrueType font file.
	fontPath string

	// palette colors the words, cycled by the layout library.
	palette []color.Color

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a WordCloudRenderer.
type Option func(*WordCloudRenderer)

// WithSize sets the canvas dimensions.
func WithSize(width, height int) Option {
	return func(r *WordCloudRenderer) {
		r.width = width
		r.height = height
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c color.Color) Option {
	return func(r *WordCloudRenderer) {
		r.background = c
	}
}

// WithMaxWords caps the number of distinct words rendered.
func WithMaxWords(n int) Option {
	return func(r *WordCloudRenderer) {
		r.maxWords = n
	}
}

// WithFontFile sets an explicit TrueType font path.
func WithFontFile(path string) Option {
	return func(r *WordCloudRenderer) {
		r.fontPath = path
	}
}

// WithLogger sets a custom logger for the renderer.
func WithLogger(logger *slog.Logger) Option {
	return func(r *WordCloudRenderer) {
		r.logger = logger
	}
}

// NewWordCloudRenderer creates a renderer with the given options.
// The font is resolved here, up front, so a missing font aborts the run
// before any input file is read.
func NewWordCloudRenderer(opts ...Option) (*WordCloudRenderer, error) {
	r := &WordCloudRenderer{
		width:      DefaultWidth,
		height:     DefaultHeight,
		background: color.White,
		maxWords:   DefaultMaxWords,
		palette:    defaultPalette,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	fontPath, err := FindFont(r.fontPath)
	if err != nil {
		return nil, err
	}
	r.fontPath = fontPath

	return r, nil
}

// Render caps the table to the configured maximum word count, delegates
// layout and rasterization to wordclouds, and writes the PNG. Adjacent
// words are never merged into collocations: every cloud entry is a single
// token from the table.
func (r *WordCloudRenderer) Render(counts freq.Table, outputPath string) error {
	if len(counts) == 0 {
		return ErrEmptyTable
	}

	capped := counts.Cap(r.maxWords)

	r.logger.Debug("rendering word cloud",
		"words", len(capped),
		"width", r.width,
		"height", r.height,
		"font", r.fontPath,
	)

	wc := wordclouds.NewWordcloud(capped,
		wordclouds.FontFile(r.fontPath),
		wordclouds.FontMaxSize(defaultFontMaxSize),
		wordclouds.FontMinSize(defaultFontMinSize),
		wordclouds.Width(r.width),
		wordclouds.Height(r.height),
		wordclouds.BackgroundColor(r.background),
		wordclouds.Colors(r.palette),
		wordclouds.RandomPlacement(false),
	)

	img := wc.Draw()

	f, err := os.Create(outputPath) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("create output file %s: %w", outputPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}
