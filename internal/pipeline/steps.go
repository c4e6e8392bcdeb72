package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/papercloud/papercloud/internal/cloud"
	"github.com/papercloud/papercloud/internal/config"
	"github.com/papercloud/papercloud/internal/corpus"
	"github.com/papercloud/papercloud/internal/extract"
	"github.com/papercloud/papercloud/internal/freq"
	"github.com/papercloud/papercloud/internal/model"
	"github.com/papercloud/papercloud/internal/stopword"
	"github.com/papercloud/papercloud/internal/token"
)

// ResolveStep locates the input files and decides the source kind.
type ResolveStep struct {
	// inputDir is the corpus directory to scan.
	inputDir string

	// logger for structured logging.
	logger *slog.Logger
}

// ResolveStepOption configures a ResolveStep.
type ResolveStepOption func(*ResolveStep)

// WithResolveLogger sets a custom logger for the resolve step.
func WithResolveLogger(logger *slog.Logger) ResolveStepOption {
	return func(s *ResolveStep) {
		s.logger = logger
	}
}

// NewResolveStep creates a resolve step for the given directory.
func NewResolveStep(inputDir string, opts ...ResolveStepOption) *ResolveStep {
	s := &ResolveStep{
		inputDir: inputDir,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ResolveStep) Name() string {
	return "resolve_input"
}

// Do resolves the corpus directory into a source kind and file list.
func (s *ResolveStep) Do(_ context.Context, report *model.CloudReport) error {
	kind, files, err := corpus.Resolve(s.inputDir)
	if err != nil {
		return err
	}

	report.Source = kind
	report.Files = files

	s.logger.Info("resolved input files",
		"source", kind.String(),
		"files", len(files),
	)
	return nil
}

// ExtractStep extracts text from each input file in order and appends
// the tokenized words to the report. Document text is discarded after
// tokenization; only the token stream is retained.
type ExtractStep struct {
	// minLen is the minimum token length kept.
	minLen int

	// extractors maps each source kind to its extractor.
	extractors map[model.SourceKind]extract.Extractor

	// logger for structured logging.
	logger *slog.Logger
}

// ExtractStepOption configures an ExtractStep.
type ExtractStepOption func(*ExtractStep)

// WithExtractor overrides the extractor for a source kind.
// Tests use this to substitute fakes.
func WithExtractor(kind model.SourceKind, e extract.Extractor) ExtractStepOption {
	return func(s *ExtractStep) {
		s.extractors[kind] = e
	}
}

// WithExtractLogger sets a custom logger for the extract step.
func WithExtractLogger(logger *slog.Logger) ExtractStepOption {
	return func(s *ExtractStep) {
		s.logger = logger
	}
}

// NewExtractStep creates an extract step with the production extractors.
func NewExtractStep(minLen int, opts ...ExtractStepOption) *ExtractStep {
	s := &ExtractStep{
		minLen:     minLen,
		extractors: extract.Defaults(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract_text"
}

// Do extracts and tokenizes every resolved file sequentially.
func (s *ExtractStep) Do(ctx context.Context, report *model.CloudReport) error {
	extractor := s.extractors[report.Source]
	if extractor == nil {
		return fmt.Errorf("no extractor for source kind %q", report.Source)
	}

	for _, file := range report.Files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		text, err := extractor.Extract(ctx, file)
		if err != nil {
			return fmt.Errorf("extract %s: %w", file, err)
		}

		tokens := token.Tokenize(text, s.minLen)
		report.Tokens = append(report.Tokens, tokens...)

		s.logger.Debug("extracted document",
			"file", file,
			"extractor", extractor.Name(),
			"bytes", len(text),
			"tokens", len(tokens),
			"text", text,
		)
	}

	report.WordTotal = len(report.Tokens)
	return nil
}

// CountStep builds the raw and filtered frequency tables.
type CountStep struct {
	// stopwords is the merged stopword set.
	stopwords stopword.Set

	// logger for structured logging.
	logger *slog.Logger
}

// CountStepOption configures a CountStep.
type CountStepOption func(*CountStep)

// WithCountLogger sets a custom logger for the count step.
func WithCountLogger(logger *slog.Logger) CountStepOption {
	return func(s *CountStep) {
		s.logger = logger
	}
}

// NewCountStep creates a count step with the given stopword set.
func NewCountStep(stopwords stopword.Set, opts ...CountStepOption) *CountStep {
	s := &CountStep{
		stopwords: stopwords,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *CountStep) Name() string {
	return "count_words"
}

// Do counts the token stream twice: once raw, once with stopwords
// removed. The filtered table drives rendering and the top-words summary.
func (s *CountStep) Do(_ context.Context, report *model.CloudReport) error {
	raw := freq.Count(report.Tokens)
	filtered := freq.Count(s.stopwords.Filter(report.Tokens))

	report.RawCounts = raw
	report.Counts = filtered
	report.DistinctWords = len(filtered)
	report.TopWords = filtered.TopN(config.DefaultTopWords)

	s.logger.Info("counted words",
		"total", report.WordTotal,
		"distinctRaw", len(raw),
		"distinctFiltered", len(filtered),
	)
	return nil
}

// RenderStep renders the filtered frequency table to the output PNG.
type RenderStep struct {
	// renderer produces the image. Injected so tests can fake it.
	renderer cloud.Renderer

	// outputPath is where the PNG is written.
	outputPath string

	// logger for structured logging.
	logger *slog.Logger
}

// RenderStepOption configures a RenderStep.
type RenderStepOption func(*RenderStep)

// WithRenderLogger sets a custom logger for the render step.
func WithRenderLogger(logger *slog.Logger) RenderStepOption {
	return func(s *RenderStep) {
		s.logger = logger
	}
}

// NewRenderStep creates a render step writing to outputPath.
func NewRenderStep(renderer cloud.Renderer, outputPath string, opts ...RenderStepOption) *RenderStep {
	s := &RenderStep{
		renderer:   renderer,
		outputPath: outputPath,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render_cloud"
}

// Do delegates layout and rasterization to the renderer.
func (s *RenderStep) Do(_ context.Context, report *model.CloudReport) error {
	if err := s.renderer.Render(report.Counts, s.outputPath); err != nil {
		return fmt.Errorf("render word cloud: %w", err)
	}

	report.OutputPath = s.outputPath
	report.GeneratedAt = time.Now()

	s.logger.Info("rendered word cloud", "output", s.outputPath)
	return nil
}
