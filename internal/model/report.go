package model

import "time"

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	// Word is the lowercase token.
	Word string `json:"word"`

	// Count is the number of occurrences after stopword filtering.
	Count int `json:"count"`
}

// CloudReport is the accumulator passed through the pipeline.
// Each step fills in the fields it is responsible for: the resolver sets
// Source and Files, the extractor appends Tokens, the counter builds the
// frequency tables, and the renderer records the output path.
//
// Design decision: We use a single struct mutated in sequence rather than
// values passed between stages because it keeps the Step interface uniform
// and makes the whole run state inspectable at any point (for logging and
// for report writers).
type CloudReport struct {
	// InputDir is the corpus directory that was scanned.
	InputDir string `json:"input_dir"`

	// Source is the kind of input files that were processed.
	Source SourceKind `json:"source"`

	// Files lists the input files in processing order (lexicographic).
	Files []string `json:"files"`

	// Tokens is the ordered, unfiltered token stream across all files.
	// It is not serialized; for large corpora it dominates memory and has
	// no meaning outside the counting stage.
	Tokens []string `json:"-"`

	// RawCounts maps each token to its count before stopword filtering.
	RawCounts map[string]int `json:"-"`

	// Counts maps each token to its count after stopword filtering.
	// For every word w, RawCounts[w] >= Counts[w].
	Counts map[string]int `json:"-"`

	// TopWords holds the highest-count filtered words in descending order.
	TopWords []WordCount `json:"top_words"`

	// WordTotal is the total number of tokens before filtering.
	WordTotal int `json:"word_total"`

	// DistinctWords is the number of distinct words after filtering.
	DistinctWords int `json:"distinct_words"`

	// OutputPath is where the rendered PNG was written.
	OutputPath string `json:"output_path"`

	// GeneratedAt is when the cloud was rendered.
	GeneratedAt time.Time `json:"generated_at"`

	// PerformedSteps lists the pipeline steps that completed.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds the failure that halted the pipeline, if any.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewCloudReport creates an empty report for the given corpus directory.
func NewCloudReport(inputDir string) *CloudReport {
	return &CloudReport{
		InputDir: inputDir,
	}
}
