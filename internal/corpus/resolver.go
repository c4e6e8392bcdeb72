package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/papercloud/papercloud/internal/model"
)

// Resolution errors.
//
// Design decision: We use package-level sentinel errors so callers can
// distinguish "directory missing" from "directory empty" with errors.Is()
// while the wrapped message still names the offending path.
var (
	// ErrInputDirNotFound is returned when the input directory does not exist.
	ErrInputDirNotFound = errors.New("input folder not found")

	// ErrNotADirectory is returned when the input path exists but is a file.
	ErrNotADirectory = errors.New("input path is not a directory")

	// ErrNoInputFiles is returned when the directory contains no .tex, .pdf,
	// or .md files.
	ErrNoInputFiles = errors.New("no .tex, .pdf, or .md files found")
)

// resolveOrder is the precedence of source kinds. LaTeX sources win over
// the PDFs typically compiled from them; Markdown is a last resort.
var resolveOrder = []model.SourceKind{
	model.SourceLaTeX,
	model.SourcePDF,
	model.SourceMarkdown,
}

// Resolve locates the input files under dir and decides which source kind
// to process. It returns the kind and the matching files sorted
// lexicographically. Only one kind is ever returned.
func Resolve(dir string) (model.SourceKind, []string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return model.SourceNone, nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, dir)
		}
		return model.SourceNone, nil, fmt.Errorf("stat input folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return model.SourceNone, nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	for _, kind := range resolveOrder {
		files, err := listFiles(dir, kind.Pattern())
		if err != nil {
			return model.SourceNone, nil, err
		}
		if len(files) > 0 {
			return kind, files, nil
		}
	}

	return model.SourceNone, nil, fmt.Errorf("%w in: %s", ErrNoInputFiles, dir)
}

// listFiles globs pattern under dir, drops anything that is not a regular
// file, and returns the result sorted.
func listFiles(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}

	sort.Strings(files)
	return files, nil
}
