package stopword

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrFileNotFound is returned when an explicitly specified stopwords file
// does not exist. The conventional fallback file is never reported as
// missing; it is simply skipped.
var ErrFileNotFound = errors.New("stopwords file not found")

// FallbackFileName is the conventional stopwords file name looked up one
// directory above the executable when no file is specified explicitly.
const FallbackFileName = "stopwords.txt"

//go:embed default_stopwords.txt
var defaultList []byte

// Set is a case-insensitive stopword set.
type Set map[string]struct{}

// NewSet returns a Set seeded with the built-in default English list.
func NewSet() Set {
	s := make(Set, 256)
	scanner := bufio.NewScanner(bytes.NewReader(defaultList))
	for scanner.Scan() {
		s.Add(scanner.Text())
	}
	return s
}

// Add inserts a word after trimming and lowercasing. Empty entries are
// ignored.
func (s Set) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	s[word] = struct{}{}
}

// AddAll inserts every word in the list.
func (s Set) AddAll(words []string) {
	for _, w := range words {
		s.Add(w)
	}
}

// MergeFile reads a newline-separated stopword file into the set.
func (s Set) MergeFile(path string) error {
	f, err := os.Open(path) //nolint:gosec // User-provided stopword path is intentional
	if err != nil {
		return fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stopwords file %s: %w", path, err)
	}
	return nil
}

// Contains reports whether word (lowercased) is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Filter returns the tokens that are not stopwords, preserving order and
// duplicates.
func (s Set) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !s.Contains(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}

// FallbackFilePath returns the conventional stopwords file location:
// stopwords.txt one directory above the executable. The location is
// relative to the binary, not the working directory, so a stopword file
// shipped alongside an installed tool keeps working from any directory.
func FallbackFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), "..", FallbackFileName), nil
}

// Build assembles the full stopword set: built-in defaults, then the file
// (explicit path, or the conventional fallback if present), then extras.
//
// An explicit path that does not exist is an error; a missing fallback
// file is silently skipped.
func Build(explicitPath string, extras []string) (Set, error) {
	s := NewSet()

	switch {
	case explicitPath != "":
		if _, err := os.Stat(explicitPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, explicitPath)
			}
			return nil, fmt.Errorf("stat stopwords file %s: %w", explicitPath, err)
		}
		if err := s.MergeFile(explicitPath); err != nil {
			return nil, err
		}
	default:
		if path, err := FallbackFilePath(); err == nil {
			if _, err := os.Stat(path); err == nil {
				if err := s.MergeFile(path); err != nil {
					return nil, err
				}
			}
		}
	}

	s.AddAll(extras)
	return s, nil
}
