package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/papercloud/papercloud/internal/model"
)

// writeFiles creates empty files with the given names under dir.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("missing directory returns ErrInputDirNotFound", func(t *testing.T) {
		t.Parallel()

		_, _, err := Resolve(filepath.Join(t.TempDir(), "does-not-exist"))
		if !errors.Is(err, ErrInputDirNotFound) {
			t.Errorf("expected ErrInputDirNotFound, got %v", err)
		}
	})

	t.Run("file instead of directory returns ErrNotADirectory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "papers")

		_, _, err := Resolve(filepath.Join(dir, "papers"))
		if !errors.Is(err, ErrNotADirectory) {
			t.Errorf("expected ErrNotADirectory, got %v", err)
		}
	})

	t.Run("empty directory returns ErrNoInputFiles", func(t *testing.T) {
		t.Parallel()

		_, _, err := Resolve(t.TempDir())
		if !errors.Is(err, ErrNoInputFiles) {
			t.Errorf("expected ErrNoInputFiles, got %v", err)
		}
	})

	t.Run("directory with unrelated files returns ErrNoInputFiles", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "notes.txt", "figure.png")

		_, _, err := Resolve(dir)
		if !errors.Is(err, ErrNoInputFiles) {
			t.Errorf("expected ErrNoInputFiles, got %v", err)
		}
	})

	t.Run("tex files take precedence over pdf files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "a.pdf", "b.tex", "c.pdf", "d.tex")

		kind, files, err := Resolve(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kind != model.SourceLaTeX {
			t.Errorf("expected SourceLaTeX, got %v", kind)
		}
		want := []string{filepath.Join(dir, "b.tex"), filepath.Join(dir, "d.tex")}
		if len(files) != len(want) {
			t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
		}
		for i, f := range files {
			if f != want[i] {
				t.Errorf("file[%d] = %q, want %q", i, f, want[i])
			}
		}
	})

	t.Run("pdf files used when no tex present", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "z.pdf", "a.pdf", "readme.md")

		kind, files, err := Resolve(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kind != model.SourcePDF {
			t.Errorf("expected SourcePDF, got %v", kind)
		}
		if len(files) != 2 {
			t.Fatalf("expected 2 files, got %d", len(files))
		}
		// Lexicographic order.
		if filepath.Base(files[0]) != "a.pdf" || filepath.Base(files[1]) != "z.pdf" {
			t.Errorf("expected sorted order [a.pdf z.pdf], got %v", files)
		}
	})

	t.Run("markdown used as last resort", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "paper.md")

		kind, files, err := Resolve(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kind != model.SourceMarkdown {
			t.Errorf("expected SourceMarkdown, got %v", kind)
		}
		if len(files) != 1 {
			t.Errorf("expected 1 file, got %d", len(files))
		}
	})

	t.Run("subdirectories with matching names are ignored", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, "fake.tex"), 0750); err != nil {
			t.Fatalf("failed to create subdirectory: %v", err)
		}
		writeFiles(t, dir, "real.pdf")

		kind, files, err := Resolve(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kind != model.SourcePDF {
			t.Errorf("expected SourcePDF, got %v", kind)
		}
		if len(files) != 1 || filepath.Base(files[0]) != "real.pdf" {
			t.Errorf("expected only real.pdf, got %v", files)
		}
	})
}
