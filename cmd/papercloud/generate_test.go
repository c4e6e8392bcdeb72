package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/papercloud/papercloud/internal/model"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults when nothing is set", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputDir != "papers" {
			t.Errorf("expected default input 'papers', got %q", cfg.InputDir)
		}
		if cfg.OutputPath != "wordcloud.png" {
			t.Errorf("expected default output 'wordcloud.png', got %q", cfg.OutputPath)
		}
		if cfg.MaxWords != 90 {
			t.Errorf("expected default max words 90, got %d", cfg.MaxWords)
		}
	})

	t.Run("config file values are applied", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".papercloud")
		content := "input: articles\nmax_words: 120\nextra_stopwords:\n  - figure\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"--config", configPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputDir != "articles" {
			t.Errorf("expected input 'articles', got %q", cfg.InputDir)
		}
		if cfg.MaxWords != 120 {
			t.Errorf("expected max words 120, got %d", cfg.MaxWords)
		}
		if len(cfg.ExtraStopwords) != 1 || cfg.ExtraStopwords[0] != "figure" {
			t.Errorf("expected extra stopwords [figure], got %v", cfg.ExtraStopwords)
		}
	})

	t.Run("flags override the config file", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".papercloud")
		if err := os.WriteFile(configPath, []byte("input: articles\n"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cmd := NewRootCmd()
		args := []string{"--config", configPath, "--input", "notes", "--print-top", "40"}
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputDir != "notes" {
			t.Errorf("expected flag to win with 'notes', got %q", cfg.InputDir)
		}
		if cfg.PrintTop != 40 {
			t.Errorf("expected print top 40, got %d", cfg.PrintTop)
		}
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		missing := filepath.Join(t.TempDir(), "absent.yaml")
		if err := cmd.ParseFlags([]string{"--config", missing}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if _, err := buildConfig(cmd); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("comma separated debug words", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"--debug-words", "the,quantum"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.DebugWords) != 2 || cfg.DebugWords[0] != "the" || cfg.DebugWords[1] != "quantum" {
			t.Errorf("expected debug words [the quantum], got %v", cfg.DebugWords)
		}
	})
}

func TestOutputReport(t *testing.T) {
	t.Parallel()

	newReport := func() *model.CloudReport {
		r := model.NewCloudReport("papers")
		r.Source = model.SourceLaTeX
		r.Counts = map[string]int{"quantum": 3}
		r.TopWords = []model.WordCount{{Word: "quantum", Count: 3}}
		r.OutputPath = "wordcloud.png"
		r.GeneratedAt = time.Now()
		return r
	}

	t.Run("writes simple report to file", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg.ReportFile = filepath.Join(t.TempDir(), "sub", "report.txt")

		if err := outputReport(cfg, newReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.ReportFile)
		if err != nil {
			t.Fatalf("failed to read report file: %v", err)
		}
		if !strings.Contains(string(data), "Saved word cloud to: wordcloud.png") {
			t.Errorf("expected simple report, got %q", string(data))
		}
	})

	t.Run("writes JSON report to file", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"--json"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg.ReportFile = filepath.Join(t.TempDir(), "report.json")

		if err := outputReport(cfg, newReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.ReportFile)
		if err != nil {
			t.Fatalf("failed to read report file: %v", err)
		}
		if !strings.Contains(string(data), `"output_path": "wordcloud.png"`) {
			t.Errorf("expected JSON report, got %q", string(data))
		}
	})

	t.Run("writes markdown report to file", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"--markdown"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg.ReportFile = filepath.Join(t.TempDir(), "report.md")

		if err := outputReport(cfg, newReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(cfg.ReportFile)
		if err != nil {
			t.Fatalf("failed to read report file: %v", err)
		}
		if !strings.Contains(string(data), "# Word Cloud Report") {
			t.Errorf("expected markdown report, got %q", string(data))
		}
	})
}
