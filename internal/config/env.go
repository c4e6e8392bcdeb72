package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// envOverrides mirrors the PAPERCLOUD_* environment variables. Zero
// values mean "not set" and leave the corresponding Config field
// untouched, so env layering composes with the config file.
type envOverrides struct {
	InputDir       string   `env:"PAPERCLOUD_INPUT"`
	OutputPath     string   `env:"PAPERCLOUD_OUTPUT"`
	MinWordLen     int      `env:"PAPERCLOUD_MIN_LEN"`
	MaxWords       int      `env:"PAPERCLOUD_MAX_WORDS"`
	FontPath       string   `env:"PAPERCLOUD_FONT"`
	StopwordsPath  string   `env:"PAPERCLOUD_STOPWORDS"`
	ExtraStopwords []string `env:"PAPERCLOUD_EXTRA_STOPWORDS" envSeparator:","`
	Background     string   `env:"PAPERCLOUD_BACKGROUND"`
}

// ApplyEnv overlays PAPERCLOUD_* environment variables onto cfg.
// A .env file in the working directory is loaded first if present;
// a missing .env is not an error.
func ApplyEnv(cfg *Config) error {
	_ = godotenv.Load()

	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if o.InputDir != "" {
		cfg.InputDir = o.InputDir
	}
	if o.OutputPath != "" {
		cfg.OutputPath = o.OutputPath
	}
	if o.MinWordLen > 0 {
		cfg.MinWordLen = o.MinWordLen
	}
	if o.MaxWords > 0 {
		cfg.MaxWords = o.MaxWords
	}
	if o.FontPath != "" {
		cfg.FontPath = o.FontPath
	}
	if o.StopwordsPath != "" {
		cfg.StopwordsPath = o.StopwordsPath
	}
	if len(o.ExtraStopwords) > 0 {
		cfg.ExtraStopwords = append(cfg.ExtraStopwords, o.ExtraStopwords...)
	}
	if o.Background != "" {
		cfg.Background = o.Background
	}

	return nil
}
