package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".papercloud"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File mirrors the YAML configuration file. Zero values mean "not set"
// and leave the corresponding Config field untouched.
type File struct {
	// Input is the corpus directory.
	Input string `yaml:"input"`

	// Output is the PNG output path.
	Output string `yaml:"output"`

	// MinLen is the minimum token length.
	MinLen int `yaml:"min_len"`

	// MaxWords caps the distinct words in the cloud.
	MaxWords int `yaml:"max_words"`

	// Font is a TrueType font path.
	Font string `yaml:"font"`

	// Stopwords is a stopword file path.
	Stopwords string `yaml:"stopwords"`

	// ExtraStopwords are merged into the stopword set.
	ExtraStopwords []string `yaml:"extra_stopwords"`

	// Width and Height are the canvas dimensions.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Background is the canvas background color.
	Background string `yaml:"background"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this based on whether the path was explicitly specified
// by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .papercloud in the current directory
//  3. Look for .papercloud in the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Apply copies every set field of the file onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.Input != "" {
		cfg.InputDir = f.Input
	}
	if f.Output != "" {
		cfg.OutputPath = f.Output
	}
	if f.MinLen > 0 {
		cfg.MinWordLen = f.MinLen
	}
	if f.MaxWords > 0 {
		cfg.MaxWords = f.MaxWords
	}
	if f.Font != "" {
		cfg.FontPath = f.Font
	}
	if f.Stopwords != "" {
		cfg.StopwordsPath = f.Stopwords
	}
	if len(f.ExtraStopwords) > 0 {
		cfg.ExtraStopwords = append(cfg.ExtraStopwords, f.ExtraStopwords...)
	}
	if f.Width > 0 {
		cfg.CanvasWidth = f.Width
	}
	if f.Height > 0 {
		cfg.CanvasHeight = f.Height
	}
	if f.Background != "" {
		cfg.Background = f.Background
	}
}
