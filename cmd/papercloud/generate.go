package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/papercloud/papercloud/internal/cloud"
	"github.com/papercloud/papercloud/internal/config"
	"github.com/papercloud/papercloud/internal/log"
	"github.com/papercloud/papercloud/internal/model"
	"github.com/papercloud/papercloud/internal/pipeline"
	"github.com/papercloud/papercloud/internal/report"
	"github.com/papercloud/papercloud/internal/stopword"
	"github.com/spf13/cobra"
)

// runGenerateCmd executes the word-cloud generation.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	// Build config by layering defaults, config file, environment, and flags
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runGenerate(ctx, cfg, logger)
}

// buildConfig creates a Config from defaults, the config file, the
// environment, and cobra command flags, in increasing precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load settings from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently continue when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Environment variables override the config file
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	// Explicitly set flags override everything
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// applyFlags copies explicitly set flags onto cfg. Flags left at their
// defaults are skipped so they do not clobber config file or environment
// settings.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var err error

	if flags.Changed("input") {
		if cfg.InputDir, err = flags.GetString("input"); err != nil {
			return err
		}
	}
	if flags.Changed("output") {
		if cfg.OutputPath, err = flags.GetString("output"); err != nil {
			return err
		}
	}
	if flags.Changed("min-len") {
		if cfg.MinWordLen, err = flags.GetInt("min-len"); err != nil {
			return err
		}
	}
	if flags.Changed("max-words") {
		if cfg.MaxWords, err = flags.GetInt("max-words"); err != nil {
			return err
		}
	}
	if flags.Changed("stopwords") {
		if cfg.StopwordsPath, err = flags.GetString("stopwords"); err != nil {
			return err
		}
	}
	if flags.Changed("extra-stopwords") {
		extras, err := flags.GetStringSlice("extra-stopwords")
		if err != nil {
			return err
		}
		cfg.ExtraStopwords = append(cfg.ExtraStopwords, extras...)
	}
	if flags.Changed("font") {
		if cfg.FontPath, err = flags.GetString("font"); err != nil {
			return err
		}
	}
	if flags.Changed("width") {
		if cfg.CanvasWidth, err = flags.GetInt("width"); err != nil {
			return err
		}
	}
	if flags.Changed("height") {
		if cfg.CanvasHeight, err = flags.GetInt("height"); err != nil {
			return err
		}
	}
	if flags.Changed("background") {
		if cfg.Background, err = flags.GetString("background"); err != nil {
			return err
		}
	}
	if flags.Changed("print-top") {
		if cfg.PrintTop, err = flags.GetInt("print-top"); err != nil {
			return err
		}
	}
	if flags.Changed("debug-words") {
		if cfg.DebugWords, err = flags.GetStringSlice("debug-words"); err != nil {
			return err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = flags.GetString("report-file"); err != nil {
		return err
	}

	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runGenerate executes the generation pipeline and outputs the report.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting generation",
		"input", cfg.InputDir,
		"output", cfg.OutputPath,
		"maxWords", cfg.MaxWords,
	)

	// Build the stopword set: embedded defaults, file, then extras
	stopwords, err := stopword.Build(cfg.StopwordsPath, cfg.ExtraStopwords)
	if err != nil {
		return fmt.Errorf("failed to build stopword set: %w", err)
	}

	background, err := cloud.ParseColor(cfg.Background)
	if err != nil {
		return fmt.Errorf("invalid background color: %w", err)
	}

	// The renderer resolves its font here, before any input is read, so
	// a missing font fails fast
	renderer, err := cloud.NewWordCloudRenderer(
		cloud.WithSize(cfg.CanvasWidth, cfg.CanvasHeight),
		cloud.WithBackground(background),
		cloud.WithMaxWords(cfg.MaxWords),
		cloud.WithFontFile(cfg.FontPath),
		cloud.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewResolveStep(cfg.InputDir, pipeline.WithResolveLogger(logger)),
		pipeline.NewExtractStep(cfg.MinWordLen, pipeline.WithExtractLogger(logger)),
		pipeline.NewCountStep(stopwords, pipeline.WithCountLogger(logger)),
		pipeline.NewRenderStep(renderer, cfg.OutputPath, pipeline.WithRenderLogger(logger)),
	)

	runReport := model.NewCloudReport(cfg.InputDir)

	startTime := time.Now()
	if err := p.Execute(ctx, runReport); err != nil {
		return err
	}
	logger.Info("generation completed",
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return outputReport(cfg, runReport)
}

// outputReport outputs the run report in the requested format.
func outputReport(cfg *config.Config, runReport *model.CloudReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output,
			report.WithPrintTop(cfg.PrintTop),
			report.WithDebugWords(cfg.DebugWords),
		)
	}

	if _, err := writer.Write(runReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
