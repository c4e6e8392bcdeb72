// Package main provides the entry point for the papercloud CLI.
package main

import (
	"fmt"
	"os"

	"github.com/papercloud/papercloud/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for papercloud.
// The root command itself runs the generation: papercloud is a one-shot
// batch tool, so there is no separate "generate" subcommand to remember.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "papercloud",
		Short: "Generate a word cloud from a folder of research papers",
		Long: `Papercloud generates a word-cloud image from a folder of research papers.

It scans the input folder for LaTeX sources (.tex), PDFs (.pdf), or
Markdown notes (.md) - in that order of preference - extracts their text,
removes stopwords, counts word frequencies, and renders the most frequent
words as a PNG.

Examples:
  # Generate a cloud from ./papers into ./wordcloud.png
  papercloud

  # Custom input folder and output image
  papercloud --input ~/articles --output cloud.png

  # Print the top 40 words after filtering
  papercloud --print-top 40

  # Explain why a word did or did not appear in the cloud
  papercloud --debug-words the,quantum

  # Use a custom stopword file and extra inline stopwords
  papercloud --stopwords my_stops.txt --extra-stopwords figure,table

Configuration file (.papercloud) example:
  input: papers
  output: wordcloud.png
  max_words: 120
  extra_stopwords:
    - figure
    - table`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runGenerateCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Input and output flags
	cmd.Flags().StringP("input", "i", config.DefaultInputDir,
		"Folder containing the paper corpus (.tex, .pdf, or .md files)")
	cmd.Flags().StringP("output", "o", config.DefaultOutputPath,
		"Output PNG path (overwritten if it exists)")

	// Tokenization and filtering flags
	cmd.Flags().Int("min-len", config.DefaultMinWordLen,
		"Minimum word length kept by the tokenizer")
	cmd.Flags().String("stopwords", "",
		"Stopword file path (default: stopwords.txt next to the executable, if present)")
	cmd.Flags().StringSlice("extra-stopwords", nil,
		"Additional stopwords, comma separated")

	// Rendering flags
	cmd.Flags().Int("max-words", config.DefaultMaxWords,
		"Maximum number of distinct words in the cloud")
	cmd.Flags().String("font", "",
		"TrueType font file for rendering (default: probe system font locations)")
	cmd.Flags().Int("width", config.DefaultCanvasWidth,
		"Canvas width in pixels")
	cmd.Flags().Int("height", config.DefaultCanvasHeight,
		"Canvas height in pixels")
	cmd.Flags().String("background", config.DefaultBackground,
		"Canvas background color (name or #rrggbb)")

	// Diagnostics flags
	cmd.Flags().Int("print-top", 0,
		"Print the top N filtered words as a tab-separated listing")
	cmd.Flags().StringSlice("debug-words", nil,
		"Report raw and filtered counts for these words, comma separated")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .papercloud in current or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().String("report-file", "",
		"Write the report to specified file path instead of stdout (creates directories if needed)")

	// Add subcommands
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
