// Package cmd defines the recordconv CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recordconv/internal/config"
	"recordconv/internal/converter"
	"recordconv/internal/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "recordconv",
	Short: "Convert record data between CSV and JSON with text normalization",
	Long: `recordconv converts tabular record data between CSV and JSON while
normalizing text content: accents are stripped, values are lowercased and
trimmed, field names are sanitized to lowercase ASCII identifiers, and
empty or missing values become the "n/a" sentinel.

The target format is selected by the output file extension.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig returns the configuration from --config, or defaults when
// no file was given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}

	return config.LoadConfig(cfgFile)
}

// newLogger builds the command logger, honoring --verbose over the
// configured level.
func newLogger(cfg *config.Config) *logger.Logger {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	return logger.NewLogger(level)
}

// converterOptions maps configuration onto converter options.
func converterOptions(cfg *config.Config) converter.Options {
	return converter.Options{
		Delimiter: cfg.Converter.DelimiterRune(),
		Sentinel:  cfg.Converter.Sentinel,
	}
}
