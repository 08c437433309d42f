package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"recordconv/internal/config"
	"recordconv/internal/converter"
)

// ErrConversionFailed reports the soft failure path: the write step
// returned false without an error, e.g. an empty CSV dataset.
var ErrConversionFailed = errors.New("conversion failed")

var (
	delimiterFlag string
	sentinelFlag  string
)

var convertCmd = &cobra.Command{
	Use:   "convert INPUT OUTPUT",
	Short: "Convert a single file, cleaning its records",
	Long: `Convert reads INPUT, normalizes keys and text values, and writes the
cleaned dataset to OUTPUT. Both formats are selected by file extension
(.csv or .json). Missing output directories are created.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&delimiterFlag, "delimiter", "", "CSV field delimiter (single character)")
	convertCmd.Flags().StringVar(&sentinelFlag, "sentinel", "", "Replacement for empty or missing values")
}

func runConvert(inputPath, outputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	applyFlagOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg)
	log.Debug("starting conversion", "input", inputPath, "output", outputPath)

	ok, err := converter.Convert(inputPath, outputPath, converterOptions(cfg))
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w: nothing to write for %s", ErrConversionFailed, inputPath)
	}

	log.Info("conversion successful", "input", inputPath, "output", outputPath)
	fmt.Printf("Converted %s -> %s\n", inputPath, outputPath)

	return nil
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cfg *config.Config) {
	if delimiterFlag != "" {
		cfg.Converter.Delimiter = delimiterFlag
	}

	if sentinelFlag != "" {
		cfg.Converter.Sentinel = sentinelFlag
	}
}
