package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recordconv/internal/converter"
	"recordconv/internal/formatter"
	"recordconv/internal/normalizer"
)

var previewLimit int

var previewCmd = &cobra.Command{
	Use:   "preview PATH",
	Short: "Show a file's records after cleaning, without writing anything",
	Long: `Preview reads PATH, runs the same normalization as convert, and prints
the cleaned records as an aligned table. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(args[0])
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVarP(&previewLimit, "limit", "n", 10, "Maximum number of records to show")
}

func runPreview(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", converter.ErrNotFound, path)
	}

	conv, err := converter.New(path, converterOptions(cfg))
	if err != nil {
		return err
	}

	if !conv.ValidateFormat() {
		return fmt.Errorf("%w: %s", converter.ErrInvalidFormat, path)
	}

	data, err := conv.ReadData()
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	cleaner := normalizer.NewCleanerWithSentinel(cfg.Converter.Sentinel)
	cleaned := cleaner.CleanData(data)

	fmt.Print(formatter.RenderTable(cleaned, previewLimit))

	return nil
}
