package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"recordconv/internal/converter"
)

var (
	batchInDir  string
	batchOutDir string
	batchTo     string
)

// batchResult reports the outcome of one file conversion.
type batchResult struct {
	inputPath  string
	outputPath string
	ok         bool
	err        error
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every supported file in a directory",
	Long: `Batch scans --in for .csv and .json files and converts each one into
--out with the extension given by --to. Files are converted concurrently;
an error in one file does not stop the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch()
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchInDir, "in", "", "Input directory to scan")
	batchCmd.Flags().StringVar(&batchOutDir, "out", "", "Output directory")
	batchCmd.Flags().StringVar(&batchTo, "to", "json", "Target format extension (csv or json)")
	batchCmd.MarkFlagRequired("in")
	batchCmd.MarkFlagRequired("out")
}

func runBatch() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	targetExt := "." + strings.TrimPrefix(strings.ToLower(batchTo), ".")
	if targetExt != ".csv" && targetExt != ".json" {
		return fmt.Errorf("%w: %s", converter.ErrUnsupportedFormat, batchTo)
	}

	inputFiles, err := discoverInputFiles(batchInDir)
	if err != nil {
		return fmt.Errorf("scan input directory: %w", err)
	}

	if len(inputFiles) == 0 {
		log.Info("no supported files found", "dir", batchInDir)

		return nil
	}

	log.Info("processing files", "count", len(inputFiles), "target", targetExt)

	startTime := time.Now()
	opts := converterOptions(cfg)

	var wg sync.WaitGroup

	results := make(chan batchResult, len(inputFiles))
	sem := make(chan struct{}, cfg.Batch.Workers)

	for _, inputPath := range inputFiles {
		wg.Add(1)

		go func(inputPath string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
			outputPath := filepath.Join(batchOutDir, base+targetExt)

			ok, err := converter.Convert(inputPath, outputPath, opts)
			results <- batchResult{
				inputPath:  inputPath,
				outputPath: outputPath,
				ok:         ok,
				err:        err,
			}
		}(inputPath)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var successCount, failureCount int

	for result := range results {
		switch {
		case result.err != nil:
			failureCount++
			log.Error("conversion failed", "input", result.inputPath, "error", result.err)
		case !result.ok:
			failureCount++
			log.Warn("nothing written", "input", result.inputPath)
		default:
			successCount++
			log.Debug("converted", "input", result.inputPath, "output", result.outputPath)
		}
	}

	fmt.Printf("Processed %d file(s): %d converted, %d failed in %s\n",
		len(inputFiles), successCount, failureCount, time.Since(startTime).Round(time.Millisecond))

	if failureCount > 0 {
		return fmt.Errorf("%w: %d file(s) failed", ErrConversionFailed, failureCount)
	}

	return nil
}

// discoverInputFiles returns the .csv and .json files directly under dir.
func discoverInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".json":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}
