// Package converter reads and writes record datasets in CSV and JSON
// formats and orchestrates the validate -> read -> clean -> write pipeline.
package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"recordconv/internal/normalizer"
	"recordconv/internal/records"
)

// Conversion errors.
var (
	ErrNotFound          = errors.New("input file not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidFormat     = errors.New("invalid input format")
)

// DefaultDelimiter is the CSV field delimiter used when none is configured.
const DefaultDelimiter = ','

// Converter is the capability shared by all format implementations.
// ValidateFormat never propagates errors: any I/O or parse failure
// during validation yields false. ReadData and WriteData do propagate.
type Converter interface {
	// ValidateFormat reports whether the file is structurally parseable.
	ValidateFormat() bool

	// ReadData parses the file into an ordered dataset.
	ReadData() (records.Dataset, error)

	// SetData replaces the converter's in-memory dataset before a write.
	SetData(data records.Dataset)

	// WriteData serializes the in-memory dataset to outputPath, creating
	// missing directories. The boolean is false for a soft failure such
	// as writing an empty CSV dataset.
	WriteData(outputPath string) (bool, error)
}

// Options configure converter construction.
type Options struct {
	// Delimiter is the CSV field delimiter. Zero means comma.
	Delimiter rune

	// Sentinel replaces empty or absent values during cleaning.
	// Empty means normalizer.DefaultSentinel.
	Sentinel string
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}

	return o.Delimiter
}

// New selects a converter implementation for path by its file extension.
func New(path string, opts Options) (Converter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVConverter(path, opts.delimiter()), nil
	case ".json":
		return NewJSONConverter(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Convert runs one full conversion: validate the input, read it, clean
// it, and write it to outputPath in the format selected by the output
// extension. The boolean mirrors the write result; the first failure
// aborts the pipeline.
func Convert(inputPath, outputPath string, opts Options) (bool, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return false, fmt.Errorf("%w: %s", ErrNotFound, inputPath)
	}

	input, err := New(inputPath, opts)
	if err != nil {
		return false, err
	}

	if !input.ValidateFormat() {
		return false, fmt.Errorf("%w: %s", ErrInvalidFormat, inputPath)
	}

	data, err := input.ReadData()
	if err != nil {
		return false, fmt.Errorf("read %s: %w", inputPath, err)
	}

	cleaner := normalizer.NewCleanerWithSentinel(opts.Sentinel)
	cleaned := cleaner.CleanData(data)

	output, err := New(outputPath, opts)
	if err != nil {
		return false, err
	}

	output.SetData(cleaned)

	return output.WriteData(outputPath)
}
