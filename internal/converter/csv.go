package converter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"recordconv/internal/records"
)

// CSVConverter reads and writes delimiter-separated files with a header
// row. All values read from CSV are text; no numeric coercion happens.
type CSVConverter struct {
	filePath  string
	delimiter rune
	data      records.Dataset
}

// NewCSVConverter creates a CSV converter for filePath.
func NewCSVConverter(filePath string, delimiter rune) *CSVConverter {
	return &CSVConverter{filePath: filePath, delimiter: delimiter}
}

// ValidateFormat reports whether at least one row, header included, can
// be parsed. Any open or parse failure yields false.
func (c *CSVConverter) ValidateFormat() bool {
	file, err := os.Open(c.filePath)
	if err != nil {
		return false
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = c.delimiter
	reader.FieldsPerRecord = -1

	_, err = reader.Read()

	return err == nil
}

// ReadData parses the file using the first row as the header and returns
// one record per data row. Rows shorter than the header leave the
// trailing fields nil; cells beyond the header are dropped.
func (c *CSVConverter) ReadData() (records.Dataset, error) {
	file, err := os.Open(c.filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = c.delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		c.data = records.Dataset{}

		return c.data, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	data := records.Dataset{}

	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}

		record := records.NewRecord()

		for i, name := range header {
			if i < len(row) {
				record.Set(name, row[i])
			} else {
				record.Set(name, nil)
			}
		}

		data = append(data, record)
	}

	c.data = data

	return data, nil
}

// SetData replaces the in-memory dataset.
func (c *CSVConverter) SetData(data records.Dataset) {
	c.data = data
}

// WriteData writes a header row from the first record's keys followed by
// one row per record in that key order. Records missing a header key
// render an empty cell; keys absent from the header are not written.
// An empty dataset returns false without touching the filesystem.
func (c *CSVConverter) WriteData(outputPath string) (bool, error) {
	if len(c.data) == 0 {
		return false, nil
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return false, err
	}

	writer := csv.NewWriter(file)
	writer.Comma = c.delimiter

	header := c.data[0].Keys()
	if err := writer.Write(header); err != nil {
		file.Close()

		return false, fmt.Errorf("write header: %w", err)
	}

	for _, record := range c.data {
		row := make([]string, len(header))

		for i, name := range header {
			value, ok := record.Get(name)
			if !ok {
				continue
			}

			row[i] = formatValue(value)
		}

		if err := writer.Write(row); err != nil {
			file.Close()

			return false, fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		file.Close()

		return false, err
	}

	if err := file.Close(); err != nil {
		return false, err
	}

	return true, nil
}

// formatValue renders a record value as CSV cell text.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		// json.Number and anything else keep their literal form.
		return fmt.Sprint(v)
	}
}
