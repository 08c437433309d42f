package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"recordconv/internal/records"
)

// jsonIndent is the indentation unit for pretty-printed output.
const jsonIndent = "    "

// JSONConverter reads and writes JSON files holding a top-level array
// of objects.
type JSONConverter struct {
	filePath string
	data     records.Dataset
}

// NewJSONConverter creates a JSON converter for filePath.
func NewJSONConverter(filePath string) *JSONConverter {
	return &JSONConverter{filePath: filePath}
}

// ValidateFormat reports whether the entire file parses as JSON. Any
// read or parse failure yields false.
func (c *JSONConverter) ValidateFormat() bool {
	raw, err := os.ReadFile(c.filePath)
	if err != nil {
		return false
	}

	return json.Valid(raw)
}

// ReadData parses the full document as an array of objects. Other JSON
// shapes surface the decoder's type error.
func (c *JSONConverter) ReadData() (records.Dataset, error) {
	raw, err := os.ReadFile(c.filePath)
	if err != nil {
		return nil, err
	}

	var data records.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	c.data = data

	return data, nil
}

// SetData replaces the in-memory dataset.
func (c *JSONConverter) SetData(data records.Dataset) {
	c.data = data
}

// WriteData serializes the dataset as a pretty-printed JSON array with
// four-space indentation. Non-ASCII characters are written literally.
// An empty dataset is valid output: it writes [].
func (c *JSONConverter) WriteData(outputPath string) (bool, error) {
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return false, err
	}

	data := c.data
	if data == nil {
		data = records.Dataset{}
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		file.Close()

		return false, fmt.Errorf("encode JSON: %w", err)
	}

	if err := file.Close(); err != nil {
		return false, err
	}

	return true, nil
}
