package normalizer

import (
	"recordconv/internal/records"
)

// DefaultSentinel replaces empty or absent values during cleaning.
const DefaultSentinel = "n/a"

// Cleaner normalizes whole datasets: keys are sanitized, string values
// are canonicalized, and empty or null values become the sentinel.
type Cleaner struct {
	sentinel string
}

// NewCleaner creates a cleaner with the default sentinel.
func NewCleaner() *Cleaner {
	return &Cleaner{sentinel: DefaultSentinel}
}

// NewCleanerWithSentinel creates a cleaner using a custom sentinel value.
func NewCleanerWithSentinel(sentinel string) *Cleaner {
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	return &Cleaner{sentinel: sentinel}
}

// CleanData returns a new dataset with every key sanitized via
// NormalizeKey and every string value canonicalized via NormalizeText.
// Values that are nil or empty after normalization become the sentinel.
// Record order is preserved; within a record, fields keep the original
// key's first-appearance order. Keys that collide after sanitization are
// not deduplicated: the later field's value wins.
func (c *Cleaner) CleanData(data records.Dataset) records.Dataset {
	cleaned := make(records.Dataset, 0, len(data))

	for _, item := range data {
		cleanedItem := records.NewRecord()

		for _, key := range item.Keys() {
			value, _ := item.Get(key)

			if s, ok := value.(string); ok {
				value = NormalizeText(s)
			}

			if value == nil || value == "" {
				value = c.sentinel
			}

			cleanedItem.Set(NormalizeKey(key), value)
		}

		cleaned = append(cleaned, cleanedItem)
	}

	return cleaned
}
