// Package records defines the in-memory data model shared by readers,
// writers, and the normalizer: an ordered sequence of field-ordered records.
package records

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a single row or object of source data. Field order is
// significant: iteration follows the order in which keys were first set,
// and overwriting an existing key keeps its original position.
type Record struct {
	keys   []string
	fields map[string]any
}

// Dataset is an ordered sequence of records read from one file.
type Dataset []Record

// NewRecord creates an empty record.
func NewRecord() Record {
	return Record{fields: make(map[string]any)}
}

// Set stores a value under key. A key that already exists keeps its
// position and only the value is replaced.
func (r *Record) Set(key string, value any) {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}

	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.fields[key] = value
}

// Get returns the value for key and whether the key is present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.fields[key]

	return v, ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// MarshalJSON emits the fields as a JSON object in insertion order.
// Output is compact; an indenting encoder reformats it as needed.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(r.fields[key])
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", key, err)
		}

		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order. Numeric
// values are kept as json.Number so their literal form survives a
// round trip.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	r.keys = nil
	r.fields = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key token %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode field %q: %w", key, err)
		}

		r.Set(key, value)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}
