package normalizer

import (
	"reflect"
	"testing"

	"recordconv/internal/records"
)

// makeRecord builds a record from ordered key/value pairs.
func makeRecord(t *testing.T, pairs ...any) records.Record {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatal("makeRecord requires key/value pairs")
	}

	r := records.NewRecord()
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}

	return r
}

func TestCleaner_CleanData(t *testing.T) {
	c := NewCleaner()

	input := records.Dataset{
		makeRecord(t, "Nombre Completo", "  Ana María  ", "Edad", "30"),
	}

	cleaned := c.CleanData(input)
	if len(cleaned) != 1 {
		t.Fatalf("CleanData returned %d records, want 1", len(cleaned))
	}

	wantKeys := []string{"nombre_completo", "edad"}
	if !reflect.DeepEqual(cleaned[0].Keys(), wantKeys) {
		t.Errorf("keys = %v, want %v", cleaned[0].Keys(), wantKeys)
	}

	if v, _ := cleaned[0].Get("nombre_completo"); v != "ana maria" {
		t.Errorf("nombre_completo = %v, want %q", v, "ana maria")
	}

	if v, _ := cleaned[0].Get("edad"); v != "30" {
		t.Errorf("edad = %v, want %q", v, "30")
	}
}

func TestCleaner_SentinelSubstitution(t *testing.T) {
	c := NewCleaner()

	tests := []struct {
		name  string
		value any
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"nil value", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := records.Dataset{makeRecord(t, "Nombre", tt.value)}

			cleaned := c.CleanData(input)

			v, ok := cleaned[0].Get("nombre")
			if !ok {
				t.Fatal("cleaned record missing key nombre")
			}

			if v != DefaultSentinel {
				t.Errorf("value = %v, want %q", v, DefaultSentinel)
			}
		})
	}
}

func TestCleaner_NonStringValuesPassThrough(t *testing.T) {
	c := NewCleaner()

	input := records.Dataset{
		makeRecord(t, "Activo", true, "Edad", 30, "Saldo", 10.5),
	}

	cleaned := c.CleanData(input)

	if v, _ := cleaned[0].Get("activo"); v != true {
		t.Errorf("activo = %v, want true", v)
	}

	if v, _ := cleaned[0].Get("edad"); v != 30 {
		t.Errorf("edad = %v, want 30", v)
	}

	if v, _ := cleaned[0].Get("saldo"); v != 10.5 {
		t.Errorf("saldo = %v, want 10.5", v)
	}
}

func TestCleaner_KeyCollisionLaterWins(t *testing.T) {
	c := NewCleaner()

	// "Edad" and "edad!" both normalize to "edad"; the later field's
	// value wins and the key keeps its first-appearance position.
	input := records.Dataset{
		makeRecord(t, "Edad", "30", "Nombre", "Ana", "edad!", "31"),
	}

	cleaned := c.CleanData(input)

	if got := cleaned[0].Len(); got != 2 {
		t.Fatalf("cleaned record has %d fields, want 2", got)
	}

	wantKeys := []string{"edad", "nombre"}
	if !reflect.DeepEqual(cleaned[0].Keys(), wantKeys) {
		t.Errorf("keys = %v, want %v", cleaned[0].Keys(), wantKeys)
	}

	if v, _ := cleaned[0].Get("edad"); v != "31" {
		t.Errorf("edad = %v, want %q", v, "31")
	}
}

func TestCleaner_Idempotent(t *testing.T) {
	c := NewCleaner()

	input := records.Dataset{
		makeRecord(t, "Nombre Completo", "  Ana María  ", "Edad", "", "Activo", true),
		makeRecord(t, "Ciudad", "Bogotá"),
	}

	once := c.CleanData(input)

	twice := c.CleanData(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("CleanData not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestCleaner_RecordOrderPreserved(t *testing.T) {
	c := NewCleaner()

	input := records.Dataset{
		makeRecord(t, "Nombre", "Ana"),
		makeRecord(t, "Nombre", "Luis"),
		makeRecord(t, "Nombre", "Eva"),
	}

	cleaned := c.CleanData(input)

	want := []string{"ana", "luis", "eva"}
	for i, name := range want {
		if v, _ := cleaned[i].Get("nombre"); v != name {
			t.Errorf("record %d nombre = %v, want %q", i, v, name)
		}
	}
}

func TestNewCleanerWithSentinel(t *testing.T) {
	c := NewCleanerWithSentinel("missing")

	cleaned := c.CleanData(records.Dataset{makeRecord(t, "Nombre", "")})
	if v, _ := cleaned[0].Get("nombre"); v != "missing" {
		t.Errorf("value = %v, want %q", v, "missing")
	}

	// Empty sentinel falls back to the default.
	c = NewCleanerWithSentinel("")

	cleaned = c.CleanData(records.Dataset{makeRecord(t, "Nombre", "")})
	if v, _ := cleaned[0].Get("nombre"); v != DefaultSentinel {
		t.Errorf("value = %v, want %q", v, DefaultSentinel)
	}
}
