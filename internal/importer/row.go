package importer

import (
	"strings"
)

// Row is one CSV record keyed by header column name. Cleaning drops blank and
// NA cells, so a present key always carries a usable value. Rows are never
// mutated after cleaning.
type Row map[string]string

// CleanRow trims every cell and drops the ones that are empty or a common
// not-available marker.
func CleanRow(raw map[string]string) Row {
	row := make(Row, len(raw))
	for key, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" || isNA(value) {
			continue
		}
		row[key] = value
	}
	return row
}

func isNA(value string) bool {
	switch strings.ToLower(value) {
	case "na", "n/a", "nan":
		return true
	}
	return false
}

// Get returns the cell value and whether the column carries one.
func (r Row) Get(key string) (string, bool) {
	value, ok := r[key]
	return value, ok
}

// Value returns the cell value, or "" when absent.
func (r Row) Value(key string) string {
	return r[key]
}

// Has reports whether the column carries a value.
func (r Row) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// ParseBool is the lenient boolean coercion applied to every boolean-like CSV
// cell: true, yes, 1, t and y (case-insensitive) are true, everything else
// (including an absent cell) is false.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "t", "y":
		return true
	}
	return false
}

// lineNumber converts a zero-based data row index to the 1-based CSV line
// number, accounting for the header row.
func lineNumber(index int) int {
	return index + 2
}

// IndexedRow pairs a row with its zero-based position in the input.
type IndexedRow struct {
	Index int
	Row   Row
}
