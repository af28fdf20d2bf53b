// Package csvtable implements CSV parsing, normalization and serialization
// for bulk-upload files. Parsing is a small explicit state machine
// (quoted/unquoted) rather than encoding/csv: carriage returns outside
// quoted content are no-ops, short rows are padded instead of rejected,
// and an unterminated quote is a distinct fatal error.
package csvtable

import "strings"

// Table is a parsed and normalized CSV table. Every row has exactly
// len(Headers) cells. Duplicate headers are legal; index lookups use the
// first match.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Stats describes what normalization removed from the source text.
// It is recomputed from scratch whenever the source changes.
type Stats struct {
	OriginalColumns  int
	OriginalRows     int
	RemovedColumns   int
	RemovedEmptyRows int
}

// Normalized is the result of normalizing parsed CSV rows.
type Normalized struct {
	Table Table
	Stats Stats
}

// ColumnIndex returns the index of the first header equal to name after
// trimming and case folding, or -1 when absent.
func (t Table) ColumnIndex(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, h := range t.Headers {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

// Cell returns the cell at the given row and column, or "" when the
// column index is out of range.
func (t Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
