package csvtable

import "strings"

// Normalize turns parsed rows (first row = header) into a Table:
// blank-header columns are dropped by index, short rows are padded to
// header length, and rows whose kept cells all trim to empty are removed
// and counted. Returns ErrEmpty when there are no rows and
// ErrNoUsableColumns when every header is blank.
func Normalize(rows [][]string) (*Normalized, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	header := rows[0]

	var kept []int
	var headers []string
	for i, h := range header {
		trimmed := strings.TrimSpace(h)
		if trimmed == "" {
			continue
		}
		kept = append(kept, i)
		headers = append(headers, trimmed)
	}
	if len(kept) == 0 {
		return nil, ErrNoUsableColumns
	}

	stats := Stats{
		OriginalColumns: len(header),
		OriginalRows:    len(rows) - 1,
		RemovedColumns:  len(header) - len(kept),
	}

	out := make([][]string, 0, len(rows)-1)
	for _, src := range rows[1:] {
		// Pad short rows, never truncate-error.
		row := make([]string, len(kept))
		empty := true
		for j, idx := range kept {
			var v string
			if idx < len(src) {
				v = src[idx]
			}
			row[j] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if empty {
			stats.RemovedEmptyRows++
			continue
		}
		out = append(out, row)
	}

	return &Normalized{
		Table: Table{Headers: headers, Rows: out},
		Stats: stats,
	}, nil
}

// ParseAndNormalize is the common parse-then-normalize path for raw
// upload text.
func ParseAndNormalize(text string) (*Normalized, error) {
	rows, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Normalize(rows)
}
