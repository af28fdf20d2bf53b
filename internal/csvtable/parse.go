package csvtable

import "strings"

// Parse scans raw CSV text into rows of cells.
//
// The scanner understands double-quoted cells, "" as an escaped quote
// inside a quoted cell, and \n as the only row terminator. Carriage
// returns outside quoted content are ignored, so \r\n line endings work
// without special casing. A quote left open at end of input yields
// ErrMalformed.
func Parse(text string) ([][]string, error) {
	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if inQuotes {
			if ch != '"' {
				cell.WriteByte(ch)
				continue
			}
			if i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
				continue
			}
			inQuotes = false
			continue
		}

		switch ch {
		case '"':
			inQuotes = true
		case ',':
			row = append(row, cell.String())
			cell.Reset()
		case '\n':
			row = append(row, cell.String())
			cell.Reset()
			rows = append(rows, row)
			row = nil
		case '\r':
			// no-op outside quotes
		default:
			cell.WriteByte(ch)
		}
	}

	if inQuotes {
		return nil, ErrMalformed
	}

	// Flush a final row that has no trailing newline.
	if cell.Len() > 0 || len(row) > 0 {
		row = append(row, cell.String())
		rows = append(rows, row)
	}

	return rows, nil
}
