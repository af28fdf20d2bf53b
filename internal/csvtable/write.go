package csvtable

import "strings"

// String serializes the table back to CSV text. Cells are quoted only
// when they contain a comma, quote, CR, LF, or leading/trailing
// whitespace; embedded quotes are doubled. Rows are joined with \r\n and
// the output carries a trailing \r\n. Re-parsing and re-normalizing the
// output of an already-normalized table yields an identical table.
func (t Table) String() string {
	var b strings.Builder
	writeRow(&b, t.Headers)
	for _, row := range t.Rows {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(encodeCell(cell))
	}
	b.WriteString("\r\n")
}

func encodeCell(cell string) string {
	if !needsQuoting(cell) {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func needsQuoting(cell string) bool {
	if cell == "" {
		return false
	}
	if strings.ContainsAny(cell, ",\"\r\n") {
		return true
	}
	return cell != strings.TrimSpace(cell)
}
