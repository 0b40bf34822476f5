package csv

import "strings"

// Serialize encodes a header row and data rows into a single text blob.
// The header is always written first, rows are joined with '\n', and there is
// no trailing newline; with zero rows the output is exactly the encoded
// header. Serialize is the exact inverse of Parse for any table whose rows do
// not end in an empty cell (Parse drops a trailing empty field).
func Serialize(columns []string, rows [][]string) string {
	var b strings.Builder
	writeRecord(&b, columns)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRecord(&b, row)
	}
	return b.String()
}

func writeRecord(b *strings.Builder, record []string) {
	for i, field := range record {
		if i > 0 {
			b.WriteByte(',')
		}
		writeField(b, field)
	}
}

// writeField encodes a single field, quoting it only when required by the
// dialect and doubling any quote characters inside a quoted field.
func writeField(b *strings.Builder, field string) {
	if !needsQuote(field) {
		b.WriteString(field)
		return
	}
	b.WriteByte('"')
	for i := 0; i < len(field); i++ {
		if field[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(field[i])
	}
	b.WriteByte('"')
}

// needsQuote reports whether a field must be wrapped in quotes: it contains a
// comma or newline, or begins with a quote. A quote at any other position
// does not force quoting.
func needsQuote(field string) bool {
	if strings.HasPrefix(field, `"`) {
		return true
	}
	return strings.ContainsAny(field, ",\n")
}
