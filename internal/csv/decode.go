// Package csv implements the textual table format used by this module:
// comma-separated fields, newline-separated rows, double-quote quoting with
// doubling-escape. A field is quoted only when it contains a comma or a
// newline or begins with a quote; a quote anywhere else in an unquoted field
// is taken verbatim.
package csv

import "strings"

// Parse decodes text into a header row and data rows.
//
// The first row is always the header and is adopted verbatim. For data rows,
// a last field that decodes to the empty string is dropped, so a line
// consisting only of a newline produces no row. Parsing is all-or-nothing:
// every data row must have exactly as many fields as the header, and a
// mismatch returns a *ShapeError with the 1-based data row index.
//
// Empty input yields empty columns and rows.
func Parse(text string) (columns []string, rows [][]string, err error) {
	if text == "" {
		return nil, nil, nil
	}

	d := &decoder{src: text, line: 1}

	columns, err = d.readRecord()
	if err != nil {
		return nil, nil, err
	}

	for !d.done() {
		record, err := d.readRecord()
		if err != nil {
			return nil, nil, err
		}

		// Drop a trailing empty field. This applies to data rows only, never
		// to the header.
		if n := len(record); n > 0 && record[n-1] == "" {
			record = record[:n-1]
		}
		if len(record) == 0 {
			continue
		}
		rows = append(rows, record)
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, nil, &ShapeError{Row: i + 1, Want: len(columns), Got: len(row)}
		}
	}

	return columns, rows, nil
}

// decoder walks the source text once, tracking the current line for errors.
type decoder struct {
	src  string
	pos  int
	line int
}

func (d *decoder) done() bool {
	return d.pos >= len(d.src)
}

// readRecord decodes one row, consuming its terminating newline if present.
func (d *decoder) readRecord() ([]string, error) {
	var fields []string
	for {
		field, sep, err := d.readField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if sep != ',' {
			// Newline or end of text: the row is complete.
			return fields, nil
		}
	}
}

// readField decodes one field and consumes its separator. sep is ',' when
// another field follows on the same row, '\n' at end of row, and 0 at end of
// text.
func (d *decoder) readField() (field string, sep byte, err error) {
	if d.pos < len(d.src) && d.src[d.pos] == '"' {
		return d.readQuoted()
	}

	// Unquoted: everything up to the next comma or newline, verbatim,
	// including any interior quote characters.
	start := d.pos
	for d.pos < len(d.src) {
		switch d.src[d.pos] {
		case ',':
			field = d.src[start:d.pos]
			d.pos++
			return field, ',', nil
		case '\n':
			field = d.src[start:d.pos]
			d.pos++
			d.line++
			return field, '\n', nil
		}
		d.pos++
	}
	return d.src[start:], 0, nil
}

// readQuoted decodes a quoted field. A doubled quote inside is an escaped
// literal quote; the first lone quote closes the field and must be followed
// by a separator, a newline, or the end of the text.
func (d *decoder) readQuoted() (field string, sep byte, err error) {
	var b strings.Builder
	d.pos++ // opening quote

	for d.pos < len(d.src) {
		c := d.src[d.pos]
		if c == '"' {
			if d.pos+1 < len(d.src) && d.src[d.pos+1] == '"' {
				b.WriteByte('"')
				d.pos += 2
				continue
			}
			d.pos++ // closing quote
			if d.pos >= len(d.src) {
				return b.String(), 0, nil
			}
			switch d.src[d.pos] {
			case ',':
				d.pos++
				return b.String(), ',', nil
			case '\n':
				d.pos++
				d.line++
				return b.String(), '\n', nil
			}
			return "", 0, &ParseError{Line: d.line, Err: ErrQuote}
		}
		if c == '\n' {
			d.line++
		}
		b.WriteByte(c)
		d.pos++
	}
	return "", 0, &ParseError{Line: d.line, Err: ErrUnterminated}
}
