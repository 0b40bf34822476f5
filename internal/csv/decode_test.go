package csv

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantCols []string
		wantRows [][]string
	}{
		{
			name:     "emptyInput",
			input:    "",
			wantCols: nil,
			wantRows: nil,
		},
		{
			name:     "headerOnly",
			input:    "column1,column2,column3",
			wantCols: []string{"column1", "column2", "column3"},
			wantRows: nil,
		},
		{
			name:     "basicRows",
			input:    "a,b\n1,2\n3,4",
			wantCols: []string{"a", "b"},
			wantRows: [][]string{{"1", "2"}, {"3", "4"}},
		},
		{
			name:     "finalNewlineProducesNoRow",
			input:    "a,b\n1,2\n",
			wantCols: []string{"a", "b"},
			wantRows: [][]string{{"1", "2"}},
		},
		{
			name:     "blankLineProducesNoRow",
			input:    "a,b\n\n1,2",
			wantCols: []string{"a", "b"},
			wantRows: [][]string{{"1", "2"}},
		},
		{
			name:     "quotedComma",
			input:    "a,b\n\"1,5\",2",
			wantCols: []string{"a", "b"},
			wantRows: [][]string{{"1,5", "2"}},
		},
		{
			name:     "quotedNewline",
			input:    "a,b\n\"line1\nline2\",2",
			wantCols: []string{"a", "b"},
			wantRows: [][]string{{"line1\nline2", "2"}},
		},
		{
			name:     "escapedQuote",
			input:    "a\n\"\"\"ab\"",
			wantCols: []string{"a"},
			wantRows: [][]string{{"\"ab"}},
		},
		{
			name:     "interiorQuoteUnquotedField",
			input:    "a,b\n1\"5,2",
			wantCols: []string{"a", "b"},
			wantRows: [][]string{{"1\"5", "2"}},
		},
		{
			name:     "trailingEmptyFieldDropped",
			input:    "a\nx,",
			wantCols: []string{"a"},
			wantRows: [][]string{{"x"}},
		},
		{
			name:     "headerKeepsTrailingEmptyName",
			input:    "a,b,\n1,2,3",
			wantCols: []string{"a", "b", ""},
			wantRows: [][]string{{"1", "2", "3"}},
		},
		{
			name:     "quotedFieldAtEndOfText",
			input:    "a\n\"x\"",
			wantCols: []string{"a"},
			wantRows: [][]string{{"x"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cols, rows, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			if !reflect.DeepEqual(cols, tc.wantCols) {
				t.Fatalf("columns: expected %#v, got %#v", tc.wantCols, cols)
			}
			if !reflect.DeepEqual(rows, tc.wantRows) {
				t.Fatalf("rows: expected %#v, got %#v", tc.wantRows, rows)
			}
		})
	}
}

// TestParseExample walks the documented end-to-end example: parse a small
// table and check every cell, then make sure serializing it reproduces the
// input byte for byte.
func TestParseExample(t *testing.T) {
	input := "name,age,height,mass\nCarlos,34,1.87,93\nFabiano,94,1.94,122\nNicole,16,1.67,75"

	cols, rows, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	wantCols := []string{"name", "age", "height", "mass"}
	if !reflect.DeepEqual(cols, wantCols) {
		t.Fatalf("columns: expected %v, got %v", wantCols, cols)
	}

	wantRows := [][]string{
		{"Carlos", "34", "1.87", "93"},
		{"Fabiano", "94", "1.94", "122"},
		{"Nicole", "16", "1.67", "75"},
	}
	if !reflect.DeepEqual(rows, wantRows) {
		t.Fatalf("rows: expected %v, got %v", wantRows, rows)
	}

	if out := Serialize(cols, rows); out != input {
		t.Fatalf("round trip: expected %q, got %q", input, out)
	}
}

func TestParseShapeMismatch(t *testing.T) {
	_, _, err := Parse("a,b\n1,2\n3")
	if err == nil {
		t.Fatalf("expected ShapeError, got nil")
	}

	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected *ShapeError, got %T: %v", err, err)
	}
	if shapeErr.Row != 2 || shapeErr.Want != 2 || shapeErr.Got != 1 {
		t.Fatalf("expected row 2 want 2 got 1, got %+v", shapeErr)
	}
}

// A trailing empty field is dropped even when quoted, which shortens the row
// and trips the shape check.
func TestParseQuotedTrailingEmptyFieldDropped(t *testing.T) {
	_, _, err := Parse("a,b\n1,\"\"")
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected *ShapeError, got %T: %v", err, err)
	}
	if shapeErr.Row != 1 || shapeErr.Want != 2 || shapeErr.Got != 1 {
		t.Fatalf("expected row 1 want 2 got 1, got %+v", shapeErr)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{
			name:     "characterAfterClosingQuote",
			input:    "a\n\"x\"y",
			wantErr:  ErrQuote,
			wantLine: 2,
		},
		{
			name:     "unterminatedQuote",
			input:    "a\n\"x",
			wantErr:  ErrUnterminated,
			wantLine: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Line != tc.wantLine {
				t.Fatalf("expected line %d, got %d", tc.wantLine, parseErr.Line)
			}
		})
	}
}
