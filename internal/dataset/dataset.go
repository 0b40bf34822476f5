// Package dataset models a tabular dataset: fixed, ordered column names and
// row-major string data. It delegates text conversion to the csv codec and
// persistence to a byte store.
package dataset

import (
	"context"
	"errors"

	"csvtable/internal/csv"
	"csvtable/internal/store"
)

// Dataset owns one column set and an ordered sequence of rows. Every row has
// exactly as many cells as there are columns; the column set is fixed for the
// life of the dataset and rows can only be replaced wholesale.
//
// A Dataset is not safe for concurrent mutation. Callers sharing one must
// serialize access externally.
type Dataset struct {
	cols []string
	rows [][]string
}

// New creates a dataset from column names and optional initial rows. Both are
// deep-copied, so later changes to the caller's slices cannot reach the
// dataset. A row whose length differs from the column count fails
// construction with a *csv.ShapeError naming the 1-based row index.
func New(columns []string, rows [][]string) (*Dataset, error) {
	checked, err := copyRows(rows, len(columns))
	if err != nil {
		return nil, err
	}
	return &Dataset{
		cols: append([]string(nil), columns...),
		rows: checked,
	}, nil
}

// FromText builds a dataset from file text. Parsing is all-or-nothing: on any
// error no dataset is produced.
func FromText(text string) (*Dataset, error) {
	cols, rows, err := csv.Parse(text)
	if err != nil {
		return nil, err
	}
	// Parse returns freshly allocated slices, so they can be adopted as-is.
	return &Dataset{cols: cols, rows: rows}, nil
}

// Load reads the named resource from the store and parses it. Store failures
// surface as *store.AccessError.
func Load(ctx context.Context, st store.Store, name string) (*Dataset, error) {
	text, err := st.ReadAll(ctx, name)
	if err != nil {
		return nil, accessErr(store.OpRead, name, err)
	}
	return FromText(text)
}

// Columns returns a copy of the column names.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.cols...)
}

// Rows returns a deep copy of the row data.
func (d *Dataset) Rows() [][]string {
	out := make([][]string, len(d.rows))
	for i, r := range d.rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// Len reports the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Width reports the number of columns.
func (d *Dataset) Width() int {
	return len(d.cols)
}

// SetRows replaces all rows. Every new row is validated and copied before
// anything is swapped in, so on failure the dataset keeps its current rows
// untouched.
func (d *Dataset) SetRows(rows [][]string) error {
	checked, err := copyRows(rows, len(d.cols))
	if err != nil {
		return err
	}
	d.rows = checked
	return nil
}

// Text serializes the dataset through the csv codec.
func (d *Dataset) Text() string {
	return csv.Serialize(d.cols, d.rows)
}

// Save serializes the dataset and writes it to the named resource. Store
// failures surface as *store.AccessError.
func (d *Dataset) Save(ctx context.Context, st store.Store, name string) error {
	if err := st.WriteAll(ctx, name, d.Text()); err != nil {
		return accessErr(store.OpWrite, name, err)
	}
	return nil
}

// copyRows validates each row against width and returns a deep copy.
func copyRows(rows [][]string, width int) ([][]string, error) {
	out := make([][]string, len(rows))
	for i, r := range rows {
		if len(r) != width {
			return nil, &csv.ShapeError{Row: i + 1, Want: width, Got: len(r)}
		}
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

// accessErr wraps a store failure as *store.AccessError unless it already is
// one, so no store error escapes unclassified.
func accessErr(op, name string, err error) error {
	var accErr *store.AccessError
	if errors.As(err, &accErr) {
		return err
	}
	return &store.AccessError{Op: op, Name: name, Err: err}
}
