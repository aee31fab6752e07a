package dataframe

import (
	"fmt"

	"github.com/starpointai/starpoint-go/v1/starpoint"
)

// Frame is a small in-memory table: ordered named columns over appendable
// rows, with column lookup by name. It exists because the embedding column
// holds vector-valued cells, which the typed-series dataframe libraries in
// the Go ecosystem cannot represent.
type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// NewFrame builds an empty frame with the given column order. Column names
// must be unique.
func NewFrame(columns ...string) (*Frame, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, &starpoint.ValidationError{Err: fmt.Errorf("duplicate column %q", name)}
		}
		index[name] = i
	}

	return &Frame{
		columns: columns,
		index:   index,
	}, nil
}

// AppendRow appends one row. The number of values must match the number of
// columns.
func (f *Frame) AppendRow(values ...any) error {
	if len(values) != len(f.columns) {
		return &starpoint.ValidationError{
			Err: fmt.Errorf("row has %d values, frame has %d columns", len(values), len(f.columns)),
		}
	}
	f.rows = append(f.rows, values)
	return nil
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// NumRows returns the number of rows appended so far.
func (f *Frame) NumRows() int {
	return len(f.rows)
}

// HasColumn reports whether the frame has a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns all values of the named column in row order.
func (f *Frame) Column(name string) ([]any, bool) {
	idx, ok := f.index[name]
	if !ok {
		return nil, false
	}

	values := make([]any, 0, len(f.rows))
	for _, row := range f.rows {
		values = append(values, row[idx])
	}
	return values, true
}
