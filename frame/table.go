package frame

import (
	"fmt"
	"strconv"
)

// Table is a two-dimensional float64 container with a row index and column
// labels. Data is stored column-major. Tables are immutable: every operation
// returns a new Table.
type Table struct {
	index   *Index
	columns *Index
	data    [][]float64 // data[col][row]
}

// New creates a table from column slices. A nil index becomes RangeIndex and
// nil columns become "0", "1", .... The input slices are copied.
func New(index *Index, columns []string, data [][]float64) (*Table, error) {
	nrows := 0
	if len(data) > 0 {
		nrows = len(data[0])
	}
	if index == nil {
		index = RangeIndex(nrows)
	}
	if columns == nil {
		columns = positionalLabels(len(data))
	}

	if len(columns) != len(data) {
		return nil, fmt.Errorf("%w: %d column labels for %d columns", ErrShapeMismatch, len(columns), len(data))
	}
	for c, col := range data {
		if len(col) != index.Len() {
			return nil, fmt.Errorf("%w: column %q has %d values, index has %d labels", ErrShapeMismatch, columns[c], len(col), index.Len())
		}
	}

	return newTable(index, NewStringIndex(columns), copyData(data)), nil
}

// FromRows creates a table from row slices.
func FromRows(index *Index, columns []string, rows [][]float64) (*Table, error) {
	ncols := len(columns)
	if columns == nil && len(rows) > 0 {
		ncols = len(rows[0])
	}
	data := make([][]float64, ncols)
	for c := range data {
		data[c] = make([]float64, len(rows))
	}
	for r, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, r, len(row), ncols)
		}
		for c, v := range row {
			data[c][r] = v
		}
	}
	if index == nil {
		index = RangeIndex(len(rows))
	}
	return New(index, columns, data)
}

// Empty creates an all-missing table with the given labels. A nil index
// becomes an empty RangeIndex.
func Empty(index *Index, columns []string) *Table {
	if index == nil {
		index = RangeIndex(0)
	}
	data := make([][]float64, len(columns))
	for c := range data {
		data[c] = make([]float64, index.Len())
		fillMissing(data[c])
	}
	return newTable(index, NewStringIndex(columns), data)
}

func newTable(index, columns *Index, data [][]float64) *Table {
	return &Table{index: index, columns: columns, data: data}
}

func positionalLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

func copyData(data [][]float64) [][]float64 {
	out := make([][]float64, len(data))
	for c, col := range data {
		out[c] = make([]float64, len(col))
		copy(out[c], col)
	}
	return out
}

// Index returns the row index.
func (t *Table) Index() *Index { return t.index }

// ColumnIndex returns the column labels as an Index.
func (t *Table) ColumnIndex() *Index { return t.columns }

// Columns returns the column labels.
func (t *Table) Columns() []string { return t.columns.Strings() }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.index.Len() }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.data) }

// Shape returns rows and columns.
func (t *Table) Shape() (int, int) { return t.NumRows(), t.NumCols() }

// At returns the value at row r and column c.
func (t *Table) At(r, c int) float64 { return t.data[c][r] }

// ColumnAt returns a copy of the c-th column.
func (t *Table) ColumnAt(c int) []float64 {
	out := make([]float64, len(t.data[c]))
	copy(out, t.data[c])
	return out
}

// Column returns a copy of the column labelled name.
func (t *Table) Column(name string) ([]float64, bool) {
	for c := 0; c < t.columns.Len(); c++ {
		if t.columns.Label(c) == name {
			return t.ColumnAt(c), true
		}
	}
	return nil, false
}

// Row returns a copy of the r-th row.
func (t *Table) Row(r int) []float64 {
	out := make([]float64, len(t.data))
	for c, col := range t.data {
		out[c] = col[r]
	}
	return out
}

// Copy returns a deep copy of the table. Indexes are shared since they are
// immutable.
func (t *Table) Copy() *Table {
	return newTable(t.index, t.columns, copyData(t.data))
}

// Transpose swaps rows and columns, including their labels.
func (t *Table) Transpose() *Table {
	nrows := t.NumRows()
	data := make([][]float64, nrows)
	for r := range data {
		data[r] = t.Row(r)
	}
	return newTable(t.columns, t.index, data)
}

// CountMissing returns the number of missing cells.
func (t *Table) CountMissing() int {
	n := 0
	for _, col := range t.data {
		for _, v := range col {
			if IsMissing(v) {
				n++
			}
		}
	}
	return n
}
