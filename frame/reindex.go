package frame

import "fmt"

// Reindex conforms t to target. Rows whose label exists in t are copied;
// labels absent from t become all-missing rows. t's labels must be unique
// unless target equals t's index.
func Reindex(t *Table, target *Index) (*Table, error) {
	if t.index.Equal(target) {
		return newTable(target, t.columns, copyData(t.data)), nil
	}
	if !t.index.IsUnique() {
		return nil, ErrDuplicateLabels
	}
	if t.index.Len() > 0 && target.Len() > 0 && t.index.Kind() != target.Kind() {
		return nil, fmt.Errorf("%w: cannot align %s labels onto %s labels", ErrShapeMismatch, t.index.Kind(), target.Kind())
	}

	src := t.index.positions()
	data := make([][]float64, t.NumCols())
	for c := range data {
		data[c] = make([]float64, target.Len())
	}
	for r := 0; r < target.Len(); r++ {
		p, ok := src[target.key(r)]
		for c := range data {
			if ok {
				data[c][r] = t.data[c][p]
			} else {
				data[c][r] = Missing()
			}
		}
	}
	return newTable(target, t.columns, data), nil
}

// DropDuplicateLabels keeps the first row for each row label.
func DropDuplicateLabels(t *Table) *Table {
	dup := t.index.Duplicated()
	keep := make([]int, 0, len(dup))
	for i, d := range dup {
		if !d {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(dup) {
		return t
	}

	data := make([][]float64, t.NumCols())
	for c, col := range t.data {
		data[c] = make([]float64, len(keep))
		for i, p := range keep {
			data[c][i] = col[p]
		}
	}
	return newTable(t.index.take(keep), t.columns, data)
}
