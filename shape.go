package microagg1d

import "fmt"

// Squeeze reduces a matrix with a single row or a single column to a vector.
// data is a slice of rows. It returns ErrBadShape for ragged input, for a
// matrix with more than one row and more than one column, and for a result
// with no elements.
func Squeeze(data [][]float64) ([]float64, error) {
	rows := len(data)
	if rows == 0 {
		return nil, fmt.Errorf("%w: got 0 rows", ErrBadShape)
	}
	cols := len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrBadShape, i, len(row), cols)
		}
	}
	if cols == 0 {
		return nil, fmt.Errorf("%w: got %d rows with 0 columns", ErrBadShape, rows)
	}

	switch {
	case rows == 1:
		out := make([]float64, cols)
		copy(out, data[0])
		return out, nil
	case cols == 1:
		out := make([]float64, rows)
		for i, row := range data {
			out[i] = row[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %d×%d matrix", ErrBadShape, rows, cols)
	}
}
