// SPDX-License-Identifier: MIT
// Package matrix — constructors and flattening facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Own the column-major flattening used by every persisted T-matrix format,
//     so writers and readers cannot drift apart.

package matrix

// NewIdentity returns I_n (n×n identity).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.m.Set(i, i, 1)
	}

	return id, nil
}

// NewDiagonal returns the square matrix with d on its diagonal.
func NewDiagonal(d []complex128) (*Dense, error) {
	m, err := NewDense(len(d), len(d))
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if err = m.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ColumnMajor flattens m column by column: out[j*rows+i] = m[i,j].
// Complexity: O(r*c).
func ColumnMajor(m *Dense) []complex128 {
	rows, cols := m.Shape()
	out := make([]complex128, 0, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out = append(out, m.m.At(i, j))
		}
	}

	return out
}

// FromColumnMajor is the inverse of ColumnMajor.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
func FromColumnMajor(rows, cols int, data []complex128) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	rowMajor := make([]complex128, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			rowMajor[i*cols+j] = data[j*rows+i]
		}
	}

	return NewDenseFrom(rows, cols, rowMajor)
}
