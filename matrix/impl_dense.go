// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, complex128) & safe accessors.
//
// Purpose:
//   - Wrap gonum's mat.CDense so the rest of the module never touches gonum types.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Reject NaN/Inf on ingestion so persisted and built operators stay finite.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Column/Row: O(r) / O(c).

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxColumn = "Column" // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so errors.Is keeps working.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - m is the gonum backing store; its stride always equals its column count
//     because every Dense is freshly allocated (no views are handed out).
//   - validateNaNInf enables NaN/Inf rejection in Set and NewDenseFrom.
type Dense struct {
	m              *mat.CDense // contiguous row-major storage
	validateNaNInf bool        // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled CDense and set the default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape before touching gonum, which panics on zero sizes.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		m:              mat.NewCDense(rows, cols, nil),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix from row-major data. The slice is copied,
// so later mutations of data do not leak into the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols are non-positive.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when a component is not finite.
func NewDenseFrom(rows, cols int, data []complex128) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	buf := make([]complex128, len(data))
	for idx, v := range data {
		if DefaultValidateNaNInf && isNonFinite(v) {
			return nil, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf)
		}
		buf[idx] = v
	}

	return &Dense{
		m:              mat.NewCDense(rows, cols, buf),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
func (d *Dense) Rows() int { r, _ := d.m.Dims(); return r }

// Cols returns the column count. No side effects.
func (d *Dense) Cols() int { _, c := d.m.Dims(); return c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (d *Dense) Shape() (rows, cols int) { return d.m.Dims() }

// raw exposes the cblas128 view of the backing store for the kernels.
func (d *Dense) raw() cblas128.General { return d.m.RawCMatrix() }

// data returns the flat row-major backing slice (no copy).
func (d *Dense) data() []complex128 { return d.m.RawCMatrix().Data }

// checkIndex bounds-checks (row,col) and wraps ErrOutOfRange with the method tag.
func (d *Dense) checkIndex(method string, row, col int) error {
	r, c := d.m.Dims()
	if row < 0 || row >= r || col < 0 || col >= c {
		return denseErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (d *Dense) At(row, col int) (complex128, error) {
	if err := d.checkIndex(ctxAt, row, col); err != nil {
		return 0, err
	}

	return d.m.At(row, col), nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange, ErrNaNInf (when the numeric policy is on).
// Complexity: O(1).
func (d *Dense) Set(row, col int, v complex128) error {
	if err := d.checkIndex(ctxSet, row, col); err != nil {
		return err
	}
	if d.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	d.m.Set(row, col, v)

	return nil
}

// Clone returns a deep copy that shares no storage with d.
// Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	r, c := d.m.Dims()
	buf := make([]complex128, r*c)
	copy(buf, d.data())

	return &Dense{m: mat.NewCDense(r, c, buf), validateNaNInf: d.validateNaNInf}
}

// Column returns a copy of column j.
func (d *Dense) Column(j int) ([]complex128, error) {
	r, c := d.m.Dims()
	if j < 0 || j >= c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		out[i] = d.m.At(i, j)
	}

	return out, nil
}

// Row returns a copy of row i.
func (d *Dense) Row(i int) ([]complex128, error) {
	r, c := d.m.Dims()
	if i < 0 || i >= r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]complex128, c)
	copy(out, d.data()[i*c:(i+1)*c])

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (d *Dense) String() string {
	r, c := d.m.Dims()
	var sb strings.Builder
	for i := 0; i < r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			fmt.Fprintf(&sb, "%g", d.m.At(i, j))
			if j < c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isNonFinite reports whether either component of v is NaN or ±Inf.
func isNonFinite(v complex128) bool {
	if cmplx.IsNaN(v) {
		return true
	}

	return math.IsInf(real(v), 0) || math.IsInf(imag(v), 0)
}
