// SPDX-License-Identifier: MIT
// Package matrix provides the complex linear-algebra kernels used by the
// T-matrix code: products, conjugate transposes, element-wise sums and
// scalings. All kernels perform strict fail-fast validation and return
// freshly allocated results; operands are never mutated.
//
// Notes:
//   - Products go through gonum's cblas128 (Zgemm/Zgemv), element-wise work
//     through gonum's cmplxs. Both use fixed loop orders, so results are
//     reproducible for equal inputs.
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
)

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opMulConjTrans  = "MulConjTrans"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opScale         = "Scale"
	opScaleRows     = "ScaleRows"
	opMatVec        = "MatVec"
	opConjTransVec  = "ConjTransVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := NewDense(a.Shape())
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	cmplxs.AddTo(res.data(), a.data(), b.data())

	return res, nil
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := NewDense(a.Shape())
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	cmplxs.SubTo(res.data(), a.data(), b.data())

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Allocate C and run cblas128.Gemm(NoTrans, NoTrans).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.raw(), b.raw(), 0, res.raw())

	return res, nil
}

// MulConjTrans computes C = Aᴴ × B without materialising Aᴴ.
// A is r×m, B is r×n, C is m×n.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Rows != B.Rows).
//
// Complexity:
//   - Time O(r*m*n), Space O(m*n).
func MulConjTrans(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulConjTrans, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulConjTrans, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opMulConjTrans, ErrDimensionMismatch)
	}
	res, err := NewDense(a.Cols(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMulConjTrans, err)
	}
	cblas128.Gemm(blas.ConjTrans, blas.NoTrans, 1, a.raw(), b.raw(), 0, res.raw())

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.m.Copy(m.m.T())

	return res, nil
}

// ConjTranspose returns the conjugate transpose mᴴ.
// Complexity: Time O(r*c), Space O(r*c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	res, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	res.m.Copy(m.m.H())

	return res, nil
}

// Scale returns alpha*m.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.Shape())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	cmplxs.ScaleTo(res.data(), alpha, m.data())

	return res, nil
}

// ScaleRows returns diag(d)·m, i.e. row i multiplied by d[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(d) != Rows).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleRows(m *Dense, d []complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(d, m.Rows()); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	res := m.Clone()
	rows, cols := m.Shape()
	buf := res.data()
	for i := 0; i < rows; i++ {
		cmplxs.Scale(d[i], buf[i*cols:(i+1)*cols])
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]complex128, m.Rows())
	cblas128.Gemv(blas.NoTrans, 1, m.raw(),
		cblas128.Vector{N: len(x), Inc: 1, Data: x}, 0,
		cblas128.Vector{N: len(y), Inc: 1, Data: y})

	return y, nil
}

// ConjTransVec computes y = mᴴ·x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Complexity: Time O(r*c), Space O(c) for y.
func ConjTransVec(m *Dense, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTransVec, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opConjTransVec, err)
	}
	y := make([]complex128, m.Cols())
	cblas128.Gemv(blas.ConjTrans, 1, m.raw(),
		cblas128.Vector{N: len(x), Inc: 1, Data: x}, 0,
		cblas128.Vector{N: len(y), Inc: 1, Data: y})

	return y, nil
}

// MaxAbs returns max |m[i,j]|, or 0 for a nil matrix.
func MaxAbs(m *Dense) float64 {
	if ValidateNotNil(m) != nil {
		return 0
	}
	best := 0.0
	for _, v := range m.data() {
		if a := cmplx.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// EqualApprox reports whether a and b have the same shape and every pair of
// entries agrees within tol (absolute or relative, per cmplxs.EqualApprox).
func EqualApprox(a, b *Dense, tol float64) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}

	return cmplxs.EqualApprox(a.data(), b.data(), tol)
}
