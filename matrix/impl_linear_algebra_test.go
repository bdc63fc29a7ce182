package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// mustDense builds a row-major Dense or fails the test.
func mustDense(t *testing.T, r, c int, data ...complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

func TestAddSub(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2i, 3, 4)
	b := mustDense(t, 2, 2, 1i, 1, 1, -4)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(sum, mustDense(t, 2, 2, 1+1i, 1+2i, 4, 0), tol))

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(diff, mustDense(t, 2, 2, 1-1i, -1+2i, 2, 8), tol))

	_, err = matrix.Add(a, mustDense(t, 1, 2, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustDense(t, 3, 1, 1i, 0, -1)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(c, mustDense(t, 2, 1, -3+1i, -6+4i), tol))

	_, err = matrix.Mul(b, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulConjTransMatchesExplicit(t *testing.T) {
	a := mustDense(t, 2, 2, 1+1i, 2, -1i, 3-2i)
	b := mustDense(t, 2, 3, 1, 2, 3, 1i, 2i, 3i)

	got, err := matrix.MulConjTrans(a, b)
	require.NoError(t, err)

	ah, err := matrix.ConjTranspose(a)
	require.NoError(t, err)
	want, err := matrix.Mul(ah, b)
	require.NoError(t, err)

	assert.True(t, matrix.EqualApprox(got, want, tol))

	_, err = matrix.MulConjTrans(a, mustDense(t, 3, 1, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposes(t *testing.T) {
	m := mustDense(t, 2, 3, 1, 2i, 3, 4, 5, 6-1i)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(tr, mustDense(t, 3, 2, 1, 4, 2i, 5, 3, 6-1i), tol))

	h, err := matrix.ConjTranspose(m)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(h, mustDense(t, 3, 2, 1, 4, -2i, 5, 3, 6+1i), tol))
}

func TestScaleAndScaleRows(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 2, 3, 4)

	s, err := matrix.Scale(m, 1i)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(s, mustDense(t, 2, 2, 1i, 2i, 3i, 4i), tol))

	r, err := matrix.ScaleRows(m, []complex128{2, -1i})
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(r, mustDense(t, 2, 2, 2, 4, -3i, -4i), tol))

	// The operand must be untouched.
	v, _ := m.At(1, 1)
	assert.Equal(t, complex128(4), v)

	_, err = matrix.ScaleRows(m, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 1i, 2, 0)

	y, err := matrix.MatVec(m, []complex128{1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, []float64{real(y[0]), real(y[1])}, tol)
	assert.InDeltaSlice(t, []float64{1, 0}, []float64{imag(y[0]), imag(y[1])}, tol)

	z, err := matrix.ConjTransVec(m, []complex128{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, -1i}, z)

	_, err = matrix.MatVec(m, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ConjTransVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIdentityDiagonalMaxAbs(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, matrix.MaxAbs(id))

	d, err := matrix.NewDiagonal([]complex128{3 + 4i, -1})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, matrix.MaxAbs(d), tol)
	assert.Equal(t, 0.0, matrix.MaxAbs(nil))

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
