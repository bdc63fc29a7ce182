package tmatrix_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/katalvlaran/tmatrom/tmatrix"
	"github.com/katalvlaran/tmatrom/wavefunction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// sample returns a deterministic (2N+1)² matrix with distinct entries.
func sample(t *testing.T, order int) *matrix.Dense {
	t.Helper()
	side := 2*order + 1
	data := make([]complex128, side*side)
	for i := range data {
		data[i] = complex(math.Sin(float64(i)+0.5)/3, math.Cos(float64(3*i))/7)
	}
	m, err := matrix.NewDenseFrom(side, side, data)
	require.NoError(t, err)

	return m
}

func TestNewValidation(t *testing.T) {
	m := sample(t, 1)

	_, err := tmatrix.New(2, 1, m)
	require.ErrorIs(t, err, tmatrix.ErrShape)
	_, err = tmatrix.New(-1, 1, m)
	require.ErrorIs(t, err, tmatrix.ErrShape)
	_, err = tmatrix.New(1, 1, nil)
	require.ErrorIs(t, err, tmatrix.ErrShape)
	_, err = tmatrix.New(1, 0, m)
	require.ErrorIs(t, err, tmatrix.ErrWavenumber)

	tm, err := tmatrix.New(1, 2.5, m, tmatrix.WithOrigin(1-2i), tmatrix.WithComments("disc"))
	require.NoError(t, err)
	assert.Equal(t, 1, tm.Order())
	assert.Equal(t, 3, tm.Size())
	assert.Equal(t, 2.5, tm.Wavenumber())
	assert.Equal(t, 1-2i, tm.Origin())
	assert.Equal(t, "disc", tm.Comments())
}

func TestMatrixIsNeverShared(t *testing.T) {
	m := sample(t, 1)
	tm, err := tmatrix.New(1, 1, m)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 100))
	got := tm.Matrix()
	v, _ := got.At(0, 0)
	assert.NotEqual(t, complex128(100), v)

	require.NoError(t, got.Set(1, 1, 42))
	again, _ := tm.Matrix().At(1, 1)
	assert.NotEqual(t, complex128(42), again)
}

// T·e_n recovers column n of T.
func TestApplyRecoversColumns(t *testing.T) {
	const order = 2
	m := sample(t, order)
	tm, err := tmatrix.New(order, 1.5, m, tmatrix.WithOrigin(0.5i))
	require.NoError(t, err)

	for n := -order; n <= order; n++ {
		v, err := wavefunction.UnitVector(order, n)
		require.NoError(t, err)
		e, err := wavefunction.NewRegularExpansion(1.5, 0.5i, v)
		require.NoError(t, err)

		r, err := e.Transform(tm)
		require.NoError(t, err)
		col, err := tm.Column(n + order)
		require.NoError(t, err)

		got := r.Vector()
		for i := range col {
			assert.InDelta(t, 0.0, cmplx.Abs(got[i]-col[i]), tol)
		}
		assert.Equal(t, 0.5i, r.Origin())
		assert.Equal(t, 1.5, r.Wavenumber())
	}
}

func TestApplyIncompatible(t *testing.T) {
	tm, err := tmatrix.New(1, 2, sample(t, 1))
	require.NoError(t, err)

	cases := []struct {
		name      string
		k         float64
		origin    complex128
		v         wavefunction.Vector
		attribute string
	}{
		{"wavenumber", 2.0000001, 0, wavefunction.Vector{1, 2, 3}, "wavenumber"},
		{"origin", 2, 1e-15, wavefunction.Vector{1, 2, 3}, "origin"},
		{"order", 2, 0, wavefunction.Vector{1, 2, 3, 4, 5}, "order"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := wavefunction.NewRegularExpansion(tc.k, tc.origin, tc.v)
			require.NoError(t, err)

			_, err = tm.Apply(e)
			require.ErrorIs(t, err, tmatrix.ErrIncompatible)
			var ie *tmatrix.IncompatibleError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tc.attribute, ie.Attribute)
		})
	}
}

func TestSetOriginOnlyChangesCompatibility(t *testing.T) {
	m := sample(t, 0)
	tm, err := tmatrix.New(0, 1, m)
	require.NoError(t, err)

	e, err := wavefunction.NewRegularExpansion(1, 3, wavefunction.Vector{1})
	require.NoError(t, err)
	_, err = tm.Apply(e)
	require.ErrorIs(t, err, tmatrix.ErrIncompatible)

	tm.SetOrigin(3)
	tm.SetComments("moved")
	r, err := tm.Apply(e)
	require.NoError(t, err)
	want, _ := m.At(0, 0)
	assert.Equal(t, wavefunction.Vector{want}, r.Vector())
	assert.True(t, matrix.EqualApprox(m, tm.Matrix(), 0))
	assert.Equal(t, "moved", tm.Comments())
}

func scalar(t *testing.T, v complex128) *tmatrix.TMatrix {
	t.Helper()
	m, err := matrix.NewDenseFrom(1, 1, []complex128{v})
	require.NoError(t, err)
	tm, err := tmatrix.New(0, 1, m)
	require.NoError(t, err)

	return tm
}

// t = −½(1 − i) satisfies t + t̄ + 2|t|² = 0; a real perturbation δ leaves a
// residual of exactly 2δ².
func TestSymmetryErrorToy(t *testing.T) {
	exact := complex(-0.5, 0.5)
	e0, err := scalar(t, exact).SymmetryError(false)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, e0, 1e-15)

	prev := e0
	for _, d := range []float64{1e-4, 1e-3, 1e-2, 1e-1} {
		e, err := scalar(t, exact+complex(d, 0)).SymmetryError(false)
		require.NoError(t, err)
		assert.Greater(t, e, prev)
		assert.InDelta(t, 2*d*d, e, 1e-12)
		prev = e
	}

	rel, err := scalar(t, exact+0.1).SymmetryError(true)
	require.NoError(t, err)
	assert.InDelta(t, 0.02/cmplx.Abs(exact+0.1), rel, 1e-12)

	zero, err := scalar(t, 0).SymmetryError(true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)
}

// A diagonal T with entries −Jₙ/Hₙ-like values (tₙ = −a/(a+ib)) is unitary.
func TestSymmetryErrorDiagonal(t *testing.T) {
	d := make([]complex128, 5)
	for i := range d {
		a, b := 0.3+0.1*float64(i), -1.2+0.4*float64(i)
		d[i] = -complex(a, 0) / complex(a, b)
	}
	m, err := matrix.NewDiagonal(d)
	require.NoError(t, err)
	tm, err := tmatrix.New(2, 3, m)
	require.NoError(t, err)

	e, err := tm.SymmetryError(true)
	require.NoError(t, err)
	assert.Less(t, e, 1e-14)
}

func TestSuggestedOrder(t *testing.T) {
	assert.Equal(t, 8, tmatrix.SuggestedOrder(1, 1))
	assert.Equal(t, 2, tmatrix.SuggestedOrder(0, 1))
	assert.GreaterOrEqual(t, tmatrix.SuggestedOrder(10, 1), 10)
}

func TestString(t *testing.T) {
	tm := scalar(t, 1)
	assert.Equal(t, "TMatrix{order=0 k=1 origin=(0+0i)}", tm.String())
}
