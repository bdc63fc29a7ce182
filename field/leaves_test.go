package field_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/tmatrom/field"
	"github.com/katalvlaran/tmatrom/polar"
	"github.com/katalvlaran/tmatrom/special"
	"github.com/katalvlaran/tmatrom/wavefunction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The Jacobi–Anger expansion reproduces the plane wave near its centre.
func TestPlaneWaveExpansion(t *testing.T) {
	const k = 2.0
	pw, err := field.NewPlaneWave(0.6, k)
	require.NoError(t, err)

	centre := 0.4 - 0.3i
	e, c, err := wavefunction.ExtractRegular(pw, k, centre, 30)
	require.NoError(t, err)
	assert.True(t, c.Complete)

	pts := []complex128{centre + 0.5, centre - 1i, centre + 1 + 1i}
	got, err := e.Evaluate(pts, nil)
	require.NoError(t, err)
	want, err := pw.Evaluate(pts, nil)
	require.NoError(t, err)
	assertClose(t, want, got, 1e-10)
}

func TestPlaneWaveGradient(t *testing.T) {
	pw, err := field.NewPlaneWave(-1.1, 1.7)
	require.NoError(t, err)

	const h = 1e-6
	p := 0.3 + 0.9i
	dx, dy, err := pw.Gradient([]complex128{p}, nil)
	require.NoError(t, err)
	v, err := pw.Evaluate([]complex128{p + h, p - h, p + 1i*h, p - 1i*h}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cmplx.Abs((v[0]-v[1])/(2*h)-dx[0]), 1e-7)
	assert.InDelta(t, 0.0, cmplx.Abs((v[2]-v[3])/(2*h)-dy[0]), 1e-7)

	_, err = pw.Evaluate([]complex128{1}, []bool{true, false})
	require.ErrorIs(t, err, polar.ErrMaskLength)

	_, err = field.NewPlaneWave(0, math.Inf(1))
	require.ErrorIs(t, err, wavefunction.ErrWavenumber)
}

// Graf's theorem: the regular expansion of a point source converges inside
// the disc that excludes the source.
func TestPointSourceExpansion(t *testing.T) {
	const k = 1.3
	y := 3 + 1i
	src, err := field.NewPointSource(y, k)
	require.NoError(t, err)
	assert.Equal(t, y, src.Location())

	e, _, err := wavefunction.ExtractRegular(src, k, 0, 40)
	require.NoError(t, err)

	pts := []complex128{0.5, -0.4i, 1 + 0.5i}
	got, err := e.Evaluate(pts, nil)
	require.NoError(t, err)
	want, err := src.Evaluate(pts, nil)
	require.NoError(t, err)
	assertClose(t, want, got, 1e-9)

	_, err = src.Coefficients(y, 3)
	require.ErrorIs(t, err, polar.ErrSingularPoint)
}

func TestPointSourceValueGradientFarField(t *testing.T) {
	const k = 2.0
	y := -0.5 + 0.5i
	src, err := field.NewPointSource(y, k)
	require.NoError(t, err)

	x := 1.5 + 0.25i
	rho := cmplx.Abs(x - y)
	v, err := src.Evaluate([]complex128{x}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cmplx.Abs(v[0]-special.HankelH1(0, k*rho)), tol)

	dx, dy, err := src.Gradient([]complex128{x}, nil)
	require.NoError(t, err)
	g := -complex(k, 0) * special.HankelH1(1, k*rho) / complex(rho, 0)
	assert.InDelta(t, 0.0, cmplx.Abs(dx[0]-g*complex(real(x-y), 0)), 1e-10)
	assert.InDelta(t, 0.0, cmplx.Abs(dy[0]-g*complex(imag(x-y), 0)), 1e-10)

	dir := cmplx.Rect(1, 0.8)
	ff, err := src.FarField([]complex128{dir})
	require.NoError(t, err)
	want := complex(1, -1) / complex(math.Sqrt(math.Pi*k), 0) *
		cmplx.Exp(complex(0, -k*real(cmplx.Conj(dir)*y)))
	assert.InDelta(t, 0.0, cmplx.Abs(ff[0]-want), tol)

	_, _, err = src.Gradient([]complex128{y}, nil)
	require.ErrorIs(t, err, polar.ErrSingularPoint)
}
