package special_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/tmatrom/special"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

// Reference values from Abramowitz & Stegun, table 9.1.
func TestBesselJKnownValues(t *testing.T) {
	cases := []struct {
		n    int
		x    float64
		want float64
	}{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0.7651976865579666},
		{1, 1, 0.4400505857449335},
		{2, 5, 0.04656511627775222},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, special.BesselJ(tc.n, tc.x), tol, "J_%d(%g)", tc.n, tc.x)
	}
}

func TestHankelH1RealPartIsJ(t *testing.T) {
	for n := 0; n < 6; n++ {
		for _, x := range []float64{0.3, 1, 2.5, 10} {
			h := special.HankelH1(n, x)
			assert.InDelta(t, special.BesselJ(n, x), real(h), tol)
			assert.InDelta(t, math.Yn(n, x), imag(h), tol)
		}
	}
}

// The Wronskian J_n Y'_n - J'_n Y_n = 2/(πx) ties both derivatives together.
func TestWronskian(t *testing.T) {
	for n := 0; n < 8; n++ {
		for _, x := range []float64{0.5, 1.7, 4, 12.25} {
			jn := special.BesselJ(n, x)
			jp := special.BesselJPrime(n, x)
			yn := imag(special.HankelH1(n, x))
			yp := imag(special.HankelH1Prime(n, x))
			assert.InDelta(t, 2/(math.Pi*x), jn*yp-jp*yn, 1e-9, "n=%d x=%g", n, x)
		}
	}
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for n := 0; n < 5; n++ {
		x := 2.3
		fd := (special.BesselJ(n, x+h) - special.BesselJ(n, x-h)) / (2 * h)
		assert.InDelta(t, fd, special.BesselJPrime(n, x), 1e-8)

		hfd := (special.HankelH1(n, x+h) - special.HankelH1(n, x-h)) / complex(2*h, 0)
		assert.InDelta(t, 0.0, cmplx.Abs(hfd-special.HankelH1Prime(n, x)), 1e-7)
	}
}

func TestOutOfDomainIsNaN(t *testing.T) {
	require.True(t, math.IsNaN(special.BesselJ(-1, 1)))
	require.True(t, math.IsNaN(special.BesselJ(0, math.NaN())))
	require.True(t, math.IsNaN(special.BesselJPrime(2, math.Inf(1))))
	require.True(t, math.IsNaN(special.BesselJ(1, -0.5)))
	require.True(t, cmplx.IsNaN(special.HankelH1(-3, 1)))
	require.True(t, cmplx.IsNaN(special.HankelH1Prime(0, math.Inf(-1))))
}

func TestHankelSingularAtOrigin(t *testing.T) {
	h := special.HankelH1(0, 0)
	assert.Equal(t, 1.0, real(h))
	assert.True(t, math.IsInf(imag(h), -1))
}
