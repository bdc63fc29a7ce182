// SPDX-License-Identifier: MIT
// Package: tmatrom/polar
//
// series.go — Sum, Partials and Gradient.
//
// Implementation notes:
//   • Per point, Z_{|n|}(kr) is computed once per |n| ≤ N and shared by ±n.
//   • e^{inθ} is built by repeated multiplication from e^{iθ} so the angular
//     factor costs O(N) complex products, with no per-order trig calls.
//   • Summation runs from n = −N to N in index order for every point.

package polar

import (
	"math"
	"math/cmplx"
)

const (
	opSum      = "Sum"
	opGradient = "Gradient"
)

// farFieldNorm returns (1−i)/√(πk), the Hankel asymptotic amplitude.
func farFieldNorm(k float64) complex128 {
	return complex(1, -1) / complex(math.Sqrt(math.Pi*k), 0)
}

// angular fills e[i] = e^{i(i−N)θ} for i = 0..2N.
func angular(e []complex128, theta float64, nmax int) {
	u := cmplx.Rect(1, theta)
	e[nmax] = 1
	for n := 1; n <= nmax; n++ {
		e[nmax+n] = e[nmax+n-1] * u
		e[nmax-n] = cmplx.Conj(e[nmax+n])
	}
}

// Sum evaluates the series with coefficients c centred at centre for every point.
//
// For Regular and Radiating kinds the result at x is
// Σ cₙ Z_{|n|}(k|x−centre|) e^{inθ}. For FarField, points are directions and
// the result is Σ cₙ (1−i)/√(πk) (−i)^{|n|} e^{inθ} · e^{−ik Re(conj(x̂)·centre)}.
//
// Errors: ErrEvenLength, ErrWavenumber, ErrMaskLength; ErrSingularPoint for a
// zero far-field direction.
// Complexity: O(len(points)·N).
func Sum(c []complex128, centre complex128, k float64, points []complex128, kind Kind, mask []bool) ([]complex128, error) {
	if err := validateInputs(c, k, points, mask); err != nil {
		return nil, err
	}
	nmax := Truncation(c)
	out := make([]complex128, len(points))
	e := make([]complex128, len(c))

	if kind == FarField {
		norm := farFieldNorm(k)
		for i, p := range points {
			if !active(mask, i) {
				out[i] = cmplx.NaN()
				continue
			}
			r, theta := cmplx.Polar(p)
			if r == 0 {
				return nil, polarErrorf(opSum, i, ErrSingularPoint)
			}
			angular(e, theta, nmax)
			xhat := p / complex(r, 0)
			shift := cmplx.Exp(complex(0, -k*real(cmplx.Conj(xhat)*centre)))
			var acc complex128
			for idx, cn := range c {
				n := idx - nmax
				acc += cn * IPow(-absInt(n)) * e[idx]
			}
			out[i] = norm * shift * acc
		}

		return out, nil
	}

	z, _ := kind.radial()
	rad := make([]complex128, nmax+1)
	for i, p := range points {
		if !active(mask, i) {
			out[i] = cmplx.NaN()
			continue
		}
		r, theta := cmplx.Polar(p - centre)
		for n := 0; n <= nmax; n++ {
			rad[n] = z(n, k*r)
		}
		angular(e, theta, nmax)
		var acc complex128
		for idx, cn := range c {
			acc += cn * rad[absInt(idx-nmax)] * e[idx]
		}
		out[i] = acc
	}

	return out, nil
}

// Partials returns the polar partial derivatives ∂u/∂r and ∂u/∂θ at every point.
// Errors: as Sum, plus ErrFarFieldDerivative for the FarField kind.
func Partials(c []complex128, centre complex128, k float64, points []complex128, kind Kind, mask []bool) (dr, dtheta []complex128, err error) {
	if kind == FarField {
		return nil, nil, ErrFarFieldDerivative
	}
	if err = validateInputs(c, k, points, mask); err != nil {
		return nil, nil, err
	}
	nmax := Truncation(c)
	z, dz := kind.radial()
	dr = make([]complex128, len(points))
	dtheta = make([]complex128, len(points))
	rad := make([]complex128, nmax+1)
	drad := make([]complex128, nmax+1)
	e := make([]complex128, len(c))
	kc := complex(k, 0)

	for i, p := range points {
		if !active(mask, i) {
			dr[i], dtheta[i] = cmplx.NaN(), cmplx.NaN()
			continue
		}
		r, theta := cmplx.Polar(p - centre)
		for n := 0; n <= nmax; n++ {
			rad[n] = z(n, k*r)
			drad[n] = dz(n, k*r)
		}
		angular(e, theta, nmax)
		var accR, accT complex128
		for idx, cn := range c {
			n := idx - nmax
			a := absInt(n)
			accR += cn * kc * drad[a] * e[idx]
			accT += cn * rad[a] * complex(0, float64(n)) * e[idx]
		}
		dr[i], dtheta[i] = accR, accT
	}

	return dr, dtheta, nil
}

// Gradient returns the Cartesian gradient (∂u/∂x, ∂u/∂y) at every point,
// composed from the polar partials with e_r = p/|p| and e_θ = i·e_r:
//
//	∂x = Re(e_r)·∂r + Re(e_θ)/r·∂θ,  ∂y = Im(e_r)·∂r + Im(e_θ)/r·∂θ.
//
// Errors: as Partials, plus ErrSingularPoint for an unmasked point at the centre.
func Gradient(c []complex128, centre complex128, k float64, points []complex128, kind Kind, mask []bool) (dx, dy []complex128, err error) {
	if kind == FarField {
		return nil, nil, ErrFarFieldDerivative
	}
	if err = validateInputs(c, k, points, mask); err != nil {
		return nil, nil, err
	}
	for i, p := range points {
		if active(mask, i) && p == centre {
			return nil, nil, polarErrorf(opGradient, i, ErrSingularPoint)
		}
	}
	dr, dtheta, err := Partials(c, centre, k, points, kind, mask)
	if err != nil {
		return nil, nil, err
	}
	dx = make([]complex128, len(points))
	dy = make([]complex128, len(points))
	for i, p := range points {
		if !active(mask, i) {
			dx[i], dy[i] = cmplx.NaN(), cmplx.NaN()
			continue
		}
		q := p - centre
		r := cmplx.Abs(q)
		er := q / complex(r, 0)
		et := 1i * er
		dx[i] = complex(real(er), 0)*dr[i] + complex(real(et)/r, 0)*dtheta[i]
		dy[i] = complex(imag(er), 0)*dr[i] + complex(imag(et)/r, 0)*dtheta[i]
	}

	return dx, dy, nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
