// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/tmatrom/polar"
	"github.com/katalvlaran/tmatrom/wavefunction"
)

// PlaneWave is e^{ik d·x} with unit direction d = (cos φ, sin φ).
type PlaneWave struct {
	k   float64
	dir complex128
}

// NewPlaneWave returns the plane wave travelling at angle phi.
// Errors: wavefunction.ErrWavenumber.
func NewPlaneWave(phi, k float64) (*PlaneWave, error) {
	if !(k > 0) || math.IsInf(k, 0) {
		return nil, wavefunction.ErrWavenumber
	}

	return &PlaneWave{k: k, dir: cmplx.Rect(1, phi)}, nil
}

// Direction returns the unit propagation direction.
func (p *PlaneWave) Direction() complex128 { return p.dir }

// phase returns e^{ik d·x}.
func (p *PlaneWave) phase(x complex128) complex128 {
	return cmplx.Exp(complex(0, p.k*real(cmplx.Conj(p.dir)*x)))
}

// Coefficients returns the Jacobi–Anger expansion about centre,
// cₙ = e^{ik d·c}·i^{|n|}·e^{−inφ}. Truncating an entire series is the
// expected approximation, so the result is always marked complete.
// Errors: wavefunction.ErrTruncation.
func (p *PlaneWave) Coefficients(centre complex128, nmax int) (wavefunction.Coefficients, error) {
	v, err := wavefunction.NewVector(nmax)
	if err != nil {
		return wavefunction.Coefficients{}, err
	}
	shift := p.phase(centre)
	phi := cmplx.Phase(p.dir)
	for n := -nmax; n <= nmax; n++ {
		a := n
		if a < 0 {
			a = -a
		}
		v[n+nmax] = shift * polar.IPow(a) * cmplx.Rect(1, -float64(n)*phi)
	}

	return wavefunction.Coefficients{Vector: v, Complete: true}, nil
}

// Evaluate returns the plane wave at points; masked-out points are NaN.
func (p *PlaneWave) Evaluate(points []complex128, mask []bool) ([]complex128, error) {
	if mask != nil && len(mask) != len(points) {
		return nil, polar.ErrMaskLength
	}
	out := make([]complex128, len(points))
	for i, x := range points {
		if mask != nil && !mask[i] {
			out[i] = cmplx.NaN()
			continue
		}
		out[i] = p.phase(x)
	}

	return out, nil
}

// Gradient returns ik·d·u at points.
func (p *PlaneWave) Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error) {
	u, err := p.Evaluate(points, mask)
	if err != nil {
		return nil, nil, err
	}
	dx = scaled(complex(0, p.k*real(p.dir)), u)
	dy = scaled(complex(0, p.k*imag(p.dir)), u)

	return dx, dy, nil
}
