// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/tmatrom/polar"
	"github.com/katalvlaran/tmatrom/special"
	"github.com/katalvlaran/tmatrom/wavefunction"
)

// PointSource is the outgoing field H⁽¹⁾₀(k|x−y|) of a unit source at y.
// Values, gradients and far fields are those of the order-0 radiating
// wavefunction centred at y.
type PointSource struct {
	w *wavefunction.Radiating
}

// NewPointSource returns the point source at location y.
// Errors: wavefunction.ErrWavenumber.
func NewPointSource(y complex128, k float64) (*PointSource, error) {
	w, err := wavefunction.NewRadiating(0, k, y)
	if err != nil {
		return nil, err
	}

	return &PointSource{w: w}, nil
}

// Location returns y.
func (s *PointSource) Location() complex128 { return s.w.Descriptor().Origin }

// Coefficients returns the regular expansion about centre ≠ y given by Graf's
// addition theorem, cₙ = H⁽¹⁾_{|n|}(k|y−c|)·e^{−inθ}, θ = arg(y−c). It converges
// inside the disc |x−c| < |y−c|.
// Errors: wavefunction.ErrTruncation; polar.ErrSingularPoint for centre == y.
func (s *PointSource) Coefficients(centre complex128, nmax int) (wavefunction.Coefficients, error) {
	v, err := wavefunction.NewVector(nmax)
	if err != nil {
		return wavefunction.Coefficients{}, err
	}
	d := s.w.Descriptor()
	rho, theta := cmplx.Polar(d.Origin - centre)
	if rho == 0 {
		return wavefunction.Coefficients{}, fmt.Errorf("point source at expansion centre %v: %w", centre, polar.ErrSingularPoint)
	}
	for n := -nmax; n <= nmax; n++ {
		a := n
		if a < 0 {
			a = -a
		}
		v[n+nmax] = special.HankelH1(a, d.Wavenumber*rho) * cmplx.Rect(1, -float64(n)*theta)
	}

	return wavefunction.Coefficients{Vector: v, Complete: true}, nil
}

// Evaluate returns H⁽¹⁾₀(k|x−y|) at points.
func (s *PointSource) Evaluate(points []complex128, mask []bool) ([]complex128, error) {
	return s.w.Evaluate(points, mask)
}

// Gradient returns −k·H⁽¹⁾₁(kρ)·(x−y)/ρ. The source location must be masked out.
func (s *PointSource) Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error) {
	return s.w.Gradient(points, mask)
}

// FarField returns (1−i)/√(πk)·e^{−ik x̂·y} in the directions given by points.
func (s *PointSource) FarField(points []complex128) ([]complex128, error) {
	return s.w.FarField(points)
}
