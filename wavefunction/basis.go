// SPDX-License-Identifier: MIT
// Package: tmatrom/wavefunction
//
// basis.go — single circular wavefunctions.
//
// Design:
//   • Regular and Radiating share an unexported core (descriptor + kind); only
//     Radiating carries FarField, so the capability shows up in the type.
//   • Evaluation delegates to polar with the unit vector of truncation |n|.
//   • Values are immutable after construction.

package wavefunction

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tmatrom/polar"
)

// Descriptor identifies one basis function.
type Descriptor struct {
	Order      int
	Wavenumber float64
	Origin     complex128
}

// String renders the descriptor for logs and provenance comments.
func (d Descriptor) String() string {
	return fmt.Sprintf("n=%d k=%g x0=%v", d.Order, d.Wavenumber, d.Origin)
}

func validateWavenumber(k float64) error {
	if !(k > 0) || math.IsInf(k, 0) {
		return ErrWavenumber
	}

	return nil
}

// basis is the shared implementation of Regular and Radiating.
type basis struct {
	d    Descriptor
	kind polar.Kind
}

// Descriptor returns the identifying triple.
func (b basis) Descriptor() Descriptor { return b.d }

// unit is the smallest coefficient vector that holds the function's own order.
func (b basis) unit() Vector {
	nmax := b.d.Order
	if nmax < 0 {
		nmax = -nmax
	}
	v, _ := UnitVector(nmax, b.d.Order)

	return v
}

// Evaluate returns the function values at points; masked-out points are NaN.
func (b basis) Evaluate(points []complex128, mask []bool) ([]complex128, error) {
	return polar.Sum(b.unit(), b.d.Origin, b.d.Wavenumber, points, b.kind, mask)
}

// Gradient returns (∂x, ∂y) at points. Points at the origin must be masked out.
func (b basis) Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error) {
	return polar.Gradient(b.unit(), b.d.Origin, b.d.Wavenumber, points, b.kind, mask)
}

// Coefficients returns the expansion of the function in its own basis about
// centre, truncated at nmax: the unit vector at the function's order.
//
// Errors:
//   - ErrTruncation for nmax < 0.
//   - ErrTranslation when centre != origin (exact comparison).
//
// When |n| > nmax the result is the zero vector with Complete=false and the
// order listed in Missing; this is reported as a warning, not an error.
func (b basis) Coefficients(centre complex128, nmax int) (Coefficients, error) {
	if nmax < 0 {
		return Coefficients{}, ErrTruncation
	}
	if centre != b.d.Origin {
		return Coefficients{}, translationErrorf(centre, b.d.Origin)
	}
	if b.d.Order < -nmax || b.d.Order > nmax {
		tracer().Infof("wavefunction %s: order outside truncation %d, coefficients incomplete", b.d, nmax)
		v, _ := NewVector(nmax)

		return Coefficients{Vector: v, Complete: false, Missing: []int{b.d.Order}}, nil
	}
	v, _ := UnitVector(nmax, b.d.Order)

	return Coefficients{Vector: v, Complete: true}, nil
}

// Regular is the wavefunction Jₙ(k|x−x0|)·e^{inθ}.
type Regular struct{ basis }

// NewRegular returns the regular wavefunction of order n.
// Errors: ErrWavenumber.
func NewRegular(n int, k float64, origin complex128) (*Regular, error) {
	if err := validateWavenumber(k); err != nil {
		return nil, err
	}

	return &Regular{basis{d: Descriptor{Order: n, Wavenumber: k, Origin: origin}, kind: polar.Regular}}, nil
}

// Radiating is the wavefunction H⁽¹⁾ₙ(k|x−x0|)·e^{inθ}.
type Radiating struct{ basis }

// NewRadiating returns the radiating wavefunction of order n.
// Errors: ErrWavenumber.
func NewRadiating(n int, k float64, origin complex128) (*Radiating, error) {
	if err := validateWavenumber(k); err != nil {
		return nil, err
	}

	return &Radiating{basis{d: Descriptor{Order: n, Wavenumber: k, Origin: origin}, kind: polar.Radiating}}, nil
}

// FarField returns the far-field pattern in the directions given by points
// (magnitudes are ignored), referenced to the global origin.
func (w *Radiating) FarField(points []complex128) ([]complex128, error) {
	return polar.Sum(w.unit(), w.d.Origin, w.d.Wavenumber, points, polar.FarField, nil)
}
