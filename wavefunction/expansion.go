// SPDX-License-Identifier: MIT
// Package: tmatrom/wavefunction
//
// expansion.go — truncated series in the regular and radiating bases.
//
// Contract:
//   • Expansions own a private copy of their coefficients; Coefficients()
//     accessors return copies, so values stay immutable.
//   • A RegularExpansion becomes a RadiatingExpansion only through an
//     Operator (the T-matrix multiplication contract).

package wavefunction

import (
	"github.com/katalvlaran/tmatrom/polar"
)

// Coefficienter is anything that can report regular-basis coefficients about
// a centre. Every incident field satisfies it.
type Coefficienter interface {
	Coefficients(centre complex128, nmax int) (Coefficients, error)
}

// Operator maps a regular expansion to a radiating one.
type Operator interface {
	Apply(e *RegularExpansion) (*RadiatingExpansion, error)
}

// expansion is the shared state of both expansion kinds.
type expansion struct {
	k      float64
	origin complex128
	coef   Vector
	kind   polar.Kind
}

func newExpansion(k float64, origin complex128, v Vector, kind polar.Kind) (expansion, error) {
	if err := validateWavenumber(k); err != nil {
		return expansion{}, err
	}
	if v.Truncation() < 0 {
		return expansion{}, ErrEvenLength
	}

	return expansion{k: k, origin: origin, coef: v.Clone(), kind: kind}, nil
}

// Wavenumber returns k.
func (e expansion) Wavenumber() float64 { return e.k }

// Origin returns the expansion centre.
func (e expansion) Origin() complex128 { return e.origin }

// Order returns the truncation order N.
func (e expansion) Order() int { return e.coef.Truncation() }

// Vector returns a copy of the coefficients.
func (e expansion) Vector() Vector { return e.coef.Clone() }

// Evaluate returns the series values at points.
func (e expansion) Evaluate(points []complex128, mask []bool) ([]complex128, error) {
	return polar.Sum(e.coef, e.origin, e.k, points, e.kind, mask)
}

// Gradient returns the Cartesian gradient of the series at points.
func (e expansion) Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error) {
	return polar.Gradient(e.coef, e.origin, e.k, points, e.kind, mask)
}

// RegularExpansion is Σ cₙ J_{|n|}(k|x−x0|) e^{inθ}.
type RegularExpansion struct{ expansion }

// NewRegularExpansion copies v into a regular expansion about origin.
// Errors: ErrWavenumber, ErrEvenLength.
func NewRegularExpansion(k float64, origin complex128, v Vector) (*RegularExpansion, error) {
	e, err := newExpansion(k, origin, v, polar.Regular)
	if err != nil {
		return nil, err
	}

	return &RegularExpansion{e}, nil
}

// ExtractRegular builds the regular expansion of src about origin, truncated
// at nmax. The completeness diagnostic of the extraction is returned with it.
func ExtractRegular(src Coefficienter, k float64, origin complex128, nmax int) (*RegularExpansion, Coefficients, error) {
	c, err := src.Coefficients(origin, nmax)
	if err != nil {
		return nil, Coefficients{}, err
	}
	e, err := NewRegularExpansion(k, origin, c.Vector)
	if err != nil {
		return nil, Coefficients{}, err
	}

	return e, c, nil
}

// Coefficients re-truncates the expansion to nmax about its own origin.
// Dropping non-zero terms marks the result incomplete.
// Errors: ErrTruncation, ErrTranslation.
func (e *RegularExpansion) Coefficients(centre complex128, nmax int) (Coefficients, error) {
	if nmax < 0 {
		return Coefficients{}, ErrTruncation
	}
	if centre != e.origin {
		return Coefficients{}, translationErrorf(centre, e.origin)
	}
	v, dropped, err := e.coef.Resize(nmax)
	if err != nil {
		return Coefficients{}, err
	}
	if len(dropped) > 0 {
		tracer().Infof("regular expansion: truncation %d drops orders %v", nmax, dropped)
	}

	return Coefficients{Vector: v, Complete: len(dropped) == 0, Missing: dropped}, nil
}

// Transform applies op, typically a T-matrix, to the expansion.
func (e *RegularExpansion) Transform(op Operator) (*RadiatingExpansion, error) {
	return op.Apply(e)
}

// RadiatingExpansion is Σ cₙ H⁽¹⁾_{|n|}(k|x−x0|) e^{inθ}.
type RadiatingExpansion struct{ expansion }

// NewRadiatingExpansion copies v into a radiating expansion about origin.
// Errors: ErrWavenumber, ErrEvenLength.
func NewRadiatingExpansion(k float64, origin complex128, v Vector) (*RadiatingExpansion, error) {
	e, err := newExpansion(k, origin, v, polar.Radiating)
	if err != nil {
		return nil, err
	}

	return &RadiatingExpansion{e}, nil
}

// FarField returns the far-field pattern in the directions given by points.
func (e *RadiatingExpansion) FarField(points []complex128) ([]complex128, error) {
	return polar.Sum(e.coef, e.origin, e.k, points, polar.FarField, nil)
}

// Coefficients always fails: a radiating series has no regular expansion
// about its own origin, and translating elsewhere is unsupported.
func (e *RadiatingExpansion) Coefficients(centre complex128, nmax int) (Coefficients, error) {
	if centre != e.origin {
		return Coefficients{}, translationErrorf(centre, e.origin)
	}

	return Coefficients{}, ErrRadiatingCoefficients
}
