// SPDX-License-Identifier: MIT
// Package: tmatrom/tmatrix
//
// tmatrix.go — the TMatrix entity and its operator action.
//
// Contract:
//   • The stored matrix is a private clone; Matrix() returns another clone.
//   • SetOrigin and SetComments touch metadata only.
//   • A TMatrix is not safe for concurrent mutation; concurrent reads are fine.

package tmatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/katalvlaran/tmatrom/wavefunction"
)

// TMatrix is a T-matrix of order N at wavenumber k.
type TMatrix struct {
	order    int
	k        float64
	origin   complex128
	m        *matrix.Dense
	comments string
}

// Compile-time check: a TMatrix transforms regular expansions.
var _ wavefunction.Operator = (*TMatrix)(nil)

// New returns a TMatrix of the given order holding a copy of m.
//
// Errors:
//   - ErrShape when order < 0, m is nil, or m is not (2·order+1) square.
//   - ErrWavenumber when k is not positive and finite.
func New(order int, k float64, m *matrix.Dense, opts ...Option) (*TMatrix, error) {
	if order < 0 || m == nil {
		return nil, ErrShape
	}
	if side := 2*order + 1; m.Rows() != side || m.Cols() != side {
		return nil, fmt.Errorf("order %d with %dx%d matrix: %w", order, m.Rows(), m.Cols(), ErrShape)
	}
	if !(k > 0) || math.IsInf(k, 0) {
		return nil, ErrWavenumber
	}
	t := &TMatrix{order: order, k: k, m: m.Clone()}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Order returns N.
func (t *TMatrix) Order() int { return t.order }

// Wavenumber returns k.
func (t *TMatrix) Wavenumber() float64 { return t.k }

// Origin returns the virtual origin.
func (t *TMatrix) Origin() complex128 { return t.origin }

// Comments returns the free-text comments.
func (t *TMatrix) Comments() string { return t.comments }

// Size returns the side length 2N+1.
func (t *TMatrix) Size() int { return 2*t.order + 1 }

// Matrix returns a copy of the stored matrix.
func (t *TMatrix) Matrix() *matrix.Dense { return t.m.Clone() }

// SetOrigin changes the virtual origin used by Apply. The matrix is not
// transformed.
func (t *TMatrix) SetOrigin(x complex128) { t.origin = x }

// SetComments replaces the comments.
func (t *TMatrix) SetComments(s string) { t.comments = s }

// Apply returns the radiating expansion T·e.
//
// Errors: *IncompatibleError (matching ErrIncompatible) when wavenumber,
// origin or order differ from the T-matrix, compared exactly.
// Complexity: O((2N+1)²).
func (t *TMatrix) Apply(e *wavefunction.RegularExpansion) (*wavefunction.RadiatingExpansion, error) {
	if e.Wavenumber() != t.k {
		return nil, &IncompatibleError{Attribute: "wavenumber", Want: t.k, Got: e.Wavenumber()}
	}
	if e.Origin() != t.origin {
		return nil, &IncompatibleError{Attribute: "origin", Want: t.origin, Got: e.Origin()}
	}
	if e.Order() != t.order {
		return nil, &IncompatibleError{Attribute: "order", Want: t.order, Got: e.Order()}
	}
	y, err := matrix.MatVec(t.m, e.Vector())
	if err != nil {
		return nil, err
	}

	return wavefunction.NewRadiatingExpansion(t.k, t.origin, y)
}

// SymmetryError returns max|T + Tᴴ + 2·TᴴT|, using the conjugate transpose
// Tᴴ rather than the plain transpose Tᵗ. The residual vanishes when the
// scattering operator I + 2T is unitary. With normalize set, the residual is divided by max|T| (a zero
// matrix reports 0). Smaller is better; no threshold is implied.
func (t *TMatrix) SymmetryError(normalize bool) (float64, error) {
	th, err := matrix.ConjTranspose(t.m)
	if err != nil {
		return 0, err
	}
	sum, err := matrix.Add(t.m, th)
	if err != nil {
		return 0, err
	}
	tht, err := matrix.MulConjTrans(t.m, t.m)
	if err != nil {
		return 0, err
	}
	tht, err = matrix.Scale(tht, 2)
	if err != nil {
		return 0, err
	}
	res, err := matrix.Add(sum, tht)
	if err != nil {
		return 0, err
	}
	residual := matrix.MaxAbs(res)
	if !normalize {
		return residual, nil
	}
	scale := matrix.MaxAbs(t.m)
	if scale == 0 {
		return 0, nil
	}

	return residual / scale, nil
}

// Column returns a copy of column j (the response to order j−N).
func (t *TMatrix) Column(j int) (wavefunction.Vector, error) {
	return t.m.Column(j)
}

// String summarises the T-matrix for logs.
func (t *TMatrix) String() string {
	return fmt.Sprintf("TMatrix{order=%d k=%g origin=%v}", t.order, t.k, t.origin)
}

// SuggestedOrder returns a truncation order adequate for a scatterer of
// radius r at wavenumber k: ⌈kr + 4.05·(kr)^{1/3} + 2⌉.
func SuggestedOrder(k, r float64) int {
	kr := k * r
	if !(kr > 0) {
		return 2
	}

	return int(math.Ceil(kr + 4.05*math.Cbrt(kr) + 2))
}
