// SPDX-License-Identifier: MIT

package wavefunction

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tmatrom/polar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tmatrom.wavefunction'.
func tracer() tracing.Trace {
	return tracing.Select("tmatrom.wavefunction")
}

// Vector holds expansion coefficients for orders −N..N; index i is order i−N.
// Its length is always odd.
type Vector []complex128

// NewVector returns the zero vector for truncation order nmax.
// Errors: ErrTruncation for nmax < 0.
func NewVector(nmax int) (Vector, error) {
	if nmax < 0 {
		return nil, ErrTruncation
	}

	return make(Vector, 2*nmax+1), nil
}

// UnitVector returns the vector of truncation nmax with a single 1 at order n.
// Errors: ErrTruncation when nmax < 0 or |n| > nmax.
func UnitVector(nmax, n int) (Vector, error) {
	v, err := NewVector(nmax)
	if err != nil {
		return nil, err
	}
	if n < -nmax || n > nmax {
		return nil, fmt.Errorf("order %d outside ±%d: %w", n, nmax, ErrTruncation)
	}
	v[n+nmax] = 1

	return v, nil
}

// Truncation returns N for a vector of length 2N+1, or -1 for an even length.
func (v Vector) Truncation() int { return polar.Truncation(v) }

// At returns the coefficient of order n, or 0 when n is outside the vector.
func (v Vector) At(n int) complex128 {
	nmax := v.Truncation()
	if nmax < 0 || n < -nmax || n > nmax {
		return 0
	}

	return v[n+nmax]
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector { return slices.Clone(v) }

// Resize returns v re-truncated to nmax: orders beyond nmax are dropped and
// missing orders are zero-filled. The second result lists the dropped orders
// that carried non-zero coefficients, in ascending order.
func (v Vector) Resize(nmax int) (Vector, []int, error) {
	out, err := NewVector(nmax)
	if err != nil {
		return nil, nil, err
	}
	src := v.Truncation()
	var dropped []int
	for i, c := range v {
		n := i - src
		if n < -nmax || n > nmax {
			if c != 0 {
				dropped = append(dropped, n)
			}
			continue
		}
		out[n+nmax] = c
	}

	return out, dropped, nil
}

// Coefficients is the result of a coefficient extraction. Complete is false
// when the requested truncation could not represent the field exactly; the
// orders that were lost are listed in Missing.
type Coefficients struct {
	Vector
	Complete bool
	Missing  []int
}

// Err returns nil for a complete extraction and an error wrapping
// ErrIncomplete otherwise.
func (c Coefficients) Err() error {
	if c.Complete {
		return nil
	}

	return fmt.Errorf("orders %v dropped: %w", c.Missing, ErrIncomplete)
}

// Merge combines c with o (same truncation) term-wise using fn, joining the
// completeness diagnostics: Complete is the AND, Missing the sorted union.
func (c Coefficients) Merge(o Coefficients, fn func(a, b complex128) complex128) (Coefficients, error) {
	if len(c.Vector) != len(o.Vector) {
		return Coefficients{}, fmt.Errorf("lengths %d and %d: %w", len(c.Vector), len(o.Vector), ErrTruncation)
	}
	out := make(Vector, len(c.Vector))
	for i := range out {
		out[i] = fn(c.Vector[i], o.Vector[i])
	}
	missing := append(slices.Clone(c.Missing), o.Missing...)
	slices.Sort(missing)

	return Coefficients{
		Vector:   out,
		Complete: c.Complete && o.Complete,
		Missing:  slices.Compact(missing),
	}, nil
}

// Map applies fn to every coefficient, keeping the diagnostics.
func (c Coefficients) Map(fn func(complex128) complex128) Coefficients {
	out := make(Vector, len(c.Vector))
	for i, v := range c.Vector {
		out[i] = fn(v)
	}

	return Coefficients{Vector: out, Complete: c.Complete, Missing: slices.Clone(c.Missing)}
}
