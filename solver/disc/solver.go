// SPDX-License-Identifier: MIT
// Package: tmatrom/solver/disc
//
// solver.go — the analytic disc solver.
//
// Lifecycle: SetIncidentFields → Solve → FarField/Scattered. Setting new
// incident fields discards the previous solution.

package disc

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/tmatrom/field"
	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/katalvlaran/tmatrom/special"
	"github.com/katalvlaran/tmatrom/tmatrix"
	"github.com/katalvlaran/tmatrom/wavefunction"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tmatrom.disc'.
func tracer() tracing.Trace {
	return tracing.Select("tmatrom.disc")
}

// Solver scatters incident fields off a disc at the origin.
type Solver struct {
	k          float64
	radius     float64
	cond       Condition
	truncation int

	incident  []field.Field
	scattered []*wavefunction.RadiatingExpansion
}

// New returns a disc solver for wavenumber k and radius a.
// Errors: wavefunction.ErrWavenumber, ErrRadius.
func New(k, a float64, opts ...Option) (*Solver, error) {
	if !(k > 0) || math.IsInf(k, 0) {
		return nil, wavefunction.ErrWavenumber
	}
	if !(a > 0) || math.IsInf(a, 0) {
		return nil, ErrRadius
	}
	s := &Solver{k: k, radius: a, cond: SoundSoft, truncation: tmatrix.SuggestedOrder(k, a)}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Coefficient returns tₙ for the configured boundary condition.
func (s *Solver) Coefficient(n int) complex128 {
	if n < 0 {
		n = -n
	}
	ka := s.k * s.radius
	if s.cond == SoundHard {
		return -special.JPrime(n, ka) / special.HankelH1Prime(n, ka)
	}

	return -special.J(n, ka) / special.HankelH1(n, ka)
}

// SetIncidentFields stores the incident fields and clears any solution.
func (s *Solver) SetIncidentFields(fields []field.Field) error {
	s.incident = append([]field.Field(nil), fields...)
	s.scattered = nil

	return nil
}

// Solve expands every incident field about the origin and applies tₙ.
// The truncation grows to cover orders a field reports as missing; a field
// that is still incomplete after that fails the solve.
func (s *Solver) Solve(ctx context.Context) error {
	out := make([]*wavefunction.RadiatingExpansion, len(s.incident))
	for i, f := range s.incident {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := s.expand(f)
		if err != nil {
			return fmt.Errorf("disc: incident field %d: %w", i, err)
		}
		nmax := c.Truncation()
		v := make(wavefunction.Vector, len(c.Vector))
		for idx, cn := range c.Vector {
			if cn != 0 {
				v[idx] = s.Coefficient(idx-nmax) * cn
			}
		}
		if out[i], err = wavefunction.NewRadiatingExpansion(s.k, 0, v); err != nil {
			return err
		}
	}
	s.scattered = out
	tracer().Debugf("disc: solved %d incident fields (%s, ka=%g)", len(out), s.cond, s.k*s.radius)

	return nil
}

func (s *Solver) expand(f field.Field) (wavefunction.Coefficients, error) {
	c, err := f.Coefficients(0, s.truncation)
	if err != nil || c.Complete {
		return c, err
	}
	grown := s.truncation
	for _, n := range c.Missing {
		if n < 0 {
			n = -n
		}
		grown = max(grown, n)
	}
	if c, err = f.Coefficients(0, grown); err != nil {
		return c, err
	}

	return c, c.Err()
}

// Scattered returns the scattered radiating expansion for incident field i.
// Errors: ErrNotSolved, ErrIndex.
func (s *Solver) Scattered(i int) (*wavefunction.RadiatingExpansion, error) {
	if s.scattered == nil {
		return nil, ErrNotSolved
	}
	if i < 0 || i >= len(s.scattered) {
		return nil, fmt.Errorf("index %d of %d: %w", i, len(s.scattered), ErrIndex)
	}

	return s.scattered[i], nil
}

// FarField returns F with Fⱼᵢ the far field of scattered field indices[i]
// in direction angles[j].
// Errors: ErrNotSolved, ErrIndex, matrix.ErrInvalidDimensions for empty input.
func (s *Solver) FarField(angles []float64, indices []int) (*matrix.Dense, error) {
	dirs := make([]complex128, len(angles))
	for j, th := range angles {
		dirs[j] = cmplx.Rect(1, th)
	}
	data := make([]complex128, len(angles)*len(indices))
	for i, idx := range indices {
		sc, err := s.Scattered(idx)
		if err != nil {
			return nil, err
		}
		ff, err := sc.FarField(dirs)
		if err != nil {
			return nil, err
		}
		for j, v := range ff {
			data[j*len(indices)+i] = v
		}
	}

	return matrix.NewDenseFrom(len(angles), len(indices), data)
}
