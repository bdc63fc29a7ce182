// SPDX-License-Identifier: MIT
// Package: tmatrom/builder
//
// api.go — the Build orchestrator.
//
// Design contract (strict):
//   • One orchestrator: Build(ctx, order, k, solver, opts...).
//   • Phases run in a fixed order; ctx is checked between phases.
//   • Solver errors are wrapped once with the phase name and returned as-is
//     otherwise (no retry, no partial result).

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tmatrom/field"
	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/katalvlaran/tmatrom/tmatrix"
	"github.com/katalvlaran/tmatrom/wavefunction"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tmatrom.builder'.
func tracer() tracing.Trace {
	return tracing.Select("tmatrom.builder")
}

// Build constructs the T-matrix of order N at wavenumber k from solver.
//
// Errors:
//   - ErrOrder, ErrNilSolver, wavefunction.ErrWavenumber on bad input.
//   - Solver errors, wrapped with the failing phase.
//   - ErrFarFieldShape when the solver's far field is not (2N+2)×(2N+1).
//   - ctx.Err() when ctx is cancelled between phases.
//
// Complexity: one solve, plus O(N² log N) projection work with ProjectFFT or
// O(N³) with ProjectDirect.
func Build(ctx context.Context, order int, k float64, solver Solver, opts ...Option) (*tmatrix.TMatrix, error) {
	if order < 0 {
		return nil, fmt.Errorf("order %d: %w", order, ErrOrder)
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	cfg := newBuildConfig(opts...)
	side := 2*order + 1

	fields := make([]field.Field, side)
	indices := make([]int, side)
	for n := -order; n <= order; n++ {
		w, err := wavefunction.NewRegular(n, k, 0)
		if err != nil {
			return nil, err
		}
		fields[n+order] = w
		indices[n+order] = n + order
	}
	angles := Angles(order)
	tracer().Infof("ghtmatrix: order=%d k=%g quadrature=%d", order, k, len(angles))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := solver.SetIncidentFields(fields); err != nil {
		return nil, builderErrorf(phaseIncident, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := solver.Solve(ctx); err != nil {
		return nil, builderErrorf(phaseSolve, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ff, err := solver.FarField(angles, indices)
	if err != nil {
		return nil, builderErrorf(phaseFarField, err)
	}
	if ff == nil || ff.Rows() != len(angles) || ff.Cols() != side {
		return nil, builderErrorf(phaseFarField, shapeError(ff, len(angles), side))
	}
	tracer().Debugf("ghtmatrix: far field %dx%d collected", ff.Rows(), ff.Cols())

	if cfg.origin != 0 {
		if ff, err = matrix.ScaleRows(ff, ShiftFactors(k, cfg.origin, angles)); err != nil {
			return nil, builderErrorf(phaseProjection, err)
		}
	}
	p, err := project(ctx, ff, order, angles, cfg)
	if err != nil {
		return nil, builderErrorf(phaseProjection, err)
	}
	if p, err = matrix.ScaleRows(p, Scaling(order, k)); err != nil {
		return nil, builderErrorf(phaseProjection, err)
	}
	if p, err = matrix.Scale(p, complex(Weight(order), 0)); err != nil {
		return nil, builderErrorf(phaseProjection, err)
	}

	t, err := tmatrix.New(order, k, p,
		tmatrix.WithOrigin(cfg.origin),
		tmatrix.WithComments(provenance(order, k, len(angles), cfg)))
	if err != nil {
		return nil, err
	}
	tracer().Infof("ghtmatrix: built %s", t)

	return t, nil
}

func shapeError(ff *matrix.Dense, rows, cols int) error {
	if ff == nil {
		return fmt.Errorf("nil matrix, want %dx%d: %w", rows, cols, ErrFarFieldShape)
	}

	return fmt.Errorf("got %dx%d, want %dx%d: %w", ff.Rows(), ff.Cols(), rows, cols, ErrFarFieldShape)
}

// provenance renders the auto-generated comment, after any user comment.
func provenance(order int, k float64, points int, cfg buildConfig) string {
	s := fmt.Sprintf("ghtmatrix order=%d kwave=%.15g origin=%v points=%d projection=%s",
		order, k, cfg.origin, points, cfg.projection)
	if cfg.comments == "" {
		return s
	}

	return cfg.comments + "\n" + s
}
