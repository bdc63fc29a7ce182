// SPDX-License-Identifier: MIT

package builder

import (
	"context"

	"github.com/katalvlaran/tmatrom/field"
	"github.com/katalvlaran/tmatrom/matrix"
)

// Solver is the boundary-value solver driven by Build.
//
// SetIncidentFields receives the incident fields in order; Solve runs the
// (possibly long) computation; FarField returns the far-field amplitudes of
// the scattered fields, one row per angle and one column per requested
// incident-field index, using the far-field normalisation of package polar
// ((1−i)/√(πk) per unit Hankel amplitude).
type Solver interface {
	SetIncidentFields(fields []field.Field) error
	Solve(ctx context.Context) error
	FarField(angles []float64, indices []int) (*matrix.Dense, error)
}
