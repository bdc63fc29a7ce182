// SPDX-License-Identifier: MIT
// Package: tmatrom/builder
//
// errors.go — sentinel errors for the quadrature builder.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Solver errors pass through wrapped with the failing phase, so
//     errors.Is against the solver's own sentinels keeps working.
//   • Build does not panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrOrder indicates a negative truncation order.
var ErrOrder = errors.New("builder: order must be non-negative")

// ErrNilSolver indicates a Build call without a solver.
var ErrNilSolver = errors.New("builder: solver is required")

// ErrFarFieldShape indicates a far-field matrix from the solver whose shape is
// not (2N+2)×(2N+1).
var ErrFarFieldShape = errors.New("builder: far-field matrix has wrong shape")

// Phase tags used in error wrapping and trace lines.
const (
	phaseIncident   = "SetIncidentFields"
	phaseSolve      = "Solve"
	phaseFarField   = "FarField"
	phaseProjection = "Projection"
)

// builderErrorf wraps err with the Build phase it came from.
func builderErrorf(phase string, err error) error {
	return fmt.Errorf("builder: %s: %w", phase, err)
}
