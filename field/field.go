// SPDX-License-Identifier: MIT

package field

import (
	"github.com/katalvlaran/tmatrom/wavefunction"
)

// Field is the capability set shared by every incident field.
type Field interface {
	Coefficients(centre complex128, nmax int) (wavefunction.Coefficients, error)
	Evaluate(points []complex128, mask []bool) ([]complex128, error)
	Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error)
}

// Radiating is a Field that also has a far-field pattern.
type Radiating interface {
	Field
	FarField(points []complex128) ([]complex128, error)
}

// Basis functions and expansions are leaves of the algebra.
var (
	_ Field     = (*wavefunction.Regular)(nil)
	_ Radiating = (*wavefunction.Radiating)(nil)
	_ Field     = (*wavefunction.RegularExpansion)(nil)
	_ Radiating = (*wavefunction.RadiatingExpansion)(nil)
	_ Field     = (*PlaneWave)(nil)
	_ Radiating = (*PointSource)(nil)
	_ Radiating = (*RadiatingNegation)(nil)
	_ Radiating = (*RadiatingSum)(nil)
	_ Radiating = (*RadiatingDifference)(nil)
	_ Radiating = (*RadiatingScalarProduct)(nil)
)
