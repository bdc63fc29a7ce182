// SPDX-License-Identifier: MIT

package polar

import (
	"github.com/katalvlaran/tmatrom/special"
)

// Kind selects the radial function of a series.
type Kind int

const (
	// Regular series use Bessel functions of the first kind.
	Regular Kind = iota
	// Radiating series use Hankel functions of the first kind.
	Radiating
	// FarField evaluates the far-field pattern of a radiating series.
	FarField
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Regular:
		return "regular"
	case Radiating:
		return "radiating"
	case FarField:
		return "farfield"
	default:
		return "unknown"
	}
}

// radial returns the cylinder function and its derivative for kind.
// FarField has no radial part; callers must dispatch it separately.
func (k Kind) radial() (z, dz special.Cylinder) {
	if k == Radiating {
		return special.HankelH1, special.HankelH1Prime
	}

	return special.J, special.JPrime
}

// IPow returns iⁿ exactly for any integer n.
func IPow(n int) complex128 {
	switch ((n % 4) + 4) % 4 {
	case 0:
		return 1
	case 1:
		return 1i
	case 2:
		return -1
	default:
		return -1i
	}
}
