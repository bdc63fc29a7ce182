// SPDX-License-Identifier: MIT

package polar

import "math"

// validateInputs checks the shared preconditions of every entry point.
func validateInputs(c []complex128, k float64, points []complex128, mask []bool) error {
	if len(c)%2 == 0 {
		return ErrEvenLength
	}
	if !(k > 0) || math.IsInf(k, 0) {
		return ErrWavenumber
	}
	if mask != nil && len(mask) != len(points) {
		return ErrMaskLength
	}

	return nil
}

// active reports whether point i is selected by mask (nil selects all).
func active(mask []bool, i int) bool {
	return mask == nil || mask[i]
}

// Truncation returns N for a coefficient vector of length 2N+1, or -1 when
// the length is even.
func Truncation(c []complex128) int {
	if len(c)%2 == 0 {
		return -1
	}

	return (len(c) - 1) / 2
}
