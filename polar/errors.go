// SPDX-License-Identifier: MIT
// Package: tmatrom/polar
//
// errors.go — sentinel errors for the series evaluator.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (point index, kind) is attached with %w at the call site.

package polar

import (
	"errors"
	"fmt"
)

// ErrEvenLength indicates a coefficient vector whose length is not 2N+1.
var ErrEvenLength = errors.New("polar: coefficient vector length must be odd")

// ErrWavenumber indicates a non-positive or non-finite wavenumber.
var ErrWavenumber = errors.New("polar: wavenumber must be positive and finite")

// ErrMaskLength indicates a non-nil mask whose length differs from the point count.
var ErrMaskLength = errors.New("polar: mask length does not match point count")

// ErrSingularPoint indicates an unmasked point at the expansion centre, where
// the gradient (or the far-field direction) is undefined.
var ErrSingularPoint = errors.New("polar: singular point at r = 0")

// ErrFarFieldDerivative indicates a radial/angular derivative requested for
// the FarField kind, which has no radial dependence.
var ErrFarFieldDerivative = errors.New("polar: derivatives undefined for far-field kind")

// polarErrorf attaches the operation tag and point index to err.
func polarErrorf(op string, idx int, err error) error {
	return fmt.Errorf("%s: point %d: %w", op, idx, err)
}
