// SPDX-License-Identifier: MIT
// Package: tmatrom/wavefunction
//
// errors.go — sentinel errors for basis functions and expansions.
//
// Error policy:
//   • Callers branch with errors.Is; context is attached with %w.
//   • ErrIncomplete is never returned by extraction itself; it is produced on
//     demand by Coefficients.Err for callers that escalate incompleteness.

package wavefunction

import (
	"errors"
	"fmt"
)

// ErrWavenumber indicates a non-positive or non-finite wavenumber.
var ErrWavenumber = errors.New("wavefunction: wavenumber must be positive and finite")

// ErrTranslation indicates coefficient extraction at a centre other than the
// declared origin. Translation theorems are not supported.
var ErrTranslation = errors.New("wavefunction: translation not supported")

// ErrTruncation indicates a negative truncation order.
var ErrTruncation = errors.New("wavefunction: truncation order must be non-negative")

// ErrEvenLength indicates a coefficient vector whose length is not 2N+1.
var ErrEvenLength = errors.New("wavefunction: coefficient vector length must be odd")

// ErrIncomplete marks an extraction whose truncation dropped non-zero terms.
var ErrIncomplete = errors.New("wavefunction: incomplete coefficient vector")

// ErrRadiatingCoefficients indicates a request for regular-basis coefficients
// from a radiating expansion, which has none at its own origin.
var ErrRadiatingCoefficients = errors.New("wavefunction: radiating expansion has no regular coefficients")

// translationErrorf reports the offending centre/origin pair.
func translationErrorf(centre, origin complex128) error {
	return fmt.Errorf("centre %v differs from origin %v: %w", centre, origin, ErrTranslation)
}
