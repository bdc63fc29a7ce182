// SPDX-License-Identifier: MIT
// Package: tmatrom/tmatrix
//
// errors.go — sentinel errors and the typed compatibility error.
//
// Error policy:
//   • Sentinels are compared with errors.Is.
//   • *IncompatibleError carries the mismatched attribute and unwraps to
//     ErrIncompatible, so both errors.Is and errors.As work.

package tmatrix

import (
	"errors"
	"fmt"
)

// ErrShape indicates a matrix that is not (2·order+1) square.
var ErrShape = errors.New("tmatrix: matrix must be square with side 2*order+1")

// ErrWavenumber indicates a non-positive or non-finite wavenumber.
var ErrWavenumber = errors.New("tmatrix: wavenumber must be positive and finite")

// ErrIncompatible indicates an expansion that does not match the T-matrix.
var ErrIncompatible = errors.New("tmatrix: incompatible operands")

// ErrFormat indicates an unknown persistence format or malformed content.
var ErrFormat = errors.New("tmatrix: unsupported or malformed format")

// IncompatibleError names the attribute that made Apply fail.
type IncompatibleError struct {
	Attribute string // "wavenumber", "origin" or "order"
	Want, Got any
}

// Error implements error.
func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("tmatrix: incompatible %s: matrix has %v, expansion has %v", e.Attribute, e.Want, e.Got)
}

// Unwrap exposes ErrIncompatible to errors.Is.
func (e *IncompatibleError) Unwrap() error { return ErrIncompatible }

// formatErrorf wraps a parse or encode failure as ErrFormat with context.
func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFormat)
}
