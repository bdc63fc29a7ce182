// SPDX-License-Identifier: MIT
// Package: tmatrom/field
//
// errors.go — sentinel errors for the field algebra.

package field

import "errors"

// ErrTypeMismatch indicates an operand of Plus, Minus or Neg that is not a Field.
var ErrTypeMismatch = errors.New("field: operand is not an incident field")

// ErrInvalidOperands indicates a Times call that is not exactly one field and
// one number.
var ErrInvalidOperands = errors.New("field: scalar product needs one field and one number")
