// SPDX-License-Identifier: MIT
// Package: tmatrom/field
//
// sugar.go — operator-style entry points on untyped operands.
//
// Go has no operator overloading; Plus/Minus/Neg/Times play that role for
// callers holding values of unknown static type (config-driven or
// interpreted expressions). Each picks the Radiating composite when every
// field operand is Radiating.

package field

import (
	"fmt"
	"reflect"
)

// isNil reports a nil interface or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// asField returns v as a Field or ErrTypeMismatch.
func asField(v any) (Field, error) {
	f, ok := v.(Field)
	if !ok || isNil(f) {
		return nil, fmt.Errorf("%T: %w", v, ErrTypeMismatch)
	}

	return f, nil
}

// Plus returns a + b.
// Errors: ErrTypeMismatch when either operand is not a non-nil Field.
func Plus(a, b any) (Field, error) {
	fa, err := asField(a)
	if err != nil {
		return nil, err
	}
	fb, err := asField(b)
	if err != nil {
		return nil, err
	}
	ra, okA := fa.(Radiating)
	rb, okB := fb.(Radiating)
	if okA && okB {
		return AddRadiating(ra, rb), nil
	}

	return Add(fa, fb), nil
}

// Minus returns a − b.
// Errors: ErrTypeMismatch when either operand is not a non-nil Field.
func Minus(a, b any) (Field, error) {
	fa, err := asField(a)
	if err != nil {
		return nil, err
	}
	fb, err := asField(b)
	if err != nil {
		return nil, err
	}
	ra, okA := fa.(Radiating)
	rb, okB := fb.(Radiating)
	if okA && okB {
		return SubtractRadiating(ra, rb), nil
	}

	return Subtract(fa, fb), nil
}

// Neg returns −a.
// Errors: ErrTypeMismatch when a is not a non-nil Field.
func Neg(a any) (Field, error) {
	fa, err := asField(a)
	if err != nil {
		return nil, err
	}
	if ra, ok := fa.(Radiating); ok {
		return NegateRadiating(ra), nil
	}

	return Negate(fa), nil
}

// Times returns the scalar product of one field and one number, in either
// order. Numbers are any Go integer, float or complex value.
// Errors: ErrInvalidOperands otherwise (two fields, two numbers, or a value
// that is neither).
func Times(a, b any) (Field, error) {
	f, alpha, ok := splitScalarProduct(a, b)
	if !ok {
		f, alpha, ok = splitScalarProduct(b, a)
	}
	if !ok {
		return nil, fmt.Errorf("%T × %T: %w", a, b, ErrInvalidOperands)
	}
	if r, isRad := f.(Radiating); isRad {
		return ScaleRadiating(alpha, r), nil
	}

	return Scale(alpha, f), nil
}

// splitScalarProduct reports whether f is a Field and s a number.
func splitScalarProduct(f, s any) (Field, complex128, bool) {
	fld, ok := f.(Field)
	if !ok || isNil(fld) {
		return nil, 0, false
	}
	alpha, ok := toComplex(s)
	if !ok {
		return nil, 0, false
	}

	return fld, alpha, true
}

// toComplex converts a Go numeric value to complex128.
func toComplex(v any) (complex128, bool) {
	switch x := v.(type) {
	case int:
		return complex(float64(x), 0), true
	case int8:
		return complex(float64(x), 0), true
	case int16:
		return complex(float64(x), 0), true
	case int32:
		return complex(float64(x), 0), true
	case int64:
		return complex(float64(x), 0), true
	case uint:
		return complex(float64(x), 0), true
	case uint8:
		return complex(float64(x), 0), true
	case uint16:
		return complex(float64(x), 0), true
	case uint32:
		return complex(float64(x), 0), true
	case uint64:
		return complex(float64(x), 0), true
	case float32:
		return complex(float64(x), 0), true
	case float64:
		return complex(x, 0), true
	case complex64:
		return complex128(x), true
	case complex128:
		return x, true
	default:
		return 0, false
	}
}
