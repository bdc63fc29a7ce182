// SPDX-License-Identifier: MIT

// Package field is the algebra of incident fields.
//
// Every incident field implements Field:
//
//	Coefficients(centre, nmax)  regular-basis expansion about centre
//	Evaluate(points, mask)      values
//	Gradient(points, mask)      Cartesian gradient
//
// and radiating-capable fields also implement Radiating, which adds
// FarField(directions).
//
// Leaves are the basis wavefunctions and expansions of package wavefunction,
// plus PlaneWave and PointSource. Composites (Negation, Sum, Difference,
// ScalarProduct and their Radiating* twins) are themselves fields, so
// expressions nest to any depth. Composites are immutable trees: they hold
// their operands, never cache, and re-evaluate on demand.
//
// Two construction styles are offered:
//
//	typed:  Add(a, b), Subtract(a, b), Negate(a), Scale(alpha, a),
//	        AddRadiating(a, b), ...  (compile-time checked)
//	sugar:  Plus(a, b), Minus(a, b), Neg(a), Times(a, b) on untyped operands,
//	        returning ErrTypeMismatch / ErrInvalidOperands when an operand
//	        is not a field (or, for Times, not exactly one field and one number).
//
// The sugar returns a Radiating composite whenever every field operand is
// Radiating, so far fields survive arithmetic.
package field
