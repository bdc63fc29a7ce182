// SPDX-License-Identifier: MIT
// Package: tmatrom/field
//
// compose.go — composite nodes.
//
// Contract:
//   • Operands are non-nil; typed constructors do not re-check.
//   • Element-wise work goes through gonum/cmplxs. Masked-out samples are NaN
//     in every operand, so they stay NaN in the result.
//   • Coefficients of a composite are complete only if every operand's are;
//     Missing is the sorted union.

package field

import (
	"github.com/katalvlaran/tmatrom/wavefunction"
	"gonum.org/v1/gonum/cmplxs"
)

// ---------- element-wise helpers ----------

func negated(v []complex128) []complex128 {
	return cmplxs.ScaleTo(make([]complex128, len(v)), -1, v)
}

func scaled(alpha complex128, v []complex128) []complex128 {
	return cmplxs.ScaleTo(make([]complex128, len(v)), alpha, v)
}

func summed(a, b []complex128) []complex128 {
	return cmplxs.AddTo(make([]complex128, len(a)), a, b)
}

func differenced(a, b []complex128) []complex128 {
	return cmplxs.SubTo(make([]complex128, len(a)), a, b)
}

// binary evaluates both operands and combines the results with fn.
func binary(a, b Field, points []complex128, mask []bool, fn func(x, y []complex128) []complex128) ([]complex128, error) {
	x, err := a.Evaluate(points, mask)
	if err != nil {
		return nil, err
	}
	y, err := b.Evaluate(points, mask)
	if err != nil {
		return nil, err
	}

	return fn(x, y), nil
}

func binaryGradient(a, b Field, points []complex128, mask []bool, fn func(x, y []complex128) []complex128) (dx, dy []complex128, err error) {
	ax, ay, err := a.Gradient(points, mask)
	if err != nil {
		return nil, nil, err
	}
	bx, by, err := b.Gradient(points, mask)
	if err != nil {
		return nil, nil, err
	}

	return fn(ax, bx), fn(ay, by), nil
}

func binaryFarField(a, b Field, points []complex128, fn func(x, y []complex128) []complex128) ([]complex128, error) {
	x, err := a.(Radiating).FarField(points)
	if err != nil {
		return nil, err
	}
	y, err := b.(Radiating).FarField(points)
	if err != nil {
		return nil, err
	}

	return fn(x, y), nil
}

func binaryCoefficients(a, b Field, centre complex128, nmax int, fn func(x, y complex128) complex128) (wavefunction.Coefficients, error) {
	x, err := a.Coefficients(centre, nmax)
	if err != nil {
		return wavefunction.Coefficients{}, err
	}
	y, err := b.Coefficients(centre, nmax)
	if err != nil {
		return wavefunction.Coefficients{}, err
	}

	return x.Merge(y, fn)
}

// ---------- Negation ----------

// Negation is −f.
type Negation struct{ operand Field }

// Negate returns −f.
func Negate(f Field) *Negation { return &Negation{operand: f} }

// Operand returns f.
func (n *Negation) Operand() Field { return n.operand }

// Coefficients returns the negated coefficients of the operand.
func (n *Negation) Coefficients(centre complex128, nmax int) (wavefunction.Coefficients, error) {
	c, err := n.operand.Coefficients(centre, nmax)
	if err != nil {
		return wavefunction.Coefficients{}, err
	}

	return c.Map(func(v complex128) complex128 { return -v }), nil
}

// Evaluate returns −f(points).
func (n *Negation) Evaluate(points []complex128, mask []bool) ([]complex128, error) {
	v, err := n.operand.Evaluate(points, mask)
	if err != nil {
		return nil, err
	}

	return negated(v), nil
}

// Gradient returns −∇f.
func (n *Negation) Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error) {
	dx, dy, err = n.operand.Gradient(points, mask)
	if err != nil {
		return nil, nil, err
	}

	return negated(dx), negated(dy), nil
}

// RadiatingNegation is −f for a radiating f.
type RadiatingNegation struct{ Negation }

// NegateRadiating returns −f, keeping the far field.
func NegateRadiating(f Radiating) *RadiatingNegation {
	return &RadiatingNegation{Negation{operand: f}}
}

// FarField returns −F(points).
func (n *RadiatingNegation) FarField(points []complex128) ([]complex128, error) {
	v, err := n.operand.(Radiating).FarField(points)
	if err != nil {
		return nil, err
	}

	return negated(v), nil
}

// ---------- Sum ----------

// Sum is a + b.
type Sum struct{ a, b Field }

// Add returns a + b.
func Add(a, b Field) *Sum { return &Sum{a: a, b: b} }

// Operands returns (a, b).
func (s *Sum) Operands() (a, b Field) { return s.a, s.b }

// Coefficients returns the term-wise sum of both expansions.
func (s *Sum) Coefficients(centre complex128, nmax int) (wavefunction.Coefficients, error) {
	return binaryCoefficients(s.a, s.b, centre, nmax, func(x, y complex128) complex128 { return x + y })
}

// Evaluate returns a(points) + b(points).
func (s *Sum) Evaluate(points []complex128, mask []bool) ([]complex128, error) {
	return binary(s.a, s.b, points, mask, summed)
}

// Gradient returns ∇a + ∇b.
func (s *Sum) Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error) {
	return binaryGradient(s.a, s.b, points, mask, summed)
}

// RadiatingSum is a + b for radiating operands.
type RadiatingSum struct{ Sum }

// AddRadiating returns a + b, keeping the far field.
func AddRadiating(a, b Radiating) *RadiatingSum { return &RadiatingSum{Sum{a: a, b: b}} }

// FarField returns Fa + Fb.
func (s *RadiatingSum) FarField(points []complex128) ([]complex128, error) {
	return binaryFarField(s.a, s.b, points, summed)
}

// ---------- Difference ----------

// Difference is a − b.
type Difference struct{ a, b Field }

// Subtract returns a − b.
func Subtract(a, b Field) *Difference { return &Difference{a: a, b: b} }

// Operands returns (a, b).
func (d *Difference) Operands() (a, b Field) { return d.a, d.b }

// Coefficients returns the term-wise difference of both expansions.
func (d *Difference) Coefficients(centre complex128, nmax int) (wavefunction.Coefficients, error) {
	return binaryCoefficients(d.a, d.b, centre, nmax, func(x, y complex128) complex128 { return x - y })
}

// Evaluate returns a(points) − b(points).
func (d *Difference) Evaluate(points []complex128, mask []bool) ([]complex128, error) {
	return binary(d.a, d.b, points, mask, differenced)
}

// Gradient returns ∇a − ∇b.
func (d *Difference) Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error) {
	return binaryGradient(d.a, d.b, points, mask, differenced)
}

// RadiatingDifference is a − b for radiating operands.
type RadiatingDifference struct{ Difference }

// SubtractRadiating returns a − b, keeping the far field.
func SubtractRadiating(a, b Radiating) *RadiatingDifference {
	return &RadiatingDifference{Difference{a: a, b: b}}
}

// FarField returns Fa − Fb.
func (d *RadiatingDifference) FarField(points []complex128) ([]complex128, error) {
	return binaryFarField(d.a, d.b, points, differenced)
}

// ---------- ScalarProduct ----------

// ScalarProduct is α·f.
type ScalarProduct struct {
	alpha   complex128
	operand Field
}

// Scale returns α·f.
func Scale(alpha complex128, f Field) *ScalarProduct {
	return &ScalarProduct{alpha: alpha, operand: f}
}

// Factor returns α.
func (p *ScalarProduct) Factor() complex128 { return p.alpha }

// Operand returns f.
func (p *ScalarProduct) Operand() Field { return p.operand }

// Coefficients returns α times the operand's coefficients.
func (p *ScalarProduct) Coefficients(centre complex128, nmax int) (wavefunction.Coefficients, error) {
	c, err := p.operand.Coefficients(centre, nmax)
	if err != nil {
		return wavefunction.Coefficients{}, err
	}

	return c.Map(func(v complex128) complex128 { return p.alpha * v }), nil
}

// Evaluate returns α·f(points).
func (p *ScalarProduct) Evaluate(points []complex128, mask []bool) ([]complex128, error) {
	v, err := p.operand.Evaluate(points, mask)
	if err != nil {
		return nil, err
	}

	return scaled(p.alpha, v), nil
}

// Gradient returns α·∇f.
func (p *ScalarProduct) Gradient(points []complex128, mask []bool) (dx, dy []complex128, err error) {
	dx, dy, err = p.operand.Gradient(points, mask)
	if err != nil {
		return nil, nil, err
	}

	return scaled(p.alpha, dx), scaled(p.alpha, dy), nil
}

// RadiatingScalarProduct is α·f for a radiating f.
type RadiatingScalarProduct struct{ ScalarProduct }

// ScaleRadiating returns α·f, keeping the far field.
func ScaleRadiating(alpha complex128, f Radiating) *RadiatingScalarProduct {
	return &RadiatingScalarProduct{ScalarProduct{alpha: alpha, operand: f}}
}

// FarField returns α·F(points).
func (p *RadiatingScalarProduct) FarField(points []complex128) ([]complex128, error) {
	v, err := p.operand.(Radiating).FarField(points)
	if err != nil {
		return nil, err
	}

	return scaled(p.alpha, v), nil
}
