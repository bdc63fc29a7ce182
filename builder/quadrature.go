// SPDX-License-Identifier: MIT
// Package: tmatrom/builder
//
// quadrature.go — quadrature nodes, weight, analytic scaling and the
// origin-shift phase factors.

package builder

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/tmatrom/polar"
	"gonum.org/v1/gonum/floats"
)

// Points returns the quadrature point count 2N+2 for order N.
func Points(order int) int { return 2*order + 2 }

// Angles returns θⱼ = jπ/(N+1) for j = 0..2N+1.
func Angles(order int) []float64 {
	m := Points(order)

	return floats.Span(make([]float64, m), 0, float64(m-1)*math.Pi/float64(order+1))
}

// Weight returns the uniform quadrature weight π/(N+1).
func Weight(order int) float64 { return math.Pi / float64(order+1) }

// Scaling returns sₙ = ¼(1+i)·√(k/π)·i^{|n|} for n = −N..N. It inverts the
// far-field amplitude (1−i)/√(πk)·(−i)^{|n|} of a unit Hankel wave together
// with the 2π total quadrature weight.
func Scaling(order int, k float64) []complex128 {
	base := complex(0.25, 0.25) * complex(math.Sqrt(k/math.Pi), 0)
	s := make([]complex128, 2*order+1)
	for n := -order; n <= order; n++ {
		a := n
		if a < 0 {
			a = -a
		}
		s[n+order] = base * polar.IPow(a)
	}

	return s
}

// ShiftFactors returns σⱼ = exp(ik·Re(conj(x0)·e^{iθⱼ})) for every angle.
func ShiftFactors(k float64, x0 complex128, angles []float64) []complex128 {
	sigma := make([]complex128, len(angles))
	for j, th := range angles {
		sigma[j] = cmplx.Exp(complex(0, k*real(cmplx.Conj(x0)*cmplx.Rect(1, th))))
	}

	return sigma
}
