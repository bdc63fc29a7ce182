// SPDX-License-Identifier: MIT

package special

import (
	"math"
	"math/cmplx"
)

// inDomain reports whether (n, x) lies in the supported domain.
func inDomain(n int, x float64) bool {
	return n >= 0 && !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// BesselJ returns Jₙ(x). Out-of-domain input yields NaN.
// Complexity: O(n) for the forward/backward recurrence inside math.Jn.
func BesselJ(n int, x float64) float64 {
	if !inDomain(n, x) {
		return math.NaN()
	}

	return math.Jn(n, x)
}

// HankelH1 returns H⁽¹⁾ₙ(x) = Jₙ(x) + i·Yₙ(x). Out-of-domain input yields NaN.
func HankelH1(n int, x float64) complex128 {
	if !inDomain(n, x) {
		return cmplx.NaN()
	}

	return complex(math.Jn(n, x), math.Yn(n, x))
}

// BesselJPrime returns dJₙ/dx at x.
func BesselJPrime(n int, x float64) float64 {
	if !inDomain(n, x) {
		return math.NaN()
	}
	if n == 0 {
		return -math.Jn(1, x)
	}

	return 0.5 * (math.Jn(n-1, x) - math.Jn(n+1, x))
}

// HankelH1Prime returns dH⁽¹⁾ₙ/dx at x.
func HankelH1Prime(n int, x float64) complex128 {
	if !inDomain(n, x) {
		return cmplx.NaN()
	}
	if n == 0 {
		return -HankelH1(1, x)
	}

	return 0.5 * (HankelH1(n-1, x) - HankelH1(n+1, x))
}

// Cylinder selects between the two cylinder functions used by the basis.
// Regular evaluation uses Jₙ promoted to complex; radiating uses H⁽¹⁾ₙ.
type Cylinder func(n int, x float64) complex128

// J is BesselJ lifted to complex128 so it can stand in for a Cylinder.
func J(n int, x float64) complex128 {
	return complex(BesselJ(n, x), 0)
}

// JPrime is BesselJPrime lifted to complex128.
func JPrime(n int, x float64) complex128 {
	return complex(BesselJPrime(n, x), 0)
}

// Compile-time checks that the four functions share the Cylinder shape.
var (
	_ Cylinder = J
	_ Cylinder = JPrime
	_ Cylinder = HankelH1
	_ Cylinder = HankelH1Prime
)
