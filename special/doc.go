// SPDX-License-Identifier: MIT

// Package special provides the cylinder functions needed by the circular
// wavefunction basis: Bessel functions of the first kind Jₙ, Hankel functions
// of the first kind H⁽¹⁾ₙ = Jₙ + iYₙ, and their first derivatives.
//
// Domain:
//   - Integer order n ≥ 0 and real argument x ≥ 0. Callers fold negative
//     orders through |n| before calling in.
//   - Out-of-domain input (n < 0, NaN or ±Inf argument) yields NaN rather
//     than an error or a panic, so vectorised callers can keep going and
//     surface the bad sample downstream.
//   - H⁽¹⁾ₙ(0) is singular: the imaginary part is -Inf.
//
// Derivatives use the recurrence Z′ₙ = (Zₙ₋₁ − Zₙ₊₁)/2 with Z′₀ = −Z₁, which
// holds for every cylinder function Z.
package special
