// SPDX-License-Identifier: MIT

// Package polar evaluates truncated circular-harmonic series
//
//	u(x) = Σ_{n=-N..N} cₙ · Z_{|n|}(k·r) · e^{inθ},   (r, θ) = polar(x − x0)
//
// and their derivatives, where Z is the Bessel function Jₙ (Regular kind) or
// the Hankel function H⁽¹⁾ₙ (Radiating kind). A third kind, FarField, evaluates
// the far-field pattern of a radiating series at unit directions.
//
// Entry points:
//   - Sum: series values at a set of points.
//   - Partials: polar partial derivatives (∂r, ∂θ).
//   - Gradient: Cartesian gradient (∂x, ∂y) from the polar partials.
//
// Conventions:
//   - Points, centres and directions are complex128 (x + iy).
//   - The coefficient vector has odd length 2N+1; index i holds order i−N.
//   - A nil mask evaluates every point. A non-nil mask must match the point
//     count; masked-out points yield cmplx.NaN() and are never evaluated.
//   - Far fields are referenced to the global origin: a series centred at x0
//     carries the phase factor e^{−ik·Re(conj(x̂)·x0)}.
//
// Errors (sentinels, use errors.Is):
//   - ErrEvenLength, ErrWavenumber, ErrMaskLength on bad input.
//   - ErrSingularPoint when a gradient or direction is requested at r = 0.
//   - ErrFarFieldDerivative when Partials/Gradient are asked for FarField.
//
// All functions are pure and safe for concurrent use.
package polar
