// SPDX-License-Identifier: MIT

// Package disc is an analytic scattering solver for a circular disc of
// radius a centred at the origin, usable wherever a builder.Solver is
// expected.
//
// The scattered field of an incident regular expansion Σ cₙ Jₙ(kr)e^{inθ} is
// Σ tₙ cₙ Hₙ(kr)e^{inθ} with
//
//	sound-soft (u = 0 on r = a):     tₙ = −Jₙ(ka) / Hₙ(ka)
//	sound-hard (∂u/∂r = 0 on r = a): tₙ = −J′ₙ(ka) / H′ₙ(ka)
//
// (orders taken as |n|). The exact T-matrix is therefore diag(tₙ), which
// makes the solver a reference for validating quadrature construction.
package disc
