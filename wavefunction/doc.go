// SPDX-License-Identifier: MIT

// Package wavefunction implements the circular wavefunction basis of the 2-D
// Helmholtz equation and the coefficient expansions built on it.
//
// A basis function is identified by a Descriptor (order n, wavenumber k,
// origin x0) and a kind:
//
//	Regular:    Jₙ(k|x−x0|)·e^{inθ}      (finite everywhere)
//	Radiating:  H⁽¹⁾ₙ(k|x−x0|)·e^{inθ}   (outgoing, singular at x0)
//
// with the radial function taken at order |n|. Both kinds expose value and
// gradient evaluation and coefficient extraction at their own origin; the
// radiating kind adds far-field evaluation.
//
// Expansions (RegularExpansion, RadiatingExpansion) pair a coefficient Vector
// with a wavenumber and origin. A RegularExpansion is transformed into a
// RadiatingExpansion by an Operator such as a T-matrix.
//
// Coefficient extraction never translates between centres: a request at any
// centre other than the declared origin fails with ErrTranslation. Requests
// with a truncation too small to hold the function's own order return a zero
// vector flagged incomplete (see Coefficients).
package wavefunction
