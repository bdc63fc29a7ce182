// SPDX-License-Identifier: MIT

// Package tmatrix implements the T-matrix of a 2-D scatterer: the linear map
// from the regular-wavefunction coefficients of an incident field to the
// radiating-wavefunction coefficients of the scattered field, at a fixed
// wavenumber and about a fixed (virtual) origin.
//
// A TMatrix of order N holds a (2N+1)×(2N+1) complex matrix whose row and
// column index i corresponds to wavefunction order i−N. The matrix is owned by
// the TMatrix and never mutated; only the origin tag and the comments can be
// changed after construction. Accessors return copies.
//
// Operations:
//
//	Apply           T·e for a compatible RegularExpansion e
//	SymmetryError   max|T + Tᴴ + 2TᴴT| (optionally relative to max|T|)
//	Save / Load     Binary (msgpack), Text (tmatrom ASCII) and Raw formats
//	SaveFile / LoadFile pick the format from the file extension
//
// Compatibility in Apply is exact: wavenumber, origin and order must match
// bit for bit, otherwise an *IncompatibleError naming the attribute is
// returned.
package tmatrix
