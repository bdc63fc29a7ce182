// SPDX-License-Identifier: MIT

// Package tmatrom computes and manipulates T-matrices for two-dimensional
// wave scattering at a fixed wavenumber.
//
// A T-matrix maps the regular-wavefunction coefficients of an incident field
// to the radiating-wavefunction coefficients of the field scattered by a
// body. tmatrom builds them by quadrature from any boundary-value solver
// that can report far fields, applies them to expansions, checks their
// unitarity residual and stores them in portable files.
//
// What is where:
//
//	special/       Bessel J and Hankel H⁽¹⁾ of integer order with derivatives
//	polar/         truncated circular-harmonic series, partials and gradients
//	wavefunction/  basis wavefunctions, coefficient vectors and expansions
//	field/         incident fields (plane wave, point source) and their algebra
//	matrix/        complex dense linear algebra on gonum
//	tmatrix/       the T-matrix entity and its binary/text/raw file formats
//	builder/       quadrature construction from a Solver ("ghtmatrix")
//	solver/disc/   analytic sound-soft/sound-hard disc solver
//	config/        INI, TOML and YAML run descriptions
//	cmd/tmatrom/   command-line front end (build, info, convert)
//
// Quick start:
//
//	s, _ := disc.New(k, radius)
//	t, err := builder.Build(ctx, tmatrix.SuggestedOrder(k, radius), k, s)
//	...
//	err = tmatrix.SaveFile("disc.tmat", t)
//
// Points, centres, origins and directions are complex128 values with the
// x coordinate in the real part and y in the imaginary part.
package tmatrom
