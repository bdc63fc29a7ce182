// SPDX-License-Identifier: MIT

// Package builder constructs T-matrices by quadrature from repeated solves of
// a scattering problem ("ghtmatrix").
//
// Given an order N, a wavenumber k and a Solver, Build:
//
//  1. samples 2N+2 equally spaced far-field angles θⱼ = jπ/(N+1),
//     with uniform weight w = π/(N+1);
//  2. hands the 2N+1 regular wavefunctions of orders −N..N (origin 0) to the
//     solver as incident fields, and asks it to solve;
//  3. collects the (2N+2)×(2N+1) far-field matrix F;
//  4. for a non-zero origin x0, multiplies row j of F by
//     σⱼ = exp(ik·Re(conj(x0)·e^{iθⱼ}));
//  5. projects onto circular harmonics and scales:
//     T = w · diag(sₙ) · E(θ)ᴴ · F,  sₙ = ¼(1+i)·√(k/π)·i^{|n|},  Eⱼₙ = e^{inθⱼ};
//  6. returns a tmatrix.TMatrix with a provenance comment.
//
// The projection Eᴴ·F is a discrete Fourier transform of each far-field
// column. It is computed column by column, either directly (ProjectDirect,
// a BLAS product) or through an FFT (ProjectFFT). Columns may be projected
// concurrently (WithWorkers); every column is written to a fixed slot with a
// fixed summation order, so the result does not depend on the worker count.
//
// Solver failures are returned wrapped with %w and are never retried.
// Option constructors (WithX) panic on meaningless values; Build itself
// never panics on user input.
package builder
