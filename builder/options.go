// SPDX-License-Identifier: MIT
// Package: tmatrom/builder
//
// options.go — functional options for Build.
//
// Contract (strict):
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     Build itself never panics.
//   • No hidden globals; everything flows through buildConfig.

package builder

// Option customises a Build call.
type Option func(*buildConfig)

// Projection selects how far-field columns are projected onto harmonics.
type Projection int

const (
	// ProjectDirect multiplies by the conjugate DFT matrix (BLAS Zgemv).
	ProjectDirect Projection = iota
	// ProjectFFT transforms each column with a fast Fourier transform.
	ProjectFFT
)

// String returns the projection name used in provenance comments.
func (p Projection) String() string {
	switch p {
	case ProjectDirect:
		return "direct"
	case ProjectFFT:
		return "fft"
	default:
		return "unknown"
	}
}

// WithOrigin sets the virtual origin x0 of the resulting T-matrix and
// enables the far-field origin-shift correction. Default 0.
func WithOrigin(x complex128) Option {
	return func(c *buildConfig) { c.origin = x }
}

// WithComments prepends user text to the provenance comment.
func WithComments(s string) Option {
	return func(c *buildConfig) { c.comments = s }
}

// WithProjection selects the projection kernel. Panics on an unknown value.
func WithProjection(p Projection) Option {
	if p != ProjectDirect && p != ProjectFFT {
		panic("builder: WithProjection(unknown)")
	}

	return func(c *buildConfig) { c.projection = p }
}

// WithWorkers bounds the number of columns projected concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}

	return func(c *buildConfig) { c.workers = n }
}
