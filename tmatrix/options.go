// SPDX-License-Identifier: MIT

package tmatrix

// Option customises a TMatrix at construction time.
type Option func(*TMatrix)

// WithOrigin sets the virtual origin (default 0).
func WithOrigin(x complex128) Option {
	return func(t *TMatrix) { t.origin = x }
}

// WithComments sets the free-text comments (default empty).
func WithComments(s string) Option {
	return func(t *TMatrix) { t.comments = s }
}
