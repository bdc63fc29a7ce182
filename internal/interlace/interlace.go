// SPDX-License-Identifier: MIT

// Package interlace interleaves equally sized slices.
package interlace

import (
	"errors"
	"fmt"
)

// ErrLength indicates inputs of unequal length, or no inputs at all.
var ErrLength = errors.New("interlace: inputs must be non-empty and of equal length")

// Merge interleaves n slices of common length m into one slice of length n·m:
// element k of the result is arrays[k mod n][k div n].
func Merge[T any](arrays ...[]T) ([]T, error) {
	if len(arrays) == 0 {
		return nil, ErrLength
	}
	n, m := len(arrays), len(arrays[0])
	for i, a := range arrays {
		if len(a) != m {
			return nil, fmt.Errorf("input %d has length %d, want %d: %w", i, len(a), m, ErrLength)
		}
	}
	out := make([]T, n*m)
	for k := range out {
		out[k] = arrays[k%n][k/n]
	}

	return out, nil
}
