// SPDX-License-Identifier: MIT
// Package: tmatrom/config
//
// errors.go — sentinel errors for run configuration.
//
// Policy:
//   • Sentinels only; details are attached with %w wrapping.
//   • Validate reports the first offending field.

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrExtension indicates a config path whose extension selects no syntax.
	ErrExtension = errors.New("config: unsupported file extension")

	// ErrDecode indicates a syntax or type error in the config file.
	ErrDecode = errors.New("config: cannot decode file")

	// ErrWavenumber indicates a non-positive or non-finite wavenumber.
	ErrWavenumber = errors.New("config: tmatrix.wavenumber must be positive and finite")

	// ErrOrder indicates a negative order other than the "auto" marker.
	ErrOrder = errors.New("config: tmatrix.order must be non-negative")

	// ErrProjection indicates an unknown projection name.
	ErrProjection = errors.New("config: tmatrix.projection must be direct or fft")

	// ErrWorkers indicates a worker count below one.
	ErrWorkers = errors.New("config: tmatrix.workers must be at least 1")

	// ErrShape indicates an unsupported scatterer shape.
	ErrShape = errors.New("config: scatterer.shape must be disc")

	// ErrRadius indicates a non-positive or non-finite radius.
	ErrRadius = errors.New("config: scatterer.radius must be positive and finite")

	// ErrCondition indicates an unknown boundary condition.
	ErrCondition = errors.New("config: scatterer.condition must be soft or hard")

	// ErrTruncation indicates a negative solver truncation.
	ErrTruncation = errors.New("config: scatterer.truncation must be non-negative")

	// ErrOutput indicates a missing output path or an unusable output format.
	ErrOutput = errors.New("config: output is invalid")
)

// fieldErrorf attaches the offending value to a validation sentinel.
func fieldErrorf(err error, value any) error {
	return fmt.Errorf("%w (got %v)", err, value)
}
