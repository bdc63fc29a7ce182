// SPDX-License-Identifier: MIT
// Package: tmatrom/config
//
// run.go — turning a validated Config into builder and solver inputs.

package config

import (
	"github.com/katalvlaran/tmatrom/builder"
	"github.com/katalvlaran/tmatrom/solver/disc"
	"github.com/katalvlaran/tmatrom/tmatrix"
)

// Origin returns the T-matrix origin as a planar point.
func (c Config) Origin() complex128 {
	return complex(c.TMatrix.OriginX, c.TMatrix.OriginY)
}

// Order returns the configured order, resolving AutoOrder from the
// wavenumber and the scatterer radius.
func (c Config) Order() int {
	if c.TMatrix.Order == AutoOrder {
		return tmatrix.SuggestedOrder(c.TMatrix.Wavenumber, c.Scatterer.Radius)
	}

	return c.TMatrix.Order
}

// OutputFormat returns output.format, or the format implied by output.path.
func (c Config) OutputFormat() (tmatrix.Format, error) {
	if c.Output.Format != "" {
		return tmatrix.ParseFormat(c.Output.Format)
	}

	return tmatrix.FormatForPath(c.Output.Path)
}

// BuildOptions returns the builder options for a validated Config.
func (c Config) BuildOptions() []builder.Option {
	proj := builder.ProjectDirect
	if c.TMatrix.Projection == "fft" {
		proj = builder.ProjectFFT
	}
	opts := []builder.Option{
		builder.WithOrigin(c.Origin()),
		builder.WithProjection(proj),
		builder.WithWorkers(c.TMatrix.Workers),
	}
	if c.TMatrix.Comments != "" {
		opts = append(opts, builder.WithComments(c.TMatrix.Comments))
	}

	return opts
}

// Solver returns the reference solver for the configured scatterer.
func (c Config) Solver() (*disc.Solver, error) {
	cond := disc.SoundSoft
	if c.Scatterer.Condition == "hard" {
		cond = disc.SoundHard
	}
	opts := []disc.Option{disc.WithCondition(cond)}
	if c.Scatterer.Truncation > 0 {
		opts = append(opts, disc.WithTruncation(c.Scatterer.Truncation))
	}

	return disc.New(c.TMatrix.Wavenumber, c.Scatterer.Radius, opts...)
}
