// SPDX-License-Identifier: MIT
// Package: tmatrom/builder
//
// projection.go — column-wise harmonic projection P = Eᴴ·F.
//
// Determinism:
//   • Column n of P depends only on column n of F; each column is computed by
//     the same kernel into its own slot, whatever the worker count.

package builder

import (
	"context"
	"math/cmplx"

	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/mjibson/go-dsp/fft"
	"golang.org/x/sync/errgroup"
)

// dftMatrix returns E with Eⱼₙ = e^{inθⱼ}, n = −N..N.
func dftMatrix(order int, angles []float64) (*matrix.Dense, error) {
	side := 2*order + 1
	data := make([]complex128, len(angles)*side)
	for j, th := range angles {
		for n := -order; n <= order; n++ {
			data[j*side+n+order] = cmplx.Rect(1, float64(n)*th)
		}
	}

	return matrix.NewDenseFrom(len(angles), side, data)
}

// projectColumn returns the harmonic coefficients −N..N of one far-field column.
type projectColumn func(col []complex128) ([]complex128, error)

func directKernel(e *matrix.Dense) projectColumn {
	return func(col []complex128) ([]complex128, error) {
		return matrix.ConjTransVec(e, col)
	}
}

// fftKernel reads harmonic n from DFT bin n mod M, valid because θⱼ = 2πj/M.
func fftKernel(order int) projectColumn {
	return func(col []complex128) ([]complex128, error) {
		spec := fft.FFT(col)
		m := len(spec)
		out := make([]complex128, 2*order+1)
		for n := -order; n <= order; n++ {
			out[n+order] = spec[((n%m)+m)%m]
		}

		return out, nil
	}
}

// project computes Eᴴ·F column by column with at most cfg.workers in flight.
func project(ctx context.Context, f *matrix.Dense, order int, angles []float64, cfg buildConfig) (*matrix.Dense, error) {
	var kernel projectColumn
	switch cfg.projection {
	case ProjectFFT:
		kernel = fftKernel(order)
	default:
		e, err := dftMatrix(order, angles)
		if err != nil {
			return nil, err
		}
		kernel = directKernel(e)
	}

	side := 2*order + 1
	cols := make([][]complex128, side)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for n := 0; n < side; n++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			col, err := f.Column(n)
			if err != nil {
				return err
			}
			cols[n], err = kernel(col)

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	flat := make([]complex128, 0, side*side)
	for _, c := range cols {
		flat = append(flat, c...)
	}

	return matrix.FromColumnMajor(side, side, flat)
}
