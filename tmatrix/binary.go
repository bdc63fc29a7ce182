// SPDX-License-Identifier: MIT

package tmatrix

import (
	"io"

	"fortio.org/safecast"
	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/vmihailenco/msgpack/v5"
)

// record is the msgpack layout of a T-matrix. Matrix parts are column-major.
type record struct {
	Order    int32      `msgpack:"order"`
	Kwave    float64    `msgpack:"kwave"`
	Origin   [2]float64 `msgpack:"origin"`
	MatrixRe []float64  `msgpack:"matrix_re"`
	MatrixIm []float64  `msgpack:"matrix_im"`
	Version  float64    `msgpack:"version"`
	Comments string     `msgpack:"comments"`
}

func writeBinary(w io.Writer, t *TMatrix) error {
	order, err := safecast.Conv[int32](t.order)
	if err != nil {
		return formatErrorf("order %d: %v", t.order, err)
	}
	flat := matrix.ColumnMajor(t.m)
	rec := record{
		Order:    order,
		Kwave:    t.k,
		Origin:   [2]float64{real(t.origin), imag(t.origin)},
		MatrixRe: make([]float64, len(flat)),
		MatrixIm: make([]float64, len(flat)),
		Version:  FormatVersion,
		Comments: t.comments,
	}
	for i, v := range flat {
		rec.MatrixRe[i], rec.MatrixIm[i] = real(v), imag(v)
	}

	return msgpack.NewEncoder(w).Encode(&rec)
}

func readBinary(r io.Reader) (*TMatrix, error) {
	var rec record
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, formatErrorf("binary record: %v", err)
	}
	order, err := safecast.Conv[int](rec.Order)
	if err != nil || order < 0 {
		return nil, formatErrorf("binary order %d", rec.Order)
	}
	side := 2*order + 1
	if len(rec.MatrixRe) != side*side || len(rec.MatrixIm) != side*side {
		return nil, formatErrorf("binary matrix has %d/%d entries, want %d", len(rec.MatrixRe), len(rec.MatrixIm), side*side)
	}
	flat := make([]complex128, side*side)
	for i := range flat {
		flat[i] = complex(rec.MatrixRe[i], rec.MatrixIm[i])
	}
	m, err := matrix.FromColumnMajor(side, side, flat)
	if err != nil {
		return nil, formatErrorf("binary matrix: %v", err)
	}
	if rec.Version > FormatVersion {
		tracer().Infof("binary T-matrix version %g is newer than %g", rec.Version, FormatVersion)
	}

	return New(order, rec.Kwave, m,
		WithOrigin(complex(rec.Origin[0], rec.Origin[1])),
		WithComments(rec.Comments))
}
