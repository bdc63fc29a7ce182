// SPDX-License-Identifier: MIT

package tmatrix

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/tmatrom/internal/interlace"
	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/phil-mansfield/table"
)

// writeRaw writes one "re im" line per entry, column-major.
func writeRaw(w io.Writer, m *matrix.Dense) error {
	flat := matrix.ColumnMajor(m)
	re := make([]float64, len(flat))
	im := make([]float64, len(flat))
	for i, v := range flat {
		re[i], im[i] = real(v), imag(v)
	}
	pairs, err := interlace.Merge(re, im)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < len(pairs); i += 2 {
		fmt.Fprintf(bw, "%s %s\n", formatEntry(pairs[i]), formatEntry(pairs[i+1]))
	}

	return bw.Flush()
}

// WriteRaw writes the bare matrix of t in the Raw layout.
func WriteRaw(w io.Writer, t *TMatrix) error {
	return writeRaw(w, t.m)
}

// ReadRaw reads a Raw file back into a square matrix; the side length is
// inferred from the entry count.
// Errors: ErrFormat when the file is unreadable or not a square count.
func ReadRaw(path string) (*matrix.Dense, error) {
	cols, err := table.ReadTable(path, []int{0, 1}, nil)
	if err != nil {
		return nil, formatErrorf("raw %s: %v", path, err)
	}
	re, im := cols[0], cols[1]
	side := int(math.Round(math.Sqrt(float64(len(re)))))
	if side == 0 || side*side != len(re) || len(im) != len(re) {
		return nil, formatErrorf("raw %s: %d entries is not a square matrix", path, len(re))
	}
	flat := make([]complex128, len(re))
	for i := range flat {
		flat[i] = complex(re[i], im[i])
	}
	m, err := matrix.FromColumnMajor(side, side, flat)
	if err != nil {
		return nil, formatErrorf("raw %s: %v", path, err)
	}

	return m, nil
}
