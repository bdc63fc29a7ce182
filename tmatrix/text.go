// SPDX-License-Identifier: MIT
// Package: tmatrom/tmatrix
//
// text.go — the portable "tmatrom" ASCII layout, one value per line:
//
//	order
//	kwave                  (15 significant digits)
//	origin real part
//	origin imaginary part
//	(2N+1)² real parts     (column-major, 16 significant digits)
//	(2N+1)² imaginary parts
//	version
//	comments               (rest of file; the final newline is not part of it)

package tmatrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tmatrom/matrix"
)

// formatEntry renders a float with 16 significant digits.
func formatEntry(v float64) string {
	return strconv.FormatFloat(v, 'e', 15, 64)
}

func writeText(w io.Writer, t *TMatrix) error {
	bw := bufio.NewWriter(w)
	line := func(s string) {
		bw.WriteString(s)
		bw.WriteByte('\n')
	}
	line(strconv.Itoa(t.order))
	line(strconv.FormatFloat(t.k, 'g', 15, 64))
	line(formatEntry(real(t.origin)))
	line(formatEntry(imag(t.origin)))
	flat := matrix.ColumnMajor(t.m)
	for _, v := range flat {
		line(formatEntry(real(v)))
	}
	for _, v := range flat {
		line(formatEntry(imag(v)))
	}
	line(strconv.FormatFloat(FormatVersion, 'g', -1, 64))
	line(t.comments)

	return bw.Flush()
}

// lineReader hands out newline-terminated fields of an in-memory file.
type lineReader struct {
	rest string
	no   int
}

func (lr *lineReader) next() (string, error) {
	if lr.rest == "" {
		return "", formatErrorf("text: unexpected end of file after line %d", lr.no)
	}
	lr.no++
	head, tail, _ := strings.Cut(lr.rest, "\n")
	lr.rest = tail

	return strings.TrimSpace(head), nil
}

func (lr *lineReader) float() (float64, error) {
	s, err := lr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, formatErrorf("text line %d: %v", lr.no, err)
	}

	return v, nil
}

// lines returns how many fields remain, counting an unterminated last line.
func (lr *lineReader) lines() int {
	n := strings.Count(lr.rest, "\n")
	if lr.rest != "" && !strings.HasSuffix(lr.rest, "\n") {
		n++
	}

	return n
}

// matrixSide returns 2·order+1 once the remaining input can hold both entry
// blocks and the version line, so a bogus order cannot size an allocation.
func (lr *lineReader) matrixSide(order int) (int, error) {
	avail := lr.lines()
	if order > avail {
		return 0, formatErrorf("text: order %d exceeds the %d remaining lines", order, avail)
	}
	side := 2*order + 1
	if need := 2*side*side + 1; need > avail {
		return 0, formatErrorf("text: order %d needs %d more lines, have %d", order, need, avail)
	}

	return side, nil
}

func readText(r io.Reader) (*TMatrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lr := &lineReader{rest: string(data)}

	s, err := lr.next()
	if err != nil {
		return nil, err
	}
	order, err := strconv.Atoi(s)
	if err != nil || order < 0 {
		return nil, formatErrorf("text line 1: order %q", s)
	}
	k, err := lr.float()
	if err != nil {
		return nil, err
	}
	ore, err := lr.float()
	if err != nil {
		return nil, err
	}
	oim, err := lr.float()
	if err != nil {
		return nil, err
	}
	side, err := lr.matrixSide(order)
	if err != nil {
		return nil, err
	}
	re := make([]float64, side*side)
	for i := range re {
		if re[i], err = lr.float(); err != nil {
			return nil, err
		}
	}
	flat := make([]complex128, side*side)
	for i := range flat {
		im, err := lr.float()
		if err != nil {
			return nil, err
		}
		flat[i] = complex(re[i], im)
	}
	if _, err = lr.float(); err != nil {
		return nil, err
	}
	comments := strings.TrimSuffix(lr.rest, "\n")

	m, err := matrix.FromColumnMajor(side, side, flat)
	if err != nil {
		return nil, formatErrorf("text matrix: %v", err)
	}

	return New(order, k, m, WithOrigin(complex(ore, oim)), WithComments(comments))
}
