// SPDX-License-Identifier: MIT
// Package: tmatrom/tmatrix
//
// format.go — format tags, stream entry points and file helpers.
//
// Formats:
//   • Binary: msgpack record (see binary.go).
//   • Text: "tmatrom" ASCII layout (see text.go).
//   • Raw: "re im" lines, matrix only (see raw.go). Raw carries no
//     metadata, so Load refuses it; use ReadRaw for the bare matrix.
//
// All matrix data is flattened column-major by matrix.ColumnMajor so every
// format agrees on element order.

package tmatrix

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tmatrom.tmatrix'.
func tracer() tracing.Trace {
	return tracing.Select("tmatrom.tmatrix")
}

// Format selects a persistence layout.
type Format int

const (
	// Binary is the msgpack record.
	Binary Format = iota
	// Text is the portable tmatrom ASCII layout.
	Text
	// Raw holds the matrix entries only.
	Raw
)

// FormatVersion is written into Binary and Text files.
const FormatVersion = 1.0

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case Binary:
		return "binary"
	case Text:
		return "text"
	case Raw:
		return "raw"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a name ("binary", "text", "raw") to a Format.
// Errors: ErrFormat.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "binary", "msgpack":
		return Binary, nil
	case "text", "tmatrom", "ascii":
		return Text, nil
	case "raw":
		return Raw, nil
	default:
		return 0, formatErrorf("format %q", name)
	}
}

// FormatForPath picks the format from the file extension:
// .tmat/.msgpack → Binary, .txt/.tmatrom → Text, .dat/.raw → Raw.
// Errors: ErrFormat for any other extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tmat", ".msgpack":
		return Binary, nil
	case ".txt", ".tmatrom":
		return Text, nil
	case ".dat", ".raw":
		return Raw, nil
	default:
		return 0, formatErrorf("extension of %q", path)
	}
}

// Save writes t to w in the given format.
// Errors: ErrFormat for an unknown tag; I/O errors from w.
func Save(w io.Writer, t *TMatrix, f Format) error {
	switch f {
	case Binary:
		return writeBinary(w, t)
	case Text:
		return writeText(w, t)
	case Raw:
		return writeRaw(w, t.m)
	default:
		return formatErrorf("save as %s", f)
	}
}

// Load reads a T-matrix in the given format.
// Errors: ErrFormat for an unknown tag, for Raw (no metadata), or for
// malformed content; ErrShape/ErrWavenumber for invalid decoded values.
func Load(r io.Reader, f Format) (*TMatrix, error) {
	switch f {
	case Binary:
		return readBinary(r)
	case Text:
		return readText(r)
	case Raw:
		return nil, formatErrorf("raw files carry no metadata")
	default:
		return nil, formatErrorf("load as %s", f)
	}
}

// SaveFile writes t to path, choosing the format from the extension.
func SaveFile(path string, t *TMatrix) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}

	return SaveFileAs(path, t, f)
}

// SaveFileAs writes t to path in format f. The file is written to a
// temporary sibling and renamed into place.
func SaveFileAs(path string, t *TMatrix, f Format) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmatrom-*")
	if err != nil {
		return err
	}
	defer func() {
		// Best effort; after a successful rename the file is already gone.
		_ = os.Remove(tmp.Name())
	}()
	if err = Save(tmp, t, f); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	tracer().Debugf("saved %s as %s to %s", t, f, path)

	return os.Rename(tmp.Name(), path)
}

// LoadFile reads a T-matrix from path, choosing the format from the extension.
func LoadFile(path string) (*TMatrix, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	return LoadFileAs(path, f)
}

// LoadFileAs reads a T-matrix from path in format f.
func LoadFileAs(path string, f Format) (*TMatrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file, f)
}
