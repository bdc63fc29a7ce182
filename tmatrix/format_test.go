package tmatrix_test

import (
	"bytes"
	"math/cmplx"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/tmatrom/matrix"
	"github.com/katalvlaran/tmatrom/tmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *tmatrix.TMatrix {
	t.Helper()
	tm, err := tmatrix.New(2, 1.25, sample(t, 2),
		tmatrix.WithOrigin(0.125-0.75i),
		tmatrix.WithComments("disc r=1\nsound-soft\n"))
	require.NoError(t, err)

	return tm
}

// assertSame compares metadata exactly and entries to relative precision rel.
func assertSame(t *testing.T, want, got *tmatrix.TMatrix, rel float64) {
	t.Helper()
	assert.Equal(t, want.Order(), got.Order())
	assert.Equal(t, want.Wavenumber(), got.Wavenumber())
	assert.Equal(t, want.Origin(), got.Origin())
	assert.Equal(t, want.Comments(), got.Comments())

	a, b := matrix.ColumnMajor(want.Matrix()), matrix.ColumnMajor(got.Matrix())
	require.Len(t, b, len(a))
	for i := range a {
		assert.LessOrEqual(t, cmplx.Abs(a[i]-b[i]), rel*cmplx.Abs(a[i])+1e-300, "entry %d", i)
	}
}

func TestTextRoundTrip(t *testing.T) {
	tm := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, tmatrix.Save(&buf, tm, tmatrix.Text))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "2", lines[0])
	assert.Equal(t, "1.25", lines[1])
	// 4 header lines + 2·25 entries + version, then the comments.
	assert.Equal(t, "1", lines[4+50])
	assert.Equal(t, "disc r=1", lines[4+50+1])

	got, err := tmatrix.Load(&buf, tmatrix.Text)
	require.NoError(t, err)
	assertSame(t, tm, got, 1e-14)
}

func TestTextEmptyComments(t *testing.T) {
	tm := scalar(t, 0.5-0.25i)
	var buf bytes.Buffer
	require.NoError(t, tmatrix.Save(&buf, tm, tmatrix.Text))

	got, err := tmatrix.Load(&buf, tmatrix.Text)
	require.NoError(t, err)
	assertSame(t, tm, got, 1e-15)
}

func TestTextMalformed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tmatrix.Save(&buf, fixture(t), tmatrix.Text))
	full := buf.String()

	_, err := tmatrix.Load(strings.NewReader(full[:len(full)/2]), tmatrix.Text)
	require.ErrorIs(t, err, tmatrix.ErrFormat)

	_, err = tmatrix.Load(strings.NewReader("x\n"), tmatrix.Text)
	require.ErrorIs(t, err, tmatrix.ErrFormat)

	_, err = tmatrix.Load(strings.NewReader("0\n1\n0\n0\nnot-a-number\n"), tmatrix.Text)
	require.ErrorIs(t, err, tmatrix.ErrFormat)

	// An order the remaining lines cannot hold fails before allocating.
	for _, order := range []string{"3037000499", "100000000", "9223372036854775807", "1"} {
		_, err = tmatrix.Load(strings.NewReader(order+"\n1\n0\n0\n"), tmatrix.Text)
		require.ErrorIs(t, err, tmatrix.ErrFormat, "order %s", order)
	}

	// Valid layout, invalid wavenumber.
	_, err = tmatrix.Load(strings.NewReader("0\n-1\n0\n0\n1\n0\n1\n\n"), tmatrix.Text)
	require.ErrorIs(t, err, tmatrix.ErrWavenumber)
}

func TestBinaryRoundTrip(t *testing.T) {
	tm := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, tmatrix.Save(&buf, tm, tmatrix.Binary))

	got, err := tmatrix.Load(&buf, tmatrix.Binary)
	require.NoError(t, err)
	assertSame(t, tm, got, 0)

	_, err = tmatrix.Load(strings.NewReader("\xc1garbage"), tmatrix.Binary)
	require.ErrorIs(t, err, tmatrix.ErrFormat)
}

func TestRawRoundTrip(t *testing.T) {
	tm := fixture(t)
	path := filepath.Join(t.TempDir(), "t.dat")
	require.NoError(t, tmatrix.SaveFile(path, tm))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 25)

	m, err := tmatrix.ReadRaw(path)
	require.NoError(t, err)
	want := matrix.ColumnMajor(tm.Matrix())
	got := matrix.ColumnMajor(m)
	for i := range want {
		assert.InDelta(t, 0.0, cmplx.Abs(want[i]-got[i]), 1e-15)
	}

	_, err = tmatrix.LoadFile(path)
	require.ErrorIs(t, err, tmatrix.ErrFormat)
}

func TestReadRawRejectsNonSquare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.raw")
	require.NoError(t, os.WriteFile(path, []byte("1 0\n2 0\n3 0\n"), 0o644))

	_, err := tmatrix.ReadRaw(path)
	require.ErrorIs(t, err, tmatrix.ErrFormat)
}

func TestFileRoundTripByExtension(t *testing.T) {
	tm := fixture(t)
	dir := t.TempDir()
	for _, name := range []string{"a.tmat", "b.msgpack", "c.txt", "d.tmatrom"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, tmatrix.SaveFile(path, tm))
			got, err := tmatrix.LoadFile(path)
			require.NoError(t, err)
			assertSame(t, tm, got, 1e-14)
		})
	}

	require.ErrorIs(t, tmatrix.SaveFile(filepath.Join(dir, "x.json"), tm), tmatrix.ErrFormat)
	_, err := tmatrix.LoadFile(filepath.Join(dir, "x.json"))
	require.ErrorIs(t, err, tmatrix.ErrFormat)
}

func TestFileExplicitFormat(t *testing.T) {
	tm := fixture(t)
	path := filepath.Join(t.TempDir(), "matrix.out")

	require.NoError(t, tmatrix.SaveFileAs(path, tm, tmatrix.Text))
	got, err := tmatrix.LoadFileAs(path, tmatrix.Text)
	require.NoError(t, err)
	assertSame(t, tm, got, 1e-14)

	_, err = tmatrix.LoadFileAs(path, tmatrix.Binary)
	require.ErrorIs(t, err, tmatrix.ErrFormat)
}

func TestFormatTags(t *testing.T) {
	for _, tc := range []struct {
		name string
		want tmatrix.Format
	}{
		{"binary", tmatrix.Binary},
		{"Text", tmatrix.Text},
		{" raw ", tmatrix.Raw},
	} {
		f, err := tmatrix.ParseFormat(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, f)
	}
	_, err := tmatrix.ParseFormat("hdf5")
	require.ErrorIs(t, err, tmatrix.ErrFormat)

	require.ErrorIs(t, tmatrix.Save(&bytes.Buffer{}, scalar(t, 1), tmatrix.Format(9)), tmatrix.ErrFormat)
	_, err = tmatrix.Load(strings.NewReader(""), tmatrix.Format(9))
	require.ErrorIs(t, err, tmatrix.ErrFormat)
	assert.Equal(t, "format(9)", tmatrix.Format(9).String())
}
