package config_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/tmatrom/builder"
	"github.com/katalvlaran/tmatrom/config"
	"github.com/katalvlaran/tmatrom/tmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iniRun = `[tmatrix]
order = 5
wavenumber = 2.5
originx = 0.5
originy = -1
projection = FFT
workers = 3
comments = unit run

[scatterer]
shape = disc
radius = 0.75
condition = hard
truncation = 12

[output]
path = out.tmat
`

const tomlRun = `[tmatrix]
order = 5
wavenumber = 2.5
originx = 0.5
originy = -1.0
projection = "FFT"
workers = 3
comments = "unit run"

[scatterer]
shape = "disc"
radius = 0.75
condition = "hard"
truncation = 12

[output]
path = "out.tmat"
`

const yamlRun = `tmatrix:
  order: 5
  wavenumber: 2.5
  originx: 0.5
  originy: -1
  projection: FFT
  workers: 3
  comments: unit run
scatterer:
  shape: disc
  radius: 0.75
  condition: hard
  truncation: 12
output:
  path: out.tmat
`

// writeFile stores body under a temporary directory and returns its path.
func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadAllSyntaxesAgree(t *testing.T) {
	want := config.Config{
		TMatrix: config.TMatrix{
			Order: 5, Wavenumber: 2.5, OriginX: 0.5, OriginY: -1,
			Projection: "fft", Workers: 3, Comments: "unit run",
		},
		Scatterer: config.Scatterer{Shape: "disc", Radius: 0.75, Condition: "hard", Truncation: 12},
		Output:    config.Output{Path: "out.tmat"},
	}

	cases := []struct{ name, body string }{
		{"run.ini", iniRun},
		{"run.gcfg", iniRun},
		{"run.toml", tomlRun},
		{"run.yaml", yamlRun},
		{"run.yml", yamlRun},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := config.Load(writeFile(t, tc.name, tc.body))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeFile(t, "min.toml", "[tmatrix]\nwavenumber = 1.0\n[scatterer]\nradius = 2.0\n[output]\npath = \"t.txt\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.AutoOrder, cfg.TMatrix.Order)
	assert.Equal(t, tmatrix.SuggestedOrder(1, 2), cfg.Order())
	assert.Equal(t, "direct", cfg.TMatrix.Projection)
	assert.Equal(t, 1, cfg.TMatrix.Workers)
	assert.Equal(t, "soft", cfg.Scatterer.Condition)
	assert.Equal(t, complex128(0), cfg.Origin())

	f, err := cfg.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, tmatrix.Text, f)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(writeFile(t, "run.json", "{}"))
	require.ErrorIs(t, err, config.ErrExtension)

	_, err = config.Load(writeFile(t, "bad.toml", "[tmatrix\n"))
	require.ErrorIs(t, err, config.ErrDecode)

	_, err = config.Load(writeFile(t, "bad.yaml", "tmatrix:\n  bogus: 1\n"))
	require.ErrorIs(t, err, config.ErrDecode)

	_, err = config.Load(writeFile(t, "bad.ini", "[tmatrix]\nwavenumber = many\n"))
	require.ErrorIs(t, err, config.ErrDecode)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = config.Load(writeFile(t, "nok.toml", "[scatterer]\nradius = 1.0\n[output]\npath = \"a.tmat\"\n"))
	require.ErrorIs(t, err, config.ErrWavenumber)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		c := config.Default()
		c.TMatrix.Wavenumber = 1
		c.Scatterer.Radius = 1
		c.Output.Path = "a.tmat"

		return c
	}
	base := valid()
	require.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"order", func(c *config.Config) { c.TMatrix.Order = -2 }, config.ErrOrder},
		{"projection", func(c *config.Config) { c.TMatrix.Projection = "slow" }, config.ErrProjection},
		{"workers", func(c *config.Config) { c.TMatrix.Workers = 0 }, config.ErrWorkers},
		{"shape", func(c *config.Config) { c.Scatterer.Shape = "square" }, config.ErrShape},
		{"radius", func(c *config.Config) { c.Scatterer.Radius = 0 }, config.ErrRadius},
		{"condition", func(c *config.Config) { c.Scatterer.Condition = "wet" }, config.ErrCondition},
		{"truncation", func(c *config.Config) { c.Scatterer.Truncation = -1 }, config.ErrTruncation},
		{"path", func(c *config.Config) { c.Output.Path = " " }, config.ErrOutput},
		{"extension", func(c *config.Config) { c.Output.Path = "a.bin" }, config.ErrOutput},
		{"format", func(c *config.Config) { c.Output.Format = "hdf5" }, config.ErrOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestExplicitFormatOverridesExtension(t *testing.T) {
	c := config.Default()
	c.TMatrix.Wavenumber = 1
	c.Scatterer.Radius = 1
	c.Output = config.Output{Path: "matrix.out", Format: "raw"}
	require.NoError(t, c.Validate())

	f, err := c.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, tmatrix.Raw, f)
}

func TestConfigDrivesBuild(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "run.toml", tomlRun))
	require.NoError(t, err)

	s, err := cfg.Solver()
	require.NoError(t, err)
	tm, err := builder.Build(context.Background(), cfg.Order(), cfg.TMatrix.Wavenumber, s, cfg.BuildOptions()...)
	require.NoError(t, err)

	assert.Equal(t, 5, tm.Order())
	assert.Equal(t, complex(0.5, -1), tm.Origin())
	assert.Contains(t, tm.Comments(), "unit run\n")
	assert.Contains(t, tm.Comments(), "projection=fft")
}
