// SPDX-License-Identifier: MIT
// Package: tmatrom/config
//
// config.go — the run schema, defaults, loading and validation.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"
)

// AutoOrder asks for tmatrix.SuggestedOrder(wavenumber, radius).
const AutoOrder = -1

// Config is one build run.
type Config struct {
	TMatrix   TMatrix   `gcfg:"tmatrix" toml:"tmatrix" yaml:"tmatrix"`
	Scatterer Scatterer `gcfg:"scatterer" toml:"scatterer" yaml:"scatterer"`
	Output    Output    `gcfg:"output" toml:"output" yaml:"output"`
}

// TMatrix holds the build parameters.
type TMatrix struct {
	Order      int     `gcfg:"order" toml:"order" yaml:"order"`
	Wavenumber float64 `gcfg:"wavenumber" toml:"wavenumber" yaml:"wavenumber"`
	OriginX    float64 `gcfg:"originx" toml:"originx" yaml:"originx"`
	OriginY    float64 `gcfg:"originy" toml:"originy" yaml:"originy"`
	Projection string  `gcfg:"projection" toml:"projection" yaml:"projection"`
	Workers    int     `gcfg:"workers" toml:"workers" yaml:"workers"`
	Comments   string  `gcfg:"comments" toml:"comments" yaml:"comments"`
}

// Scatterer describes the body given to the reference solver.
type Scatterer struct {
	Shape      string  `gcfg:"shape" toml:"shape" yaml:"shape"`
	Radius     float64 `gcfg:"radius" toml:"radius" yaml:"radius"`
	Condition  string  `gcfg:"condition" toml:"condition" yaml:"condition"`
	Truncation int     `gcfg:"truncation" toml:"truncation" yaml:"truncation"`
}

// Output names the file the T-matrix is written to. An empty Format picks
// the format from the path extension.
type Output struct {
	Path   string `gcfg:"path" toml:"path" yaml:"path"`
	Format string `gcfg:"format" toml:"format" yaml:"format"`
}

// Default returns the values used for keys a file leaves unset.
func Default() Config {
	return Config{
		TMatrix: TMatrix{
			Order:      AutoOrder,
			Projection: "direct",
			Workers:    1,
		},
		Scatterer: Scatterer{
			Shape:     "disc",
			Condition: "soft",
		},
	}
}

// Load decodes path over Default and validates the result.
// Errors: ErrExtension, ErrDecode (wrapping the decoder error), os errors,
// and the validation sentinels.
func Load(path string) (Config, error) {
	cfg := Default()
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".gcfg":
		err = gcfg.ReadFileInto(&cfg, path)
	case ".toml":
		_, err = toml.DecodeFile(path, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	default:
		return Config{}, fmt.Errorf("%s: %w", path, ErrExtension)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}

		return Config{}, fmt.Errorf("%s: %w: %w", path, ErrDecode, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func decodeYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	return dec.Decode(cfg)
}

// Validate checks every field and normalises names to lower case.
func (c *Config) Validate() error {
	t := &c.TMatrix
	if !(t.Wavenumber > 0) || math.IsInf(t.Wavenumber, 0) {
		return fieldErrorf(ErrWavenumber, t.Wavenumber)
	}
	if t.Order < AutoOrder {
		return fieldErrorf(ErrOrder, t.Order)
	}
	if math.IsNaN(t.OriginX) || math.IsNaN(t.OriginY) || math.IsInf(t.OriginX, 0) || math.IsInf(t.OriginY, 0) {
		return fmt.Errorf("config: tmatrix origin (%g, %g) is not finite", t.OriginX, t.OriginY)
	}
	t.Projection = strings.ToLower(strings.TrimSpace(t.Projection))
	if t.Projection != "direct" && t.Projection != "fft" {
		return fieldErrorf(ErrProjection, t.Projection)
	}
	if t.Workers < 1 {
		return fieldErrorf(ErrWorkers, t.Workers)
	}

	s := &c.Scatterer
	s.Shape = strings.ToLower(strings.TrimSpace(s.Shape))
	if s.Shape != "disc" {
		return fieldErrorf(ErrShape, s.Shape)
	}
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fieldErrorf(ErrRadius, s.Radius)
	}
	s.Condition = strings.ToLower(strings.TrimSpace(s.Condition))
	if s.Condition != "soft" && s.Condition != "hard" {
		return fieldErrorf(ErrCondition, s.Condition)
	}
	if s.Truncation < 0 {
		return fieldErrorf(ErrTruncation, s.Truncation)
	}

	if strings.TrimSpace(c.Output.Path) == "" {
		return fmt.Errorf("missing output.path: %w", ErrOutput)
	}
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	return nil
}
