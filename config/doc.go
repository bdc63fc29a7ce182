// SPDX-License-Identifier: MIT

// Package config loads the description of a T-matrix build run: the build
// parameters, the scatterer handed to the reference solver and the output
// file. The same schema is accepted in three syntaxes, chosen by file
// extension:
//
//	.ini, .gcfg   git-config style sections (gopkg.in/gcfg.v1)
//	.toml         TOML tables (github.com/BurntSushi/toml)
//	.yaml, .yml   YAML mappings (gopkg.in/yaml.v3)
//
// A TOML example:
//
//	[tmatrix]
//	wavenumber = 2.0
//	projection = "fft"
//
//	[scatterer]
//	radius = 1.0
//	condition = "hard"
//
//	[output]
//	path = "disc.tmat"
//
// Load fills unset values from Default and then calls Validate; decoding
// errors and validation errors are distinguishable with errors.Is.
package config
