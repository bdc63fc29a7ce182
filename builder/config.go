// SPDX-License-Identifier: MIT
// Package: tmatrom/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • origin     = 0
//   • comments   = ""            (provenance only)
//   • projection = ProjectDirect
//   • workers    = 1

package builder

// buildConfig aggregates all knobs of a Build call.
type buildConfig struct {
	origin     complex128
	comments   string
	projection Projection
	workers    int
}

const defaultWorkers = 1

// newBuildConfig applies options in order over the defaults (last wins).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		projection: ProjectDirect,
		workers:    defaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
