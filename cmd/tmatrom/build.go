// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/tmatrom/builder"
	"github.com/katalvlaran/tmatrom/config"
	"github.com/katalvlaran/tmatrom/tmatrix"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a T-matrix from a run configuration",
		Long: `build reads a run configuration (.ini, .toml or .yaml), solves the scattering
problem for the configured disc and writes the resulting T-matrix.`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
	cmd.Flags().StringP("config", "c", "", "run configuration file")
	cmd.Flags().StringP("output", "o", "", "override output.path")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Output.Path = out
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	solver, err := cfg.Solver()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	t, err := builder.Build(ctx, cfg.Order(), cfg.TMatrix.Wavenumber, solver, cfg.BuildOptions()...)
	if err != nil {
		return err
	}
	if err = tmatrix.SaveFileAs(cfg.Output.Path, t, format); err != nil {
		return err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (%s)\n", okStyle.Sprint("wrote"), cfg.Output.Path, format)
	box, err := renderSummary(cfg.Output.Path, t)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, box)

	return nil
}
