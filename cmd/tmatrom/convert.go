// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/tmatrom/tmatrix"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a T-matrix file between formats",
		Long: `convert rewrites IN as OUT. Formats follow the file extensions unless --from
or --to is given. Raw input carries no metadata, so --wavenumber is required
for it and --origin-x/--origin-y may be set.`,
		Args: cobra.ExactArgs(2),
		RunE: runConvert,
	}
	cmd.Flags().String("from", "", "input format (binary|text|raw)")
	cmd.Flags().String("to", "", "output format (binary|text|raw)")
	cmd.Flags().Float64("wavenumber", 0, "wavenumber for raw input")
	cmd.Flags().Float64("origin-x", 0, "origin x for raw input")
	cmd.Flags().Float64("origin-y", 0, "origin y for raw input")

	return cmd
}

func formatFlag(cmd *cobra.Command, name, path string) (tmatrix.Format, error) {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return tmatrix.FormatForPath(path)
	}

	return tmatrix.ParseFormat(v)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	from, err := formatFlag(cmd, "from", in)
	if err != nil {
		return err
	}
	to, err := formatFlag(cmd, "to", out)
	if err != nil {
		return err
	}

	var t *tmatrix.TMatrix
	if from == tmatrix.Raw {
		if t, err = loadRaw(cmd, in); err != nil {
			return err
		}
	} else if t, err = tmatrix.LoadFileAs(in, from); err != nil {
		return err
	}
	if err = tmatrix.SaveFileAs(out, t, to); err != nil {
		return err
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) → %s (%s)\n", okStyle.Sprint("converted"), in, from, out, to)
	}

	return nil
}

func loadRaw(cmd *cobra.Command, path string) (*tmatrix.TMatrix, error) {
	k, _ := cmd.Flags().GetFloat64("wavenumber")
	x, _ := cmd.Flags().GetFloat64("origin-x")
	y, _ := cmd.Flags().GetFloat64("origin-y")
	m, err := tmatrix.ReadRaw(path)
	if err != nil {
		return nil, err
	}

	return tmatrix.New((m.Rows()-1)/2, k, m,
		tmatrix.WithOrigin(complex(x, y)),
		tmatrix.WithComments("converted from raw "+path))
}
