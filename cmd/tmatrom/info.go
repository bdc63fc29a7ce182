// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/tmatrom/tmatrix"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Show the metadata and symmetry residual of a T-matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTMatrix(args[0], cmd.Flag("format").Value.String())
			if err != nil {
				return err
			}
			box, err := renderSummary(args[0], t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), box)

			return nil
		},
	}
	cmd.Flags().String("format", "", "file format (binary|text); default from extension")

	return cmd
}

// loadTMatrix reads path in the named format, or by extension when empty.
func loadTMatrix(path, name string) (*tmatrix.TMatrix, error) {
	if name == "" {
		return tmatrix.LoadFile(path)
	}
	f, err := tmatrix.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return tmatrix.LoadFileAs(path, f)
}
