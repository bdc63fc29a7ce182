// SPDX-License-Identifier: MIT

// Command tmatrom builds, inspects and converts 2-D T-matrix files.
//
//	tmatrom build --config run.toml
//	tmatrom info disc.tmat
//	tmatrom convert disc.tmat disc.txt
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRootCmd assembles the command tree; tests build their own instance.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tmatrom",
		Short:         "T-matrices for 2-D wave scattering",
		Long:          `tmatrom computes T-matrices by quadrature from a scattering solver and reads, writes and inspects T-matrix files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cmd.Flags().GetString("color")
			if err != nil {
				return err
			}

			return setColorMode(mode)
		},
	}
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	root.AddCommand(newBuildCmd(), newInfoCmd(), newConvertCmd())

	return root
}

// main executes the root command and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}

func setColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("--color must be auto, on or off (got %q)", mode)
	}

	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
