// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/katalvlaran/tmatrom/tmatrix"
)

var (
	errorStyle = color.New(color.FgRed, color.Bold)
	okStyle    = color.New(color.FgGreen, color.Bold)
	warnStyle  = color.New(color.FgYellow)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Width(12)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// symmetryStyle grades a normalised symmetry residual.
func symmetryStyle(v float64) *color.Color {
	switch {
	case v < 1e-6:
		return okStyle
	case v < 1e-3:
		return warnStyle
	default:
		return errorStyle
	}
}

// renderSummary draws the metadata box printed by info and build.
func renderSummary(title string, t *tmatrix.TMatrix) (string, error) {
	sym, err := t.SymmetryError(true)
	if err != nil {
		return "", err
	}
	rows := [][2]string{
		{"order", fmt.Sprintf("%d", t.Order())},
		{"size", fmt.Sprintf("%d×%d", t.Size(), t.Size())},
		{"wavenumber", fmt.Sprintf("%.15g", t.Wavenumber())},
		{"origin", fmt.Sprintf("(%g, %g)", real(t.Origin()), imag(t.Origin()))},
		{"symmetry", symmetryStyle(sym).Sprintf("%.3e", sym)},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(r[1])
	}
	if c := strings.TrimRight(t.Comments(), "\n"); c != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("comments"))
		b.WriteString(strings.ReplaceAll(c, "\n", "\n"+strings.Repeat(" ", 12)))
	}

	return boxStyle.Render(b.String()), nil
}
