package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorMuted     = lipgloss.Color("#6B7280") // Gray
)

// tableStyles are bound to one output so color detection follows the writer
type tableStyles struct {
	header lipgloss.Style
	symbol lipgloss.Style
	code   lipgloss.Style
	footer lipgloss.Style
}

func newTableStyles(out io.Writer) tableStyles {
	r := lipgloss.NewRenderer(out)
	return tableStyles{
		header: r.NewStyle().Bold(true).Foreground(colorPrimary).Width(8),
		symbol: r.NewStyle().Bold(true).Width(8),
		code:   r.NewStyle().Foreground(colorSecondary),
		footer: r.NewStyle().Foreground(colorMuted),
	}
}
