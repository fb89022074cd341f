package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used for interactive text. Styles are bound to the
// writer they render for, so output that is not a terminal stays plain.
type Theme struct {
	Prompt  lipgloss.Style
	Invalid lipgloss.Style
}

// NewTheme creates a theme for the given writer
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Prompt:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Invalid: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}
