package display

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and symbols for launcher output using lipgloss.
type Theme struct {
	Bold  lipgloss.Style
	Cyan  lipgloss.Style
	Green lipgloss.Style
	Dim   lipgloss.Style

	Bullet string
	Arrow  string
}

func DefaultTheme() *Theme {
	return &Theme{
		Bold:  lipgloss.NewStyle().Bold(true),
		Cyan:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Green: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Dim:   lipgloss.NewStyle().Faint(true),

		Bullet: "•",
		Arrow:  "→",
	}
}
