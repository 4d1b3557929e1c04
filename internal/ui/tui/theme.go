package tui

import "github.com/charmbracelet/lipgloss"

// Advent palette: tree green for chrome, star gold for answers.
const (
	colorGreen = lipgloss.Color("34")
	colorGold  = lipgloss.Color("220")
	colorRed   = lipgloss.Color("160")
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Part     lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	faint := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		Subtitle: faint,
		Help:     faint,
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen),
		Part:  lipgloss.NewStyle().Bold(true).Foreground(colorGold),
		Error: lipgloss.NewStyle().Foreground(colorRed),
	}
}
