package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles derived from a Theme.
type styles struct {
	title       lipgloss.Style
	unit        lipgloss.Style
	selected    lipgloss.Style
	name        lipgloss.Style
	nameActive  lipgloss.Style
	playing     lipgloss.Style
	paused      lipgloss.Style
	button      lipgloss.Style
	placeholder lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	help        lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		unit: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			MarginRight(unitGap),
		selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			MarginRight(unitGap),
		name:       lipgloss.NewStyle().Foreground(t.Secondary),
		nameActive: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		playing:    lipgloss.NewStyle().Foreground(t.Playing).Bold(true),
		paused:     lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
		button: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Accent).
			Bold(true),
		placeholder: lipgloss.NewStyle().
			Foreground(t.Muted).
			Background(t.Placeholder).
			Align(lipgloss.Center, lipgloss.Center),
		label: lipgloss.NewStyle().Foreground(t.Muted).Width(16),
		value: lipgloss.NewStyle().Foreground(t.Text),
		help:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// fit pads or truncates s to exactly width runes.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
