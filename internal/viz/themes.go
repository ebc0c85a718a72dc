package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name        string
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Accent      lipgloss.Color
	Background  lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Playing     lipgloss.Color
	Paused      lipgloss.Color
	Placeholder lipgloss.Color
}

// Available themes
var (
	ThemeMono = Theme{
		Name:        "mono",
		Primary:     lipgloss.Color("#ffffff"),
		Secondary:   lipgloss.Color("#9ca3af"),
		Accent:      lipgloss.Color("#ffffff"),
		Background:  lipgloss.Color("#000000"),
		Text:        lipgloss.Color("#e5e7eb"),
		Muted:       lipgloss.Color("#6b7280"),
		Playing:     lipgloss.Color("#ffffff"),
		Paused:      lipgloss.Color("#9ca3af"),
		Placeholder: lipgloss.Color("#1f2937"),
	}

	ThemeCyberpunk = Theme{
		Name:        "cyberpunk",
		Primary:     lipgloss.Color("#ff00ff"), // Magenta
		Secondary:   lipgloss.Color("#00ffff"), // Cyan
		Accent:      lipgloss.Color("#ffff00"), // Yellow
		Background:  lipgloss.Color("#0a0a0a"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#666666"),
		Playing:     lipgloss.Color("#00ff00"),
		Paused:      lipgloss.Color("#ff8800"),
		Placeholder: lipgloss.Color("#1a001a"),
	}

	ThemeRetroGreen = Theme{
		Name:        "retro",
		Primary:     lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:   lipgloss.Color("#00cc00"),
		Accent:      lipgloss.Color("#88ff88"),
		Background:  lipgloss.Color("#001100"),
		Text:        lipgloss.Color("#00ff00"),
		Muted:       lipgloss.Color("#005500"),
		Playing:     lipgloss.Color("#88ff88"),
		Paused:      lipgloss.Color("#ffff00"),
		Placeholder: lipgloss.Color("#002200"),
	}

	ThemeOcean = Theme{
		Name:        "ocean",
		Primary:     lipgloss.Color("#0077be"), // Ocean blue
		Secondary:   lipgloss.Color("#00a8cc"),
		Accent:      lipgloss.Color("#ffd700"),
		Background:  lipgloss.Color("#001a33"),
		Text:        lipgloss.Color("#e0f0ff"),
		Muted:       lipgloss.Color("#4488aa"),
		Playing:     lipgloss.Color("#00ff88"),
		Paused:      lipgloss.Color("#ffcc00"),
		Placeholder: lipgloss.Color("#0a2a4a"),
	}

	ThemeSunset = Theme{
		Name:        "sunset",
		Primary:     lipgloss.Color("#ff6b6b"), // Coral
		Secondary:   lipgloss.Color("#feca57"),
		Accent:      lipgloss.Color("#ff9ff3"),
		Background:  lipgloss.Color("#2d1b2e"),
		Text:        lipgloss.Color("#fff5f5"),
		Muted:       lipgloss.Color("#8b6b8c"),
		Playing:     lipgloss.Color("#5fd068"),
		Paused:      lipgloss.Color("#ffc048"),
		Placeholder: lipgloss.Color("#3d2b3e"),
	}

	// All available themes
	Themes = []Theme{
		ThemeMono,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
