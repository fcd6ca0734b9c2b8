package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme defines the color scheme for the TUI and its plots.
type Theme struct {
	Name         string
	Primary      lipgloss.Color
	Secondary    lipgloss.Color
	Accent       lipgloss.Color
	Text         lipgloss.Color
	Muted        lipgloss.Color
	Wave1        asciigraph.AnsiColor
	Wave2        asciigraph.AnsiColor
	Interference asciigraph.AnsiColor
}

// Available themes
var (
	// Line colors of the classic plotting defaults: blue, red, green.
	ThemeMatplotlib = Theme{
		Name:         "matplotlib",
		Primary:      lipgloss.Color("#1f77b4"),
		Secondary:    lipgloss.Color("#d62728"),
		Accent:       lipgloss.Color("#2ca02c"),
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#888888"),
		Wave1:        asciigraph.Blue,
		Wave2:        asciigraph.Red,
		Interference: asciigraph.Green,
	}

	ThemeCyberpunk = Theme{
		Name:         "cyberpunk",
		Primary:      lipgloss.Color("#ff00ff"),
		Secondary:    lipgloss.Color("#00ffff"),
		Accent:       lipgloss.Color("#ffff00"),
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#666666"),
		Wave1:        asciigraph.Magenta,
		Wave2:        asciigraph.Cyan,
		Interference: asciigraph.Yellow,
	}

	ThemeRetroGreen = Theme{
		Name:         "retro",
		Primary:      lipgloss.Color("#00ff00"),
		Secondary:    lipgloss.Color("#00cc00"),
		Accent:       lipgloss.Color("#88ff88"),
		Text:         lipgloss.Color("#00ff00"),
		Muted:        lipgloss.Color("#005500"),
		Wave1:        asciigraph.Green,
		Wave2:        asciigraph.DarkGreen,
		Interference: asciigraph.LightGreen,
	}

	ThemeOcean = Theme{
		Name:         "ocean",
		Primary:      lipgloss.Color("#0077be"),
		Secondary:    lipgloss.Color("#00a8cc"),
		Accent:       lipgloss.Color("#ffd700"),
		Text:         lipgloss.Color("#e0f0ff"),
		Muted:        lipgloss.Color("#4488aa"),
		Wave1:        asciigraph.Blue,
		Wave2:        asciigraph.Aqua,
		Interference: asciigraph.Gold,
	}

	CurrentTheme = ThemeMatplotlib

	Themes = []Theme{
		ThemeMatplotlib,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMatplotlib
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme cycles CurrentTheme and returns its name.
func NextTheme() string {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme.Name
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme.Name
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
