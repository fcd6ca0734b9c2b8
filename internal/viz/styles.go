package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(12)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))
)

// SliderBar draws a track of width cells with the knob at fraction f.
func SliderBar(f float64, width int, selected bool) string {
	if width < 2 {
		width = 2
	}
	knob := int(f*float64(width-1) + 0.5)
	if knob < 0 {
		knob = 0
	}
	if knob > width-1 {
		knob = width - 1
	}

	filled := strings.Repeat("━", knob)
	rest := strings.Repeat("─", width-knob-1)

	fill := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	mark := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	if selected {
		fill = fill.Foreground(CurrentTheme.Primary)
		mark = mark.Foreground(CurrentTheme.Accent).Bold(true)
	}
	return fill.Render(filled) + mark.Render("●") + Subtle.Render(rest)
}

// Button renders a push button label, highlighted when flashed.
func Button(label string, flashed bool) string {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Muted).
		Padding(0, 1)
	if flashed {
		st = st.BorderForeground(CurrentTheme.Accent).Foreground(CurrentTheme.Accent).Bold(true)
	}
	return st.Render(label)
}

// Separator draws a decorative rule.
func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
