package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Usage thresholds shared by all meters.
const (
	WarnThreshold  = 60.0
	AlertThreshold = 80.0
)

// Theme bundles the lipgloss styles for one color scheme.
type Theme struct {
	Name string

	Healthy  lipgloss.Color
	Warning  lipgloss.Color
	Critical lipgloss.Color

	Header   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Footer   lipgloss.Style
	Card     lipgloss.Style
	CardSel  lipgloss.Style
	ModalBox lipgloss.Style
	Title    lipgloss.Style
}

// darkTheme is the default scheme for dark terminals.
func darkTheme() Theme {
	var (
		border   = lipgloss.Color("#3A3A4A")
		accent   = lipgloss.Color("#36A3D9")
		text     = lipgloss.Color("#FFFFFF")
		secondar = lipgloss.Color("#B4B4C8")
		muted    = lipgloss.Color("#6B6B80")
	)

	return Theme{
		Name:     "dark",
		Healthy:  lipgloss.Color("#22CC66"),
		Warning:  lipgloss.Color("#FFAA00"),
		Critical: lipgloss.Color("#FF3355"),

		Header: lipgloss.NewStyle().Foreground(text).Bold(true).Padding(0, 1),
		Label:  lipgloss.NewStyle().Foreground(secondar),
		Value:  lipgloss.NewStyle().Foreground(text),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Footer: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginRight(1),
		CardSel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			MarginRight(1),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}

// lightTheme is the scheme for light terminals.
func lightTheme() Theme {
	var (
		border   = lipgloss.Color("#C0C0CC")
		accent   = lipgloss.Color("#005FAF")
		text     = lipgloss.Color("#1A1A24")
		secondar = lipgloss.Color("#4A4A58")
		muted    = lipgloss.Color("#8A8A98")
	)

	return Theme{
		Name:     "light",
		Healthy:  lipgloss.Color("#008844"),
		Warning:  lipgloss.Color("#AA6600"),
		Critical: lipgloss.Color("#CC1133"),

		Header: lipgloss.NewStyle().Foreground(text).Bold(true).Padding(0, 1),
		Label:  lipgloss.NewStyle().Foreground(secondar),
		Value:  lipgloss.NewStyle().Foreground(text),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Footer: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginRight(1),
		CardSel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			MarginRight(1),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}

// NewTheme returns the theme for a settings value. "system" and anything
// unrecognized resolve to dark, which reads fine on most terminals.
func NewTheme(name string) Theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}

// MetricColor returns the severity color for a usage percentage.
func (t Theme) MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent > AlertThreshold:
		return t.Critical
	case percent > WarnThreshold:
		return t.Warning
	default:
		return t.Healthy
	}
}

// MetricStyle returns a style colored by the usage level.
func (t Theme) MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.MetricColor(percent))
}

// ProgressBar renders a usage bar of the given width, colored by level.
func (t Theme) ProgressBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return t.MetricStyle(percent).Render(bar)
}
