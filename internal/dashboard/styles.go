package dashboard

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	ColorBorder = lipgloss.Color("#2A2A4A") // glass border (purple tint)

	// Semantic colors for the readout
	ColorHealthy  = lipgloss.Color("#39FF14") // neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // electric amber
	ColorCritical = lipgloss.Color("#FF0055") // hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	// Accent colors
	ColorAccent = lipgloss.Color("#FF2E97") // neon pink
	ColorGraph  = lipgloss.Color("#00FFFF") // neon cyan
)

// Thresholds for readout severity levels
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	// Status indicator styles
	StatusConnectingStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	StatusLiveStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)
)

// Status indicator characters
const (
	GlyphLive = "◉"
)

// severityStyle returns the readout style for a utilization percentage.
func severityStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= CriticalThreshold:
		return lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	case percent >= WarningThreshold:
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorHealthy).Bold(true)
	}
}
