package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F97316") // Orange
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(TextDim).
		Strikethrough(true)
)

// RiskColor maps a dropout risk level ("Low", "Medium", "High") to a color.
func RiskColor(level string) color.Color {
	switch level {
	case "High":
		return Error
	case "Medium":
		return Warning
	default:
		return Success
	}
}

// AlertColor maps a mentor alert type to a color.
func AlertColor(kind string) color.Color {
	switch kind {
	case "danger":
		return Error
	case "warning":
		return Warning
	default:
		return Secondary
	}
}

// ScoreColor grades a weakness score in [0, 1]; higher is weaker.
func ScoreColor(score float64) color.Color {
	switch {
	case score >= 0.6:
		return Error
	case score >= 0.3:
		return Accent
	default:
		return Success
	}
}
