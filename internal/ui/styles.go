package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Status colors
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue

	// Text colors
	ColorTextMuted = lipgloss.Color("#9CA3AF") // Gray
	ColorLink      = lipgloss.Color("#6366F1") // Indigo

	// Border colors
	ColorBorder = lipgloss.Color("#374151") // Medium gray
)

// namedColors translates the color names the menu-bar host accepts into
// something a terminal can draw.
var namedColors = map[string]lipgloss.Color{
	"red":    ColorError,
	"green":  ColorSuccess,
	"orange": ColorWarning,
	"yellow": ColorWarning,
	"blue":   ColorInfo,
	"gray":   ColorTextMuted,
	"grey":   ColorTextMuted,
}

// ResolveColor maps a host color value (hex or name) to a lipgloss color
func ResolveColor(value string) (lipgloss.Color, bool) {
	if value == "" {
		return "", false
	}
	if value[0] == '#' {
		return lipgloss.Color(value), true
	}
	c, ok := namedColors[value]
	return c, ok
}

// Message styles
var (
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)
