package tui

import "github.com/charmbracelet/lipgloss"

// Warm diner palette for the progress view and summary table.
var (
	ColorInk       = lipgloss.Color("#F2EDE4")
	ColorDim       = lipgloss.Color("#8A8577")
	ColorAccent    = lipgloss.Color("#E8B04B")
	ColorAccentAlt = lipgloss.Color("#C98A4B")
	ColorSuccess   = lipgloss.Color("#A8C686")
	ColorWarn      = lipgloss.Color("#D9774E")
)
