package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7AA2F7") // blue
	successColor = lipgloss.Color("#9ECE6A") // green
	warningColor = lipgloss.Color("#E0AF68") // amber
	errorColor   = lipgloss.Color("#F7768E") // red
	mutedColor   = lipgloss.Color("#565F89") // gray
	dimTextColor = lipgloss.Color("#9AA5CE") // dim text

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Italic(true)

	fileStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(1)

	iconSuccess = "✓"
	iconError   = "✗"
)
