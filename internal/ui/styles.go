package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - centralized color definitions
var (
	ColorText    = lipgloss.Color("15")  // bright white
	ColorSuccess = lipgloss.Color("82")  // green
	ColorError   = lipgloss.Color("196") // red
	ColorAccent  = lipgloss.Color("226") // bright yellow
	ColorInfo    = lipgloss.Color("86")  // cyan
	ColorTextDim = lipgloss.Color("241") // gray
)

var (
	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Unchanged/skipped files
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	StatStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SummaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorInfo).
			Padding(0, 1)
)
