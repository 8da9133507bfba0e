package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Bold(true)
	recoveryKeyBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
