package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle          = lipgloss.NewStyle().Padding(1, 2)
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	activeMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
