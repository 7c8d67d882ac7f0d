package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("241")
	borderColor  = lipgloss.Color("240")
	todayColor   = lipgloss.Color("45")
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238"))

	inputOpenStyle = inputStyle.
			Foreground(lipgloss.Color("255")).
			Background(primaryColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	headerStyle  = lipgloss.NewStyle().Bold(true)
	arrowStyle   = lipgloss.NewStyle().Foreground(primaryColor)
	weekdayStyle = lipgloss.NewStyle().Bold(true).Foreground(mutedColor)

	dayStyle      = lipgloss.NewStyle()
	spillStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	weekendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	holidayStyle  = lipgloss.NewStyle().Foreground(errorColor)
	todayStyle    = lipgloss.NewStyle().Foreground(todayColor).Underline(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(primaryColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(mutedColor)
)
