package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPurple   = lipgloss.Color("#7D56F4")
	ColorGreen    = lipgloss.Color("#25A065")
	ColorBlue     = lipgloss.Color("#4285F4")
	ColorRed      = lipgloss.Color("#E05252")
	ColorYellow   = lipgloss.Color("#E5C07B")
	ColorGray     = lipgloss.Color("#626262")
	ColorGrayDim  = lipgloss.Color("#404040")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorOffWhite = lipgloss.Color("#D0D0D0")
	ColorCyan     = lipgloss.Color("#56B6C2")
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Menu styles
var (
	MenuKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue).
			Width(4)

	MenuLabelStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	MenuQuitStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Output styles
var (
	OutputPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorGrayDim).
				Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	DueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)
)

// Input styles
var (
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorPurple).
				Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)
)
