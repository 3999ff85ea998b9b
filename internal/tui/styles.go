package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorGreen  = lipgloss.Color("#49E209")
	ColorMint   = lipgloss.Color("#00D0A1")
	ColorPurple = lipgloss.Color("#C084FC")
	ColorPink   = lipgloss.Color("#F472B6")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorGray   = lipgloss.Color("#6B7280")
	ColorDim    = lipgloss.Color("#374151")
	ColorNavy   = lipgloss.Color("#0F172A")
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(ColorPurple).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(ColorPink)
	bodyStyle     = lipgloss.NewStyle().Foreground(ColorWhite)
	mutedStyle    = lipgloss.NewStyle().Foreground(ColorGray)
	accentStyle   = lipgloss.NewStyle().Foreground(ColorMint)

	promptStyle = lipgloss.NewStyle().Foreground(ColorGray)
	inputStyle  = lipgloss.NewStyle().Foreground(ColorGreen)
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BBF7D0"))

	tabStyle       = lipgloss.NewStyle().Foreground(ColorGray).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(ColorNavy).Background(ColorMint).Bold(true).Padding(0, 1)

	windowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)
)
