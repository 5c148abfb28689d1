package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive    = "170" // Purple/magenta for the focused group
	ColorInactive  = "240" // Gray for the other group
	ColorDim       = "241"
	ColorVeryDim   = "242"
	ColorWhite     = "255"
	ColorChipTrack = "236" // Background behind unselected chips

	// ColorTransitionFrom is where animated chips start blending from
	ColorTransitionFrom = "#3a3a3a"
)

var (
	ActiveBorderStyle   = groupBorderStyle(ColorActive)
	InactiveBorderStyle = groupBorderStyle(ColorInactive)

	HeaderPaddingStyle = lipgloss.NewStyle().Padding(0, 1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim)).
			Italic(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

func groupBorderStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color))
}

func groupColor(active bool) lipgloss.Color {
	if active {
		return lipgloss.Color(ColorActive)
	}
	return lipgloss.Color(ColorInactive)
}

// GetTagChipStyle returns the filled chip style used for selected tags
func GetTagChipStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, chipPadding/2)
}

// GetTagTextStyle returns the outline-free chip style used for unselected tags
func GetTagTextStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Background(lipgloss.Color(ColorChipTrack)).
		Padding(0, chipPadding/2)
}

// renderHeader renders "TITLE ::::::" filling width
func renderHeader(title string, width int, active bool) string {
	remaining := max(width-lipgloss.Width(title)-3, 0)
	color := groupColor(active)
	return HeaderPaddingStyle.Render(
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(title) + " " +
			lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(":", remaining)))
}
