package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorSuccess  = "28"  // Green for success
	ColorError    = "196" // Red for errors
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	PreviewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim))
)

// FormBorderStyle returns the border around the input fields. A failed
// commit turns it red until the next edit.
func FormBorderStyle(width int, hasError bool) lipgloss.Style {
	color := ColorInactive
	if hasError {
		color = ColorError
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Width(width).
		Padding(0, 1)
}
