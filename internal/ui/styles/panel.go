package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered panel style; focused panels use the
// accent border color.
func PanelStyle(focused bool) lipgloss.Style {
	color := T().Border
	if focused {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
