// Package popup renders modal boxes centered over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shutter/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeLarge = SizeConfig{WidthPct: 80, HeightPct: 80} // Preview
	SizeAuto  = SizeConfig{}                            // Help, confirm, search
)

// RenderBordered wraps content in a rounded border and centers it on a
// screenW x screenH canvas.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// Center places pre-rendered content in the middle of the screen. Lines
// above the content are blank so overlay.Compose leaves them untouched.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	boxWidth := maxLineWidth(content)

	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	left := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(left)
		b.WriteString(line)
	}
	return b.String()
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4 // padding + border
	height = min(height, screenH-2)
	return width, height
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
