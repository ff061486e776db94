package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for colors that are not "#rrggbb".
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyBoldGradient renders text in bold, shading each grapheme from one
// color to the other.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var graphemes []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		graphemes = append(graphemes, g.Str())
	}

	style := lipgloss.NewStyle().Bold(true)
	switch len(graphemes) {
	case 0:
		return ""
	case 1:
		return style.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range Ramp(len(graphemes), from, to) {
		b.WriteString(style.Foreground(c).Render(graphemes[i]))
	}
	return b.String()
}

// Ramp returns n colors going from one end to the other, blended in HCL
// so the steps look even.
func Ramp(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}

	start, end := toColorful(from), toColorful(to)
	out := make([]lipgloss.Color, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		out[i] = lipgloss.Color(start.BlendHcl(end, t).Clamped().Hex())
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
