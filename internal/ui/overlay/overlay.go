// Package overlay composes a popup layer over a rendered base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view. For every overlay line,
// the visible span between its first and last non-space column replaces
// the base at the same position; blank overlay lines keep the base line.
// Styled text is handled with ANSI-aware cutting.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// ansi.Cut drops a wide character straddling the cut point, so pad
		// the pieces back to their expected widths.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		line := prefix + content
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			want := width - endCol
			switch w := ansi.StringWidth(suffix); {
			case w > want:
				suffix = " " + ansi.Cut(suffix, w-want+1, w)
			case w < want:
				suffix += strings.Repeat(" ", want-w)
			}
			line += suffix
		}

		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}
