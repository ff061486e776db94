// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Sanitize drops control characters (except tab) and invalid UTF-8 bytes,
// and turns non-breaking spaces into plain spaces. Photo titles come
// straight from remote users and may contain anything.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0':
			b.WriteByte(' ')
		case r == '\t' || !unicode.IsControl(r):
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := range len(s) {
		c := s[i]
		if c < 0x20 && c != '\t' || c == 0x7f {
			return true
		}
		// U+0080..U+00A0: C1 controls and the non-breaking space
		if c == 0xc2 && i+1 < len(s) && s[i+1] <= 0xa0 {
			return true
		}
	}
	return false
}

// Truncate shortens s to fit within maxWidth display columns, ending
// with Ellipsis when cut. Wide characters (CJK, emoji) count double.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// Pad fills s with spaces up to width display columns.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s cut or padded to exactly width columns.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Center pads s on both sides to width columns. Styled input is measured
// without its escape sequences.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Row joins left and right aligned content into one line of width columns,
// keeping at least one space between them.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
