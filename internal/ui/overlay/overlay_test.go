package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCompose_ReplacesSpan(t *testing.T) {
	base := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}, "\n")
	over := strings.Join([]string{"", "   XYZ", ""}, "\n")

	got := Compose(base, over, 10)

	assert.Equal(t, strings.Join([]string{"aaaaaaaaaa", "bbbXYZbbbb", "cccccccccc"}, "\n"), got)
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("ab", "    X", 6)
	assert.Equal(t, "ab  X ", got)
}

func TestCompose_OverlayLongerThanBase(t *testing.T) {
	got := Compose("one", "X\nY\nZ", 3)
	assert.Equal(t, "Xne", got)
}

func TestCompose_StyledOverlay(t *testing.T) {
	styled := "  \x1b[1mOK\x1b[0m"
	got := Compose("..........", styled, 10)

	assert.Equal(t, "..OK......", ansi.Strip(got))
	assert.Contains(t, got, "\x1b[1m")
}

func TestCompose_WideCharacterAtEdge(t *testing.T) {
	// 東 spans columns 2-3 and the overlay starts at column 3
	got := Compose("ab東cdef", "   X", 8)

	assert.Equal(t, 8, ansi.StringWidth(got))
	assert.Equal(t, "ab Xcdef", ansi.Strip(got))
}
