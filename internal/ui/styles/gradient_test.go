package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRamp(t *testing.T) {
	assert.Nil(t, Ramp(0, "#000000", "#ffffff"))
	assert.Equal(t, []lipgloss.Color{"#000000"}, Ramp(1, "#000000", "#ffffff"))

	r := Ramp(3, "#ff0000", "#0000ff")
	assert.Len(t, r, 3)
	assert.Equal(t, lipgloss.Color("#ff0000"), r[0])
	assert.Equal(t, lipgloss.Color("#0000ff"), r[2])
}

func TestRamp_NonHexFallsBackToGray(t *testing.T) {
	r := Ramp(2, "240", "240")
	assert.Equal(t, lipgloss.Color("#808080"), r[0])
}

func TestApplyBoldGradient_KeepsText(t *testing.T) {
	assert.Empty(t, ApplyBoldGradient("", "#000000", "#ffffff"))
	assert.Equal(t, "shutter", ansi.Strip(ApplyBoldGradient("shutter", "#38bdf8", "#f472b6")))
	assert.Equal(t, "é", ansi.Strip(ApplyBoldGradient("é", "#38bdf8", "#f472b6")))
}
