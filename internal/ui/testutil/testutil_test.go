package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/shutter/internal/ui/action"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "red text", StripANSI("\x1b[31mred\x1b[0m text"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestFindLine(t *testing.T) {
	out := "header\n\x1b[1m♥ Cat\x1b[0m\nDog"
	assert.Equal(t, "♥ Cat", FindLine(out, "Cat"))
	assert.Empty(t, FindLine(out, "Bird"))
	assert.True(t, ContainsLine(out, "Dog"))
	assert.False(t, ContainsLine(out, "Bird"))
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 2, CountLines("a\n\n  \nb\n"))
	assert.Equal(t, 0, CountLines(""))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb\n \n"))
	assert.Empty(t, SplitLines("\n\n"))
}

type done struct{ n int }

func (done) ActionType() string { return "test.done" }

type other struct{}

func (other) ActionType() string { return "test.other" }

func TestActionFrom(t *testing.T) {
	a, source, ok := ActionFrom[done](action.Cmd("tester", done{n: 3}))
	assert.True(t, ok)
	assert.Equal(t, "tester", source)
	assert.Equal(t, 3, a.n)

	_, _, ok = ActionFrom[done](action.Cmd("tester", other{}))
	assert.False(t, ok)

	_, _, ok = ActionFrom[done](nil)
	assert.False(t, ok)

	_, _, ok = ActionFrom[done](func() tea.Msg { return "not an action" })
	assert.False(t, ok)
}
