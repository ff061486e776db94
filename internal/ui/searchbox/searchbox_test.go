package searchbox

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shutter/internal/ui/testutil"
)

func newTestBox(query string) (*Model, *testutil.PopupHarness) {
	m := New()
	m.Start(query, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	require.NotNil(t, cmd)
	result, source, ok := testutil.ActionFrom[Result](cmd)
	require.True(t, ok, "expected a Result action")
	assert.Equal(t, "searchbox", source)
	return result
}

func TestTypeAndSubmit(t *testing.T) {
	m, h := newTestBox("")

	h.Type("red fox")
	assert.Equal(t, "red fox", m.Value())

	result := getResult(t, h.SendEnter())
	assert.Equal(t, "red fox", result.Query)
	assert.False(t, result.Canceled)
}

func TestStart_PrefillsQuery(t *testing.T) {
	m, h := newTestBox("cats")

	h.SendSpecialKey(tea.KeyBackspace)
	h.Type("s and dogs")
	assert.Equal(t, "cats and dogs", m.Value())
}

func TestSubmitEmpty(t *testing.T) {
	_, h := newTestBox("")
	result := getResult(t, h.SendEnter())
	assert.Empty(t, result.Query)
	assert.False(t, result.Canceled)
}

func TestEscape_Cancels(t *testing.T) {
	_, h := newTestBox("cats")
	result := getResult(t, h.SendEscape())
	assert.True(t, result.Canceled)
}

func TestInit_Blinks(t *testing.T) {
	m := New()
	assert.NotNil(t, m.Init())
}

func TestView(t *testing.T) {
	_, h := newTestBox("cats")
	assert.True(t, h.ViewContains("Search Flickr"))
	assert.True(t, h.ViewContains("> cats"))
}
