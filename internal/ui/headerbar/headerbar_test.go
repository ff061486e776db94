package headerbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/shutter/internal/feed"
	"github.com/llehouerou/shutter/internal/ui/testutil"
)

func TestRender_Browse(t *testing.T) {
	out := testutil.StripANSI(Render(feed.ModeBrowse, "", 0, 80))

	assert.Contains(t, out, "shutter")
	assert.Contains(t, out, "Browse")
	assert.Contains(t, out, "Favorites")
	assert.NotContains(t, out, "(0)")
	assert.Equal(t, 80, lipgloss.Width(out))
}

func TestRender_QueryAndCount(t *testing.T) {
	out := testutil.StripANSI(Render(feed.ModeFavorites, "red fox", 3, 80))

	assert.Contains(t, out, "Browse: red fox")
	assert.Contains(t, out, "Favorites (3)")
}

func TestRender_Narrow(t *testing.T) {
	assert.Empty(t, Render(feed.ModeBrowse, "", 0, 10))

	out := Render(feed.ModeBrowse, "a rather long query string", 12, 40)
	assert.Contains(t, testutil.StripANSI(out), "shutter")
}
