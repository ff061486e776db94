// Package headerbar renders the top line: app title and view tabs.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shutter/internal/feed"
	"github.com/llehouerou/shutter/internal/ui/render"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const appTitle = "shutter"

type tab struct {
	key  string
	name string
	mode feed.Mode
}

var tabs = []tab{
	{"f", "Browse", feed.ModeBrowse},
	{"f", "Favorites", feed.ModeFavorites},
}

// Render returns the header line. favorites is the favorites count shown
// on its tab; query, when set, is shown on the browse tab.
func Render(mode feed.Mode, query string, favorites, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	active := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(t.FgMuted)
	separator := t.S().Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		name := tb.name
		switch tb.mode {
		case feed.ModeBrowse:
			if query != "" {
				name += ": " + render.Truncate(query, 24)
			}
		case feed.ModeFavorites:
			if favorites > 0 {
				name += " (" + strconv.Itoa(favorites) + ")"
			}
		}
		style := inactive
		if tb.mode == mode {
			style = active
		}
		parts = append(parts, style.Render(name))
	}
	tabsView := strings.Join(parts, separator)

	title := styles.ApplyBoldGradient(appTitle, t.Primary, t.Secondary)
	hint := t.S().Subtle.Render(tabs[0].key + " switch")
	line := render.Row(title+"  "+tabsView, hint, width)
	if lipgloss.Width(line) > width {
		line = render.Row(title, tabsView, width)
	}
	return line
}
