package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shutter/internal/feed"
	"github.com/llehouerou/shutter/internal/ui/headerbar"
	"github.com/llehouerou/shutter/internal/ui/render"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	s := styles.T().S()
	view := lipgloss.JoinVertical(lipgloss.Left,
		headerbar.Render(m.snap.Mode, m.snap.Query, m.snap.FavoriteCount(), m.width),
		s.Subtle.Render(render.Separator(m.width)),
		m.grid.View(m.gridTitle()),
		m.renderStatus(),
	)
	return m.popups.Overlay(view)
}

func (m Model) gridTitle() string {
	var title string
	switch {
	case m.snap.Mode == feed.ModeFavorites:
		title = "Favorites"
	case m.snap.Query != "":
		title = "Search: " + m.snap.Query
	default:
		title = "Recent photos"
	}
	if n := len(m.snap.Photos); n > 0 {
		title += " · " + formatCount(n) + " " + plural(n, "photo")
	}
	return title
}

// renderStatus draws the bottom line. A running fetch wins over the last
// error, which wins over the transient status message.
func (m Model) renderStatus() string {
	s := styles.T().S()

	var left string
	switch {
	case m.snap.Loading:
		left = m.spinner.View() + " " + s.Muted.Render("Loading photos…")
	case m.snap.Err != nil:
		left = s.Error.Render(render.Truncate(m.snap.Err.Error(), max(m.width-24, 10)))
	case m.status != "":
		left = s.Base.Render(render.Truncate(m.status, max(m.width-24, 10)))
	default:
		left = s.Subtle.Render("? help · / search · f favorites · q quit")
	}

	var right string
	if !m.snap.FetchedAt.IsZero() {
		right = s.Subtle.Render("updated " + humanize.Time(m.snap.FetchedAt))
	}
	return render.Row(left, right, m.width)
}

func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return render.Sanitize(title)
}

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
