package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shutter/internal/feed"
	"github.com/llehouerou/shutter/internal/keymap"
	"github.com/llehouerou/shutter/internal/ui"
	"github.com/llehouerou/shutter/internal/ui/action"
	"github.com/llehouerou/shutter/internal/ui/confirm"
	"github.com/llehouerou/shutter/internal/ui/helpbindings"
	"github.com/llehouerou/shutter/internal/ui/photopreview"
	"github.com/llehouerou/shutter/internal/ui/searchbox"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.grid.SetSize(msg.Width, max(msg.Height-ui.HeaderHeight-ui.StatusHeight, 0))
		m.popups.SetSize(msg.Width, msg.Height)
		return m, nil

	case SnapshotMsg:
		cmd := m.applySnapshot(msg.Snapshot)
		return m, tea.Batch(cmd, m.WatchSnapshots())

	case snapshotsClosedMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.snap.Loading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case FavoriteDoneMsg:
		if msg.Stored {
			m.status = "Added to favorites: " + displayTitle(msg.Photo.Title)
		}
		return m, nil

	case FavoritesClearedMsg:
		if m.feed.Snapshot().FavoriteCount() == 0 && msg.Count > 0 {
			m.status = "Cleared " + formatCount(msg.Count) + " " + plural(msg.Count, "favorite")
		}
		return m, nil

	case PreviewLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("preview_failed", "photo_id", msg.Photo.ID, "error", msg.Err.Error())
		}
		m.popups.SetPreviewResult(msg.Photo, msg.Image, msg.Err)
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Close()
			return m, tea.Quit
		}
		if m.popups.Active() != PopupNone {
			return m, m.popups.Update(msg)
		}
		return m.handleKey(msg)
	}

	// Anything else (cursor blink, ...) belongs to the open popup
	return m, m.popups.Update(msg)
}

// applySnapshot takes a new feed state and updates the grid from it.
func (m *Model) applySnapshot(s feed.Snapshot) tea.Cmd {
	prev := m.snap
	m.snap = s

	if prev.Mode != s.Mode {
		m.grid.Reset()
		m.status = ""
	}

	m.grid.SetPhotos(s.Photos, s.IsFavorite)
	m.grid.SetEmptyText(emptyText(s))

	if s.Loading && !m.spinning {
		m.spinning = true
		return m.spinner.Tick
	}
	return nil
}

func emptyText(s feed.Snapshot) string {
	switch {
	case s.Mode == feed.ModeFavorites:
		return "No favorites"
	case s.Loading:
		return "Loading photos…"
	case s.Err != nil:
		return "Could not load photos"
	case s.Query != "":
		return "No photos match \"" + s.Query + "\""
	default:
		return "No photos"
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.Resolve(msg.String())
	switch a {
	case keymap.ActionQuit:
		m.Close()
		return m, tea.Quit

	case keymap.ActionHelp:
		return m, m.popups.ShowHelp()

	case keymap.ActionSearch:
		return m, m.popups.ShowSearch(m.snap.Query)

	case keymap.ActionRefresh:
		if m.snap.Mode == feed.ModeFavorites {
			return m, m.refreshFavoritesCmd()
		}
		return m, m.searchCmd(m.snap.Query)

	case keymap.ActionToggleFavorites:
		return m, m.toggleFavoritesCmd()

	case keymap.ActionFavorite:
		photo, ok := m.grid.Selected()
		if !ok {
			return m, nil
		}
		if !photo.HasImage() {
			m.status = "Photo has no image, not added"
			return m, nil
		}
		return m, m.favoriteCmd(photo)

	case keymap.ActionClearFavorites:
		count := m.snap.FavoriteCount()
		if count == 0 {
			m.status = "No favorites to clear"
			return m, nil
		}
		return m, m.popups.ShowClearConfirm(count)

	case keymap.ActionPreview:
		photo, ok := m.grid.Selected()
		if !ok {
			return m, nil
		}
		if !photo.HasImage() {
			m.status = "Photo has no image"
			return m, nil
		}
		return m, tea.Batch(m.popups.ShowPreview(photo), m.previewCmd(photo))
	}

	m.grid.Navigate(a)
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case searchbox.Result:
		m.popups.Hide()
		if a.Canceled {
			return m, nil
		}
		m.status = ""
		return m, m.searchCmd(a.Query)

	case confirm.Result:
		m.popups.Hide()
		if a.Confirmed && a.Context == clearFavoritesContext {
			return m, m.clearFavoritesCmd()
		}

	case helpbindings.Close, photopreview.Close:
		m.popups.Hide()
	}
	return m, nil
}
