package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shutter/internal/feed"
	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/notify"
)

// waitForChannel creates a command that waits for a value from a channel
// and converts it to a message. ok is false once the channel is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchSnapshots waits for the next feed snapshot. It must be re-armed
// after every SnapshotMsg.
func (m Model) WatchSnapshots() tea.Cmd {
	return waitForChannel(m.snapshots, func(s feed.Snapshot, ok bool) tea.Msg {
		if !ok {
			return snapshotsClosedMsg{}
		}
		return SnapshotMsg{Snapshot: s}
	})
}

// Feed operations publish their results through the subscription, so
// these commands return no message.

func (m Model) loadDefaultCmd() tea.Cmd {
	f, ctx := m.feed, m.ctx
	return func() tea.Msg {
		f.LoadDefault(ctx)
		return nil
	}
}

func (m Model) refreshFavoritesCmd() tea.Cmd {
	f, ctx := m.feed, m.ctx
	return func() tea.Msg {
		f.RefreshFavorites(ctx)
		return nil
	}
}

// searchCmd runs query against the browse list, leaving the favorites
// view first if it is showing.
func (m Model) searchCmd(query string) tea.Cmd {
	f, ctx := m.feed, m.ctx
	leaveFavorites := m.snap.Mode == feed.ModeFavorites
	return func() tea.Msg {
		if leaveFavorites {
			f.ToggleFavoritesView(ctx)
		}
		f.Search(ctx, query)
		return nil
	}
}

func (m Model) toggleFavoritesCmd() tea.Cmd {
	f, ctx := m.feed, m.ctx
	return func() tea.Msg {
		f.ToggleFavoritesView(ctx)
		return nil
	}
}

func (m Model) favoriteCmd(photo flickr.Photo) tea.Cmd {
	f, ctx, n, logger := m.feed, m.ctx, m.notifier, m.logger
	return func() tea.Msg {
		stored := f.Favorite(ctx, photo)
		if stored {
			sendNotification(n, logger, notify.FavoriteAdded(photo.Title, f.Snapshot().FavoriteCount()))
		}
		return FavoriteDoneMsg{Photo: photo, Stored: stored}
	}
}

func (m Model) clearFavoritesCmd() tea.Cmd {
	f, ctx, n, logger := m.feed, m.ctx, m.notifier, m.logger
	before := m.snap.FavoriteCount()
	return func() tea.Msg {
		f.ClearFavorites(ctx)
		if before > 0 && f.Snapshot().FavoriteCount() == 0 {
			sendNotification(n, logger, notify.FavoritesCleared())
		}
		return FavoritesClearedMsg{Count: before}
	}
}

func (m Model) previewCmd(photo flickr.Photo) tea.Cmd {
	loader, ctx, width := m.previews, m.ctx, m.previewWidth
	return func() tea.Msg {
		img, err := loader.Load(ctx, photo.ImageURL, width)
		return PreviewLoadedMsg{Photo: photo, Image: img, Err: err}
	}
}

func sendNotification(n notify.Notifier, logger *slog.Logger, notif notify.Notification) {
	if n == nil {
		return
	}
	if _, err := n.Notify(notif); err != nil {
		logger.Warn("notification_failed", "title", notif.Title, "error", err.Error())
	}
}
