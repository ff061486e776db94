// Package app is the terminal UI: it renders the feed state and turns key
// presses into feed operations.
package app

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shutter/internal/feed"
	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/keymap"
	"github.com/llehouerou/shutter/internal/notify"
	"github.com/llehouerou/shutter/internal/preview"
	"github.com/llehouerou/shutter/internal/ui/grid"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

// Feed is the part of feed.State the UI drives.
type Feed interface {
	LoadDefault(ctx context.Context)
	Search(ctx context.Context, query string)
	ToggleFavoritesView(ctx context.Context)
	RefreshFavorites(ctx context.Context)
	Favorite(ctx context.Context, photo flickr.Photo) bool
	ClearFavorites(ctx context.Context)
	Snapshot() feed.Snapshot
	Subscribe() (<-chan feed.Snapshot, func())
}

// PreviewLoader fetches and renders photo previews.
type PreviewLoader interface {
	Load(ctx context.Context, url string, width int) (*preview.Image, error)
}

// Options configures New. Feed and Previews are required.
type Options struct {
	Feed         Feed
	Previews     PreviewLoader
	Notifier     notify.Notifier // nil disables notifications
	Logger       *slog.Logger
	PreviewWidth int
}

// Model is the root application model.
type Model struct {
	feed         Feed
	previews     PreviewLoader
	notifier     notify.Notifier
	logger       *slog.Logger
	previewWidth int

	ctx         context.Context
	cancel      context.CancelFunc
	snapshots   <-chan feed.Snapshot
	unsubscribe func()
	snap        feed.Snapshot

	keys     *keymap.Resolver
	grid     grid.Model
	popups   PopupManager
	spinner  spinner.Model
	spinning bool

	status string // transient message, replaced by the next one
	width  int
	height int
}

// New creates the application model and subscribes to the feed.
// Call Close when the program exits.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(context.Background())
	snapshots, unsubscribe := opts.Feed.Subscribe()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.T().S().Key

	return Model{
		feed:         opts.Feed,
		previews:     opts.Previews,
		notifier:     opts.Notifier,
		logger:       logger.With("component", "app"),
		previewWidth: opts.PreviewWidth,
		ctx:          ctx,
		cancel:       cancel,
		snapshots:    snapshots,
		unsubscribe:  unsubscribe,
		snap:         opts.Feed.Snapshot(),
		keys:         keymap.Default(),
		grid:         grid.New(),
		popups:       NewPopupManager(),
		spinner:      sp,
	}
}

// Init implements tea.Model. It loads favorites and the recent photos.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.WatchSnapshots(),
		tea.Sequence(m.refreshFavoritesCmd(), m.loadDefaultCmd()),
	)
}

// Close cancels in-flight operations and ends the feed subscription.
func (m Model) Close() {
	m.cancel()
	m.unsubscribe()
}
