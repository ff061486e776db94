package app

import (
	"github.com/llehouerou/shutter/internal/feed"
	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/preview"
)

// SnapshotMsg carries a new feed state.
type SnapshotMsg struct {
	Snapshot feed.Snapshot
}

// snapshotsClosedMsg is sent when the feed subscription ends.
type snapshotsClosedMsg struct{}

// FavoriteDoneMsg reports the outcome of a favorite request.
type FavoriteDoneMsg struct {
	Photo  flickr.Photo
	Stored bool
}

// FavoritesClearedMsg is sent once a clear request finished.
type FavoritesClearedMsg struct {
	Count int // favorites before clearing
}

// PreviewLoadedMsg carries a rendered preview or the reason it failed.
type PreviewLoadedMsg struct {
	Photo flickr.Photo
	Image *preview.Image
	Err   error
}
