package feed

import (
	"slices"
	"time"

	"github.com/llehouerou/shutter/internal/flickr"
)

// Mode selects which list the feed projects.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeFavorites
)

func (m Mode) String() string {
	if m == ModeFavorites {
		return "favorites"
	}
	return "browse"
}

// Snapshot is an immutable view of the feed published to subscribers.
type Snapshot struct {
	Mode    Mode
	Photos  []flickr.Photo // display list for Mode
	Query   string         // last applied search query, "" for recent photos
	Loading bool           // a browse/search fetch is in flight
	Err     error          // last diagnostic, nil after a successful operation

	// FetchedAt is when the browse list was last replaced; zero before
	// the first successful fetch.
	FetchedAt time.Time

	favoriteIDs map[string]struct{}
}

// IsFavorite reports whether the photo id is in the favorites set.
func (s Snapshot) IsFavorite(id string) bool {
	_, ok := s.favoriteIDs[id]
	return ok
}

// FavoriteCount returns the number of favorites in the projection.
func (s Snapshot) FavoriteCount() int {
	return len(s.favoriteIDs)
}

func clonePhotos(p []flickr.Photo) []flickr.Photo {
	if p == nil {
		return []flickr.Photo{}
	}
	return slices.Clone(p)
}
