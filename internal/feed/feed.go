// Package feed reconciles the remote photo listing, the local favorites
// store and the display mode into the single list a view renders.
//
// Errors never escape this package: they are logged and exposed as the
// Err field of the published Snapshot. A failed fetch leaves the last
// good photo list in place.
package feed

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/shutter/internal/errmsg"
	"github.com/llehouerou/shutter/internal/favorites"
	"github.com/llehouerou/shutter/internal/flickr"
)

// Source fetches remote photo listings.
type Source interface {
	Recent(ctx context.Context) ([]flickr.Photo, error)
	Search(ctx context.Context, query string) ([]flickr.Photo, error)
}

// Store persists favorites.
type Store interface {
	Insert(ctx context.Context, e favorites.Entry) error
	List(ctx context.Context) ([]favorites.Entry, error)
	Clear(ctx context.Context) error
}

// State is the single owner of the feed. It is safe for concurrent use;
// no lock is held while talking to the source or the store.
type State struct {
	source Source
	store  Store
	logger *slog.Logger

	mu        sync.Mutex
	photos    []flickr.Photo
	favorites []favorites.Entry
	favGen    map[string]uint64 // bumped on every optimistic change per id
	mode      Mode
	query     string
	err       error
	fetchSeq  uint64 // sequence of the newest browse/search request
	loading   bool
	fetchedAt time.Time
	subs      map[int]chan Snapshot
	nextSubID int
}

// New creates a feed in Browse mode with empty lists.
func New(source Source, store Store, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &State{
		source: source,
		store:  store,
		logger: logger.With("component", "feed"),
		favGen: make(map[string]uint64),
		subs:   make(map[int]chan Snapshot),
	}
}

// LoadDefault replaces the browse list with the most recent photos.
func (s *State) LoadDefault(ctx context.Context) {
	s.fetch(ctx, errmsg.OpLoadRecent, "", s.source.Recent)
}

// Search replaces the browse list with photos matching query.
// A blank query behaves exactly like LoadDefault.
func (s *State) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.LoadDefault(ctx)
		return
	}
	s.fetch(ctx, errmsg.OpSearch, query, func(ctx context.Context) ([]flickr.Photo, error) {
		return s.source.Search(ctx, query)
	})
}

// fetch runs one browse/search request. Only the newest request may
// update the list; responses of superseded requests are dropped.
func (s *State) fetch(
	ctx context.Context,
	op errmsg.Op,
	query string,
	fn func(context.Context) ([]flickr.Photo, error),
) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.publishLocked()
	s.mu.Unlock()

	log := s.logger.With("request_id", uuid.NewString(), "op", string(op), "query", query)
	log.Debug("fetch_started", "seq", seq)

	start := time.Now()
	photos, err := fn(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		log.Debug("fetch_superseded", "seq", seq, "latest", s.fetchSeq)
		return
	}
	s.loading = false

	if err != nil {
		log.Error("fetch_failed", "error", err.Error(), "elapsed", time.Since(start))
		s.err = &errmsg.OpError{Op: op, Err: err}
		s.publishLocked()
		return
	}

	log.Info("fetch_succeeded", "count", len(photos), "elapsed", time.Since(start))
	s.photos = clonePhotos(photos)
	s.query = query
	s.fetchedAt = time.Now()
	s.err = nil
	s.publishLocked()
}

// ToggleFavoritesView flips between Browse and Favorites and re-reads the
// favorites store so the projection matches its durable contents.
func (s *State) ToggleFavoritesView(ctx context.Context) {
	s.mu.Lock()
	if s.mode == ModeFavorites {
		s.mode = ModeBrowse
	} else {
		s.mode = ModeFavorites
	}
	s.logger.Debug("mode_changed", "mode", s.mode.String())
	s.publishLocked()
	s.mu.Unlock()

	s.RefreshFavorites(ctx)
}

// RefreshFavorites replaces the favorites projection with the store contents.
func (s *State) RefreshFavorites(ctx context.Context) {
	entries, err := s.store.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Error("favorites_list_failed", "error", err.Error())
		s.err = &errmsg.OpError{Op: errmsg.OpFavoritesLoad, Err: err}
		s.publishLocked()
		return
	}

	s.favorites = entries
	s.err = nil
	s.publishLocked()
}

// Favorite stores photo as a favorite. Photos without an image URL are
// ignored. The projection is updated before the write completes and
// reverted if the write fails. Returns true once the write succeeded.
//
// A refresh that reads the store while the write is in flight drops the
// optimistic entry, so a successful write applies it again. If a clear
// touched the id meanwhile, the projection is re-read from the store.
func (s *State) Favorite(ctx context.Context, photo flickr.Photo) bool {
	if !photo.HasImage() {
		return false
	}

	entry := favorites.Entry{
		ID:       photo.ID,
		Title:    photo.Title,
		ImageURL: photo.ImageURL,
		AddedAt:  time.Now(),
	}

	s.mu.Lock()
	prev, hadPrev := s.applyFavoriteLocked(entry)
	s.favGen[entry.ID]++
	gen := s.favGen[entry.ID]
	s.publishLocked()
	s.mu.Unlock()

	err := s.store.Insert(ctx, entry)

	s.mu.Lock()
	current := s.favGen[entry.ID] == gen

	if err != nil {
		s.logger.Error("favorite_insert_failed", "photo_id", photo.ID, "error", err.Error())
		// Only revert if nothing touched this id since our optimistic change
		if current {
			s.revertFavoriteLocked(entry.ID, prev, hadPrev)
		}
		s.err = &errmsg.OpError{Op: errmsg.OpFavoriteAdd, Err: err}
		s.publishLocked()
		s.mu.Unlock()
		return false
	}

	s.logger.Info("favorite_added", "photo_id", photo.ID)
	s.err = nil
	if current {
		s.applyFavoriteLocked(entry)
		s.publishLocked()
		s.mu.Unlock()
		return true
	}
	s.mu.Unlock()

	// The store order of our insert and a concurrent clear is unknown
	s.RefreshFavorites(ctx)
	return true
}

// applyFavoriteLocked upserts e into the projection, keeping the position
// and AddedAt of an existing entry. Returns the replaced entry, if any.
func (s *State) applyFavoriteLocked(e favorites.Entry) (favorites.Entry, bool) {
	for i, existing := range s.favorites {
		if existing.ID == e.ID {
			e.AddedAt = existing.AddedAt
			s.favorites[i] = e
			return existing, true
		}
	}
	s.favorites = append(s.favorites, e)
	return favorites.Entry{}, false
}

func (s *State) revertFavoriteLocked(id string, prev favorites.Entry, hadPrev bool) {
	for i, existing := range s.favorites {
		if existing.ID != id {
			continue
		}
		if hadPrev {
			s.favorites[i] = prev
		} else {
			s.favorites = append(s.favorites[:i:i], s.favorites[i+1:]...)
		}
		return
	}
}

// ClearFavorites removes every favorite from the store, then empties the
// projection. The projection is kept if the store fails.
func (s *State) ClearFavorites(ctx context.Context) {
	err := s.store.Clear(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Error("favorites_clear_failed", "error", err.Error())
		s.err = &errmsg.OpError{Op: errmsg.OpFavoritesClear, Err: err}
		s.publishLocked()
		return
	}

	s.logger.Info("favorites_cleared", "count", len(s.favorites))
	s.favorites = nil
	for id := range s.favGen {
		s.favGen[id]++
	}
	s.err = nil
	s.publishLocked()
}

// DisplayList returns the list to render for the current mode.
func (s *State) DisplayList() []flickr.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayListLocked()
}

func (s *State) displayListLocked() []flickr.Photo {
	if s.mode == ModeFavorites {
		photos := make([]flickr.Photo, 0, len(s.favorites))
		for _, e := range s.favorites {
			photos = append(photos, flickr.Photo{ID: e.ID, Title: e.Title, ImageURL: e.ImageURL})
		}
		return photos
	}
	return clonePhotos(s.photos)
}

// IsFavorite reports whether id is in the favorites projection.
func (s *State) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.favorites {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Mode returns the current display mode.
func (s *State) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Favorites returns a copy of the favorites projection.
func (s *State) Favorites() []favorites.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]favorites.Entry, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	ids := make(map[string]struct{}, len(s.favorites))
	for _, e := range s.favorites {
		ids[e.ID] = struct{}{}
	}
	return Snapshot{
		Mode:        s.mode,
		Photos:      s.displayListLocked(),
		Query:       s.query,
		Loading:     s.loading,
		Err:         s.err,
		FetchedAt:   s.fetchedAt,
		favoriteIDs: ids,
	}
}

// Subscribe returns a channel receiving a Snapshot after every state
// change, starting with the current one. The channel buffers a single
// snapshot: a slow reader skips intermediate states and always gets the
// newest. The returned function unsubscribes and closes the channel.
func (s *State) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
}

// publishLocked must be called with mu held; it is the only sender.
func (s *State) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Replace the stale pending snapshot
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
