// Package favorites persists the user's favorite photos in SQLite.
//
// Insert is an upsert keyed by photo id: title and image URL are replaced,
// while the first-insert timestamp, and therefore the entry's position in
// List, is kept. List returns entries in first-insert order.
package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/shutter/internal/db"
)

var (
	// ErrStore matches every persistence failure returned by Store.
	ErrStore = errors.New("favorites store")

	// ErrInvalidEntry is returned by Insert for entries without id or image URL.
	ErrInvalidEntry = errors.New("favorite needs an id and an image url")
)

// Entry is a persisted favorite photo.
type Entry struct {
	ID       string
	Title    string
	ImageURL string
	AddedAt  time.Time
}

// StoreError wraps a failed store operation.
type StoreError struct {
	Op  string // "insert", "list" or "clear"
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("favorites %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrStore) hold for every StoreError.
func (e *StoreError) Is(target error) bool { return target == ErrStore }

// Store provides database operations for favorites.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new Store on a database whose schema is initialized.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Insert adds or replaces the entry with the same id.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	if e.ID == "" || e.ImageURL == "" {
		return &StoreError{Op: "insert", Err: ErrInvalidEntry}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorite_photos (id, title, image_url, added_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			image_url = excluded.image_url
	`, e.ID, e.Title, e.ImageURL, s.now().UnixMilli())
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}
	return nil
}

// List returns all favorites in first-insert order.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, image_url, added_at
		FROM favorite_photos
		ORDER BY added_at, rowid
	`)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var addedAt int64
		if err := rows.Scan(&e.ID, &e.Title, &e.ImageURL, &addedAt); err != nil {
			return nil, &StoreError{Op: "list", Err: err}
		}
		e.AddedAt = time.UnixMilli(addedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return entries, nil
}

// Clear removes all favorites.
func (s *Store) Clear(ctx context.Context) error {
	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM favorite_photos`)
		return err
	})
	if err != nil {
		return &StoreError{Op: "clear", Err: err}
	}
	return nil
}
