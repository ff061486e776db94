package state

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/llehouerou/shutter/internal/db"
)

// Manager owns the application database.
type Manager struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and brings the
// schema up to date.
func Open(ctx context.Context, path string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := dbutil.Configure(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) Close() error {
	return m.db.Close()
}
