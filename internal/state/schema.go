package state

import (
	"context"
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS favorite_photos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			image_url TEXT NOT NULL,
			added_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_favorite_photos_added_at ON favorite_photos(added_at);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.ExecContext(ctx, `
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}

// InitSchema creates the schema on an already opened database.
// Tests use it with in-memory databases.
func InitSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db)
}
