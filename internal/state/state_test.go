package state

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "shutter.db")

	m, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer m.Close()

	assert.FileExists(t, path)

	var version int
	require.NoError(t, m.DB().QueryRow(`SELECT version FROM schema_version`).Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)

	var name string
	err = m.DB().QueryRow(`
		SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'favorite_photos'
	`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "favorite_photos", name)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shutter.db")

	m, err := Open(context.Background(), path)
	require.NoError(t, err)
	_, err = m.DB().Exec(`
		INSERT INTO favorite_photos (id, title, image_url, added_at) VALUES ('1', 'Cat', 'http://x/1.jpg', 1)
	`)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	// Schema creation is idempotent and data survives
	m, err = Open(context.Background(), path)
	require.NoError(t, err)
	defer m.Close()

	var count int
	require.NoError(t, m.DB().QueryRow(`SELECT COUNT(*) FROM favorite_photos`).Scan(&count))
	assert.Equal(t, 1, count)

	require.NoError(t, m.DB().QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestInitSchema_InMemory(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, InitSchema(context.Background(), db))
	require.NoError(t, InitSchema(context.Background(), db))
}
