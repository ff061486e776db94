package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shutter/internal/favorites"
	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/state"
)

const photosPayload = `{
	"photos": {"photo": [
		{"id": "101", "title": "Harbor at dusk", "url_s": "http://x/101.jpg"},
		{"id": "7", "title": "", "url_s": ""}
	]},
	"stat": "ok"
}`

type testEnv struct {
	configPath string
	dbPath     string
	queries    chan url.Values
}

// setupEnv writes a config pointing at a temp database and a fake API.
func setupEnv(t *testing.T, status int, body string) *testEnv {
	t.Helper()
	dir := t.TempDir()

	queries := make(chan url.Values, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case queries <- r.URL.Query():
		default:
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	env := &testEnv{
		configPath: filepath.Join(dir, "config.toml"),
		dbPath:     filepath.Join(dir, "data", "shutter.db"),
		queries:    queries,
	}
	cfg := fmt.Sprintf(`database = %q
log_file = %q
notifications = false

[flickr]
api_key = "test-key"
endpoint = %q
`, env.dbPath, filepath.Join(dir, "shutter.log"), srv.URL)
	require.NoError(t, os.WriteFile(env.configPath, []byte(cfg), 0o644))
	return env
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", e.configPath))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *testEnv) seedFavorites(t *testing.T, entries ...favorites.Entry) {
	t.Helper()
	ctx := context.Background()
	mgr, err := state.Open(ctx, e.dbPath)
	require.NoError(t, err)
	defer mgr.Close()

	store := favorites.New(mgr.DB())
	for _, entry := range entries {
		require.NoError(t, store.Insert(ctx, entry))
	}
}

func TestRecentCmd(t *testing.T) {
	env := setupEnv(t, http.StatusOK, photosPayload)

	out, err := env.run(t, "recent")
	require.NoError(t, err)

	assert.Contains(t, out, "101")
	assert.Contains(t, out, "Harbor at dusk")
	assert.Contains(t, out, "http://x/101.jpg")
	assert.Contains(t, out, "(untitled)")
	assert.Contains(t, out, "2 photos")
}

func TestSearchCmd_JoinsArguments(t *testing.T) {
	env := setupEnv(t, http.StatusOK, photosPayload)

	_, err := env.run(t, "search", "red", "fox")
	require.NoError(t, err)
	assert.Equal(t, "red fox", (<-env.queries).Get("text"))
}

func TestSearchCmd_BlankQueryPrintsRecent(t *testing.T) {
	for _, args := range [][]string{{"search"}, {"search", "  "}} {
		env := setupEnv(t, http.StatusOK, photosPayload)

		out, err := env.run(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Harbor at dusk")

		q := <-env.queries
		assert.Equal(t, "flickr.photos.getRecent", q.Get("method"))
		assert.Empty(t, q.Get("text"))
	}
}

func TestSearchCmd_APIFailure(t *testing.T) {
	env := setupEnv(t, http.StatusOK, `{"stat":"fail","code":100,"message":"Invalid API Key"}`)

	_, err := env.run(t, "search", "fox")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to search photos 'fox'")
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestFavoritesCmd_Empty(t *testing.T) {
	env := setupEnv(t, http.StatusOK, photosPayload)

	out, err := env.run(t, "favorites")
	require.NoError(t, err)
	assert.Equal(t, "No favorites\n", out)
}

func TestFavoritesCmd_ListAndClear(t *testing.T) {
	env := setupEnv(t, http.StatusOK, photosPayload)
	env.seedFavorites(t,
		favorites.Entry{ID: "1", Title: "Cat", ImageURL: "http://x/1.jpg", AddedAt: time.Now().Add(-time.Hour)},
		favorites.Entry{ID: "22", Title: "Dog", ImageURL: "http://x/22.jpg", AddedAt: time.Now()},
	)

	out, err := env.run(t, "favorites")
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "Cat")
	assert.Contains(t, string(lines[0]), "1 hour ago")
	assert.Contains(t, string(lines[1]), "Dog")

	out, err = env.run(t, "favorites", "clear")
	require.NoError(t, err)
	assert.Equal(t, "Cleared 2 favorites\n", out)

	out, err = env.run(t, "favorites", "clear")
	require.NoError(t, err)
	assert.Equal(t, "No favorites to clear\n", out)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"favorites", "--config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, cmd.Execute())
}

func TestPrinter_Photos(t *testing.T) {
	var out bytes.Buffer
	p := newPrinter(&out)
	assert.False(t, p.color, "buffers are not terminals")

	require.NoError(t, p.Photos([]flickr.Photo{
		{ID: "7", Title: "Short"},
		{ID: "12345", Title: "Long", ImageURL: "http://x/a.jpg"},
	}))

	lines := bytes.Split(out.Bytes(), []byte("\n"))
	assert.Equal(t, "7    ", string(lines[0][:5]), "ids are padded to the widest")
	assert.Contains(t, string(lines[0]), "  -")
	assert.Contains(t, string(lines[1]), "http://x/a.jpg")
	assert.Equal(t, "2 photos", string(lines[2]))
}

func TestPrinter_PhotosEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newPrinter(&out).Photos(nil))
	assert.Equal(t, "No photos\n", out.String())
}

func TestPrinter_FavoritesRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var out bytes.Buffer
	p := newPrinter(&out)
	p.now = func() time.Time { return now }

	require.NoError(t, p.Favorites([]favorites.Entry{
		{ID: "1", Title: "Cat", AddedAt: now.Add(-3 * 24 * time.Hour)},
	}))
	assert.Contains(t, out.String(), "♥  1  Cat")
	assert.Contains(t, out.String(), "3 days ago")
}
