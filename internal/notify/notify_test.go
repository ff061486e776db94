package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUrgencyValues(t *testing.T) {
	// Must match the freedesktop notification spec
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestFavoriteAdded(t *testing.T) {
	n := FavoriteAdded("Cat", 1)
	assert.Equal(t, "Added to favorites: Cat", n.Title)
	assert.Equal(t, "1 favorite", n.Body)
	assert.Equal(t, favoriteIcon, n.Icon)
	assert.Equal(t, DefaultTimeout, n.Timeout)
	assert.Equal(t, UrgencyLow, n.Urgency)
	assert.Zero(t, n.ReplacesID)

	n = FavoriteAdded("  ", 3)
	assert.Equal(t, "Added to favorites: Untitled photo", n.Title)
	assert.Equal(t, "3 favorites", n.Body)
}

func TestFavoritesCleared(t *testing.T) {
	n := FavoritesCleared()
	assert.Equal(t, "Favorites cleared", n.Title)
	assert.Empty(t, n.Body)
}

func TestDisabled(t *testing.T) {
	n := Disabled()
	id, err := n.Notify(FavoriteAdded("Cat", 1))
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, n.Close(id))
}
