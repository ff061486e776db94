package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByContext(t *testing.T) {
	for _, ctx := range []string{"global", "grid", "favorites"} {
		result := ByContext(ctx)
		assert.NotEmpty(t, result, "context %q", ctx)
		for _, b := range result {
			assert.Equal(t, ctx, b.Context)
		}
	}
	assert.Empty(t, ByContext("unknown"))
}

func TestAll_NoDuplicateKeysWithinContext(t *testing.T) {
	seen := make(map[string]string)
	for _, b := range All {
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			assert.NotContains(t, seen, id, "key %q bound twice in %q", k, b.Context)
			seen[id] = b.Description
		}
	}
}

func TestAll_EveryBindingHasAction(t *testing.T) {
	for _, b := range All {
		assert.NotEmpty(t, b.Action, "binding %v", b.Keys)
		assert.NotEmpty(t, b.Keys, "binding %q", b.Description)
	}
}

func TestResolver(t *testing.T) {
	r := Default()

	assert.Equal(t, ActionQuit, r.Resolve("q"))
	assert.Equal(t, ActionQuit, r.Resolve("ctrl+c"))
	assert.Equal(t, ActionSearch, r.Resolve("/"))
	assert.Equal(t, ActionToggleFavorites, r.Resolve("f"))
	assert.Equal(t, ActionFavorite, r.Resolve("enter"))
	assert.Equal(t, ActionClearFavorites, r.Resolve("C"))
	assert.Equal(t, Action(""), r.Resolve("x"))

	assert.Equal(t, []string{"j", "down"}, r.KeysFor(ActionMoveDown))
	assert.Nil(t, r.KeysFor(Action("missing")))
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{Keys: []string{"x"}, Action: ActionQuit},
		{Keys: []string{"x", "x"}, Action: ActionHelp},
	})
	assert.Equal(t, ActionHelp, r.Resolve("x"))
	assert.Equal(t, []string{"x"}, r.KeysFor(ActionHelp))
}
