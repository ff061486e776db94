package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "grid", "favorites"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"/"}, ActionSearch, "Search photos", "global"},
	{[]string{"r"}, ActionRefresh, "Reload current listing", "global"},
	{[]string{"f", "tab"}, ActionToggleFavorites, "Toggle favorites view", "global"},

	// Grid
	{[]string{"k", "up"}, ActionMoveUp, "Move up", "grid"},
	{[]string{"j", "down"}, ActionMoveDown, "Move down", "grid"},
	{[]string{"h", "left"}, ActionMoveLeft, "Move left", "grid"},
	{[]string{"l", "right"}, ActionMoveRight, "Move right", "grid"},
	{[]string{"g", "home"}, ActionJumpStart, "First photo", "grid"},
	{[]string{"G", "end"}, ActionJumpEnd, "Last photo", "grid"},
	{[]string{"pgup", "ctrl+u"}, ActionPageUp, "Page up", "grid"},
	{[]string{"pgdown", "ctrl+d"}, ActionPageDown, "Page down", "grid"},
	{[]string{"enter"}, ActionFavorite, "Add to favorites", "grid"},
	{[]string{"p"}, ActionPreview, "Preview photo", "grid"},

	// Favorites
	{[]string{"C"}, ActionClearFavorites, "Clear all favorites", "favorites"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
