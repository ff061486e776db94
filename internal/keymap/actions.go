// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionSearch  Action = "search"
	ActionRefresh Action = "refresh"

	// Favorites
	ActionToggleFavorites Action = "toggle_favorites" // f - browse <-> favorites
	ActionFavorite        Action = "favorite"         // enter - store selected photo
	ActionClearFavorites  Action = "clear_favorites"  // C - asks for confirmation

	// Preview
	ActionPreview Action = "preview"

	// Grid navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
)
