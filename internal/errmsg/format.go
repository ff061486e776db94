// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Feed operations
	OpLoadRecent Op = "load recent photos"
	OpSearch     Op = "search photos"

	// Favorites
	OpFavoriteAdd    Op = "add favorite"
	OpFavoritesLoad  Op = "load favorites"
	OpFavoritesClear Op = "clear favorites"

	// Preview
	OpPreviewLoad Op = "load preview"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// OpError ties an error to the operation that produced it.
type OpError struct {
	Op  Op
	Err error
}

func (e *OpError) Error() string { return Format(e.Op, e.Err) }

func (e *OpError) Unwrap() error { return e.Err }
