// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of grid rows kept visible above/below the cursor.
	ScrollMargin = 1

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the header bar line plus its separator.
	HeaderHeight = 2

	// StatusHeight is the status line at the bottom of the screen.
	StatusHeight = 1

	// CellWidth is the width of one photo cell in the grid, gap included.
	CellWidth = 24

	// CellHeight is the number of lines one photo cell occupies.
	CellHeight = 3

	// MinGridWidth is the narrowest grid that still renders one column.
	MinGridWidth = 12
)
