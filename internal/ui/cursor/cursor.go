// Package cursor tracks the selected cell of a scrollable grid.
package cursor

// Geometry describes the grid a cursor moves in. It is passed to each
// call rather than stored because the list and the terminal both change
// under the cursor.
type Geometry struct {
	Len  int // number of items
	Cols int // items per row, at least 1
	Rows int // visible rows
}

func (g Geometry) cols() int {
	return max(g.Cols, 1)
}

// totalRows returns the number of rows needed for all items.
func (g Geometry) totalRows() int {
	return (g.Len + g.cols() - 1) / g.cols()
}

// Cursor holds the selected item index and the first visible row.
type Cursor struct {
	pos       int
	rowOffset int
	margin    int // rows kept visible above/below the cursor row
}

// New creates a Cursor with the given scroll margin in rows.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected item index.
func (c Cursor) Pos() int {
	return c.pos
}

// Row returns the row of the selected item.
func (c Cursor) Row(g Geometry) int {
	return c.pos / g.cols()
}

// RowOffset returns the first visible row.
func (c Cursor) RowOffset() int {
	return c.rowOffset
}

// Move moves by delta items, clamped to the list.
func (c *Cursor) Move(delta int, g Geometry) {
	if g.Len == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, g.Len-1)
	c.ensureVisible(g)
}

// MoveRows moves by delta rows, keeping the column when the target row is
// long enough and stopping at the last item otherwise.
func (c *Cursor) MoveRows(delta int, g Geometry) {
	c.Move(delta*g.cols(), g)
}

// PageDown moves one screen of rows down.
func (c *Cursor) PageDown(g Geometry) {
	c.MoveRows(max(g.Rows, 1), g)
}

// PageUp moves one screen of rows up.
func (c *Cursor) PageUp(g Geometry) {
	c.MoveRows(-max(g.Rows, 1), g)
}

// JumpStart selects the first item.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.rowOffset = 0
}

// JumpEnd selects the last item.
func (c *Cursor) JumpEnd(g Geometry) {
	if g.Len == 0 {
		return
	}
	c.pos = g.Len - 1
	c.ensureVisible(g)
}

// Clamp keeps the cursor on a valid item after the list changed.
func (c *Cursor) Clamp(g Geometry) {
	if g.Len == 0 {
		c.JumpStart()
		return
	}
	c.pos = clamp(c.pos, g.Len-1)
	c.ensureVisible(g)
}

// VisibleRange returns the item indices [start, end) on screen.
func (c Cursor) VisibleRange(g Geometry) (start, end int) {
	if g.Len == 0 || g.Rows <= 0 {
		return 0, 0
	}
	start = c.rowOffset * g.cols()
	end = min(start+g.Rows*g.cols(), g.Len)
	return start, end
}

func (c *Cursor) ensureVisible(g Geometry) {
	if g.Rows <= 0 {
		return
	}
	row := c.Row(g)
	margin := min(c.margin, (g.Rows-1)/2)

	if row < c.rowOffset+margin {
		c.rowOffset = row - margin
	}
	if row >= c.rowOffset+g.Rows-margin {
		c.rowOffset = row - g.Rows + margin + 1
	}
	c.rowOffset = clamp(c.rowOffset, max(g.totalRows()-g.Rows, 0))
}

func clamp(v, maxVal int) int {
	return max(0, min(v, maxVal))
}
