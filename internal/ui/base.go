package ui

// Base stores the size a component was given. Embed it to get SetSize
// and the accessors the popup.Popup interface and layout code need.
type Base struct {
	width, height int
}

func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// InnerSize is the area left inside a rounded border.
func (b Base) InnerSize() (width, height int) {
	return max(b.width-2, 0), max(b.height-BorderHeight, 0)
}
