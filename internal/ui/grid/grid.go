// Package grid renders photos as a scrollable grid of cells.
package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/keymap"
	"github.com/llehouerou/shutter/internal/ui"
	"github.com/llehouerou/shutter/internal/ui/cursor"
	"github.com/llehouerou/shutter/internal/ui/render"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

const (
	heart   = "♥"
	noImage = "no image"
)

// Model is the photo grid. Size includes the panel border.
type Model struct {
	ui.Base
	cursor    cursor.Cursor
	photos    []flickr.Photo
	favorite  func(id string) bool
	emptyText string
}

// New creates an empty grid.
func New() Model {
	return Model{
		cursor:    cursor.New(ui.ScrollMargin),
		favorite:  func(string) bool { return false },
		emptyText: "No photos",
	}
}

// SetPhotos replaces the displayed photos. isFavorite marks cells with a
// heart; the cursor stays on its index, clamped to the new list.
func (m *Model) SetPhotos(photos []flickr.Photo, isFavorite func(id string) bool) {
	m.photos = photos
	if isFavorite != nil {
		m.favorite = isFavorite
	}
	m.cursor.Clamp(m.geometry())
}

// SetEmptyText sets the message shown when there are no photos.
func (m *Model) SetEmptyText(text string) {
	m.emptyText = text
}

// SetSize sets the grid dimensions, border included.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Clamp(m.geometry())
}

// Reset moves the cursor back to the first photo.
func (m *Model) Reset() {
	m.cursor.JumpStart()
}

// Len returns the number of photos.
func (m Model) Len() int {
	return len(m.photos)
}

// Selected returns the photo under the cursor.
func (m Model) Selected() (flickr.Photo, bool) {
	if len(m.photos) == 0 {
		return flickr.Photo{}, false
	}
	return m.photos[m.cursor.Pos()], true
}

// SelectedIndex returns the cursor position.
func (m Model) SelectedIndex() int {
	return m.cursor.Pos()
}

// Columns returns the number of cells per row.
func (m Model) Columns() int {
	w, _ := m.InnerSize()
	return max(w/ui.CellWidth, 1)
}

// Rows returns the number of visible cell rows.
func (m Model) Rows() int {
	_, h := m.InnerSize()
	return max(h/ui.CellHeight, 1)
}

func (m Model) geometry() cursor.Geometry {
	return cursor.Geometry{Len: len(m.photos), Cols: m.Columns(), Rows: m.Rows()}
}

// Navigate applies a movement action and reports whether it was one.
func (m *Model) Navigate(a keymap.Action) bool {
	g := m.geometry()
	switch a {
	case keymap.ActionMoveUp:
		m.cursor.MoveRows(-1, g)
	case keymap.ActionMoveDown:
		m.cursor.MoveRows(1, g)
	case keymap.ActionMoveLeft:
		m.cursor.Move(-1, g)
	case keymap.ActionMoveRight:
		m.cursor.Move(1, g)
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(g)
	case keymap.ActionPageUp:
		m.cursor.PageUp(g)
	case keymap.ActionPageDown:
		m.cursor.PageDown(g)
	default:
		return false
	}
	return true
}

// View renders the grid inside a focused panel.
func (m Model) View(title string) string {
	innerW, innerH := m.InnerSize()
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	var body string
	if len(m.photos) == 0 {
		body = m.renderEmpty(innerW, innerH)
	} else {
		body = m.renderCells(innerW, innerH)
	}

	t := styles.T()
	panel := styles.PanelStyle(true).Width(innerW).Height(innerH).Render(body)

	// Title replaces the start of the top border
	if title != "" {
		lines := strings.SplitN(panel, "\n", 2)
		label := t.S().Title.Render(" " + render.Truncate(title, innerW-4) + " ")
		top := lipgloss.NewStyle().Foreground(t.BorderFocus).Render("╭─") + label
		fill := innerW + 2 - lipgloss.Width(top) - 1
		if fill >= 0 && len(lines) == 2 {
			top += lipgloss.NewStyle().Foreground(t.BorderFocus).Render(strings.Repeat("─", fill) + "╮")
			panel = top + "\n" + lines[1]
		}
	}
	return panel
}

func (m Model) renderEmpty(width, height int) string {
	msg := styles.T().S().Muted.Render(m.emptyText)
	lines := make([]string, height)
	lines[height/2] = render.Center(msg, width)
	return strings.Join(lines, "\n")
}

func (m Model) renderCells(width, height int) string {
	g := m.geometry()
	start, end := m.cursor.VisibleRange(g)

	rows := make([]string, 0, g.Rows)
	for rowStart := start; rowStart < end; rowStart += g.Cols {
		cells := make([]string, 0, g.Cols)
		for i := rowStart; i < min(rowStart+g.Cols, end); i++ {
			cells = append(cells, m.renderCell(m.photos[i], i == m.cursor.Pos()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	body := strings.Join(rows, "\n")
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(body)
}

// renderCell draws one photo: marker and title, then the id or a
// missing-image note, then a spacer line.
func (m Model) renderCell(p flickr.Photo, selected bool) string {
	s := styles.T().S()
	textW := ui.CellWidth - 3 // marker, space, gap

	marker := " "
	if m.favorite(p.ID) {
		marker = s.Favorite.Render(heart)
	}

	title := p.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	titleStyle := s.Base
	if selected {
		titleStyle = s.Cursor.Bold(true)
	}
	line1 := marker + " " + titleStyle.Render(render.TruncateAndPad(title, textW)) + " "

	detail := "#" + p.ID
	if !p.HasImage() {
		detail = noImage
	}
	detailStyle := s.Subtle
	if selected {
		detailStyle = s.Cursor.Foreground(styles.T().FgMuted)
	}
	line2 := "  " + detailStyle.Render(render.TruncateAndPad(detail, textW)) + " "

	return line1 + "\n" + line2 + "\n" + strings.Repeat(" ", ui.CellWidth)
}
