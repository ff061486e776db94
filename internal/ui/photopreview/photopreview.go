// Package photopreview shows a rendered photo in a popup.
package photopreview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shutter/internal/errmsg"
	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/preview"
	"github.com/llehouerou/shutter/internal/ui"
	"github.com/llehouerou/shutter/internal/ui/action"
	"github.com/llehouerou/shutter/internal/ui/popup"
	"github.com/llehouerou/shutter/internal/ui/render"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Close signals the preview should close.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "photopreview.close" }

const source = "photopreview"

// Model is the preview popup. It starts in a loading state until
// SetResult is called for the same photo.
type Model struct {
	ui.Base
	photo flickr.Photo
	image *preview.Image
	err   error
}

// New creates a preview popup for photo.
func New(photo flickr.Photo) Model {
	return Model{photo: photo}
}

// Photo returns the photo being previewed.
func (m Model) Photo() flickr.Photo {
	return m.photo
}

// SetResult stores the load outcome. Results for another photo are ignored.
func (m *Model) SetResult(photo flickr.Photo, img *preview.Image, err error) {
	if photo.ID != m.photo.ID {
		return
	}
	m.image, m.err = img, err
}

// Loading reports whether the image is still being fetched.
func (m Model) Loading() bool {
	return m.image == nil && m.err == nil
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "p", "enter":
			return m, action.Cmd(source, Close{})
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	width := max(m.Width()-10, 10)

	title := m.photo.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}

	var body, footer string
	switch {
	case m.err != nil:
		body = s.Error.Render(render.Truncate(errmsg.Format(errmsg.OpPreviewLoad, m.err), width))
		footer = "esc close"
	case m.image == nil:
		body = s.Muted.Render("Loading preview…")
		footer = "esc close"
	default:
		body = m.image.View()
		footer = m.image.Caption() + " · esc close"
	}

	return s.Title.Render(render.Truncate(title, width)) + "\n\n" +
		body + "\n\n" +
		s.Subtle.Render(footer)
}
