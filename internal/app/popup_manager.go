package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/preview"
	"github.com/llehouerou/shutter/internal/ui/confirm"
	"github.com/llehouerou/shutter/internal/ui/helpbindings"
	"github.com/llehouerou/shutter/internal/ui/overlay"
	"github.com/llehouerou/shutter/internal/ui/photopreview"
	"github.com/llehouerou/shutter/internal/ui/popup"
	"github.com/llehouerou/shutter/internal/ui/searchbox"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupConfirm
	PopupSearch
	PopupPreview
)

// clearFavoritesContext tags the confirmation asked before clearing.
const clearFavoritesContext = "clear-favorites"

// PopupManager owns the modal popups. At most one is shown at a time.
type PopupManager struct {
	active  PopupType
	help    helpbindings.Model
	confirm confirm.Model
	search  searchbox.Model
	preview photopreview.Model

	width  int
	height int
}

// NewPopupManager creates a PopupManager with initialized components.
func NewPopupManager() PopupManager {
	return PopupManager{
		help:    helpbindings.New(),
		confirm: confirm.New(),
		search:  searchbox.New(),
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if c := p.current(); c != nil {
		c.SetSize(width, height)
	}
}

// Active returns which popup is shown.
func (p *PopupManager) Active() PopupType {
	return p.active
}

// ShowHelp opens the key bindings popup.
func (p *PopupManager) ShowHelp() tea.Cmd {
	p.help = helpbindings.New()
	return p.show(PopupHelp)
}

// ShowSearch opens the search box prefilled with query.
func (p *PopupManager) ShowSearch(query string) tea.Cmd {
	p.search.Start(query, p.width, p.height)
	return p.show(PopupSearch)
}

// ShowClearConfirm asks before removing count favorites.
func (p *PopupManager) ShowClearConfirm(count int) tea.Cmd {
	msg := "Remove the only favorite?"
	if count != 1 {
		msg = "Remove all " + formatCount(count) + " favorites?"
	}
	p.confirm.Show("Clear favorites", msg, clearFavoritesContext, p.width, p.height)
	return p.show(PopupConfirm)
}

// ShowPreview opens the preview popup in its loading state.
func (p *PopupManager) ShowPreview(photo flickr.Photo) tea.Cmd {
	p.preview = photopreview.New(photo)
	return p.show(PopupPreview)
}

// SetPreviewResult hands a finished load to the preview popup if it is
// still open.
func (p *PopupManager) SetPreviewResult(photo flickr.Photo, img *preview.Image, err error) {
	if p.active == PopupPreview {
		p.preview.SetResult(photo, img, err)
	}
}

// Hide closes the active popup.
func (p *PopupManager) Hide() {
	if p.active == PopupConfirm {
		p.confirm.Reset()
	}
	p.active = PopupNone
}

func (p *PopupManager) show(t PopupType) tea.Cmd {
	p.active = t
	c := p.current()
	c.SetSize(p.width, p.height)
	return c.Init()
}

// Update routes a message to the active popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	c := p.current()
	if c == nil {
		return nil
	}
	_, cmd := c.Update(msg)
	return cmd
}

// Overlay draws the active popup over base.
func (p *PopupManager) Overlay(base string) string {
	c := p.current()
	if c == nil {
		return base
	}
	size := popup.SizeAuto
	if p.active == PopupPreview {
		size = popup.SizeConfig{MaxWidth: p.width - 4}
	}
	box := popup.RenderBordered(c.View(), p.width, p.height, size)
	return overlay.Compose(base, box, p.width)
}

func (p *PopupManager) current() popup.Popup {
	switch p.active {
	case PopupHelp:
		return &p.help
	case PopupConfirm:
		return &p.confirm
	case PopupSearch:
		return &p.search
	case PopupPreview:
		return &p.preview
	default:
		return nil
	}
}
