// Package searchbox provides the search query popup.
package searchbox

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shutter/internal/ui"
	"github.com/llehouerou/shutter/internal/ui/action"
	"github.com/llehouerou/shutter/internal/ui/popup"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	charLimit  = 256
	inputWidth = 40
)

// Model is a single-line query editor.
type Model struct {
	ui.Base
	input textinput.Model
}

// New creates a search box.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search photos..."
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	ti.Width = inputWidth
	return Model{input: ti}
}

// Start focuses the box with the last applied query preselected.
func (m *Model) Start(query string, width, height int) {
	m.SetSize(width, height)
	m.input.SetValue(query)
	m.input.CursorEnd()
	m.input.Focus()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = min(inputWidth, max(width-12, 10))
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.input.Blur()
			return m, action.Cmd(source, Result{Canceled: true})
		case "enter":
			m.input.Blur()
			return m, action.Cmd(source, Result{Query: m.input.Value()})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Search Flickr")
	hint := t.S().Subtle.Render("enter search · empty for recent photos · esc cancel")
	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
