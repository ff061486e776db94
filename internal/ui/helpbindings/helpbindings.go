// Package helpbindings provides a scrollable popup listing key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shutter/internal/keymap"
	"github.com/llehouerou/shutter/internal/ui"
	"github.com/llehouerou/shutter/internal/ui/action"
	"github.com/llehouerou/shutter/internal/ui/popup"
	"github.com/llehouerou/shutter/internal/ui/render"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categories lists binding contexts in display order.
var categories = []struct {
	context string
	label   string
}{
	{"global", "Global"},
	{"grid", "Photos"},
	{"favorites", "Favorites"},
}

// chrome is the number of lines around the scrolled body: title, blank
// lines, footer, popup border and padding.
const chrome = 10

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a help popup listing every binding.
func New() Model {
	m := Model{}
	m.lines = buildLines()
	return m
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Cmd(source, Close{})
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	visible := m.lines[m.scrollOffset:end]

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	s := styles.T().S()
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

func buildLines() []string {
	t := styles.T()
	s := t.S()
	header := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range keymap.All {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for _, cat := range categories {
		bindings := keymap.ByContext(cat.context)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			header.Render(cat.label),
			s.Subtle.Render(render.Separator(keyWidth+24)))
		for _, b := range bindings {
			keys := render.Pad(strings.Join(b.Keys, ", "), keyWidth)
			lines = append(lines, s.Key.Render(keys)+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}
