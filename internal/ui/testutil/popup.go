package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shutter/internal/ui/action"
	"github.com/llehouerou/shutter/internal/ui/popup"
)

// PopupHarness drives a popup.Popup the way the app does: every key goes
// through Update and the returned command is kept for inspection.
type PopupHarness struct {
	popup popup.Popup
	last  tea.Cmd
}

// NewPopupHarness wraps p and keeps its Init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	return &PopupHarness{popup: p, last: p.Init()}
}

// View renders the popup.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// ViewContains reports whether the ANSI-stripped view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}

// SendMsg delivers msg and returns the popup's command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	h.popup, h.last = h.popup.Update(msg)
	return h.last
}

// SendKey sends key as typed runes, e.g. "y" or "?".
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Type sends text one rune at a time.
func (h *PopupHarness) Type(text string) {
	for _, r := range text {
		h.SendKey(string(r))
	}
}

// SendSpecialKey sends a non-rune key such as tea.KeyTab.
func (h *PopupHarness) SendSpecialKey(k tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: k})
}

func (h *PopupHarness) SendEnter() tea.Cmd  { return h.SendSpecialKey(tea.KeyEnter) }
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendSpecialKey(tea.KeyEscape) }

// LastCommand returns the command from the latest Update (or Init).
func (h *PopupHarness) LastCommand() tea.Cmd {
	return h.last
}

// ExecuteCmd runs cmd, returning nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ActionFrom runs cmd and unwraps the action.Msg it produces. ok is false
// when cmd is nil, yields another message, or carries a different action.
func ActionFrom[T action.Action](cmd tea.Cmd) (a T, source string, ok bool) {
	msg, isAction := ExecuteCmd(cmd).(action.Msg)
	if !isAction {
		return a, "", false
	}
	a, ok = msg.Action.(T)
	return a, msg.Source, ok
}
