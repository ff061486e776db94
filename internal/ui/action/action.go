// Package action carries popup results back to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result emitted by a UI component. ActionType names it in
// logs, e.g. "searchbox.result".
type Action interface {
	ActionType() string
}

// Msg is the message the app receives for every component action.
type Msg struct {
	Source string // emitting component, e.g. "confirm"
	Action Action
}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
