package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for modal popup components.
type Popup interface {
	// Init returns any initial command (e.g. cursor blink for inputs).
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup content without border or centering.
	View() string

	// SetSize sets the screen dimensions the popup is shown on.
	SetSize(width, height int)
}
