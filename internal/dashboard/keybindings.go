package dashboard

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit    = "q"
	KeyQuitAlt = "ctrl+c"
)

// handleKey processes keyboard input. Returns true if the key was handled.
// The view has no other input: the status line and readout are the only
// externally observable outputs.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		m.sub.Close()
		return true, tea.Quit
	}
	return false, nil
}
