package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GotoMsg asks the app model to route to a client path. The path may
// carry a query string, e.g. "/checkCode?e=…".
type GotoMsg struct{ Path string }

// Goto returns a command that emits a GotoMsg.
func Goto(path string) tea.Cmd {
	return func() tea.Msg { return GotoMsg{Path: path} }
}

// GotoAfter emits a GotoMsg once d has elapsed, leaving time for a
// status message to be read before the screen changes.
func GotoAfter(d time.Duration, path string) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return GotoMsg{Path: path}
	})
}

// SessionDirtyMsg tells the app model that the server-side session
// changed (login, logout, profile completion) and must be re-probed
// before the next routing decision.
type SessionDirtyMsg struct{}

// SessionDirty returns a command that emits a SessionDirtyMsg.
func SessionDirty() tea.Cmd {
	return func() tea.Msg { return SessionDirtyMsg{} }
}
