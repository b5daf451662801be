// Package screen defines the contract every station in the learning
// flow implements. The router owns a stack of these; the app shell
// decides which one is active.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/layout"
)

// Screen is one station of the flow (welcome, topic, learning, ...).
type Screen interface {
	// Init runs when the screen is mounted and may start a command,
	// such as fetching the quiz the screen is about to show.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body only; the shell draws header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
