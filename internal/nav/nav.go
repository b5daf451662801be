// Package nav defines the messages screens use to talk to the app
// shell. Screens never import each other or the router directly; they
// emit one of these and the shell reduces, persists, and routes.
package nav

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/notify"
)

// FlowMsg carries a state machine event up to the shell.
type FlowMsg struct {
	Event flow.Event
}

// Flow wraps an event as a command.
func Flow(ev flow.Event) tea.Cmd {
	return func() tea.Msg { return FlowMsg{Event: ev} }
}

// ToastMsg shows a notice on the toast line.
type ToastMsg struct {
	Notice notify.Notice
}

// Toast wraps a notice as a command.
func Toast(n notify.Notice) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Notice: n} }
}

// ClearToastMsg hides the toast line. Emitted on a timer by the shell.
type ClearToastMsg struct{}

// CourseUpdatedMsg reports an in-place course change, such as a
// simplified module, that must be persisted without a screen change.
type CourseUpdatedMsg struct {
	Course *api.Course
}

// ToggleTutorMsg opens or closes the tutor overlay.
type ToggleTutorMsg struct{}
