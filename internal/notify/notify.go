// Package notify is the user-facing message surface. The TUI renders
// notices as a toast line; non-interactive commands print them.
package notify

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
)

// Level grades a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// Notice is a single user-facing message.
type Notice struct {
	Level   Level
	Message string
}

// Notifier delivers notices to the learner.
type Notifier interface {
	Notify(n Notice)
}

// Func adapts a function to the Notifier interface. The TUI uses this
// to feed notices into its toast line.
type Func func(Notice)

func (f Func) Notify(n Notice) { f(n) }

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Writer prints notices to an io.Writer, one per line. Used by the
// non-interactive commands.
type Writer struct {
	Out io.Writer
}

func (w *Writer) Notify(n Notice) {
	fmt.Fprintln(w.Out, Render(n))
}

// Render styles a notice for terminal output.
func Render(n Notice) string {
	switch n.Level {
	case LevelSuccess:
		return successStyle.Render(n.Message)
	case LevelWarn:
		return warnStyle.Render(n.Message)
	case LevelError:
		return errorStyle.Render(n.Message)
	default:
		return infoStyle.Render(n.Message)
	}
}

// Helpers for the common cases.

func Info(msg string) Notice    { return Notice{Level: LevelInfo, Message: msg} }
func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func Warn(msg string) Notice    { return Notice{Level: LevelWarn, Message: msg} }
func Error(msg string) Notice   { return Notice{Level: LevelError, Message: msg} }
