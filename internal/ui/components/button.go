package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

// Button fires OnPress when enter is pressed while it has focus. An
// unfocused button renders dimmed and ignores input.
type Button struct {
	Label   string
	Focused bool
	OnPress func() tea.Cmd
}

func NewButton(label string, focused bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Focused: focused, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !b.Focused || b.OnPress == nil {
		return b, nil
	}
	if key.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	label := " " + b.Label + " "
	if b.Focused {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
