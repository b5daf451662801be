package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

// Choice is a multiple-choice selector. It only tracks what the learner
// picked; the grading happens elsewhere, so nothing here knows which
// option is right.
type Choice struct {
	Question string
	Options  []string
	Selected int
	Locked   bool
	Chosen   int
}

// NewChoice creates a choice selector with nothing chosen yet.
func NewChoice(question string, options []string) Choice {
	return Choice{
		Question: question,
		Options:  options,
		Selected: 0,
		Chosen:   -1,
	}
}

// Answered reports whether an option has been locked in.
func (c Choice) Answered() bool { return c.Chosen >= 0 }

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	}

	return c, nil
}

// Unlock reopens a previously answered question for a retry.
func (c Choice) Unlock() Choice {
	c.Locked = false
	c.Chosen = -1
	return c
}

// View renders the question and its options.
func (c Choice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Question) + "\n\n"

	for i, opt := range c.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == c.Selected && !c.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == c.Selected && !c.Locked:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
