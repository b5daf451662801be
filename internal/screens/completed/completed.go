// Package completed celebrates a finished course and offers the next
// move: start another course, look at progress, or quit.
package completed

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screen"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/components"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/layout"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

const trophy = `      ___________
     '._==_==_=_.'
     .-\:      /-.
    | (|:.     |) |
     '-|:.     |-'
       \::.    /
        '::. .'
          ) (
        _.' '._
       '-------'`

// CompletedScreen is the end-of-course station.
type CompletedScreen struct {
	course *api.Course
	menu   components.Menu
}

var _ screen.Screen = (*CompletedScreen)(nil)

func New(course *api.Course) *CompletedScreen {
	menu := components.NewMenu([]components.MenuItem{
		{Label: "Start a new course", Action: func() tea.Cmd {
			return nav.Flow(flow.NewCourseStarted{})
		}},
		{Label: "See my progress", Action: func() tea.Cmd {
			return nav.Flow(flow.ProgressOpened{})
		}},
		{Label: "Sign out", Action: func() tea.Cmd {
			return nav.Flow(flow.LoggedOut{})
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return &CompletedScreen{course: course, menu: menu}
}

func (c *CompletedScreen) Title() string { return "Course complete!" }

func (c *CompletedScreen) Init() tea.Cmd { return nil }

func (c *CompletedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CompletedScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	headline := fmt.Sprintf("You finished %q!", c.course.Topic)
	if c.course.Topic == "" {
		headline = "You finished your course!"
	}

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Accent).Render(trophy),
		"",
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(headline),
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d modules learned, quizzed, and taught back.", len(c.course.Modules))),
		"",
		c.menu.View(),
	}

	card := components.Card(strings.Join(sections, "\n"), cw)
	return components.CenterFrame(card, width, height)
}

func (c *CompletedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "choose"},
		{Key: "enter", Description: "select"},
	}
}
