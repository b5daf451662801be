// Package learning shows the current module's content. From here the
// learner scrolls through the material, asks for a simpler version, or
// moves on to the quiz.
package learning

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/notify"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screen"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/components"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/layout"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

// LearningScreen renders one module of the active course.
type LearningScreen struct {
	client  *api.Client
	learner string
	course  *api.Course

	vp      viewport.Model
	ready   bool
	width   int
	height  int

	simplifying bool
	token       string
}

var _ screen.Screen = (*LearningScreen)(nil)

func New(client *api.Client, learner string, course *api.Course) *LearningScreen {
	return &LearningScreen{
		client:  client,
		learner: learner,
		course:  course,
	}
}

func (l *LearningScreen) Title() string {
	if m, ok := l.course.CurrentModule(); ok {
		return fmt.Sprintf("Module %d of %d: %s",
			l.course.CurrentModuleIndex+1, len(l.course.Modules), m.Title)
	}
	return "Learning"
}

func (l *LearningScreen) Init() tea.Cmd {
	return nil
}

func (l *LearningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case simplifiedMsg:
		if msg.Token != l.token {
			return l, nil
		}
		l.simplifying = false
		l.token = ""
		if msg.Err != nil {
			return l, nav.Toast(notify.Error(friendlyError(msg.Err)))
		}
		return l, l.applySimplified(msg.Module)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if l.simplifying {
				return l, nil
			}
			return l, nav.Flow(flow.QuizRequested{})
		case "s":
			if l.simplifying {
				return l, nil
			}
			return l, l.simplify()
		}
	}

	if l.ready {
		var cmd tea.Cmd
		l.vp, cmd = l.vp.Update(msg)
		return l, cmd
	}
	return l, nil
}

// simplify asks the service to rewrite the current module in plainer
// terms. The shell persists the updated course.
func (l *LearningScreen) simplify() tea.Cmd {
	m, ok := l.course.CurrentModule()
	if !ok {
		return nil
	}
	l.simplifying = true
	l.token = uuid.NewString()
	token := l.token
	req := api.SimplifyRequest{
		Username: l.learner,
		CourseID: l.course.ID,
		ModuleID: m.ID,
	}
	return func() tea.Msg {
		simpler, err := l.client.SimplifyModule(context.Background(), req)
		return simplifiedMsg{Token: token, Module: simpler, Err: err}
	}
}

// applySimplified swaps the rewritten module into a copy of the course
// and hands it to the shell for persistence.
func (l *LearningScreen) applySimplified(m *api.Module) tea.Cmd {
	if m == nil {
		return nil
	}
	course := *l.course
	course.Modules = append([]api.Module(nil), l.course.Modules...)
	course.Modules[course.CurrentModuleIndex] = *m
	l.course = &course
	l.ready = false // re-render content
	return tea.Batch(
		func() tea.Msg { return nav.CourseUpdatedMsg{Course: &course} },
		nav.Toast(notify.Info("Here's a simpler take on this module.")),
	)
}

func friendlyError(err error) string {
	if api.IsUnavailable(err) {
		return "Can't reach the learning service right now."
	}
	return "Couldn't simplify this module. Try again in a moment."
}

func (l *LearningScreen) content(cw int) string {
	m, ok := l.course.CurrentModule()
	if !ok {
		return theme.Hint.Render("nothing to show")
	}

	body := theme.Body.Width(cw - 6)

	var sections []string
	sections = append(sections, body.Render(m.Content))

	if len(m.Examples) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Examples"))
		for _, ex := range m.Examples {
			sections = append(sections, body.Render("  • "+ex))
		}
	}

	if len(m.KeyPoints) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Key points"))
		for _, kp := range m.KeyPoints {
			sections = append(sections, body.Render("  ★ "+kp))
		}
	}

	return strings.Join(sections, "\n")
}

func (l *LearningScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if !l.ready || l.width != width || l.height != height {
		l.vp = viewport.New(viewport.WithWidth(cw), viewport.WithHeight(height-4))
		l.vp.SetContent(l.content(cw))
		l.ready = true
		l.width = width
		l.height = height
	}

	bar := components.NewProgressBar(
		"Course progress",
		float64(l.course.CurrentModuleIndex)/float64(len(l.course.Modules)),
		true, cw,
	)

	status := ""
	if l.simplifying {
		status = theme.Hint.Render("  rewriting this module in simpler terms...")
	}

	frame := bar.View() + "\n\n" + l.vp.View() + status
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(frame)
}

func (l *LearningScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "scroll"},
		{Key: "enter", Description: "take the quiz"},
		{Key: "s", Description: "simplify"},
		{Key: "ctrl+t", Description: "tutor"},
		{Key: "ctrl+p", Description: "progress"},
	}
}
