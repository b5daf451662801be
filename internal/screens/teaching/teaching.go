// Package teaching is the teach-back step: the learner explains the
// module in their own words and the service critiques the explanation.
// Accepting the feedback advances the course, or completes it on the
// last module.
package teaching

import (
	"context"
	"fmt"
	"strings"

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

type stage int

const (
	stageWriting stage = iota
	stageSubmitting
	stageFeedback
	stageAdvancing
)

// TeachingScreen collects and grades the learner's explanation.
type TeachingScreen struct {
	client  *api.Client
	learner string
	course  *api.Course

	stage    stage
	input    components.TextArea
	feedback *api.TeachingFeedback
	errText  string
	token    string
}

var _ screen.Screen = (*TeachingScreen)(nil)

func New(client *api.Client, learner string, course *api.Course) *TeachingScreen {
	return &TeachingScreen{
		client:  client,
		learner: learner,
		course:  course,
		input:   components.NewTextArea("explain this module as if teaching a friend...", 70, 8),
	}
}

func (t *TeachingScreen) Title() string {
	if m, ok := t.course.CurrentModule(); ok {
		return "Teach it back: " + m.Title
	}
	return "Teach it back"
}

func (t *TeachingScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TeachingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackMsg:
		return t.onFeedback(msg)
	case advancedMsg:
		return t.onAdvanced(msg)
	case tea.KeyPressMsg:
		return t.onKey(msg)
	}
	return t, nil
}

func (t *TeachingScreen) onKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch t.stage {
	case stageWriting:
		if msg.String() == "ctrl+d" {
			return t.submit()
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd

	case stageFeedback:
		switch msg.String() {
		case "enter":
			return t.accept()
		case "e":
			// revise the explanation and resubmit
			t.stage = stageWriting
			t.feedback = nil
			return t, t.input.Init()
		}
	}
	return t, nil
}

func (t *TeachingScreen) submit() (screen.Screen, tea.Cmd) {
	explanation := t.input.Value()
	if explanation == "" {
		t.errText = "Write your explanation first."
		return t, nil
	}
	m, ok := t.course.CurrentModule()
	if !ok {
		return t, nil
	}
	t.stage = stageSubmitting
	t.errText = ""
	t.token = uuid.NewString()
	token := t.token
	sub := api.TeachingSubmission{
		Username:    t.learner,
		CourseID:    t.course.ID,
		ModuleID:    m.ID,
		Explanation: explanation,
	}
	return t, func() tea.Msg {
		fb, err := t.client.SubmitTeaching(context.Background(), sub)
		return feedbackMsg{Token: token, Feedback: fb, Err: err}
	}
}

func (t *TeachingScreen) onFeedback(msg feedbackMsg) (screen.Screen, tea.Cmd) {
	if msg.Token != t.token {
		return t, nil
	}
	t.token = ""
	if msg.Err != nil {
		t.stage = stageWriting
		t.errText = friendlyError(msg.Err)
		return t, nil
	}
	t.feedback = msg.Feedback
	t.stage = stageFeedback
	return t, nil
}

// accept moves the course forward. On the last module the course is
// completed instead; if the service rejects the completion call the
// learner still finishes locally, the mismatch only affects remote
// stats.
func (t *TeachingScreen) accept() (screen.Screen, tea.Cmd) {
	action, next := flow.NextTeachingAction(t.course)
	t.stage = stageAdvancing
	t.token = uuid.NewString()
	token := t.token
	courseID := t.course.ID

	if action == flow.ActionComplete {
		return t, func() tea.Msg {
			err := t.client.CompleteCourse(context.Background(), courseID)
			return advancedMsg{Token: token, Complete: true, Err: err}
		}
	}
	return t, func() tea.Msg {
		err := t.client.AdvanceModule(context.Background(), courseID, next)
		return advancedMsg{Token: token, Next: next, Err: err}
	}
}

func (t *TeachingScreen) onAdvanced(msg advancedMsg) (screen.Screen, tea.Cmd) {
	if msg.Token != t.token {
		return t, nil
	}
	t.token = ""

	if msg.Complete {
		// Completion is best-effort: a failed call only skews remote
		// stats, the course still finishes locally.
		var cmds []tea.Cmd
		if msg.Err != nil {
			cmds = append(cmds, nav.Toast(notify.Warn(
				"Couldn't sync your progress, continuing anyway.")))
		}
		cmds = append(cmds, nav.Flow(flow.CourseCompleted{}))
		return t, tea.Batch(cmds...)
	}

	// The local index moves only after the service acknowledged the
	// advance, otherwise the two drift apart.
	if msg.Err != nil {
		t.stage = stageFeedback
		return t, nav.Toast(notify.Error("Failed to move on. Try again."))
	}
	return t, tea.Batch(
		nav.Toast(notify.Success("On to the next module!")),
		nav.Flow(flow.ModuleAdvanced{NextIndex: msg.Next}),
	)
}

func friendlyError(err error) string {
	if api.IsUnavailable(err) {
		return "Can't reach the learning service. Your text is kept, try again."
	}
	return "Submission failed. Your text is kept, try again."
}

func (t *TeachingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string

	switch t.stage {
	case stageWriting:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Your turn to teach. Explain what you just learned:")
		sections := []string{prompt, "", t.input.View()}
		if t.errText != "" {
			sections = append(sections, "",
				lipgloss.NewStyle().Foreground(theme.Error).Render(t.errText))
		}
		body = strings.Join(sections, "\n")

	case stageSubmitting:
		body = theme.Hint.Render("reading your explanation...")

	case stageFeedback:
		body = t.feedbackView()

	case stageAdvancing:
		body = theme.Hint.Render("saving your progress...")
	}

	card := components.Card(body, cw)
	return components.CenterFrame(card, width, height)
}

func (t *TeachingScreen) feedbackView() string {
	fb := t.feedback
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("Teaching quality: %d/10", fb.QualityScore)),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(fb.Feedback))

	if len(fb.Suggestions) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Try this"))
		for _, s := range fb.Suggestions {
			sections = append(sections, "  • "+s)
		}
	}

	sections = append(sections, "")
	if action, _ := flow.NextTeachingAction(t.course); action == flow.ActionComplete {
		sections = append(sections, theme.Hint.Render("enter to finish the course, e to revise"))
	} else {
		sections = append(sections, theme.Hint.Render("enter for the next module, e to revise"))
	}

	return strings.Join(sections, "\n")
}

func (t *TeachingScreen) KeyHints() []layout.KeyHint {
	switch t.stage {
	case stageFeedback:
		return []layout.KeyHint{
			{Key: "enter", Description: "continue"},
			{Key: "e", Description: "revise"},
		}
	default:
		return []layout.KeyHint{
			{Key: "ctrl+d", Description: "submit"},
			{Key: "ctrl+t", Description: "tutor"},
		}
	}
}
