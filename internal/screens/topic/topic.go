// Package topic is the course setup screen: pick a topic, a starting
// level, and optionally a goal, then ask the service to build a course.
package topic

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/notify"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screen"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/session"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/components"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/layout"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

// form fields in tab order
const (
	fieldTopic = iota
	fieldSkill
	fieldGoal
	fieldCount
)

var skillLevels = []string{api.SkillBeginner, api.SkillIntermediate}

// TopicScreen collects the course request.
type TopicScreen struct {
	client  *api.Client
	sess    *session.Store
	learner string

	topicInput components.TextInput
	goalInput  components.TextInput
	skillIndex int
	focus      int

	generating bool
	token      string
	errText    string
}

var _ screen.Screen = (*TopicScreen)(nil)

func New(client *api.Client, sess *session.Store, learner string) *TopicScreen {
	t := &TopicScreen{
		client:     client,
		sess:       sess,
		learner:    learner,
		topicInput: components.NewTextInput("what do you want to learn?", 60),
		goalInput:  components.NewTextInput("optional: why are you learning this?", 80),
	}
	t.goalInput.Model.Blur()
	return t
}

func (t *TopicScreen) Title() string { return "New Course" }

func (t *TopicScreen) Init() tea.Cmd {
	return t.topicInput.Init()
}

func (t *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case courseReadyMsg:
		if msg.Token != t.token {
			return t, nil
		}
		t.generating = false
		t.token = ""
		if msg.Err != nil {
			t.errText = friendlyError(msg.Err)
			return t, nil
		}
		return t, tea.Batch(
			nav.Flow(flow.CourseCreated{Course: msg.Course}),
			nav.Toast(notify.Success("Your course on "+msg.Course.Topic+" is ready!")),
		)

	case tea.KeyPressMsg:
		if t.generating {
			return t, nil
		}
		switch msg.String() {
		case "ctrl+l":
			return t, nav.Flow(flow.LoggedOut{})
		case "tab", "shift+tab", "enter":
			return t.advanceFocus(msg.String())
		case "left", "right", "h", "l":
			if t.focus == fieldSkill {
				t.skillIndex = 1 - t.skillIndex
				return t, nil
			}
		}
	}

	return t.updateFocused(msg)
}

// advanceFocus moves between form fields. Enter on the last field, or
// on the skill row with a topic already set, submits.
func (t *TopicScreen) advanceFocus(key string) (screen.Screen, tea.Cmd) {
	if key == "shift+tab" {
		t.setFocus((t.focus + fieldCount - 1) % fieldCount)
		return t, nil
	}
	if key == "enter" && t.focus == fieldGoal {
		return t.submit()
	}
	if key == "enter" && t.focus == fieldSkill && t.topicInput.Value() != "" {
		return t.submit()
	}
	t.setFocus((t.focus + 1) % fieldCount)
	return t, nil
}

func (t *TopicScreen) setFocus(f int) {
	t.focus = f
	t.topicInput.Model.Blur()
	t.goalInput.Model.Blur()
	switch f {
	case fieldTopic:
		t.topicInput.Model.Focus()
	case fieldGoal:
		t.goalInput.Model.Focus()
	}
}

func (t *TopicScreen) updateFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch t.focus {
	case fieldTopic:
		t.topicInput, cmd = t.topicInput.Update(msg)
	case fieldGoal:
		t.goalInput, cmd = t.goalInput.Update(msg)
	}
	return t, cmd
}

func (t *TopicScreen) submit() (screen.Screen, tea.Cmd) {
	topic := t.topicInput.Value()
	if topic == "" {
		t.errText = "Pick a topic first!"
		t.setFocus(fieldTopic)
		return t, nil
	}
	t.errText = ""
	t.generating = true
	t.token = uuid.NewString()
	req := api.CourseRequest{
		Username:     t.learner,
		Topic:        topic,
		SkillLevel:   skillLevels[t.skillIndex],
		LearningGoal: t.goalInput.Value(),
	}
	return t, t.generate(t.token, req)
}

// generate builds the course remotely and persists it before the flow
// moves on, so a crash right after leaves a resumable session.
func (t *TopicScreen) generate(token string, req api.CourseRequest) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		course, err := t.client.GenerateCourse(ctx, req)
		if err != nil {
			return courseReadyMsg{Token: token, Err: err}
		}
		if err := t.sess.SetCourse(ctx, course); err != nil {
			return courseReadyMsg{Token: token, Err: err}
		}
		return courseReadyMsg{Token: token, Course: course}
	}
}

func friendlyError(err error) string {
	switch {
	case api.IsUnavailable(err):
		return "Can't reach the learning service. Is it running?"
	case api.IsValidation(err):
		return "Something in the form isn't right. Check the topic."
	default:
		return "Course generation failed. Try again in a moment."
	}
}

func (t *TopicScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	var skill strings.Builder
	for i, lvl := range skillLevels {
		if i > 0 {
			skill.WriteString("    ")
		}
		style := theme.Unselected
		marker := "( ) "
		if i == t.skillIndex {
			style = theme.Selected
			marker = "(•) "
		}
		skill.WriteString(style.Render(marker + lvl))
	}

	sections := []string{
		label("Topic", t.focus == fieldTopic),
		t.topicInput.View(),
		"",
		label("Starting level", t.focus == fieldSkill),
		skill.String(),
		"",
		label("Learning goal", t.focus == fieldGoal),
		t.goalInput.View(),
	}

	if t.generating {
		sections = append(sections, "",
			theme.Hint.Render("building your course... this can take a minute"))
	} else if t.errText != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(t.errText))
	}

	card := components.Card(strings.Join(sections, "\n"), cw)
	title := theme.Title.Width(cw).Render("What shall we learn?")
	return components.CenterFrame(title+"\n\n"+card, width, height)
}

func (t *TopicScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "tab", Description: "next field"},
		{Key: "←/→", Description: "level"},
		{Key: "enter", Description: "create course"},
		{Key: "ctrl+p", Description: "progress"},
		{Key: "ctrl+l", Description: "sign out"},
		{Key: "ctrl+c", Description: "quit"},
	}
}
