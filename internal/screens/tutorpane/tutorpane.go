// Package tutorpane is the tutor overlay: a chat strip the learner can
// open from any course screen without losing their place.
package tutorpane

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/tutor"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/components"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

// replyMsg is sent when the tutor call settles.
type replyMsg struct {
	Token string
	Reply *api.TutorReply
	Err   error
}

// Pane is the overlay model. The app owns one and routes messages here
// while the overlay is open.
type Pane struct {
	client  *api.Client
	learner string

	conv    *tutor.Conversation
	input   components.TextInput
	course  *api.Course
	context string
}

func New(client *api.Client, learner string) *Pane {
	return &Pane{
		client:  client,
		learner: learner,
		conv:    tutor.New(""),
		input:   components.NewTextInput("ask your tutor anything...", 0),
	}
}

// SetScope points the conversation at the current course position. A
// module change resets the transcript.
func (p *Pane) SetScope(course *api.Course, screenName string) {
	sameModule := false
	if course != nil && p.course != nil {
		if m, ok := course.CurrentModule(); ok {
			if prev, ok2 := p.course.CurrentModule(); ok2 && prev.ID == m.ID {
				sameModule = true
			}
		}
	}
	p.course = course
	p.context = screenName
	if !sameModule {
		title := ""
		if course != nil {
			if m, ok := course.CurrentModule(); ok {
				title = m.Title
			}
		}
		p.conv.Reset(title)
	}
}

// Update handles input while the overlay is open.
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case replyMsg:
		p.conv.Resolve(msg.Token, msg.Reply, msg.Err)
		return nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return p.ask()
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}
	return nil
}

func (p *Pane) ask() tea.Cmd {
	question := p.input.Value()
	token, ok := p.conv.Begin(question)
	if !ok {
		return nil
	}
	p.input.Reset()
	req := tutor.MessageFor(p.learner, p.course, question, p.context)
	return func() tea.Msg {
		reply, err := p.client.AskTutor(context.Background(), req)
		return replyMsg{Token: token, Reply: reply, Err: err}
	}
}

// View renders the overlay at the given size.
func (p *Pane) View(width, height int) string {
	cw := components.ContentWidth(width)

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Tutor") +
		theme.Hint.Render("   ctrl+t to close")

	var lines []string
	for _, turn := range p.conv.Turns() {
		prefix := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("tutor  ")
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if turn.Role == tutor.RoleLearner {
			prefix = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("you    ")
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		wrapped := style.Width(cw - 14).Render(turn.Text)
		lines = append(lines, prefix+wrapped)
	}

	// keep the tail of the transcript in view
	maxLines := height - 10
	if maxLines < 3 {
		maxLines = 3
	}
	transcript := strings.Join(lines, "\n")
	split := strings.Split(transcript, "\n")
	if len(split) > maxLines {
		split = split[len(split)-maxLines:]
	}
	transcript = strings.Join(split, "\n")

	status := ""
	if p.conv.Pending() {
		status = theme.Hint.Render("thinking...")
	}

	body := header + "\n\n" + transcript + "\n" + status + "\n" + p.input.View()
	card := components.Card(body, cw)
	return components.CenterFrame(card, width, height)
}
