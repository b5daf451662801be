// Package quiz runs the knowledge check for the current module. The
// quiz is generated on entry, answered one question at a time, and
// graded by the service.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/config"
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
	stageLoading stage = iota
	stageQuestion
	stageConfirm
	stageSubmitting
	stageResult
)

// QuizScreen drives one quiz attempt, with retries on failure.
type QuizScreen struct {
	client  *api.Client
	retry   config.QuizRetryMode
	learner string
	course  *api.Course

	stage    stage
	quiz     *api.Quiz
	choices  []components.Choice
	current  int
	submit   components.Button
	result   *api.QuizResult
	errText  string
	token    string
}

var _ screen.Screen = (*QuizScreen)(nil)

func New(client *api.Client, retry config.QuizRetryMode, learner string, course *api.Course) *QuizScreen {
	return &QuizScreen{
		client:  client,
		retry:   retry,
		learner: learner,
		course:  course,
		stage:   stageLoading,
	}
}

func (q *QuizScreen) Title() string {
	if m, ok := q.course.CurrentModule(); ok {
		return "Quiz: " + m.Title
	}
	return "Quiz"
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.generate()
}

func (q *QuizScreen) generate() tea.Cmd {
	m, ok := q.course.CurrentModule()
	if !ok {
		return nil
	}
	q.stage = stageLoading
	q.errText = ""
	q.token = uuid.NewString()
	token := q.token
	courseID, moduleID := q.course.ID, m.ID
	return func() tea.Msg {
		quiz, err := q.client.GenerateQuiz(context.Background(), courseID, moduleID)
		return quizReadyMsg{Token: token, Quiz: quiz, Err: err}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return q.onQuizReady(msg)
	case gradedMsg:
		return q.onGraded(msg)
	case tea.KeyPressMsg:
		return q.onKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) onQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Token != q.token {
		return q, nil
	}
	q.token = ""
	if msg.Err != nil {
		q.errText = friendlyError(msg.Err)
		return q, nil
	}
	if len(msg.Quiz.Questions) == 0 {
		q.errText = "The quiz came back empty. Press r to try again."
		return q, nil
	}
	q.quiz = msg.Quiz
	q.choices = make([]components.Choice, len(msg.Quiz.Questions))
	for i, question := range msg.Quiz.Questions {
		q.choices[i] = components.NewChoice(question.Question, question.Options)
	}
	q.current = 0
	q.stage = stageQuestion
	return q, nil
}

func (q *QuizScreen) onGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	if msg.Token != q.token {
		return q, nil
	}
	q.token = ""
	if msg.Err != nil {
		q.stage = stageConfirm
		q.errText = friendlyError(msg.Err)
		return q, nil
	}
	q.result = msg.Result
	q.stage = stageResult
	return q, nil
}

func (q *QuizScreen) onKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch q.stage {
	case stageLoading:
		if msg.String() == "r" && q.errText != "" {
			return q, q.generate()
		}
		return q, nil

	case stageQuestion:
		var cmd tea.Cmd
		q.choices[q.current], cmd = q.choices[q.current].Update(msg)
		if q.choices[q.current].Answered() {
			q.choices[q.current].Locked = true
			if q.current+1 < len(q.choices) {
				q.current++
			} else {
				q.stage = stageConfirm
				q.submit = components.NewButton("Submit answers", true, q.startSubmit)
			}
		}
		return q, cmd

	case stageConfirm:
		if msg.String() == "b" {
			// step back to revise the last answer
			q.stage = stageQuestion
			q.current = len(q.choices) - 1
			q.choices[q.current] = q.choices[q.current].Unlock()
			return q, nil
		}
		var cmd tea.Cmd
		q.submit, cmd = q.submit.Update(msg)
		return q, cmd

	case stageSubmitting:
		return q, nil

	case stageResult:
		return q.onResultKey(msg)
	}
	return q, nil
}

// startSubmit validates the answer set locally, then grades remotely.
func (q *QuizScreen) startSubmit() tea.Cmd {
	answers := make([]int, len(q.choices))
	for i, c := range q.choices {
		answers[i] = c.Chosen
	}
	if err := api.CheckAnswers(*q.quiz, answers); err != nil {
		q.errText = "Answer every question before submitting."
		return nil
	}

	m, _ := q.course.CurrentModule()
	sub := api.QuizSubmission{
		Username: q.learner,
		CourseID: q.course.ID,
		ModuleID: m.ID,
		Answers:  answers,
	}
	q.stage = stageSubmitting
	q.errText = ""
	q.token = uuid.NewString()
	token := q.token
	return func() tea.Msg {
		result, err := q.client.SubmitQuiz(context.Background(), sub)
		return gradedMsg{Token: token, Result: result, Err: err}
	}
}

func (q *QuizScreen) onResultKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if q.result.Passed {
		if msg.String() == "enter" {
			return q, tea.Batch(
				nav.Flow(flow.QuizGraded{Result: *q.result}),
				nav.Toast(notify.Success(fmt.Sprintf("Passed with %d/%d! Now teach it back.",
					q.result.Score, q.result.Total))),
			)
		}
		return q, nil
	}
	switch msg.String() {
	case "enter":
		// Back to the lesson for another read; the reducer leaves the
		// module index where it is.
		return q, tea.Batch(
			nav.Flow(flow.QuizGraded{Result: *q.result}),
			nav.Toast(notify.Info("Give the module another read, then try the quiz again.")),
		)
	case "r":
		q.result = nil
		if q.retry == config.RetrySame {
			for i := range q.choices {
				q.choices[i] = q.choices[i].Unlock()
			}
			q.current = 0
			q.stage = stageQuestion
			return q, nav.Flow(flow.QuizRetried{})
		}
		return q, tea.Batch(nav.Flow(flow.QuizRetried{}), q.generate())
	}
	return q, nil
}

func friendlyError(err error) string {
	switch {
	case api.IsUnavailable(err):
		return "Can't reach the learning service. Press r to retry."
	default:
		return "Something went wrong. Press r to retry."
	}
}

func (q *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string

	switch q.stage {
	case stageLoading:
		if q.errText != "" {
			body = lipgloss.NewStyle().Foreground(theme.Error).Render(q.errText)
		} else {
			body = theme.Hint.Render("writing your quiz...")
		}

	case stageQuestion:
		counter := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Question %d of %d", q.current+1, len(q.choices)))
		body = counter + "\n\n" + q.choices[q.current].View()

	case stageConfirm:
		var sections []string
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("All questions answered."),
			"")
		if q.errText != "" {
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.Error).Render(q.errText), "")
		}
		sections = append(sections, q.submit.View(), "",
			theme.Hint.Render("b to revise your last answer"))
		body = strings.Join(sections, "\n")

	case stageSubmitting:
		body = theme.Hint.Render("grading your answers...")

	case stageResult:
		body = q.resultView()
	}

	card := components.Card(body, cw)
	return components.CenterFrame(card, width, height)
}

func (q *QuizScreen) resultView() string {
	r := q.result
	var sections []string

	if r.Passed {
		sections = append(sections,
			theme.Correct.Render(fmt.Sprintf("You passed!  %d/%d (%.0f%%)",
				r.Score, r.Total, r.Percentage)))
	} else {
		sections = append(sections,
			theme.Incorrect.Render(fmt.Sprintf("Not quite.  %d/%d (%.0f%%)",
				r.Score, r.Total, r.Percentage)))
	}

	if r.Feedback != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Render(r.Feedback))
	}

	sections = append(sections, "")
	if r.Passed {
		sections = append(sections, theme.Hint.Render("press enter to teach it back"))
	} else {
		sections = append(sections, theme.Hint.Render("press enter to review the lesson, r to try again"))
	}

	return strings.Join(sections, "\n")
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.stage {
	case stageResult:
		if q.result != nil && q.result.Passed {
			return []layout.KeyHint{{Key: "enter", Description: "continue"}}
		}
		return []layout.KeyHint{
			{Key: "enter", Description: "review lesson"},
			{Key: "r", Description: "retry"},
		}
	case stageConfirm:
		return []layout.KeyHint{
			{Key: "enter", Description: "submit"},
			{Key: "b", Description: "revise"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "choose"},
			{Key: "enter", Description: "lock in"},
			{Key: "ctrl+t", Description: "tutor"},
		}
	}
}
