package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/config"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
)

func testCourse() *api.Course {
	return &api.Course{
		ID:      "c1",
		Topic:   "Negotiation",
		Modules: []api.Module{{ID: "m1", Title: "Basics"}},
	}
}

func testQuiz() *api.Quiz {
	return &api.Quiz{
		ModuleID: "m1",
		Questions: []api.QuizQuestion{
			{Question: "q1", Options: []string{"a", "b"}},
			{Question: "q2", Options: []string{"a", "b", "c"}},
		},
	}
}

func press(s *QuizScreen, code rune) (*QuizScreen, tea.Cmd) {
	msg := tea.KeyPressMsg{Code: code}
	if code >= ' ' && code <= '~' {
		msg.Text = string(code)
	}
	updated, cmd := s.Update(msg)
	return updated.(*QuizScreen), cmd
}

// loadedScreen returns a screen with the quiz delivered.
func loadedScreen(t *testing.T, retry config.QuizRetryMode) *QuizScreen {
	t.Helper()
	s := New(nil, retry, "Alex", testCourse())
	s.Init()
	updated, _ := s.Update(quizReadyMsg{Token: s.token, Quiz: testQuiz()})
	s = updated.(*QuizScreen)
	if s.stage != stageQuestion {
		t.Fatalf("quiz should be ready, stage = %d", s.stage)
	}
	return s
}

// answerAll locks in the first option for every question.
func answerAll(s *QuizScreen) *QuizScreen {
	for range s.choices {
		s, _ = press(s, tea.KeyEnter)
	}
	return s
}

func TestInitGeneratesQuiz(t *testing.T) {
	s := New(nil, config.RetryFresh, "Alex", testCourse())
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should start quiz generation")
	}
	if s.stage != stageLoading {
		t.Error("screen should start loading")
	}
	if s.token == "" {
		t.Error("generation should carry a token")
	}
}

func TestStaleQuizDropped(t *testing.T) {
	s := New(nil, config.RetryFresh, "Alex", testCourse())
	s.Init()
	updated, _ := s.Update(quizReadyMsg{Token: "stale", Quiz: testQuiz()})
	s = updated.(*QuizScreen)
	if s.stage != stageLoading {
		t.Error("stale quiz should be dropped")
	}
}

func TestEmptyQuizShowsError(t *testing.T) {
	s := New(nil, config.RetryFresh, "Alex", testCourse())
	s.Init()
	updated, _ := s.Update(quizReadyMsg{Token: s.token, Quiz: &api.Quiz{}})
	s = updated.(*QuizScreen)
	if s.errText == "" {
		t.Error("empty quiz should show an error")
	}
	if s.stage != stageLoading {
		t.Error("empty quiz should stay on the loading stage")
	}
}

func TestAnsweringAdvancesThroughQuestions(t *testing.T) {
	s := loadedScreen(t, config.RetryFresh)

	s, _ = press(s, tea.KeyDown) // pick option b
	s, _ = press(s, tea.KeyEnter)
	if s.current != 1 {
		t.Fatalf("should be on question 2, current = %d", s.current)
	}
	if s.choices[0].Chosen != 1 {
		t.Errorf("first answer = %d, want 1", s.choices[0].Chosen)
	}

	s, _ = press(s, tea.KeyEnter)
	if s.stage != stageConfirm {
		t.Error("answering the last question should reach the confirm stage")
	}
}

func TestConfirmEnterSubmits(t *testing.T) {
	s := loadedScreen(t, config.RetryFresh)
	s = answerAll(s)

	s, cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("confirm enter should start the submission")
	}
	if s.stage != stageSubmitting {
		t.Errorf("stage = %d, want submitting", s.stage)
	}
}

func TestReviseReopensLastQuestion(t *testing.T) {
	s := loadedScreen(t, config.RetryFresh)
	s = answerAll(s)

	s, _ = press(s, 'b')
	if s.stage != stageQuestion {
		t.Fatal("b should reopen the question stage")
	}
	if s.current != 1 {
		t.Errorf("current = %d, want the last question", s.current)
	}
	if s.choices[1].Answered() {
		t.Error("the reopened question should be unanswered")
	}
}

func TestPassedResultContinuesToTeaching(t *testing.T) {
	s := loadedScreen(t, config.RetryFresh)
	s = answerAll(s)
	s, _ = press(s, tea.KeyEnter) // submit
	token := s.token

	result := &api.QuizResult{Score: 2, Total: 2, Percentage: 100, Passed: true}
	updated, _ := s.Update(gradedMsg{Token: token, Result: result})
	s = updated.(*QuizScreen)
	if s.stage != stageResult {
		t.Fatal("grading should reach the result stage")
	}

	s, cmd := press(s, tea.KeyEnter)
	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if fm, ok := msg.(nav.FlowMsg); ok {
			if g, ok := fm.Event.(flow.QuizGraded); ok && g.Result.Passed {
				found = true
			}
		}
	})
	if !found {
		t.Error("continuing after a pass should emit QuizGraded")
	}
}

func TestFailedResultReturnsToLesson(t *testing.T) {
	s := loadedScreen(t, config.RetryFresh)
	s = answerAll(s)
	s, _ = press(s, tea.KeyEnter)
	token := s.token

	result := &api.QuizResult{Score: 0, Total: 2, Passed: false}
	updated, _ := s.Update(gradedMsg{Token: token, Result: result})
	s = updated.(*QuizScreen)

	_, cmd := press(s, tea.KeyEnter)
	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if fm, ok := msg.(nav.FlowMsg); ok {
			if g, ok := fm.Event.(flow.QuizGraded); ok && !g.Result.Passed {
				found = true
			}
		}
	})
	if !found {
		t.Error("reviewing the lesson after a fail should emit the failed grade")
	}
}

func TestFailedResultRetriesFresh(t *testing.T) {
	s := loadedScreen(t, config.RetryFresh)
	s = answerAll(s)
	s, _ = press(s, tea.KeyEnter)
	token := s.token

	result := &api.QuizResult{Score: 0, Total: 2, Passed: false}
	updated, _ := s.Update(gradedMsg{Token: token, Result: result})
	s = updated.(*QuizScreen)

	s, cmd := press(s, 'r')
	if s.stage != stageLoading {
		t.Error("fresh retry should regenerate the quiz")
	}
	if cmd == nil {
		t.Error("fresh retry should start a generate command")
	}
}

func TestFailedResultRetriesSameQuestions(t *testing.T) {
	s := loadedScreen(t, config.RetrySame)
	s = answerAll(s)
	s, _ = press(s, tea.KeyEnter)
	token := s.token

	result := &api.QuizResult{Score: 0, Total: 2, Passed: false}
	updated, _ := s.Update(gradedMsg{Token: token, Result: result})
	s = updated.(*QuizScreen)

	s, cmd := press(s, 'r')
	if s.stage != stageQuestion {
		t.Error("same-question retry should reopen the questions")
	}
	var sawRetry bool
	collectMsgs(cmd, func(msg tea.Msg) {
		fm, ok := msg.(nav.FlowMsg)
		if !ok {
			t.Errorf("same-question retry should not hit the service, got %T", msg)
			return
		}
		if _, ok := fm.Event.(flow.QuizRetried); ok {
			sawRetry = true
		}
	})
	if !sawRetry {
		t.Error("retry should announce a quiz retry")
	}
	if s.current != 0 {
		t.Error("retry should start at the first question")
	}
	for i, c := range s.choices {
		if c.Answered() {
			t.Errorf("question %d should be unanswered after retry", i)
		}
	}
}

func TestSubmitFailureReturnsToConfirm(t *testing.T) {
	s := loadedScreen(t, config.RetryFresh)
	s = answerAll(s)
	s, _ = press(s, tea.KeyEnter)
	token := s.token

	err := &api.RemoteError{Kind: api.KindUnavailable, Op: "submit quiz"}
	updated, _ := s.Update(gradedMsg{Token: token, Err: err})
	s = updated.(*QuizScreen)
	if s.stage != stageConfirm {
		t.Error("a failed submission should return to the confirm stage")
	}
	if s.errText == "" {
		t.Error("a failed submission should show an error")
	}
}

func collectMsgs(cmd tea.Cmd, fn func(tea.Msg)) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, c := range m {
			collectMsgs(c, fn)
		}
	default:
		fn(msg)
	}
}
