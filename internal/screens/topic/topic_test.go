package topic

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func typeText(s *TopicScreen, text string) *TopicScreen {
	for _, r := range text {
		updated, _ := s.Update(key(r))
		s = updated.(*TopicScreen)
	}
	return s
}

func press(s *TopicScreen, code rune) (*TopicScreen, tea.Cmd) {
	updated, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return updated.(*TopicScreen), cmd
}

func TestSubmitWithoutTopicShowsError(t *testing.T) {
	s := New(nil, nil, "Alex")
	s, _ = press(s, tea.KeyTab) // topic -> skill
	s, cmd := press(s, tea.KeyEnter)
	if cmd != nil {
		t.Error("empty topic should not start generation")
	}
	if s.errText == "" {
		t.Error("empty topic should show an error")
	}
	if s.focus != fieldTopic {
		t.Error("focus should return to the topic field")
	}
}

func TestSignOutShortcut(t *testing.T) {
	s := New(nil, nil, "Alex")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+l should emit a command")
	}
	fm, ok := cmd().(nav.FlowMsg)
	if !ok {
		t.Fatal("expected a flow message")
	}
	if _, ok := fm.Event.(flow.LoggedOut); !ok {
		t.Errorf("expected LoggedOut, got %T", fm.Event)
	}
}

func TestSkillLevelToggles(t *testing.T) {
	s := New(nil, nil, "Alex")
	s, _ = press(s, tea.KeyTab) // focus skill
	if s.skillIndex != 0 {
		t.Fatal("default level should be the first")
	}
	s, _ = press(s, tea.KeyRight)
	if s.skillIndex != 1 {
		t.Error("right should select the second level")
	}
	s, _ = press(s, tea.KeyLeft)
	if s.skillIndex != 0 {
		t.Error("left should go back")
	}
}

func TestEnterOnSkillSubmitsWhenTopicSet(t *testing.T) {
	s := New(nil, nil, "Alex")
	s = typeText(s, "Go")
	s, _ = press(s, tea.KeyTab) // focus skill
	s, cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a generate command")
	}
	if !s.generating {
		t.Error("screen should be generating")
	}
}

func TestKeysIgnoredWhileGenerating(t *testing.T) {
	s := New(nil, nil, "Alex")
	s = typeText(s, "Go")
	s, _ = press(s, tea.KeyTab)
	s, _ = press(s, tea.KeyEnter)

	s, cmd := press(s, tea.KeyEnter)
	if cmd != nil {
		t.Error("keys while generating should be ignored")
	}
}

func TestCourseReadyEmitsFlowEvent(t *testing.T) {
	s := New(nil, nil, "Alex")
	s = typeText(s, "Go")
	s, _ = press(s, tea.KeyTab)
	s, _ = press(s, tea.KeyEnter)
	token := s.token

	course := &api.Course{ID: "c1", Topic: "Go", Modules: []api.Module{{ID: "m1", Title: "Basics"}}}
	updated, cmd := s.Update(courseReadyMsg{Token: token, Course: course})
	s = updated.(*TopicScreen)
	if s.generating {
		t.Error("ready message should settle the screen")
	}
	if cmd == nil {
		t.Fatal("expected commands")
	}

	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if fm, ok := msg.(nav.FlowMsg); ok {
			if cc, ok := fm.Event.(flow.CourseCreated); ok && cc.Course.ID == "c1" {
				found = true
			}
		}
	})
	if !found {
		t.Error("expected a CourseCreated flow event")
	}
}

func TestStaleCourseReadyDropped(t *testing.T) {
	s := New(nil, nil, "Alex")
	s = typeText(s, "Go")
	s, _ = press(s, tea.KeyTab)
	s, _ = press(s, tea.KeyEnter)

	course := &api.Course{ID: "c-old", Topic: "Go"}
	_, cmd := s.Update(courseReadyMsg{Token: "stale", Course: course})
	if cmd != nil {
		t.Error("stale course should be dropped")
	}
}

func TestGenerateFailureShowsError(t *testing.T) {
	s := New(nil, nil, "Alex")
	s = typeText(s, "Go")
	s, _ = press(s, tea.KeyTab)
	s, _ = press(s, tea.KeyEnter)
	token := s.token

	err := &api.RemoteError{Kind: api.KindRejected, Op: "generate course", StatusCode: 500}
	updated, _ := s.Update(courseReadyMsg{Token: token, Err: err})
	s = updated.(*TopicScreen)
	if s.errText == "" {
		t.Error("failure should show an error")
	}
	if s.generating {
		t.Error("failure should settle the screen for a retry")
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
