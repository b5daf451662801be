package learning

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
)

func testCourse() *api.Course {
	return &api.Course{
		ID:      "c1",
		Topic:   "Negotiation",
		Modules: []api.Module{
			{ID: "m1", Title: "Basics", Content: "Start here.", KeyPoints: []string{"listen"}},
			{ID: "m2", Title: "Tactics", Content: "Go deeper."},
		},
	}
}

func TestEnterRequestsQuiz(t *testing.T) {
	s := New(nil, "Alex", testCourse())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}
	msg := cmd()
	fm, ok := msg.(nav.FlowMsg)
	if !ok {
		t.Fatalf("expected a flow message, got %T", msg)
	}
	if _, ok := fm.Event.(flow.QuizRequested); !ok {
		t.Errorf("expected QuizRequested, got %T", fm.Event)
	}
}

func TestSimplifyStartsRequest(t *testing.T) {
	s := New(nil, "Alex", testCourse())
	updated, cmd := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	s = updated.(*LearningScreen)
	if cmd == nil {
		t.Fatal("s should start a simplify request")
	}
	if !s.simplifying {
		t.Error("screen should be simplifying")
	}
}

func TestKeysBlockedWhileSimplifying(t *testing.T) {
	s := New(nil, "Alex", testCourse())
	updated, _ := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	s = updated.(*LearningScreen)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter while simplifying should be ignored")
	}
}

func TestSimplifiedModuleReplacesContent(t *testing.T) {
	s := New(nil, "Alex", testCourse())
	updated, _ := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	s = updated.(*LearningScreen)
	token := s.token

	simpler := &api.Module{ID: "m1", Title: "Basics", Content: "Even easier."}
	updated, cmd := s.Update(simplifiedMsg{Token: token, Module: simpler})
	s = updated.(*LearningScreen)

	if s.course.Modules[0].Content != "Even easier." {
		t.Error("simplified content should replace the module")
	}
	if s.simplifying {
		t.Error("simplify should settle")
	}

	foundPersist := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if cu, ok := msg.(nav.CourseUpdatedMsg); ok && cu.Course.Modules[0].Content == "Even easier." {
			foundPersist = true
		}
	})
	if !foundPersist {
		t.Error("simplified course should be handed to the shell for persistence")
	}
}

func TestSimplifiedDoesNotMutateOriginalCourse(t *testing.T) {
	original := testCourse()
	s := New(nil, "Alex", original)
	updated, _ := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	s = updated.(*LearningScreen)

	simpler := &api.Module{ID: "m1", Title: "Basics", Content: "Even easier."}
	s.Update(simplifiedMsg{Token: s.token, Module: simpler})

	if original.Modules[0].Content != "Start here." {
		t.Error("the caller's course must not be mutated")
	}
}

func TestStaleSimplifiedDropped(t *testing.T) {
	s := New(nil, "Alex", testCourse())
	updated, _ := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	s = updated.(*LearningScreen)

	simpler := &api.Module{ID: "m1", Content: "stale"}
	updated, cmd := s.Update(simplifiedMsg{Token: "stale", Module: simpler})
	s = updated.(*LearningScreen)
	if cmd != nil {
		t.Error("stale simplify reply should be dropped")
	}
	if s.course.Modules[0].Content == "stale" {
		t.Error("stale content must not be applied")
	}
}

func TestSimplifyFailureToasts(t *testing.T) {
	s := New(nil, "Alex", testCourse())
	updated, _ := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	s = updated.(*LearningScreen)
	token := s.token

	err := &api.RemoteError{Kind: api.KindUnavailable, Op: "simplify module"}
	updated, cmd := s.Update(simplifiedMsg{Token: token, Err: err})
	s = updated.(*LearningScreen)
	if s.simplifying {
		t.Error("failure should settle the request")
	}

	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if _, ok := msg.(nav.ToastMsg); ok {
			found = true
		}
	})
	if !found {
		t.Error("failure should surface a toast")
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
