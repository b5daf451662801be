package completed

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
)

func finishedCourse() *api.Course {
	return &api.Course{
		ID:        "c1",
		Topic:     "Negotiation",
		Modules:   []api.Module{{ID: "m1"}, {ID: "m2"}},
		Completed: true,
	}
}

func TestNewCourseSelection(t *testing.T) {
	s := New(finishedCourse())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting the first item should emit a command")
	}
	msg := cmd()
	fm, ok := msg.(nav.FlowMsg)
	if !ok {
		t.Fatalf("expected a flow message, got %T", msg)
	}
	if _, ok := fm.Event.(flow.NewCourseStarted); !ok {
		t.Errorf("expected NewCourseStarted, got %T", fm.Event)
	}
}

func TestProgressSelection(t *testing.T) {
	s := New(finishedCourse())
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = updated.(*CompletedScreen)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting the progress item should emit a command")
	}
	fm, ok := cmd().(nav.FlowMsg)
	if !ok {
		t.Fatal("expected a flow message")
	}
	if _, ok := fm.Event.(flow.ProgressOpened); !ok {
		t.Errorf("expected ProgressOpened, got %T", fm.Event)
	}
}

func TestSignOutSelection(t *testing.T) {
	s := New(finishedCourse())
	for i := 0; i < 2; i++ {
		updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		s = updated.(*CompletedScreen)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting the sign-out item should emit a command")
	}
	fm, ok := cmd().(nav.FlowMsg)
	if !ok {
		t.Fatal("expected a flow message")
	}
	if _, ok := fm.Event.(flow.LoggedOut); !ok {
		t.Errorf("expected LoggedOut, got %T", fm.Event)
	}
}
