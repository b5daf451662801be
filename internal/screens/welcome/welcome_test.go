package welcome

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
)

func pressEnter(s *WelcomeScreen) (*WelcomeScreen, tea.Cmd) {
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return updated.(*WelcomeScreen), cmd
}

func typeText(s *WelcomeScreen, text string) *WelcomeScreen {
	for _, r := range text {
		updated, _ := s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		s = updated.(*WelcomeScreen)
	}
	return s
}

func TestEmptyNameShowsError(t *testing.T) {
	s := New(nil, nil)
	s, cmd := pressEnter(s)
	if cmd != nil {
		t.Error("empty name should not start a register call")
	}
	if s.errText == "" {
		t.Error("empty name should show an error")
	}
	if s.registering {
		t.Error("empty name should not mark the screen registering")
	}
}

func TestEnterStartsRegistration(t *testing.T) {
	s := New(nil, nil)
	s = typeText(s, "Alex")
	s, cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("expected a register command")
	}
	if !s.registering {
		t.Error("screen should be registering")
	}
	if s.token == "" {
		t.Error("registration should carry a token")
	}
}

func TestKeysIgnoredWhileRegistering(t *testing.T) {
	s := New(nil, nil)
	s = typeText(s, "Alex")
	s, _ = pressEnter(s)

	s, cmd := pressEnter(s)
	if cmd != nil {
		t.Error("enter while registering should be ignored")
	}
}

func TestRegisteredMsgEmitsFlowEvent(t *testing.T) {
	s := New(nil, nil)
	s = typeText(s, "Alex")
	s, _ = pressEnter(s)
	token := s.token

	updated, cmd := s.Update(registeredMsg{Token: token, Name: "Alex", Stats: &api.UserStats{Username: "Alex"}})
	s = updated.(*WelcomeScreen)
	if s.registering {
		t.Error("success should settle the screen")
	}
	if cmd == nil {
		t.Fatal("success should emit commands")
	}

	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if fm, ok := msg.(nav.FlowMsg); ok {
			if reg, ok := fm.Event.(flow.LearnerRegistered); ok && reg.Name == "Alex" {
				found = true
			}
		}
	})
	if !found {
		t.Error("expected a LearnerRegistered flow event")
	}
}

func TestStaleRegisteredMsgDropped(t *testing.T) {
	s := New(nil, nil)
	s = typeText(s, "Alex")
	s, _ = pressEnter(s)

	updated, cmd := s.Update(registeredMsg{Token: "stale", Name: "Alex"})
	s = updated.(*WelcomeScreen)
	if cmd != nil {
		t.Error("stale reply should be dropped")
	}
	if !s.registering {
		t.Error("stale reply must not settle the in-flight registration")
	}
}

func TestRegisterFailureShowsError(t *testing.T) {
	s := New(nil, nil)
	s = typeText(s, "Alex")
	s, _ = pressEnter(s)
	token := s.token

	unavailable := &api.RemoteError{Kind: api.KindUnavailable, Op: "register learner"}
	updated, _ := s.Update(registeredMsg{Token: token, Name: "Alex", Err: unavailable})
	s = updated.(*WelcomeScreen)
	if s.errText == "" {
		t.Error("failure should show an error")
	}
	if s.registering {
		t.Error("failure should settle the screen for a retry")
	}
}

// collectMsgs runs a command tree and hands every produced message to fn.
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
