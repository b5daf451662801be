package tutorpane

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
)

func courseAt(index int) *api.Course {
	return &api.Course{
		ID: "c1",
		Modules: []api.Module{
			{ID: "m1", Title: "Basics"},
			{ID: "m2", Title: "Tactics"},
		},
		CurrentModuleIndex: index,
	}
}

func typeText(p *Pane, text string) {
	for _, r := range text {
		p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterWithoutTextIsNoop(t *testing.T) {
	p := New(nil, "Alex")
	if cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("empty question should not start a request")
	}
}

func TestAskStartsRequestAndClearsInput(t *testing.T) {
	p := New(nil, "Alex")
	p.SetScope(courseAt(0), "learning")
	typeText(p, "why?")

	cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an ask command")
	}
	if !p.conv.Pending() {
		t.Error("conversation should be pending")
	}
	if p.input.Value() != "" {
		t.Error("input should clear after asking")
	}
}

func TestSecondQuestionWhilePendingIgnored(t *testing.T) {
	p := New(nil, "Alex")
	p.SetScope(courseAt(0), "learning")
	typeText(p, "first")
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	typeText(p, "second")
	if cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("a pending conversation should not start another request")
	}
}

func TestModuleChangeResetsConversation(t *testing.T) {
	p := New(nil, "Alex")
	p.SetScope(courseAt(0), "learning")
	typeText(p, "about basics")
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	p.SetScope(courseAt(1), "learning")
	if len(p.conv.Turns()) != 1 {
		t.Error("a module change should reset the transcript")
	}
	if p.conv.Pending() {
		t.Error("a module change should orphan the in-flight question")
	}
}

func TestSameModuleKeepsConversation(t *testing.T) {
	p := New(nil, "Alex")
	p.SetScope(courseAt(0), "learning")
	typeText(p, "q1")
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	p.SetScope(courseAt(0), "quiz")
	if len(p.conv.Turns()) != 2 {
		t.Error("reopening on the same module should keep the transcript")
	}
	if !p.conv.Pending() {
		t.Error("the in-flight question should survive a same-module scope change")
	}
}

func TestStaleReplyDropped(t *testing.T) {
	p := New(nil, "Alex")
	p.SetScope(courseAt(0), "learning")
	typeText(p, "q1")
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	p.Update(replyMsg{Token: "stale", Reply: &api.TutorReply{Response: "late answer"}})
	if !p.conv.Pending() {
		t.Error("a stale reply must not settle the conversation")
	}
}
