package tutor

import (
	"errors"
	"testing"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
)

func TestNewSeedsWelcome(t *testing.T) {
	c := New("Anchoring")
	turns := c.Turns()
	if len(turns) != 1 {
		t.Fatalf("expected one seeded turn, got %d", len(turns))
	}
	if turns[0].Role != RoleTutor {
		t.Error("welcome turn should come from the tutor")
	}
}

func TestAskAndResolve(t *testing.T) {
	c := New("")
	token, ok := c.Begin("  what is anchoring?  ")
	if !ok {
		t.Fatal("Begin should accept a non-blank question")
	}
	if !c.Pending() {
		t.Error("conversation should be pending after Begin")
	}

	turns := c.Turns()
	last := turns[len(turns)-1]
	if last.Role != RoleLearner || last.Text != "what is anchoring?" {
		t.Errorf("question should be appended trimmed, got %+v", last)
	}

	c.Resolve(token, &api.TutorReply{Response: "It's a bias.", Encouragement: "Great question!"}, nil)
	if c.Pending() {
		t.Error("conversation should settle after Resolve")
	}
	turns = c.Turns()
	last = turns[len(turns)-1]
	if last.Role != RoleTutor {
		t.Error("reply turn should come from the tutor")
	}
	if last.Text != "It's a bias.\n\nGreat question!" {
		t.Errorf("reply text = %q", last.Text)
	}
}

func TestBlankQuestionRejected(t *testing.T) {
	c := New("")
	if _, ok := c.Begin("   "); ok {
		t.Error("blank question should be rejected")
	}
	if len(c.Turns()) != 1 {
		t.Error("rejected question must not touch the transcript")
	}
}

func TestSecondQuestionWhilePendingRejected(t *testing.T) {
	c := New("")
	if _, ok := c.Begin("first"); !ok {
		t.Fatal("first question should be accepted")
	}
	if _, ok := c.Begin("second"); ok {
		t.Error("a pending conversation should reject new questions")
	}
}

func TestFailureAppendsExactlyOneFallback(t *testing.T) {
	c := New("")
	token, _ := c.Begin("help")
	before := len(c.Turns())

	c.Resolve(token, nil, errors.New("connection refused"))
	if got := len(c.Turns()) - before; got != 1 {
		t.Fatalf("failure should append exactly one turn, got %d", got)
	}
	// A duplicate delivery of the same outcome must be ignored.
	c.Resolve(token, nil, errors.New("connection refused"))
	if got := len(c.Turns()) - before; got != 1 {
		t.Errorf("duplicate resolve should be a no-op, transcript grew to %d extra turns", got)
	}
}

func TestStaleTokenDropped(t *testing.T) {
	c := New("")
	token, _ := c.Begin("question about module one")
	c.Reset("Module Two")

	c.Resolve(token, &api.TutorReply{Response: "answer for module one"}, nil)
	turns := c.Turns()
	if len(turns) != 1 {
		t.Fatalf("stale reply should be dropped, transcript has %d turns", len(turns))
	}
	if c.Pending() {
		t.Error("reset conversation should not be pending")
	}
}

func TestMessageForScopesToCurrentModule(t *testing.T) {
	course := &api.Course{
		ID: "c1",
		Modules: []api.Module{
			{ID: "m1", Title: "Basics"},
			{ID: "m2", Title: "Tactics"},
		},
		CurrentModuleIndex: 1,
	}
	msg := MessageFor("Alex", course, "why?", "learning")
	if msg.ModuleID != "m2" {
		t.Errorf("ModuleID = %q, want m2", msg.ModuleID)
	}
	if msg.CourseID != "c1" || msg.Username != "Alex" || msg.Context != "learning" {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestMessageForFallsBackToFirstModule(t *testing.T) {
	course := &api.Course{
		ID:                 "c1",
		Modules:            []api.Module{{ID: "m1"}},
		CurrentModuleIndex: 5,
	}
	msg := MessageFor("Alex", course, "why?", "completed")
	if msg.ModuleID != "m1" {
		t.Errorf("ModuleID = %q, want m1", msg.ModuleID)
	}
}

func TestMessageForWithoutCourse(t *testing.T) {
	msg := MessageFor("Alex", nil, "hello", "topic-select")
	if msg.CourseID != "" || msg.ModuleID != "" {
		t.Errorf("courseless message should carry no course scope: %+v", msg)
	}
}
