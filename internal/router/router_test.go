package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screen"
)

type fakeScreen struct {
	name    string
	mounted bool
	updates int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.mounted = true
	return nil
}

func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestPushMountsAndActivates(t *testing.T) {
	r := New(&fakeScreen{name: "learning"})

	quiz := &fakeScreen{name: "quiz"}
	r.Push(quiz)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != quiz {
		t.Error("pushed screen should be active")
	}
	if !quiz.mounted {
		t.Error("pushed screen should be initialized")
	}
}

func TestPopRevealsPrevious(t *testing.T) {
	learning := &fakeScreen{name: "learning"}
	r := New(learning)
	r.Push(&fakeScreen{name: "quiz"})

	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active() != learning {
		t.Error("pop should reveal the screen below")
	}
}

func TestLastScreenCannotBePopped(t *testing.T) {
	r := New(&fakeScreen{name: "welcome"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d after popping the last screen, want 1", r.Depth())
	}
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r := New(&fakeScreen{name: "learning"})

	teaching := &fakeScreen{name: "teaching"}
	r.Replace(teaching)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d after replace, want 1", r.Depth())
	}
	if r.Active() != teaching || !teaching.mounted {
		t.Error("replaced screen should be active and initialized")
	}
}

func TestReplaceUnderAnOverlayKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "learning"})
	r.Push(&fakeScreen{name: "quiz"})

	next := &fakeScreen{name: "teaching"}
	r.Replace(next)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != next {
		t.Error("replace should swap only the top screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "welcome"})

	next := &fakeScreen{name: "topic"}
	r.Update(ReplaceScreenMsg{Screen: next})
	if r.Active() != next || !next.mounted {
		t.Error("ReplaceScreenMsg should mount the new screen")
	}

	overlay := &fakeScreen{name: "progress"}
	r.Update(PushScreenMsg{Screen: overlay})
	if r.Active() != overlay {
		t.Error("PushScreenMsg should activate the pushed screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != next {
		t.Error("PopScreenMsg should reveal the screen below")
	}
}

func TestOtherMessagesReachTheActiveScreen(t *testing.T) {
	below := &fakeScreen{name: "learning"}
	r := New(below)
	top := &fakeScreen{name: "quiz"}
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if top.updates != 1 {
		t.Errorf("active screen saw %d updates, want 1", top.updates)
	}
	if below.updates != 0 {
		t.Error("messages should not reach covered screens")
	}
}
