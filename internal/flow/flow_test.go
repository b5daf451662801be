package flow

import (
	"math/rand"
	"testing"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
)

func threeModuleCourse() *api.Course {
	return &api.Course{
		ID:    "c1",
		Topic: "Negotiation",
		Modules: []api.Module{
			{ID: "m1", Title: "Basics"},
			{ID: "m2", Title: "Tactics"},
			{ID: "m3", Title: "Practice"},
		},
	}
}

func TestFullCourseScenario(t *testing.T) {
	s := State{Screen: ScreenAnonymous}

	s = Reduce(s, LearnerRegistered{Name: "Alex"})
	if s.Screen != ScreenTopicSelect {
		t.Fatalf("after registration: %v", s.Screen)
	}

	s = Reduce(s, CourseCreated{Course: threeModuleCourse()})
	if s.Screen != ScreenLearning || s.Course == nil {
		t.Fatalf("after course creation: %v", s.Screen)
	}

	for module := 0; module < 3; module++ {
		if s.Course.CurrentModuleIndex != module {
			t.Fatalf("module %d: index = %d", module, s.Course.CurrentModuleIndex)
		}

		s = Reduce(s, QuizRequested{})
		if s.Screen != ScreenQuiz {
			t.Fatalf("module %d: expected quiz, got %v", module, s.Screen)
		}

		s = Reduce(s, QuizGraded{Result: api.QuizResult{Passed: true}})
		if s.Screen != ScreenTeaching {
			t.Fatalf("module %d: expected teaching, got %v", module, s.Screen)
		}

		action, next := NextTeachingAction(s.Course)
		if module < 2 {
			if action != ActionAdvance {
				t.Fatalf("module %d: expected advance", module)
			}
			s = Reduce(s, ModuleAdvanced{NextIndex: next})
			if s.Screen != ScreenLearning {
				t.Fatalf("module %d: expected learning, got %v", module, s.Screen)
			}
		} else {
			if action != ActionComplete {
				t.Fatal("last module should complete the course")
			}
			s = Reduce(s, CourseCompleted{})
		}
	}

	if s.Screen != ScreenCompleted {
		t.Fatalf("final screen = %v, want completed", s.Screen)
	}
	if !s.Course.Completed {
		t.Error("course should be marked completed")
	}

	s = Reduce(s, NewCourseStarted{})
	if s.Screen != ScreenTopicSelect || s.Course != nil {
		t.Error("starting a new course should drop the old one")
	}
	if s.Learner != "Alex" {
		t.Error("learner should survive a new course")
	}
}

func TestFailedQuizReturnsToLesson(t *testing.T) {
	s := State{Screen: ScreenQuiz, Learner: "Alex", Course: threeModuleCourse()}
	s = Reduce(s, QuizGraded{Result: api.QuizResult{Passed: false, Score: 2, Total: 5}})
	if s.Screen != ScreenLearning {
		t.Errorf("failed quiz should send the learner back to the lesson, got %v", s.Screen)
	}
	if s.Course.CurrentModuleIndex != 0 {
		t.Errorf("failed quiz must not move the module index, got %d", s.Course.CurrentModuleIndex)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	course := threeModuleCourse()
	s := State{Screen: ScreenTeaching, Learner: "Alex", Course: course}
	_ = Reduce(s, ModuleAdvanced{NextIndex: 1})
	if course.CurrentModuleIndex != 0 {
		t.Error("Reduce must not mutate the caller's course")
	}
}

func TestProgressClosesToTopicSelect(t *testing.T) {
	for _, from := range []Screen{ScreenTopicSelect, ScreenLearning, ScreenCompleted} {
		s := State{Screen: from, Learner: "Alex", Course: threeModuleCourse()}
		s = Reduce(s, ProgressOpened{})
		if s.Screen != ScreenProgress {
			t.Fatalf("from %v: expected progress", from)
		}
		s = Reduce(s, ProgressClosed{})
		if s.Screen != ScreenTopicSelect {
			t.Errorf("closing progress opened from %v should land on topic select, got %v", from, s.Screen)
		}
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	s := State{Screen: ScreenLearning, Learner: "Alex", Course: threeModuleCourse()}
	s = Reduce(s, LoggedOut{})
	if s.Screen != ScreenAnonymous || s.Learner != "" || s.Course != nil {
		t.Errorf("logout should reset the machine, got %+v", s)
	}
}

func TestGuardRepairsBrokenStates(t *testing.T) {
	completed := threeModuleCourse()
	completed.Completed = true

	outOfRange := threeModuleCourse()
	outOfRange.CurrentModuleIndex = 7

	empty := &api.Course{ID: "c2", Topic: "Go", Modules: nil}

	cases := []struct {
		name string
		in   State
		want Screen
	}{
		{"no learner", State{Screen: ScreenLearning, Course: threeModuleCourse()}, ScreenAnonymous},
		{"no course past topic select", State{Screen: ScreenQuiz, Learner: "Alex"}, ScreenTopicSelect},
		{"anonymous with learner", State{Screen: ScreenAnonymous, Learner: "Alex"}, ScreenTopicSelect},
		{"out-of-range module index", State{Screen: ScreenLearning, Learner: "Alex", Course: outOfRange}, ScreenCompleted},
		{"empty module list", State{Screen: ScreenLearning, Learner: "Alex", Course: empty}, ScreenCompleted},
		{"completed course mid-flow", State{Screen: ScreenQuiz, Learner: "Alex", Course: completed}, ScreenCompleted},
		{"healthy learning state", State{Screen: ScreenLearning, Learner: "Alex", Course: threeModuleCourse()}, ScreenLearning},
		{"completed screen stays", State{Screen: ScreenCompleted, Learner: "Alex", Course: completed}, ScreenCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Guard(tc.in)
			if got.Screen != tc.want {
				t.Errorf("Guard(%v) = %v, want %v", tc.in.Screen, got.Screen, tc.want)
			}
		})
	}
}

func TestGuardKeepsProgressForSignedInLearner(t *testing.T) {
	got := Guard(State{Screen: ScreenProgress, Learner: "Alex"})
	if got.Screen != ScreenProgress {
		t.Fatalf("progress view should survive without a course, got %v", got.Screen)
	}
	got = Guard(State{Screen: ScreenProgress})
	if got.Screen != ScreenAnonymous {
		t.Errorf("progress without a learner should fall back to sign-in, got %v", got.Screen)
	}
}

// TestGuardedReduceNeverProducesBrokenState feeds random events through
// Reduce+Guard and checks the invariants hold at every step.
func TestGuardedReduceNeverProducesBrokenState(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	events := []func() Event{
		func() Event { return LearnerRegistered{Name: "Alex"} },
		func() Event { return CourseCreated{Course: threeModuleCourse()} },
		func() Event { return QuizRequested{} },
		func() Event { return QuizGraded{Result: api.QuizResult{Passed: rng.Intn(2) == 0}} },
		func() Event { return QuizRetried{} },
		func() Event { return ModuleAdvanced{NextIndex: rng.Intn(5)} },
		func() Event { return CourseCompleted{} },
		func() Event { return ProgressOpened{} },
		func() Event { return ProgressClosed{} },
		func() Event { return NewCourseStarted{} },
		func() Event { return LoggedOut{} },
	}

	s := Guard(State{Screen: ScreenAnonymous})
	for i := 0; i < 5000; i++ {
		s = Guard(Reduce(s, events[rng.Intn(len(events))]()))

		if s.Learner == "" && s.Screen != ScreenAnonymous {
			t.Fatalf("step %d: screen %v without a learner", i, s.Screen)
		}
		switch s.Screen {
		case ScreenLearning, ScreenQuiz, ScreenTeaching:
			if s.Course == nil {
				t.Fatalf("step %d: %v without a course", i, s.Screen)
			}
			if s.Course.CurrentModuleIndex < 0 ||
				s.Course.CurrentModuleIndex >= len(s.Course.Modules) {
				t.Fatalf("step %d: module index %d out of range on %v",
					i, s.Course.CurrentModuleIndex, s.Screen)
			}
		}
	}
}
