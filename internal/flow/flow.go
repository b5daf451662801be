// Package flow is the session state machine. It is pure: no I/O, no UI
// imports. Screens emit events, the app reduces them here and routes to
// whatever screen the resulting state names.
package flow

import "github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"

// Screen identifies a station in the learning loop.
type Screen int

const (
	ScreenAnonymous Screen = iota
	ScreenTopicSelect
	ScreenLearning
	ScreenQuiz
	ScreenTeaching
	ScreenCompleted
	ScreenProgress
)

func (s Screen) String() string {
	switch s {
	case ScreenAnonymous:
		return "anonymous"
	case ScreenTopicSelect:
		return "topic-select"
	case ScreenLearning:
		return "learning"
	case ScreenQuiz:
		return "quiz"
	case ScreenTeaching:
		return "teaching"
	case ScreenCompleted:
		return "completed"
	case ScreenProgress:
		return "progress"
	default:
		return "unknown"
	}
}

// State is the full machine state.
type State struct {
	Screen  Screen
	Learner string
	Course  *api.Course
}

// Event is a state transition trigger. Implementations are value types;
// Reduce never mutates them.
type Event interface{ flowEvent() }

type (
	// LearnerRegistered fires after a name is accepted and persisted.
	LearnerRegistered struct{ Name string }

	// CourseCreated fires when the service returns a new course.
	CourseCreated struct{ Course *api.Course }

	// QuizRequested fires when the learner finishes reading a module.
	QuizRequested struct{}

	// QuizGraded carries the service's verdict on a submission.
	QuizGraded struct{ Result api.QuizResult }

	// QuizRetried fires when a failed quiz is retried.
	QuizRetried struct{}

	// ModuleAdvanced fires after the service acknowledged moving to the
	// next module.
	ModuleAdvanced struct{ NextIndex int }

	// CourseCompleted fires after teaching the final module.
	CourseCompleted struct{}

	// ProgressOpened and ProgressClosed bracket the progress view.
	ProgressOpened struct{}
	ProgressClosed struct{}

	// NewCourseStarted drops the finished course and returns to topic
	// selection.
	NewCourseStarted struct{}

	// LoggedOut drops the whole session.
	LoggedOut struct{}
)

func (LearnerRegistered) flowEvent() {}
func (CourseCreated) flowEvent()     {}
func (QuizRequested) flowEvent()     {}
func (QuizGraded) flowEvent()        {}
func (QuizRetried) flowEvent()       {}
func (ModuleAdvanced) flowEvent()    {}
func (CourseCompleted) flowEvent()   {}
func (ProgressOpened) flowEvent()    {}
func (ProgressClosed) flowEvent()    {}
func (NewCourseStarted) flowEvent()  {}
func (LoggedOut) flowEvent()         {}

// Reduce applies one event. Events that make no sense in the current
// screen are ignored, the state comes back unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case LearnerRegistered:
		if s.Screen != ScreenAnonymous {
			return s
		}
		s.Learner = e.Name
		s.Screen = ScreenTopicSelect
		return s

	case CourseCreated:
		if s.Screen != ScreenTopicSelect || e.Course == nil {
			return s
		}
		s.Course = e.Course
		s.Screen = ScreenLearning
		return s

	case QuizRequested:
		if s.Screen != ScreenLearning {
			return s
		}
		s.Screen = ScreenQuiz
		return s

	case QuizGraded:
		if s.Screen != ScreenQuiz {
			return s
		}
		if e.Result.Passed {
			s.Screen = ScreenTeaching
		} else {
			// A failed quiz sends the learner back to the lesson. The
			// module index is untouched; retrying is a quiz-screen
			// affair that never reaches the reducer as a grade.
			s.Screen = ScreenLearning
		}
		return s

	case QuizRetried:
		return s

	case ModuleAdvanced:
		if s.Screen != ScreenTeaching || s.Course == nil {
			return s
		}
		course := *s.Course
		course.CurrentModuleIndex = e.NextIndex
		s.Course = &course
		s.Screen = ScreenLearning
		return s

	case CourseCompleted:
		if s.Screen != ScreenTeaching || s.Course == nil {
			return s
		}
		course := *s.Course
		course.Completed = true
		s.Course = &course
		s.Screen = ScreenCompleted
		return s

	case ProgressOpened:
		s.Screen = ScreenProgress
		return s

	case ProgressClosed:
		if s.Screen != ScreenProgress {
			return s
		}
		// The dashboard's only way back is to course selection.
		s.Screen = ScreenTopicSelect
		return s

	case NewCourseStarted:
		if s.Screen != ScreenCompleted {
			return s
		}
		s.Course = nil
		s.Screen = ScreenTopicSelect
		return s

	case LoggedOut:
		return State{Screen: ScreenAnonymous}
	}
	return s
}

// Guard repairs a state that its own data cannot support, such as a
// restored session pointing past the end of its course. It is applied
// on every entry before a screen is shown.
func Guard(s State) State {
	if s.Learner == "" {
		return State{Screen: ScreenAnonymous}
	}
	if s.Screen == ScreenProgress {
		return s
	}
	if s.Screen == ScreenAnonymous {
		s.Screen = ScreenTopicSelect
	}
	if s.Screen == ScreenTopicSelect {
		return s
	}
	if s.Course == nil {
		s.Screen = ScreenTopicSelect
		return s
	}
	if s.Screen == ScreenCompleted {
		return s
	}
	if len(s.Course.Modules) == 0 ||
		s.Course.CurrentModuleIndex < 0 ||
		s.Course.CurrentModuleIndex >= len(s.Course.Modules) ||
		s.Course.Completed {
		s.Screen = ScreenCompleted
		return s
	}
	return s
}

// TeachingAction is what happens after teaching feedback is accepted.
type TeachingAction int

const (
	// ActionAdvance moves to the next module.
	ActionAdvance TeachingAction = iota
	// ActionComplete finishes the course.
	ActionComplete
)

// NextTeachingAction decides whether finishing the current module's
// teaching step advances or completes the course.
func NextTeachingAction(course *api.Course) (TeachingAction, int) {
	if course == nil {
		return ActionComplete, 0
	}
	next := course.CurrentModuleIndex + 1
	if next >= len(course.Modules) {
		return ActionComplete, next
	}
	return ActionAdvance, next
}
