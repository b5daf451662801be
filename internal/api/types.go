package api

import "time"

// Skill levels accepted by the course generator.
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
)

// Module is one unit of course content. Immutable once generated; the
// course references it by index.
type Module struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Examples  []string `json:"examples"`
	KeyPoints []string `json:"key_points"`
}

// Course is the remote source of truth for a learning session. The client
// holds a snapshot and mutates it only through module-advance and
// completion transitions.
type Course struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	Topic              string    `json:"topic"`
	SkillLevel         string    `json:"skill_level"`
	LearningGoal       string    `json:"learning_goal,omitempty"`
	Modules            []Module  `json:"modules"`
	CreatedAt          time.Time `json:"created_at"`
	CurrentModuleIndex int       `json:"current_module_index"`
	Completed          bool      `json:"completed"`
}

// CurrentModule returns the module addressed by CurrentModuleIndex,
// reporting false when the index is out of range or the course is empty.
func (c Course) CurrentModule() (Module, bool) {
	if c.CurrentModuleIndex < 0 || c.CurrentModuleIndex >= len(c.Modules) {
		return Module{}, false
	}
	return c.Modules[c.CurrentModuleIndex], true
}

// QuizQuestion is one multiple-choice question. The client never sees the
// correct answer; grading happens server-side.
type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Quiz is an ephemeral set of questions for one module. Regenerated on
// every quiz entry, never persisted.
type Quiz struct {
	ModuleID  string         `json:"module_id"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizResult is the server's grading of one submission.
type QuizResult struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Passed     bool    `json:"passed"`
	Feedback   string  `json:"feedback"`
}

// TeachingFeedback is the server's evaluation of a learner's explanation.
type TeachingFeedback struct {
	Feedback     string   `json:"feedback"`
	QualityScore int      `json:"quality_score"`
	Suggestions  []string `json:"suggestions"`
}

// TutorReply is one tutor answer.
type TutorReply struct {
	Response      string `json:"response"`
	Encouragement string `json:"encouragement"`
}

// UserStats is the learner profile with the gamification counters owned by
// the server.
type UserStats struct {
	ID                    string    `json:"id"`
	Username              string    `json:"username"`
	CreatedAt             time.Time `json:"created_at"`
	TotalModulesCompleted int       `json:"total_modules_completed"`
	CurrentStreak         int       `json:"current_streak"`
	TotalCourses          int       `json:"total_courses"`
	Level                 int       `json:"level"`
	Badges                []string  `json:"badges"`
}

// ProgressRecord is one quiz-attempt history entry.
type ProgressRecord struct {
	Username  string    `json:"username"`
	CourseID  string    `json:"course_id"`
	ModuleID  string    `json:"module_id"`
	QuizScore int       `json:"quiz_score"`
	QuizTotal int       `json:"quiz_total"`
	Attempts  int       `json:"attempts"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// ProgressReport is the aggregate payload behind the progress dashboard.
type ProgressReport struct {
	User     *UserStats       `json:"user"`
	Progress []ProgressRecord `json:"progress"`
	Courses  []Course         `json:"courses"`
}

// CourseRequest asks the service to generate a course.
type CourseRequest struct {
	Username     string `json:"username" validate:"required"`
	Topic        string `json:"topic" validate:"required"`
	SkillLevel   string `json:"skill_level" validate:"required,oneof=Beginner Intermediate"`
	LearningGoal string `json:"learning_goal,omitempty"`
}

// QuizSubmission carries one option index per question, in question order.
type QuizSubmission struct {
	Username string `json:"username" validate:"required"`
	CourseID string `json:"course_id" validate:"required"`
	ModuleID string `json:"module_id" validate:"required"`
	Answers  []int  `json:"answers" validate:"required,min=1"`
}

// TeachingSubmission carries the learner's own explanation of a module.
type TeachingSubmission struct {
	Username    string `json:"username" validate:"required"`
	CourseID    string `json:"course_id" validate:"required"`
	ModuleID    string `json:"module_id" validate:"required"`
	Explanation string `json:"explanation" validate:"required"`
}

// TutorMessage is one learner turn sent to the tutor, scoped to the
// current module.
type TutorMessage struct {
	Username string `json:"username" validate:"required"`
	CourseID string `json:"course_id" validate:"required"`
	ModuleID string `json:"module_id,omitempty"`
	Message  string `json:"message" validate:"required"`
	Context  string `json:"context,omitempty"`
}

// SimplifyRequest asks for a simpler rewrite of one module.
type SimplifyRequest struct {
	Username string `json:"username" validate:"required"`
	CourseID string `json:"course_id" validate:"required"`
	ModuleID string `json:"module_id" validate:"required"`
}

// CheckAnswers verifies a prospective answer set against a quiz before it
// is sent: one chosen option per question, every question answered. An
// unanswered question is represented as -1.
func CheckAnswers(quiz Quiz, answers []int) error {
	if len(answers) != len(quiz.Questions) {
		return &ValidationError{
			Field:  "answers",
			Reason: "answer count must match question count",
		}
	}
	for i, a := range answers {
		if a < 0 || a >= len(quiz.Questions[i].Options) {
			return &ValidationError{
				Field:  "answers",
				Reason: "every question must have a chosen option",
			}
		}
	}
	return nil
}
