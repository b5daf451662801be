package quiz

import "github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"

// quizReadyMsg is sent when quiz generation settles.
type quizReadyMsg struct {
	Token string
	Quiz  *api.Quiz
	Err   error
}

// gradedMsg is sent when the submission settles.
type gradedMsg struct {
	Token  string
	Result *api.QuizResult
	Err    error
}
