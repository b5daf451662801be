package teaching

import "github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"

// feedbackMsg is sent when the teaching submission settles.
type feedbackMsg struct {
	Token    string
	Feedback *api.TeachingFeedback
	Err      error
}

// advancedMsg is sent when the module advance or course completion
// settles. Err is only informational: the flow moves on regardless.
type advancedMsg struct {
	Token    string
	Complete bool
	Next     int
	Err      error
}
