package topic

import "github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"

// courseReadyMsg is sent when course generation settles.
type courseReadyMsg struct {
	Token  string
	Course *api.Course
	Err    error
}
