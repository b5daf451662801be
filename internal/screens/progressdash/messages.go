package progressdash

import "github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"

// reportMsg is sent when the progress fetch settles.
type reportMsg struct {
	Token  string
	Report *api.ProgressReport
	Err    error
}
