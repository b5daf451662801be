package learning

import "github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"

// simplifiedMsg is sent when the simplify call settles.
type simplifiedMsg struct {
	Token  string
	Module *api.Module
	Err    error
}
