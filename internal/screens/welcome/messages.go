package welcome

import "github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"

// registeredMsg is sent when the register call settles.
type registeredMsg struct {
	Token string
	Name  string
	Stats *api.UserStats
	Err   error
}
