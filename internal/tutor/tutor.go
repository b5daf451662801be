// Package tutor manages the AI tutor conversation shown in the overlay.
// The conversation is plain state; the UI layer performs the network
// call and reports the outcome back with the token Begin handed out, so
// replies that arrive after a reset or a newer question are dropped.
package tutor

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
)

// Role marks who spoke a turn.
type Role int

const (
	RoleTutor Role = iota
	RoleLearner
)

// Turn is one utterance in the conversation.
type Turn struct {
	Role Role
	Text string
}

// fallbackReply is shown when the tutor service cannot be reached. The
// question stays in the transcript so the learner can re-ask it.
const fallbackReply = "I'm having trouble reaching your tutor right now. Give it a moment and ask again!"

// Conversation is the overlay transcript plus the in-flight request
// bookkeeping.
type Conversation struct {
	turns   []Turn
	pending bool
	token   string
}

// New seeds a conversation with the tutor's welcome for the given
// module context.
func New(moduleTitle string) *Conversation {
	welcome := "Hi! I'm your tutor. Ask me anything about what you're learning."
	if moduleTitle != "" {
		welcome = "Hi! I'm your tutor. Ask me anything about \"" + moduleTitle + "\"."
	}
	return &Conversation{turns: []Turn{{Role: RoleTutor, Text: welcome}}}
}

// Turns returns the transcript in order. The slice is shared; callers
// must not modify it.
func (c *Conversation) Turns() []Turn { return c.turns }

// Pending reports whether a question is awaiting its answer.
func (c *Conversation) Pending() bool { return c.pending }

// Begin appends the learner's question and returns the token the
// eventual Resolve call must present. A blank question or an already
// pending conversation yields no token.
func (c *Conversation) Begin(question string) (string, bool) {
	question = strings.TrimSpace(question)
	if question == "" || c.pending {
		return "", false
	}
	c.turns = append(c.turns, Turn{Role: RoleLearner, Text: question})
	c.pending = true
	c.token = uuid.NewString()
	return c.token, true
}

// Resolve applies the outcome of the request identified by token.
// Stale tokens are ignored. A failed request appends exactly one
// fallback turn.
func (c *Conversation) Resolve(token string, reply *api.TutorReply, err error) {
	if !c.pending || token != c.token {
		return
	}
	c.pending = false
	c.token = ""

	if err != nil || reply == nil {
		c.turns = append(c.turns, Turn{Role: RoleTutor, Text: fallbackReply})
		return
	}

	text := strings.TrimSpace(reply.Response)
	if enc := strings.TrimSpace(reply.Encouragement); enc != "" {
		if text == "" {
			text = enc
		} else {
			text += "\n\n" + enc
		}
	}
	if text == "" {
		text = fallbackReply
	}
	c.turns = append(c.turns, Turn{Role: RoleTutor, Text: text})
}

// Reset clears the transcript for a new module context. Any in-flight
// reply is orphaned: its token no longer matches.
func (c *Conversation) Reset(moduleTitle string) {
	fresh := New(moduleTitle)
	c.turns = fresh.turns
	c.pending = false
	c.token = ""
}

// MessageFor builds the gateway request for a question in the current
// course position. Context names the screen the learner asked from.
func MessageFor(learner string, course *api.Course, question, context string) api.TutorMessage {
	msg := api.TutorMessage{
		Username: learner,
		Message:  question,
		Context:  context,
	}
	if course == nil {
		return msg
	}
	msg.CourseID = course.ID
	if m, ok := course.CurrentModule(); ok {
		msg.ModuleID = m.ID
	} else if len(course.Modules) > 0 {
		msg.ModuleID = course.Modules[0].ID
	}
	return msg
}
