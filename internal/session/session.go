// Package session persists the learner identity and the active course
// between runs. Two keys back the whole session: the learner name and
// the serialized course. Everything else is derived on load.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/store"
)

const (
	keyUsername = "username"
	keyCourse   = "current_course"
)

// Session is the restored client state. Course is nil when no course is
// in flight.
type Session struct {
	Learner string
	Course  *api.Course
}

// Active reports whether a learner is signed in.
func (s Session) Active() bool { return s.Learner != "" }

// Store reads and writes the session over a key-value repo.
type Store struct {
	repo store.SessionRepo
	log  *zap.SugaredLogger
}

func NewStore(repo store.SessionRepo, log *zap.SugaredLogger) *Store {
	return &Store{repo: repo, log: log}
}

// Load restores the session. A malformed or schema-invalid course value
// is treated as absent rather than fatal: the learner keeps their
// identity and re-enters topic selection. The bad value is removed so
// it cannot re-trip the next load.
func (s *Store) Load(ctx context.Context) (Session, error) {
	var sess Session

	name, ok, err := s.repo.Get(ctx, keyUsername)
	if err != nil {
		return Session{}, fmt.Errorf("load learner: %w", err)
	}
	if !ok {
		return Session{}, nil
	}
	sess.Learner = name

	raw, ok, err := s.repo.Get(ctx, keyCourse)
	if err != nil {
		return Session{}, fmt.Errorf("load course: %w", err)
	}
	if !ok {
		return sess, nil
	}

	course, err := decodeCourse([]byte(raw))
	if err != nil {
		s.log.Warnw("discarding unreadable stored course", "error", err)
		if derr := s.repo.Delete(ctx, keyCourse); derr != nil {
			s.log.Warnw("failed to clear unreadable course", "error", derr)
		}
		return sess, nil
	}
	sess.Course = course
	return sess, nil
}

// SetLearner records the learner name. The name is trimmed; a blank
// name is rejected.
func (s *Store) SetLearner(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &api.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return s.repo.Put(ctx, keyUsername, name)
}

// SetCourse writes the whole course. Callers mutate a copy and persist
// it here; partial updates are not supported.
func (s *Store) SetCourse(ctx context.Context, course *api.Course) error {
	if course == nil {
		return s.ClearCourse(ctx)
	}
	raw, err := json.Marshal(course)
	if err != nil {
		return fmt.Errorf("encode course: %w", err)
	}
	return s.repo.Put(ctx, keyCourse, string(raw))
}

// ClearCourse removes the active course but keeps the learner signed in.
func (s *Store) ClearCourse(ctx context.Context) error {
	return s.repo.Delete(ctx, keyCourse)
}

// Clear removes the whole session.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, keyCourse); err != nil {
		return err
	}
	return s.repo.Delete(ctx, keyUsername)
}

// courseSchema guards the stored course shape so a stale or truncated
// value from an older build cannot surface as a half-built course.
const courseSchema = `{
  "type": "object",
  "required": ["id", "topic", "modules", "current_module_index"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "topic": {"type": "string", "minLength": 1},
    "modules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"}
        }
      }
    },
    "current_module_index": {"type": "integer", "minimum": 0},
    "completed": {"type": "boolean"}
  }
}`

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

func compiledCourseSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(courseSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse course schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://course.json", doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile("schema://course.json")
	})
	return compiled, compileErr
}

func decodeCourse(raw []byte) (*api.Course, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledCourseSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var course api.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		return nil, err
	}
	return &course, nil
}
