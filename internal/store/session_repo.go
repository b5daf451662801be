package store

import (
	"context"
	"fmt"

	"github.com/ajith2003madhuvana/learneye-ed-platform/ent"
	"github.com/ajith2003madhuvana/learneye-ed-platform/ent/sessionentry"
)

// SessionRepo is the durable key-value substrate behind the session.
// Writes are synchronous: when Put returns, the value is on disk.
type SessionRepo interface {
	// Get returns the value for key, reporting whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores value under key, overwriting any prior value.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Get(ctx context.Context, key string) (string, bool, error) {
	e, err := r.client.SessionEntry.Query().
		Where(sessionentry.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query session key %q: %w", key, err)
	}
	return e.Value, true, nil
}

func (r *sessionRepo) Put(ctx context.Context, key, value string) error {
	existing, err := r.client.SessionEntry.Query().
		Where(sessionentry.KeyEQ(key)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetValue(value).Save(ctx)
		if err != nil {
			return fmt.Errorf("update session key %q: %w", key, err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.SessionEntry.Create().
			SetKey(key).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session key %q: %w", key, err)
		}
		return nil
	default:
		return fmt.Errorf("query session key %q: %w", key, err)
	}
}

func (r *sessionRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.SessionEntry.Delete().
		Where(sessionentry.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session key %q: %w", key, err)
	}
	return nil
}
