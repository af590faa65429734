package snapshot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
)

// StateSource is anything that can hand out a copy of the full state.
type StateSource interface {
	State() domain.State
}

// Saver writes the current state of a source to a repository. A nil
// repository turns Save into a no-op, which is how the in-memory mode runs.
type Saver struct {
	repo   Repository
	source StateSource
	key    string
}

func NewSaver(repo Repository, source StateSource, key string) *Saver {
	if key == "" {
		key = DefaultKey
	}
	return &Saver{repo: repo, source: source, key: key}
}

// Save persists the current state. Failures are logged and returned, but
// callers are free to ignore them.
func (s *Saver) Save(ctx context.Context) error {
	if s == nil || s.repo == nil {
		return nil
	}
	snap := New(ctx, s.key, s.source.State())
	if err := s.repo.Save(ctx, snap); err != nil {
		slog.ErrorContext(ctx, "snapshot save failed", "key", s.key, "error", err)
		return err
	}
	slog.DebugContext(ctx, "snapshot saved", "key", s.key)
	return nil
}

// Restore loads the latest state saved under key. ok is false when nothing
// was saved yet; err reports backend failures.
func Restore(ctx context.Context, repo Repository, key string) (state domain.State, ok bool, err error) {
	if repo == nil {
		return domain.State{}, false, nil
	}
	if key == "" {
		key = DefaultKey
	}
	snap, err := repo.Latest(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.State{}, false, nil
		}
		return domain.State{}, false, err
	}
	return snap.State, true, nil
}
