// Package redis stores the latest snapshot per key as a single JSON value.
// Unlike the SQLite adapter it keeps no history.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
	"github.com/jcmexdev/bundle-builder/internal/bundle-service/snapshot"
	"github.com/jcmexdev/bundle-builder/internal/pkg/cache"
)

const operation = "snapshot"

type record struct {
	Key     string       `json:"key"`
	State   domain.State `json:"state"`
	TraceID string       `json:"traceId,omitempty"`
	SpanID  string       `json:"spanId,omitempty"`
	SavedAt time.Time    `json:"savedAt"`
}

type Repository struct {
	cache cache.Cache
}

func NewRepository(c cache.Cache) *Repository {
	return &Repository{cache: c}
}

// Save overwrites the value stored for s.Key. Snapshots never expire.
func (r *Repository) Save(ctx context.Context, s *snapshot.Snapshot) error {
	b, err := json.Marshal(record{
		Key:     s.Key,
		State:   s.State,
		TraceID: s.TraceID,
		SpanID:  s.SpanID,
		SavedAt: s.SavedAt,
	})
	if err != nil {
		return fmt.Errorf("redis: encode snapshot %q: %w", s.Key, err)
	}
	if err := r.cache.Set(ctx, r.cache.GenerateKey(operation, s.Key), string(b), 0); err != nil {
		return fmt.Errorf("redis: save snapshot %q: %w", s.Key, err)
	}
	return nil
}

func (r *Repository) Latest(ctx context.Context, key string) (*snapshot.Snapshot, error) {
	raw, err := r.cache.Get(ctx, r.cache.GenerateKey(operation, key))
	if err != nil {
		return nil, fmt.Errorf("redis: latest %q: %w", key, err)
	}
	if raw == "" {
		return nil, fmt.Errorf("redis: latest %q: %w", key, snapshot.ErrNotFound)
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("redis: decode snapshot %q: %w", key, err)
	}
	return &snapshot.Snapshot{
		Key:     rec.Key,
		State:   rec.State,
		TraceID: rec.TraceID,
		SpanID:  rec.SpanID,
		SavedAt: rec.SavedAt,
	}, nil
}
