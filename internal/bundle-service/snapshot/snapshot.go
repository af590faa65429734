// Package snapshot defines how the full store state is saved and restored.
//
// A snapshot is written after mutating requests complete. Writing one is best
// effort: the in-memory store stays authoritative and never waits on it.
package snapshot

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
)

// DefaultKey is the storage key used when none is configured.
const DefaultKey = "bundle-store"

// ErrNotFound is returned by Latest when nothing was saved under the key.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one saved copy of the store state.
type Snapshot struct {
	// Key names the state being saved, so several stores can share a backend.
	Key string

	State domain.State

	// TraceID and SpanID point at the request that produced this state.
	// Both are empty when no span was active.
	TraceID string
	SpanID  string

	SavedAt time.Time
}

// Repository is the port for snapshot storage.
type Repository interface {
	Save(ctx context.Context, s *Snapshot) error
	// Latest returns the most recent snapshot for key, or ErrNotFound.
	Latest(ctx context.Context, key string) (*Snapshot, error)
}

// New builds a snapshot of state stamped with the trace info found in ctx.
func New(ctx context.Context, key string, state domain.State) *Snapshot {
	ti := ExtractTraceInfo(ctx)
	return &Snapshot{
		Key:     key,
		State:   state,
		TraceID: ti.TraceID,
		SpanID:  ti.SpanID,
		SavedAt: time.Now().UTC(),
	}
}

// TraceInfo holds the OTel identifiers extracted from a context.
type TraceInfo struct {
	TraceID string
	SpanID  string
}

// ExtractTraceInfo reads the active span from ctx. Both fields are empty if
// the context carries no valid span, as in unit tests.
func ExtractTraceInfo(ctx context.Context) TraceInfo {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return TraceInfo{}
	}
	return TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}
}
