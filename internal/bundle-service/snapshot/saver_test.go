package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
)

type memRepo struct {
	saved   map[string]*Snapshot
	saveErr error
	readErr error
}

func newMemRepo() *memRepo {
	return &memRepo{saved: map[string]*Snapshot{}}
}

func (m *memRepo) Save(_ context.Context, s *Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[s.Key] = s
	return nil
}

func (m *memRepo) Latest(_ context.Context, key string) (*Snapshot, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	s, ok := m.saved[key]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

type fixedSource domain.State

func (f fixedSource) State() domain.State { return domain.State(f) }

func sampleState() domain.State {
	return domain.State{
		Bundles: []domain.Bundle{{ID: "7", Name: "Sample", Revenue: decimal.NewFromInt(10)}},
		Metrics: domain.DashboardMetrics{ActiveBundles: 1},
	}
}

func TestSaverRoundTrip(t *testing.T) {
	repo := newMemRepo()
	saver := NewSaver(repo, fixedSource(sampleState()), "")

	require.NoError(t, saver.Save(context.Background()))

	state, ok, err := Restore(context.Background(), repo, DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, state.Bundles, 1)
	assert.Equal(t, "Sample", state.Bundles[0].Name)
	assert.Empty(t, repo.saved[DefaultKey].TraceID)
}

func TestSaverReturnsBackendError(t *testing.T) {
	repo := newMemRepo()
	repo.saveErr = errors.New("boom")

	err := NewSaver(repo, fixedSource(sampleState()), "k").Save(context.Background())

	assert.ErrorIs(t, err, repo.saveErr)
}

func TestSaverWithoutRepositoryIsNoop(t *testing.T) {
	assert.NoError(t, NewSaver(nil, fixedSource(sampleState()), "k").Save(context.Background()))

	var nilSaver *Saver
	assert.NoError(t, nilSaver.Save(context.Background()))
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	_, ok, err := Restore(ctx, nil, "k")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = Restore(ctx, newMemRepo(), "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	broken := newMemRepo()
	broken.readErr = errors.New("corrupt")
	_, ok, err = Restore(ctx, broken, "k")
	assert.ErrorIs(t, err, broken.readErr)
	assert.False(t, ok)
}

func TestNewStampsTraceInfo(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02},
		SpanID:     trace.SpanID{0x03},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	snap := New(ctx, "k", sampleState())

	assert.Equal(t, sc.TraceID().String(), snap.TraceID)
	assert.Equal(t, sc.SpanID().String(), snap.SpanID)
	assert.False(t, snap.SavedAt.IsZero())
}
