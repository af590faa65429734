package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/catalog"
	"github.com/jcmexdev/bundle-builder/internal/bundle-service/snapshot"
)

// memCache is an in-process stand-in for the Redis-backed cache.Cache.
type memCache struct {
	data map[string]string
	err  error
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.data[key], nil
}

func (m *memCache) GenerateKey(operation, key string) string {
	return "test:" + operation + ":" + key
}

func TestSaveAndLatest(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	repo := NewRepository(c)

	state := catalog.DefaultState()
	require.NoError(t, repo.Save(ctx, snapshot.New(ctx, "k", state)))
	assert.Contains(t, c.data, "test:snapshot:k")

	got, err := repo.Latest(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "k", got.Key)
	require.Len(t, got.State.Bundles, 3)
	assert.Equal(t, "Summer Skincare Bundle", got.State.Bundles[0].Name)
	assert.True(t, state.Metrics.TotalRevenue.Equal(got.State.Metrics.TotalRevenue))
}

func TestLatestMissing(t *testing.T) {
	_, err := NewRepository(newMemCache()).Latest(context.Background(), "nope")
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestBackendErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	c := newMemCache()
	c.err = boom
	repo := NewRepository(c)

	err := repo.Save(ctx, snapshot.New(ctx, "k", catalog.DefaultState()))
	assert.ErrorIs(t, err, boom)

	_, err = repo.Latest(ctx, "k")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, snapshot.ErrNotFound)
}
