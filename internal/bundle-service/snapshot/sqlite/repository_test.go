package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/bundle-builder/internal/bundle-service/app"
	"github.com/jcmexdev/bundle-builder/internal/bundle-service/catalog"
	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
	"github.com/jcmexdev/bundle-builder/internal/bundle-service/snapshot"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestLatestWithoutRows(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.Latest(context.Background(), snapshot.DefaultKey)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestSaveAndLatestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	store := app.NewStore(catalog.DefaultState())
	b, _ := store.Bundle("1")
	store.AddToCart(b, 2)
	created := store.CreateBundle(domain.NewBundle{
		Name:          "Desk Setup",
		Products:      catalog.Products()[3:5],
		DiscountType:  domain.DiscountFixed,
		DiscountValue: b.DiscountValue,
		Status:        domain.StatusActive,
	})

	require.NoError(t, repo.Save(ctx, snapshot.New(ctx, snapshot.DefaultKey, store.State())))

	got, err := repo.Latest(ctx, snapshot.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, snapshot.DefaultKey, got.Key)
	assert.Empty(t, got.TraceID)
	assert.WithinDuration(t, time.Now(), got.SavedAt, time.Minute)

	restored := app.NewStore(got.State)
	require.Len(t, restored.Bundles(), 4)
	assert.Equal(t, created.ID, restored.Bundles()[0].ID)
	assert.True(t, created.CreatedAt.Equal(restored.Bundles()[0].CreatedAt))
	assert.Equal(t, store.Metrics().ActiveBundles, restored.Metrics().ActiveBundles)
	assert.True(t, store.Metrics().TotalRevenue.Equal(restored.Metrics().TotalRevenue))

	cart := restored.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.True(t, domain.CartTotal(store.Cart()).Equal(domain.CartTotal(cart)))
}

func TestLatestReturnsNewestPerKey(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	first := domain.State{Metrics: domain.DashboardMetrics{ActiveBundles: 1}}
	second := domain.State{Metrics: domain.DashboardMetrics{ActiveBundles: 2}}
	other := domain.State{Metrics: domain.DashboardMetrics{ActiveBundles: 9}}

	require.NoError(t, repo.Save(ctx, snapshot.New(ctx, "a", first)))
	require.NoError(t, repo.Save(ctx, snapshot.New(ctx, "a", second)))
	require.NoError(t, repo.Save(ctx, snapshot.New(ctx, "b", other)))

	got, err := repo.Latest(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.State.Metrics.ActiveBundles)

	n, err := repo.Prune(ctx, "a", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err = repo.Latest(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 9, got.State.Metrics.ActiveBundles)
}

func TestSaverAndRestore(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	store := app.NewStore(catalog.DefaultState())

	_, ok, err := snapshot.Restore(ctx, repo, "")
	require.NoError(t, err)
	assert.False(t, ok)

	store.DeleteBundle("3")
	require.NoError(t, snapshot.NewSaver(repo, store, "").Save(ctx))

	state, ok, err := snapshot.Restore(ctx, repo, snapshot.DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, state.Bundles, 2)
}
