package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/clients"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunRepo(t *testing.T) (*RunRepo, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := &clients.RedisClient{Client: r.NewClient(&r.Options{Addr: srv.Addr()})}
	t.Cleanup(func() { _ = client.Client.Close() })

	return NewRunRepo(client, logger.NewDiscardLogger()), srv
}

func TestRunRepo_AcquireRelease(t *testing.T) {
	repo, srv := newTestRunRepo(t)
	ctx := context.Background()

	token, err := repo.Acquire(ctx, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = repo.Acquire(ctx, time.Minute)
	require.ErrorIs(t, err, e.ErrImportInProgress)

	require.NoError(t, repo.Release(ctx, token))
	assert.False(t, srv.Exists(lockKey))

	_, err = repo.Acquire(ctx, time.Minute)
	assert.NoError(t, err)
}

func TestRunRepo_ReleaseForeignToken(t *testing.T) {
	repo, srv := newTestRunRepo(t)
	ctx := context.Background()

	token, err := repo.Acquire(ctx, time.Minute)
	require.NoError(t, err)

	require.NoError(t, repo.Release(ctx, "someone-else"))
	got, err := srv.Get(lockKey)
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestRunRepo_LockExpires(t *testing.T) {
	repo, srv := newTestRunRepo(t)
	ctx := context.Background()

	_, err := repo.Acquire(ctx, time.Minute)
	require.NoError(t, err)

	srv.FastForward(2 * time.Minute)

	_, err = repo.Acquire(ctx, time.Minute)
	assert.NoError(t, err)
}

func TestRunRepo_LastResult(t *testing.T) {
	repo, _ := newTestRunRepo(t)
	ctx := context.Background()

	_, err := repo.LastResult(ctx)
	require.ErrorIs(t, err, e.ErrNoImportRuns)

	started := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	res := &usecase.ImportCatalogRes{
		SiteURL:    "http://shop.test/",
		Products:   18,
		Variations: 12,
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
	}
	require.NoError(t, repo.SaveResult(ctx, res))

	got, err := repo.LastResult(ctx)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}
