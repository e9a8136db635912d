package cache_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-program/internal/cache"
	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/testutil"
	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		t.Skipf("test redis is not available: %v", err)
	}
	t.Cleanup(cleanup)
	return rdb
}

func cachedTestEvent(slug string) *model.Event {
	at := time.Date(2025, 6, 21, 19, 10, 0, 0, time.UTC)
	return &model.Event{
		ID:          42,
		EventID:     uuid.New(),
		Slug:        slug,
		Name:        "Gala",
		StartAt:     time.Date(2025, 6, 21, 19, 0, 0, 0, time.UTC),
		IsPublished: true,
		Program: []model.ProgramStep{
			{ID: uuid.New(), Title: "Apéritif", Order: 1, Completed: true, CompletedAt: &at},
		},
		Menus: []model.MenuItem{{Name: "Tarte", Tags: []string{"dessert"}}},
		Infos: []model.InfoBlock{},
		Media: []model.MediaItem{},
	}
}

func TestRedisEventCache_RoundTrip(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	c := cache.NewRedisEventCache(rdb, time.Minute)
	slug := "gala-" + uuid.NewString()[:8]

	_, err := c.Get(ctx, slug)
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)

	gen, err := c.Generation(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	event := cachedTestEvent(slug)
	stored, err := c.Set(ctx, event, gen)
	require.NoError(t, err)
	assert.True(t, stored)

	got, err := c.Get(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, 42, got.ID)
	assert.Equal(t, event.EventID, got.EventID)
	require.Len(t, got.Program, 1)
	assert.True(t, got.Program[0].Completed)
	assert.True(t, event.Program[0].CompletedAt.Equal(*got.Program[0].CompletedAt))

	ttl, err := rdb.PTTL(ctx, cache.KeyPrefix+slug+":doc").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestRedisEventCache_StaleFillIsRejected(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	c := cache.NewRedisEventCache(rdb, time.Minute)
	slug := "gala-" + uuid.NewString()[:8]

	// a reader loads from the database, then a write invalidates before the fill
	gen, err := c.Generation(ctx, slug)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, slug))

	stored, err := c.Set(ctx, cachedTestEvent(slug), gen)
	require.NoError(t, err)
	assert.False(t, stored)
	_, err = c.Get(ctx, slug)
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)

	gen, err = c.Generation(ctx, slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
	stored, err = c.Set(ctx, cachedTestEvent(slug), gen)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestRedisEventCache_Invalidate(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	c := cache.NewRedisEventCache(rdb, time.Minute)
	a := "gala-" + uuid.NewString()[:8]
	b := "fete-" + uuid.NewString()[:8]

	for _, slug := range []string{a, b} {
		_, err := c.Set(ctx, cachedTestEvent(slug), 0)
		require.NoError(t, err)
	}

	require.NoError(t, c.Invalidate(ctx, a, "", b))

	for _, slug := range []string{a, b} {
		_, err := c.Get(ctx, slug)
		assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
	}
}
