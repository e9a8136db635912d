package queue_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/queue"
	"go-gin-event-program/internal/testutil"

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

func TestRedisPubSubStepUpdateQueue_FansOutToEverySubscriber(t *testing.T) {
	rdb := setupRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// two instances sharing one Redis: an update published by either reaches both
	first := queue.NewRedisPubSubStepUpdateQueue(rdb, 8, nil)
	defer first.Close()
	second := queue.NewRedisPubSubStepUpdateQueue(rdb, 8, &queue.RedisPubSubQueueConfig{MaxTries: 1})
	defer second.Close()

	firstUpdates, err := first.SubscribeUpdates(ctx)
	require.NoError(t, err)
	secondUpdates, err := second.SubscribeUpdates(ctx)
	require.NoError(t, err)

	require.NoError(t, first.PublishUpdate(ctx, newUpdate("gala", 0)))
	require.NoError(t, first.PublishUpdate(ctx, newUpdate("gala", 1)))

	for _, ch := range []<-chan *model.StepUpdate{firstUpdates, secondUpdates} {
		u0 := receive(t, ch)
		u1 := receive(t, ch)
		assert.Equal(t, "gala", u0.EventSlug)
		assert.Equal(t, 0, u0.Delta.StepIndex)
		assert.Equal(t, 1, u1.Delta.StepIndex)
		assert.Equal(t, 25, u1.Delta.CompletionRate)
	}
}

func TestRedisPubSubStepUpdateQueue_SubscriptionEndsWithContext(t *testing.T) {
	rdb := setupRedis(t)
	ctx, cancel := context.WithCancel(context.Background())

	q := queue.NewRedisPubSubStepUpdateQueue(rdb, 8, nil)
	defer q.Close()

	updates, err := q.SubscribeUpdates(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not closed")
	}
}
