package queue_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/queue"
	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpdate(slug string, index int) *model.StepUpdate {
	return &model.StepUpdate{
		EventSlug: slug,
		Delta: model.StepDelta{
			StepIndex: index,
			Step:      model.ProgramStep{Title: "step", Completed: true},
			Progress:  model.NewProgress(4, 1),
		},
	}
}

func receive(t *testing.T, ch <-chan *model.StepUpdate) *model.StepUpdate {
	t.Helper()
	select {
	case update, ok := <-ch:
		require.True(t, ok, "channel closed")
		return update
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for step update")
		return nil
	}
}

func TestStepUpdateQueue_DeliversInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewStepUpdateQueue(10)
	defer q.Close()

	updates, err := q.SubscribeUpdates(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, q.PublishUpdate(ctx, newUpdate("gala", i)))
	}

	for i := 0; i < 5; i++ {
		update := receive(t, updates)
		assert.Equal(t, "gala", update.EventSlug)
		assert.Equal(t, i, update.Delta.StepIndex)
	}
}

func TestStepUpdateQueue_FullBufferDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	q := queue.NewStepUpdateQueue(2)
	defer q.Close()

	require.NoError(t, q.PublishUpdate(ctx, newUpdate("gala", 0)))
	require.NoError(t, q.PublishUpdate(ctx, newUpdate("gala", 1)))

	done := make(chan error, 1)
	go func() { done <- q.PublishUpdate(ctx, newUpdate("gala", 2)) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, apperrors.ErrQueueFull)
	case <-time.After(time.Second):
		t.Fatal("PublishUpdate blocked on a full buffer")
	}
}

func TestStepUpdateQueue_Close(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewStepUpdateQueue(2)
	updates, err := q.SubscribeUpdates(ctx)
	require.NoError(t, err)

	require.NoError(t, q.Close())
	require.NoError(t, q.Close())

	assert.ErrorIs(t, q.PublishUpdate(ctx, newUpdate("gala", 0)), apperrors.ErrQueueClosed)

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed")
	}
}
