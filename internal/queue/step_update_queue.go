package queue

import (
	"context"
	"sync"

	"go-gin-event-program/internal/model"
	apperrors "go-gin-event-program/pkg/app_errors"
)

// StepUpdateQueue carries completion deltas from the write path to the
// broadcast worker. PublishUpdate never blocks: when the buffer is full the
// update is rejected with apperrors.ErrQueueFull. Updates are delivered at
// most once and in publish order.
type StepUpdateQueue interface {
	PublishUpdate(ctx context.Context, update *model.StepUpdate) error
	SubscribeUpdates(ctx context.Context) (<-chan *model.StepUpdate, error)
	Close() error
}

type StepUpdateQueueImpl struct {
	ch        chan *model.StepUpdate
	closeOnce sync.Once
	done      chan struct{}
}

func NewStepUpdateQueue(bufferSize int) StepUpdateQueue {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &StepUpdateQueueImpl{
		ch:   make(chan *model.StepUpdate, bufferSize),
		done: make(chan struct{}),
	}
}

func (q *StepUpdateQueueImpl) PublishUpdate(ctx context.Context, update *model.StepUpdate) error {
	select {
	case <-q.done:
		return apperrors.ErrQueueClosed
	default:
	}

	select {
	case q.ch <- update:
		return nil
	default:
		return apperrors.ErrQueueFull
	}
}

func (q *StepUpdateQueueImpl) SubscribeUpdates(ctx context.Context) (<-chan *model.StepUpdate, error) {
	out := make(chan *model.StepUpdate)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-q.done:
				return
			case update := <-q.ch:
				select {
				case out <- update:
				case <-ctx.Done():
					return
				case <-q.done:
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *StepUpdateQueueImpl) Close() error {
	q.closeOnce.Do(func() { close(q.done) })
	return nil
}
