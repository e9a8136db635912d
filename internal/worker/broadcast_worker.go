package worker

import (
	"context"
	"fmt"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/queue"
	"go-gin-event-program/pkg/logger"

	"go.uber.org/zap"
)

// Broadcaster delivers a step update to the live viewers of its event and
// returns how many viewers accepted it.
type Broadcaster interface {
	BroadcastStepUpdate(update *model.StepUpdate) int
}

type BroadcastWorker interface {
	// Start subscribes to the queue and fans updates out until ctx is done.
	Start(ctx context.Context) error
	// Done is closed once the subscription has drained.
	Done() <-chan struct{}
}

type BroadcastWorkerImpl struct {
	queue       queue.StepUpdateQueue
	broadcaster Broadcaster
	done        chan struct{}
}

func NewBroadcastWorker(queue queue.StepUpdateQueue, broadcaster Broadcaster) BroadcastWorker {
	return &BroadcastWorkerImpl{
		queue:       queue,
		broadcaster: broadcaster,
		done:        make(chan struct{}),
	}
}

func (w *BroadcastWorkerImpl) Start(ctx context.Context) error {
	updates, err := w.queue.SubscribeUpdates(ctx)
	if err != nil {
		return fmt.Errorf("subscribe step updates: %w", err)
	}

	log := logger.WithComponent("worker")
	go func() {
		defer close(w.done)
		// a single loop keeps the per-event delta order intact
		for update := range updates {
			delivered := w.broadcaster.BroadcastStepUpdate(update)
			log.Debug("step update broadcast",
				zap.String("slug", update.EventSlug),
				zap.Int("step_index", update.Delta.StepIndex),
				zap.Int("viewers", delivered),
			)
		}
	}()
	return nil
}

func (w *BroadcastWorkerImpl) Done() <-chan struct{} {
	return w.done
}
