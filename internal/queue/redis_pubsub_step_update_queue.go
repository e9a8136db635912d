package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-gin-event-program/internal/model"
	apperrors "go-gin-event-program/pkg/app_errors"
	"go-gin-event-program/pkg/logger"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ChannelPrefix is followed by the event slug; one channel per event.
const ChannelPrefix = "event-program:steps:"

// RedisPubSubQueueConfig holds the publish timeouts; zero values fall back to
// the defaults.
type RedisPubSubQueueConfig struct {
	PublishTimeout time.Duration
	MaxTries       uint
}

func defaultRedisPubSubConfig() RedisPubSubQueueConfig {
	return RedisPubSubQueueConfig{
		PublishTimeout: 2 * time.Second,
		MaxTries:       3,
	}
}

// RedisPubSubStepUpdateQueueImpl shares step updates between server instances.
// Publishes go through a bounded outbox drained by a single goroutine, so the
// request path never waits on Redis and updates keep their order.
type RedisPubSubStepUpdateQueueImpl struct {
	client    *redis.Client
	cfg       RedisPubSubQueueConfig
	outbox    chan *model.StepUpdate
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewRedisPubSubStepUpdateQueue(client *redis.Client, bufferSize int, config *RedisPubSubQueueConfig) StepUpdateQueue {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	cfg := defaultRedisPubSubConfig()
	if config != nil {
		if config.PublishTimeout > 0 {
			cfg.PublishTimeout = config.PublishTimeout
		}
		if config.MaxTries > 0 {
			cfg.MaxTries = config.MaxTries
		}
	}
	q := &RedisPubSubStepUpdateQueueImpl{
		client: client,
		cfg:    cfg,
		outbox: make(chan *model.StepUpdate, bufferSize),
		done:   make(chan struct{}),
	}
	q.wg.Add(1)
	go q.runPublisher()
	return q
}

func channelFor(slug string) string {
	return ChannelPrefix + slug
}

func (q *RedisPubSubStepUpdateQueueImpl) PublishUpdate(ctx context.Context, update *model.StepUpdate) error {
	select {
	case <-q.done:
		return apperrors.ErrQueueClosed
	default:
	}

	select {
	case q.outbox <- update:
		return nil
	default:
		return apperrors.ErrQueueFull
	}
}

func (q *RedisPubSubStepUpdateQueueImpl) runPublisher() {
	defer q.wg.Done()
	log := logger.WithComponent("queue")

	for {
		select {
		case <-q.done:
			return
		case update := <-q.outbox:
			if err := q.publish(update); err != nil {
				log.Error("publish step update failed",
					zap.String("slug", update.EventSlug),
					zap.Int("step_index", update.Delta.StepIndex),
					zap.Error(err),
				)
			}
		}
	}
}

func (q *RedisPubSubStepUpdateQueueImpl) publish(update *model.StepUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("marshal step update: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), q.cfg.PublishTimeout)
	defer cancel()

	_, err = backoff.Retry(ctx, func() (int64, error) {
		return q.client.Publish(ctx, channelFor(update.EventSlug), payload).Result()
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(q.cfg.MaxTries),
	)
	return err
}

func (q *RedisPubSubStepUpdateQueueImpl) SubscribeUpdates(ctx context.Context) (<-chan *model.StepUpdate, error) {
	pubsub := q.client.PSubscribe(ctx, ChannelPrefix+"*")
	// wait for the subscription confirmation so no publish is missed after return
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("psubscribe: %w", err)
	}

	out := make(chan *model.StepUpdate)
	go func() {
		defer close(out)
		defer pubsub.Close()
		log := logger.WithComponent("queue")
		messages := pubsub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case <-q.done:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var update model.StepUpdate
				if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
					log.Warn("invalid step update payload", zap.String("channel", msg.Channel), zap.Error(err))
					continue
				}
				if update.EventSlug == "" {
					update.EventSlug = strings.TrimPrefix(msg.Channel, ChannelPrefix)
				}
				select {
				case out <- &update:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *RedisPubSubStepUpdateQueueImpl) Close() error {
	q.closeOnce.Do(func() { close(q.done) })
	q.wg.Wait()
	return nil
}
