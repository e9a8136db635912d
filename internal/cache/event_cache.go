package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-gin-event-program/internal/model"
	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

const KeyPrefix = "event-program:event:"

// generation keys outlive any cached document
const generationTTL = 24 * time.Hour

// EventCache keeps whole event documents for the read path. Lock state is
// never cached: it is derived from the document on every request.
type EventCache interface {
	// Get returns apperrors.ErrCacheMiss when the slug is not cached.
	Get(ctx context.Context, slug string) (*model.Event, error)
	// Generation is read before loading from the database and handed back to
	// Set, so that a load racing an invalidation is never stored.
	Generation(ctx context.Context, slug string) (int64, error)
	// Set stores the event if the slug generation still equals gen.
	Set(ctx context.Context, event *model.Event, gen int64) (bool, error)
	// Invalidate drops the documents and bumps the generations.
	Invalidate(ctx context.Context, slugs ...string) error
}

type RedisEventCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEventCache(client *redis.Client, ttl time.Duration) EventCache {
	return &RedisEventCacheImpl{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisEventCacheImpl) docKey(slug string) string {
	return KeyPrefix + slug + ":doc"
}

func (c *RedisEventCacheImpl) genKey(slug string) string {
	return KeyPrefix + slug + ":gen"
}

// cachedEvent keeps the storage id, which model.Event does not serialise.
type cachedEvent struct {
	InternalID int `json:"internalId"`
	*model.Event
}

func (c *RedisEventCacheImpl) Get(ctx context.Context, slug string) (*model.Event, error) {
	raw, err := c.client.Get(ctx, c.docKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	doc := cachedEvent{Event: &model.Event{}}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode cached event %s: %w", slug, err)
	}
	doc.Event.ID = doc.InternalID
	return doc.Event, nil
}

func (c *RedisEventCacheImpl) Generation(ctx context.Context, slug string) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey(slug)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// compare-and-set on the generation key
var setIfGeneration = redis.NewScript(`
	local gen = redis.call('GET', KEYS[2]) or '0'
	if gen ~= ARGV[1] then
		return 0
	end
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
	return 1
`)

func (c *RedisEventCacheImpl) Set(ctx context.Context, event *model.Event, gen int64) (bool, error) {
	raw, err := json.Marshal(cachedEvent{InternalID: event.ID, Event: event})
	if err != nil {
		return false, err
	}

	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{c.docKey(event.Slug), c.genKey(event.Slug)},
		gen, raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

var invalidate = redis.NewScript(`
	redis.call('DEL', KEYS[1])
	redis.call('INCR', KEYS[2])
	redis.call('PEXPIRE', KEYS[2], ARGV[1])
	return 1
`)

func (c *RedisEventCacheImpl) Invalidate(ctx context.Context, slugs ...string) error {
	var errs []error
	for _, slug := range slugs {
		if slug == "" {
			continue
		}
		err := invalidate.Run(ctx, c.client,
			[]string{c.docKey(slug), c.genKey(slug)},
			generationTTL.Milliseconds(),
		).Err()
		if err != nil {
			errs = append(errs, fmt.Errorf("invalidate %s: %w", slug, err))
		}
	}
	return errors.Join(errs...)
}
