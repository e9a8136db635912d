package repository

import (
	"context"
	"errors"
	"time"

	"go-gin-event-program/internal/cache"
	"go-gin-event-program/internal/model"
	apperrors "go-gin-event-program/pkg/app_errors"
	"go-gin-event-program/pkg/logger"

	"go.uber.org/zap"
)

// CachedEventRepository serves FindBySlug from an EventCache and invalidates
// the cached document after every successful write. Cache failures degrade
// to plain database reads.
type CachedEventRepository struct {
	EventRepository
	cache cache.EventCache
	log   *zap.Logger
}

func NewCachedEventRepository(repo EventRepository, cache cache.EventCache) EventRepository {
	return &CachedEventRepository{
		EventRepository: repo,
		cache:           cache,
		log:             logger.WithComponent("cache"),
	}
}

func (r *CachedEventRepository) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	event, err := r.cache.Get(ctx, slug)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, apperrors.ErrCacheMiss) {
		r.log.Warn("Cache read failed", zap.String("slug", slug), zap.Error(err))
		return r.EventRepository.FindBySlug(ctx, slug)
	}

	gen, genErr := r.cache.Generation(ctx, slug)
	event, err = r.EventRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		r.log.Warn("Cache generation read failed", zap.String("slug", slug), zap.Error(genErr))
		return event, nil
	}
	if _, err := r.cache.Set(ctx, event, gen); err != nil {
		r.log.Warn("Cache fill failed", zap.String("slug", slug), zap.Error(err))
	}
	return event, nil
}

func (r *CachedEventRepository) Update(ctx context.Context, slug string, params model.UpdateEventParams) (*model.Event, error) {
	event, err := r.EventRepository.Update(ctx, slug, params)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, slug, event.Slug)
	return event, nil
}

func (r *CachedEventRepository) SetPublished(ctx context.Context, slug string, published bool) error {
	if err := r.EventRepository.SetPublished(ctx, slug, published); err != nil {
		return err
	}
	r.invalidate(ctx, slug)
	return nil
}

func (r *CachedEventRepository) Delete(ctx context.Context, slug string) error {
	if err := r.EventRepository.Delete(ctx, slug); err != nil {
		return err
	}
	r.invalidate(ctx, slug)
	return nil
}

func (r *CachedEventRepository) SetStepCompletion(ctx context.Context, slug string, index int, completed bool, completedAt *time.Time) (*model.ProgramStep, model.Progress, error) {
	step, progress, err := r.EventRepository.SetStepCompletion(ctx, slug, index, completed, completedAt)
	if err != nil {
		return nil, model.Progress{}, err
	}
	r.invalidate(ctx, slug)
	return step, progress, nil
}

func (r *CachedEventRepository) invalidate(ctx context.Context, slugs ...string) {
	if err := r.cache.Invalidate(ctx, slugs...); err != nil {
		r.log.Error("Cache invalidation failed", zap.Strings("slugs", slugs), zap.Error(err))
	}
}
