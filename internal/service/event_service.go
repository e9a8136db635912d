package service

import (
	"context"
	"fmt"
	"time"

	"go-gin-event-program/internal/lockstate"
	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/repository"
	"go-gin-event-program/internal/slug"
	apperrors "go-gin-event-program/pkg/app_errors"
)

// Clock returns the current server time. Tests inject a fixed clock.
type Clock func() time.Time

type EventService interface {
	// Now is the server clock used for lock evaluation.
	Now() time.Time
	List(ctx context.Context) ([]*model.Event, error)
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	// GetPublic returns the teaser view together with the lock state.
	GetPublic(ctx context.Context, slug string) (*model.PublicEvent, error)
	// GetFull returns apperrors.ErrEventLocked while the event is locked.
	GetFull(ctx context.Context, slug string) (*model.EventDetail, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, slug string, params model.UpdateEventParams) (*model.Event, error)
	SetPublished(ctx context.Context, slug string, published bool) error
	Delete(ctx context.Context, slug string) error
}

type EventServiceImpl struct {
	repo  repository.EventRepository
	clock Clock
}

func NewEventService(repo repository.EventRepository, clock Clock) EventService {
	if clock == nil {
		clock = time.Now
	}
	return &EventServiceImpl{repo: repo, clock: clock}
}

func (s *EventServiceImpl) Now() time.Time {
	return s.clock().UTC()
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *EventServiceImpl) GetPublic(ctx context.Context, slug string) (*model.PublicEvent, error) {
	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	state := lockstate.ForEvent(now, event)
	return model.NewPublicEvent(event, state.IsLocked(), now), nil
}

func (s *EventServiceImpl) GetFull(ctx context.Context, slug string) (*model.EventDetail, error) {
	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if lockstate.ForEvent(s.Now(), event).IsLocked() {
		return nil, apperrors.ErrEventLocked
	}
	return model.NewEventDetail(event), nil
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	v := &apperrors.ValidationError{}
	if event.Name == "" {
		v.Add("name", "name is required")
	}
	switch {
	case event.Slug == "":
		v.Add("slug", "slug is required")
	case !slug.Valid(event.Slug):
		v.Add("slug", "slug must contain only lowercase letters, digits and single hyphens")
	}
	if event.StartAt.IsZero() {
		v.Add("startAt", "startAt is required")
	}
	validateSchedule(v, event.StartAt, event.EndAt)
	validateMedia(v, event.Media)
	validateProgram(v, event.Program)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	// new events always start with an untouched program
	for i := range event.Program {
		step := &event.Program[i]
		if step.Order == 0 {
			step.Order = i + 1
		}
		step.Completed = false
		step.CompletedAt = nil
	}
	defaultMediaTypes(event.Media)

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, eventSlug string, params model.UpdateEventParams) (*model.Event, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}

	existing, err := s.repo.FindBySlug(ctx, eventSlug)
	if err != nil {
		return nil, err
	}

	v := &apperrors.ValidationError{}
	if params.Name != nil && *params.Name == "" {
		v.Add("name", "name must not be empty")
	}
	if params.Slug != nil && !slug.Valid(*params.Slug) {
		v.Add("slug", "slug must contain only lowercase letters, digits and single hyphens")
	}
	if params.StartAt != nil && params.StartAt.IsZero() {
		v.Add("startAt", "startAt must not be empty")
	}
	startAt := existing.StartAt
	if params.StartAt != nil {
		startAt = *params.StartAt
	}
	endAt := existing.EndAt
	if params.EndAt != nil {
		endAt = params.EndAt
	}
	validateSchedule(v, startAt, endAt)
	if params.Media != nil {
		validateMedia(v, *params.Media)
	}
	if params.Program != nil {
		validateProgram(v, *params.Program)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	now := s.Now()
	if params.Name != nil && *params.Name != existing.Name {
		derived, err := s.deriveSlug(ctx, *params.Name, existing.Slug, now)
		if err != nil {
			return nil, err
		}
		if derived != "" {
			params.Slug = &derived
		}
	}
	if params.Slug != nil && *params.Slug == existing.Slug {
		params.Slug = nil
	}

	if params.Program != nil {
		for i := range *params.Program {
			step := &(*params.Program)[i]
			if step.Order == 0 {
				step.Order = i + 1
			}
			step.Normalize(now)
		}
	}
	if params.Media != nil {
		defaultMediaTypes(*params.Media)
	}

	return s.repo.Update(ctx, eventSlug, params)
}

// deriveSlug re-derives the slug from a new name. A derived slug owned by
// another event gets a timestamp suffix instead of failing the update.
func (s *EventServiceImpl) deriveSlug(ctx context.Context, name, current string, now time.Time) (string, error) {
	derived := slug.Make(name)
	if derived == "" || derived == current {
		return derived, nil
	}
	taken, err := s.repo.ExistsBySlug(ctx, derived)
	if err != nil {
		return "", fmt.Errorf("check slug availability: %w", err)
	}
	if taken {
		derived = slug.WithSuffix(derived, now)
	}
	return derived, nil
}

func (s *EventServiceImpl) SetPublished(ctx context.Context, slug string, published bool) error {
	return s.repo.SetPublished(ctx, slug, published)
}

func (s *EventServiceImpl) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}

func validateSchedule(v *apperrors.ValidationError, startAt time.Time, endAt *time.Time) {
	if endAt != nil && !startAt.IsZero() && endAt.Before(startAt) {
		v.Add("endAt", "endAt must not be before startAt")
	}
}

func validateMedia(v *apperrors.ValidationError, media []model.MediaItem) {
	for i, m := range media {
		if m.URL == "" {
			v.Add(fmt.Sprintf("media[%d].url", i), "url is required")
		}
		if m.Type != "" && !m.Type.IsValid() {
			v.Add(fmt.Sprintf("media[%d].type", i), "type must be image or video")
		}
	}
}

func validateProgram(v *apperrors.ValidationError, program []model.ProgramStep) {
	for i, step := range program {
		if step.Title == "" {
			v.Add(fmt.Sprintf("program[%d].title", i), "title is required")
		}
	}
}

func defaultMediaTypes(media []model.MediaItem) {
	for i := range media {
		if media[i].Type == "" {
			media[i].Type = model.MediaTypeImage
		}
	}
}
