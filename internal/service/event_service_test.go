package service_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-program/internal/model"
	repoMocks "go-gin-event-program/internal/repository/mocks"
	"go-gin-event-program/internal/service"
	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var startAt = time.Date(2025, 6, 21, 19, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) service.Clock {
	return func() time.Time { return t }
}

func publishedEvent() *model.Event {
	return &model.Event{
		ID:          1,
		EventID:     uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"),
		Slug:        "gala",
		Name:        "Gala",
		StartAt:     startAt,
		IsPublished: true,
		Program: []model.ProgramStep{
			{Title: "Apéritif", Order: 1},
			{Title: "Dîner", Order: 2},
		},
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - program defaults", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(startAt))

		completedAt := startAt
		event := &model.Event{
			Name:    "Gala",
			Slug:    "gala",
			StartAt: startAt,
			Program: []model.ProgramStep{
				{Title: "A"},
				{Title: "B", Order: 7, Completed: true, CompletedAt: &completedAt},
			},
			Media: []model.MediaItem{{URL: "/uploads/a.jpg"}},
		}

		repo.EXPECT().Create(ctx, mock.AnythingOfType("*model.Event")).
			RunAndReturn(func(_ context.Context, e *model.Event) (*model.Event, error) {
				e.ID = 1
				return e, nil
			}).Once()

		created, err := svc.Create(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, 1, created.Program[0].Order)
		assert.Equal(t, 7, created.Program[1].Order)
		assert.False(t, created.Program[1].Completed)
		assert.Nil(t, created.Program[1].CompletedAt)
		assert.Equal(t, model.MediaTypeImage, created.Media[0].Type)
	})

	t.Run("Failed - missing required fields", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(startAt))

		_, err := svc.Create(ctx, &model.Event{})

		require.ErrorIs(t, err, apperrors.ErrValidation)
		var v *apperrors.ValidationError
		require.ErrorAs(t, err, &v)
		fields := []string{}
		for _, f := range v.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"name", "slug", "startAt"}, fields)
	})

	t.Run("Failed - invalid slug and schedule", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(startAt))

		endAt := startAt.Add(-time.Hour)
		_, err := svc.Create(ctx, &model.Event{
			Name:    "Gala",
			Slug:    "Not A Slug",
			StartAt: startAt,
			EndAt:   &endAt,
			Media:   []model.MediaItem{{URL: "x", Type: "audio"}},
			Program: []model.ProgramStep{{Title: ""}},
		})

		var v *apperrors.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Len(t, v.Fields, 4)
	})

	t.Run("Failed - duplicate slug", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(startAt))

		repo.EXPECT().Create(ctx, mock.Anything).Return(nil, apperrors.ErrSlugConflict).Once()

		_, err := svc.Create(ctx, &model.Event{Name: "Gala", Slug: "gala", StartAt: startAt})

		assert.ErrorIs(t, err, apperrors.ErrSlugConflict)
	})
}

func TestEventService_GetPublic(t *testing.T) {
	ctx := context.Background()

	t.Run("Locked before start, unlocked from start on", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		now := startAt.Add(-time.Minute)
		svc := service.NewEventService(repo, func() time.Time { return now })

		repo.EXPECT().FindBySlug(ctx, "gala").Return(publishedEvent(), nil).Times(3)

		view, err := svc.GetPublic(ctx, "gala")
		require.NoError(t, err)
		assert.True(t, view.Locked)
		assert.Equal(t, "2025-06-21T18:59:00.000Z", view.Now)

		now = startAt
		view, err = svc.GetPublic(ctx, "gala")
		require.NoError(t, err)
		assert.False(t, view.Locked)

		now = startAt.Add(time.Second)
		view, err = svc.GetPublic(ctx, "gala")
		require.NoError(t, err)
		assert.False(t, view.Locked)
		assert.Equal(t, "gala", view.Slug)
	})

	t.Run("Unpublished stays locked", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(startAt.Add(24*time.Hour)))

		event := publishedEvent()
		event.IsPublished = false
		repo.EXPECT().FindBySlug(ctx, "gala").Return(event, nil).Once()

		view, err := svc.GetPublic(ctx, "gala")
		require.NoError(t, err)
		assert.True(t, view.Locked)
		assert.False(t, view.IsPublished)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(startAt))

		repo.EXPECT().FindBySlug(ctx, "missing").Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.GetPublic(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventService_GetFull(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - locked", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(startAt.Add(-time.Second)))

		repo.EXPECT().FindBySlug(ctx, "gala").Return(publishedEvent(), nil).Once()

		detail, err := svc.GetFull(ctx, "gala")
		assert.Nil(t, detail)
		assert.ErrorIs(t, err, apperrors.ErrEventLocked)
	})

	t.Run("Success - unlocked", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(startAt))

		repo.EXPECT().FindBySlug(ctx, "gala").Return(publishedEvent(), nil).Once()

		detail, err := svc.GetFull(ctx, "gala")
		require.NoError(t, err)
		assert.Len(t, detail.Program, 2)
		assert.Equal(t, "Gala", detail.Name)
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success - name change re-derives slug", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(now))

		name := "Soirée d'Été"
		repo.EXPECT().FindBySlug(ctx, "gala").Return(publishedEvent(), nil).Once()
		repo.EXPECT().ExistsBySlug(ctx, "soiree-dete").Return(false, nil).Once()
		repo.EXPECT().Update(ctx, "gala", mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.Slug != nil && *p.Slug == "soiree-dete" && *p.Name == name
		})).Return(&model.Event{Slug: "soiree-dete", Name: name}, nil).Once()

		updated, err := svc.Update(ctx, "gala", model.UpdateEventParams{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "soiree-dete", updated.Slug)
	})

	t.Run("Success - derived slug taken gets a timestamp suffix", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(now))

		name := "Fête"
		want := "fete-1748779200000"
		repo.EXPECT().FindBySlug(ctx, "gala").Return(publishedEvent(), nil).Once()
		repo.EXPECT().ExistsBySlug(ctx, "fete").Return(true, nil).Once()
		repo.EXPECT().Update(ctx, "gala", mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.Slug != nil && *p.Slug == want
		})).Return(&model.Event{Slug: want}, nil).Once()

		updated, err := svc.Update(ctx, "gala", model.UpdateEventParams{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, want, updated.Slug)
	})

	t.Run("Success - unchanged name keeps slug", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(now))

		name := "Gala"
		repo.EXPECT().FindBySlug(ctx, "gala").Return(publishedEvent(), nil).Once()
		repo.EXPECT().Update(ctx, "gala", mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.Slug == nil
		})).Return(publishedEvent(), nil).Once()

		_, err := svc.Update(ctx, "gala", model.UpdateEventParams{Name: &name})
		require.NoError(t, err)
	})

	t.Run("Success - program steps are normalised", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(now))

		stale := now.Add(-time.Hour)
		program := []model.ProgramStep{
			{Title: "A", Completed: true},
			{Title: "B", Completed: false, CompletedAt: &stale},
		}
		repo.EXPECT().FindBySlug(ctx, "gala").Return(publishedEvent(), nil).Once()
		repo.EXPECT().Update(ctx, "gala", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, p model.UpdateEventParams) (*model.Event, error) {
				steps := *p.Program
				require.NotNil(t, steps[0].CompletedAt)
				assert.True(t, now.Equal(*steps[0].CompletedAt))
				assert.Nil(t, steps[1].CompletedAt)
				assert.Equal(t, 2, steps[1].Order)
				return &model.Event{Slug: "gala", Program: steps}, nil
			}).Once()

		_, err := svc.Update(ctx, "gala", model.UpdateEventParams{Program: &program})
		require.NoError(t, err)
	})

	t.Run("Failed - endAt before existing startAt", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(now))

		endAt := startAt.Add(-time.Hour)
		repo.EXPECT().FindBySlug(ctx, "gala").Return(publishedEvent(), nil).Once()

		_, err := svc.Update(ctx, "gala", model.UpdateEventParams{EndAt: &endAt})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Failed - empty patch", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(now))

		_, err := svc.Update(ctx, "gala", model.UpdateEventParams{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		svc := service.NewEventService(repo, fixedClock(now))

		name := "x"
		repo.EXPECT().FindBySlug(ctx, "missing").Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.Update(ctx, "missing", model.UpdateEventParams{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventService_SetPublishedAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := repoMocks.NewMockEventRepository(t)
	svc := service.NewEventService(repo, nil)

	repo.EXPECT().SetPublished(ctx, "gala", true).Return(nil).Once()
	repo.EXPECT().Delete(ctx, "missing").Return(apperrors.ErrEventNotFound).Once()

	assert.NoError(t, svc.SetPublished(ctx, "gala", true))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), apperrors.ErrEventNotFound)
}
