package service

import (
	"context"
	"time"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/queue"
	"go-gin-event-program/internal/repository"
	apperrors "go-gin-event-program/pkg/app_errors"
	"go-gin-event-program/pkg/logger"

	"go.uber.org/zap"
)

type ProgramService interface {
	// SetStepCompletion marks the step at stepIndex completed or not and hands
	// the resulting delta to the broadcast queue. Broadcast failures are
	// logged and never fail the call.
	SetStepCompletion(ctx context.Context, slug string, stepIndex int, completed bool) (*model.ProgramStep, error)
	Progress(ctx context.Context, slug string) (model.Progress, error)
}

type ProgramServiceImpl struct {
	repo  repository.EventRepository
	queue queue.StepUpdateQueue
	clock Clock
}

func NewProgramService(repo repository.EventRepository, queue queue.StepUpdateQueue, clock Clock) ProgramService {
	if clock == nil {
		clock = time.Now
	}
	return &ProgramServiceImpl{repo: repo, queue: queue, clock: clock}
}

func (s *ProgramServiceImpl) SetStepCompletion(ctx context.Context, slug string, stepIndex int, completed bool) (*model.ProgramStep, error) {
	if stepIndex < 0 {
		return nil, apperrors.ErrInvalidStepIndex
	}

	var completedAt *time.Time
	if completed {
		now := s.clock().UTC()
		completedAt = &now
	}

	step, progress, err := s.repo.SetStepCompletion(ctx, slug, stepIndex, completed, completedAt)
	if err != nil {
		return nil, err
	}

	update := &model.StepUpdate{
		EventSlug: slug,
		Delta: model.StepDelta{
			StepIndex: stepIndex,
			Step:      *step,
			Progress:  progress,
		},
	}
	if err := s.queue.PublishUpdate(ctx, update); err != nil {
		logger.WithComponent("service").Warn("step update not broadcast",
			zap.String("slug", slug),
			zap.Int("step_index", stepIndex),
			zap.Error(err),
		)
	}

	return step, nil
}

func (s *ProgramServiceImpl) Progress(ctx context.Context, slug string) (model.Progress, error) {
	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return model.Progress{}, err
	}
	return event.Progress(), nil
}
