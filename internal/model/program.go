package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ProgramStep is one item of the event agenda. CompletedAt is set if and only
// if Completed is true; use SetCompleted to keep the pair consistent.
type ProgramStep struct {
	ID          uuid.UUID  `json:"id" db:"step_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Order       int        `json:"order" db:"sort_order"`
	DurationMin *int       `json:"durationMin,omitempty" db:"duration_min"`
	Completed   bool       `json:"completed" db:"completed"`
	CompletedAt *time.Time `json:"completedAt" db:"completed_at"`
}

func (s *ProgramStep) SetCompleted(completed bool, now time.Time) {
	s.Completed = completed
	if completed {
		at := now.UTC()
		s.CompletedAt = &at
		return
	}
	s.CompletedAt = nil
}

// Normalize restores the completed/completedAt pairing on steps that come from
// client input: a completed step without a timestamp is stamped with now, an
// incomplete step loses its timestamp.
func (s *ProgramStep) Normalize(now time.Time) {
	if s.Completed && s.CompletedAt == nil {
		s.SetCompleted(true, now)
	}
	if !s.Completed {
		s.CompletedAt = nil
	}
}

type Progress struct {
	TotalSteps     int `json:"totalSteps"`
	CompletedSteps int `json:"completedSteps"`
	CompletionRate int `json:"completionRate"`
}

// NewProgress computes the completion rate as round(100*completed/total),
// clamped to [0,100]. An empty program has a rate of 0.
func NewProgress(total, completed int) Progress {
	rate := 0
	if total > 0 {
		rate = int(math.Round(100 * float64(completed) / float64(total)))
	}
	rate = min(max(rate, 0), 100)
	return Progress{
		TotalSteps:     total,
		CompletedSteps: completed,
		CompletionRate: rate,
	}
}

func ProgressOf(steps []ProgramStep) Progress {
	completed := 0
	for _, s := range steps {
		if s.Completed {
			completed++
		}
	}
	return NewProgress(len(steps), completed)
}

// StepDelta is the payload pushed to viewers after a completion toggle.
type StepDelta struct {
	StepIndex int         `json:"stepIndex"`
	Step      ProgramStep `json:"step"`
	Progress
}

// StepUpdate routes a StepDelta to the broadcast group of one event.
type StepUpdate struct {
	EventSlug string    `json:"eventSlug"`
	Delta     StepDelta `json:"delta"`
}
