package syncclient

import (
	"slices"

	"go-gin-event-program/internal/model"
)

// Merge applies a completion delta to a copy of local. Only completed and
// completedAt of the addressed step change; an index outside local leaves the
// copy as is.
func Merge(local []model.ProgramStep, delta model.StepDelta) []model.ProgramStep {
	merged := slices.Clone(local)
	if delta.StepIndex < 0 || delta.StepIndex >= len(merged) {
		return merged
	}

	step := &merged[delta.StepIndex]
	step.Completed = delta.Step.Completed
	step.CompletedAt = nil
	if delta.Step.CompletedAt != nil {
		at := *delta.Step.CompletedAt
		step.CompletedAt = &at
	}
	return merged
}
