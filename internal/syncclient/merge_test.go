package syncclient_test

import (
	"testing"
	"time"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/syncclient"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localProgram() []model.ProgramStep {
	duration := 45
	return []model.ProgramStep{
		{ID: uuid.New(), Title: "Apéritif", Description: "Terrasse", Order: 1},
		{ID: uuid.New(), Title: "Dîner", Description: "Salle", Order: 2, DurationMin: &duration},
	}
}

func TestMerge(t *testing.T) {
	at := time.Date(2025, 6, 21, 19, 5, 0, 0, time.UTC)

	t.Run("only completion fields change", func(t *testing.T) {
		local := localProgram()
		// a delta carrying stale text must not overwrite local edits
		delta := model.StepDelta{
			StepIndex: 1,
			Step:      model.ProgramStep{Title: "Old title", Order: 9, Completed: true, CompletedAt: &at},
		}

		merged := syncclient.Merge(local, delta)

		require.Len(t, merged, 2)
		assert.Equal(t, "Dîner", merged[1].Title)
		assert.Equal(t, "Salle", merged[1].Description)
		assert.Equal(t, 2, merged[1].Order)
		assert.Equal(t, 45, *merged[1].DurationMin)
		assert.True(t, merged[1].Completed)
		assert.Equal(t, at, *merged[1].CompletedAt)
		assert.Equal(t, local[0], merged[0])
	})

	t.Run("local slice untouched", func(t *testing.T) {
		local := localProgram()
		_ = syncclient.Merge(local, model.StepDelta{StepIndex: 0, Step: model.ProgramStep{Completed: true, CompletedAt: &at}})

		assert.False(t, local[0].Completed)
		assert.Nil(t, local[0].CompletedAt)
	})

	t.Run("uncomplete clears timestamp", func(t *testing.T) {
		local := localProgram()
		local[0].SetCompleted(true, at)

		merged := syncclient.Merge(local, model.StepDelta{StepIndex: 0, Step: model.ProgramStep{Completed: false}})

		assert.False(t, merged[0].Completed)
		assert.Nil(t, merged[0].CompletedAt)
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		local := localProgram()
		for _, idx := range []int{-1, 2, 99} {
			merged := syncclient.Merge(local, model.StepDelta{StepIndex: idx, Step: model.ProgramStep{Completed: true}})
			assert.Equal(t, local, merged)
		}
		assert.Empty(t, syncclient.Merge(nil, model.StepDelta{StepIndex: 0}))
	})

	t.Run("deltas for different steps commute", func(t *testing.T) {
		a := model.StepDelta{StepIndex: 0, Step: model.ProgramStep{Completed: true, CompletedAt: &at}}
		b := model.StepDelta{StepIndex: 1, Step: model.ProgramStep{Completed: true, CompletedAt: &at}}
		local := localProgram()

		assert.Equal(t,
			syncclient.Merge(syncclient.Merge(local, a), b),
			syncclient.Merge(syncclient.Merge(local, b), a))
	})
}
