package lockstate_test

import (
	"testing"
	"time"

	"go-gin-event-program/internal/lockstate"
	"go-gin-event-program/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	startAt := time.Date(2025, 6, 21, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		published bool
		want      lockstate.State
	}{
		{"before start published", startAt.Add(-5 * time.Minute), true, lockstate.Locked},
		{"before start unpublished", startAt.Add(-5 * time.Minute), false, lockstate.Locked},
		{"one nanosecond before start", startAt.Add(-time.Nanosecond), true, lockstate.Locked},
		{"exactly at start is unlocked", startAt, true, lockstate.Unlocked},
		{"after start published", startAt.Add(time.Hour), true, lockstate.Unlocked},
		{"after start unpublished stays locked", startAt.Add(time.Hour), false, lockstate.Locked},
		{"exactly at start unpublished", startAt, false, lockstate.Locked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lockstate.Evaluate(tt.now, startAt, tt.published)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == lockstate.Locked, got.IsLocked())
		})
	}
}

func TestEvaluate_Properties(t *testing.T) {
	startAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	offsets := []time.Duration{-72 * time.Hour, -time.Minute, -time.Millisecond, 0, time.Millisecond, time.Minute, 72 * time.Hour}

	for _, offset := range offsets {
		now := startAt.Add(offset)
		for _, published := range []bool{true, false} {
			got := lockstate.Evaluate(now, startAt, published)

			if now.Before(startAt) {
				assert.True(t, got.IsLocked(), "before start must be locked (offset %s, published %v)", offset, published)
			}
			if !published {
				assert.True(t, got.IsLocked(), "unpublished must be locked (offset %s)", offset)
			}
			if published && !now.Before(startAt) {
				assert.False(t, got.IsLocked(), "published and started must be unlocked (offset %s)", offset)
			}
		}
	}
}

func TestForEvent(t *testing.T) {
	now := time.Now()
	event := &model.Event{StartAt: now.Add(5 * time.Minute), IsPublished: true}

	assert.Equal(t, lockstate.Locked, lockstate.ForEvent(now, event))
	assert.Equal(t, lockstate.Unlocked, lockstate.ForEvent(now.Add(6*time.Minute), event))
}
