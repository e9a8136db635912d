// Package lockstate decides whether the detailed content of an event may be
// shown. The result is derived on every request and never stored.
package lockstate

import (
	"time"

	"go-gin-event-program/internal/model"
)

type State string

const (
	Locked   State = "locked"
	Unlocked State = "unlocked"
)

func (s State) IsLocked() bool {
	return s != Unlocked
}

// Evaluate returns Locked while now is strictly before startAt or the event is
// unpublished. now == startAt is unlocked.
func Evaluate(now, startAt time.Time, published bool) State {
	if now.Before(startAt) || !published {
		return Locked
	}
	return Unlocked
}

func ForEvent(now time.Time, event *model.Event) State {
	return Evaluate(now, event.StartAt, event.IsPublished)
}
