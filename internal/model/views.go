package model

import (
	"time"

	"github.com/google/uuid"
)

// InstantLayout renders UTC instants with millisecond precision
// (2025-06-21T19:00:00.000Z).
const InstantLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}

// PublicEvent is what anonymous viewers see before and after unlock.
type PublicEvent struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	StartAt     time.Time `json:"startAt"`
	Venue       Venue     `json:"venue"`
	Locked      bool      `json:"locked"`
	Now         string    `json:"now"`
	IsPublished bool      `json:"isPublished"`
}

func NewPublicEvent(e *Event, locked bool, now time.Time) *PublicEvent {
	return &PublicEvent{
		ID:          e.EventID,
		Name:        e.Name,
		Slug:        e.Slug,
		StartAt:     e.StartAt,
		Venue:       e.Venue,
		Locked:      locked,
		Now:         FormatInstant(now),
		IsPublished: e.IsPublished,
	}
}

// EventDetail is served once the event is unlocked.
type EventDetail struct {
	Name    string        `json:"name"`
	Slug    string        `json:"slug"`
	StartAt time.Time     `json:"startAt"`
	EndAt   *time.Time    `json:"endAt"`
	Venue   Venue         `json:"venue"`
	Program []ProgramStep `json:"program"`
	Menus   []MenuItem    `json:"menus"`
	Infos   []InfoBlock   `json:"infos"`
	Media   []MediaItem   `json:"media"`
}

func NewEventDetail(e *Event) *EventDetail {
	return &EventDetail{
		Name:    e.Name,
		Slug:    e.Slug,
		StartAt: e.StartAt,
		EndAt:   e.EndAt,
		Venue:   e.Venue,
		Program: e.Program,
		Menus:   e.Menus,
		Infos:   e.Infos,
		Media:   e.Media,
	}
}

// EventSummary is one row of the admin event list.
type EventSummary struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	StartAt        time.Time  `json:"startAt"`
	EndAt          *time.Time `json:"endAt"`
	Venue          Venue      `json:"venue"`
	IsPublished    bool       `json:"isPublished"`
	ProgramSteps   int        `json:"programSteps"`
	CompletedSteps int        `json:"completedSteps"`
}

func NewEventSummary(e *Event) *EventSummary {
	progress := e.Progress()
	return &EventSummary{
		ID:             e.EventID,
		Name:           e.Name,
		Slug:           e.Slug,
		StartAt:        e.StartAt,
		EndAt:          e.EndAt,
		Venue:          e.Venue,
		IsPublished:    e.IsPublished,
		ProgramSteps:   progress.TotalSteps,
		CompletedSteps: progress.CompletedSteps,
	}
}
