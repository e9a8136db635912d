package model

import (
	"time"

	"github.com/google/uuid"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Venue struct {
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	GoogleMapsLink string    `json:"googleMapsLink"`
	Geo            *GeoPoint `json:"geo,omitempty"`
}

type MenuItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags"`
}

type InfoBlock struct {
	Key      string `json:"key"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (t MediaType) IsValid() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo:
		return true
	}
	return false
}

type MediaItem struct {
	Title string    `json:"title,omitempty"`
	URL   string    `json:"url"`
	Type  MediaType `json:"type"`
}

// Event is the aggregate edited by organizers. ID is the storage key and never
// leaves the server; EventID is the public identity.
type Event struct {
	ID          int           `json:"-" db:"id"`
	EventID     uuid.UUID     `json:"id" db:"event_id"`
	Slug        string        `json:"slug" db:"slug"`
	Name        string        `json:"name" db:"name"`
	StartAt     time.Time     `json:"startAt" db:"start_at"`
	EndAt       *time.Time    `json:"endAt" db:"end_at"`
	Venue       Venue         `json:"venue"`
	IsPublished bool          `json:"isPublished" db:"is_published"`
	Program     []ProgramStep `json:"program"`
	Menus       []MenuItem    `json:"menus" db:"menus"`
	Infos       []InfoBlock   `json:"infos" db:"infos"`
	Media       []MediaItem   `json:"media" db:"media"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// Progress summarises the program of the event.
func (e *Event) Progress() Progress {
	return ProgressOf(e.Program)
}

// UpdateEventParams is a partial update: nil fields are left untouched.
// A non-nil Program replaces every step of the event.
type UpdateEventParams struct {
	Name        *string
	Slug        *string
	StartAt     *time.Time
	EndAt       *time.Time
	Venue       *Venue
	IsPublished *bool
	Program     *[]ProgramStep
	Menus       *[]MenuItem
	Infos       *[]InfoBlock
	Media       *[]MediaItem
}

func (p UpdateEventParams) IsEmpty() bool {
	return p.Name == nil && p.Slug == nil && p.StartAt == nil && p.EndAt == nil &&
		p.Venue == nil && p.IsPublished == nil && p.Program == nil &&
		p.Menus == nil && p.Infos == nil && p.Media == nil
}
