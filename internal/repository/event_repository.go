package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-program/internal/model"
	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const eventColumns = `
	id, event_id, slug, name, start_at, end_at,
	venue_name, venue_address, venue_maps_link, venue_lat, venue_lng,
	menus, infos, media, is_published, created_at, updated_at`

const stepColumns = `step_id, title, description, sort_order, duration_min, completed, completed_at`

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	FindBySlug(ctx context.Context, slug string) (*model.Event, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, slug string, params model.UpdateEventParams) (*model.Event, error)
	SetPublished(ctx context.Context, slug string, published bool) error
	Delete(ctx context.Context, slug string) error
	// SetStepCompletion updates the step at position index and returns it
	// together with the progress of the whole program after the change.
	SetStepCompletion(ctx context.Context, slug string, index int, completed bool, completedAt *time.Time) (*model.ProgramStep, model.Progress, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*model.Event, error) {
	var (
		event    model.Event
		lat, lng *float64
	)
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Slug,
		&event.Name,
		&event.StartAt,
		&event.EndAt,
		&event.Venue.Name,
		&event.Venue.Address,
		&event.Venue.GoogleMapsLink,
		&lat,
		&lng,
		&event.Menus,
		&event.Infos,
		&event.Media,
		&event.IsPublished,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		event.Venue.Geo = &model.GeoPoint{Lat: *lat, Lng: *lng}
	}
	event.Program = []model.ProgramStep{}
	return &event, nil
}

func scanStep(row rowScanner) (model.ProgramStep, error) {
	var step model.ProgramStep
	err := row.Scan(
		&step.ID,
		&step.Title,
		&step.Description,
		&step.Order,
		&step.DurationMin,
		&step.Completed,
		&step.CompletedAt,
	)
	return step, err
}

func geoArgs(v model.Venue) (lat, lng *float64) {
	if v.Geo == nil {
		return nil, nil
	}
	return &v.Geo.Lat, &v.Geo.Lng
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// jsonb columns are NOT NULL, so nil slices are stored as empty arrays.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	lat, lng := geoArgs(event.Venue)
	query := `
		INSERT INTO events (
			event_id, slug, name, start_at, end_at,
			venue_name, venue_address, venue_maps_link, venue_lat, venue_lng,
			menus, infos, media, is_published
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		event.EventID, event.Slug, event.Name, event.StartAt, event.EndAt,
		event.Venue.Name, event.Venue.Address, event.Venue.GoogleMapsLink, lat, lng,
		orEmpty(event.Menus), orEmpty(event.Infos), orEmpty(event.Media), event.IsPublished,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if err := insertSteps(ctx, tx, event.ID, event.Program); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	event.Menus = orEmpty(event.Menus)
	event.Infos = orEmpty(event.Infos)
	event.Media = orEmpty(event.Media)
	event.Program = orEmpty(event.Program)
	return event, nil
}

func insertSteps(ctx context.Context, tx pgx.Tx, eventID int, steps []model.ProgramStep) error {
	query := `
		INSERT INTO program_steps (
			step_id, event_id, position, title, description, sort_order, duration_min, completed, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i := range steps {
		step := &steps[i]
		if step.ID == uuid.Nil {
			step.ID = uuid.New()
		}
		_, err := tx.Exec(ctx, query,
			step.ID, eventID, i, step.Title, step.Description, step.Order,
			step.DurationMin, step.Completed, step.CompletedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				// step ids are global; a copied id from another event is rejected
				return fmt.Errorf("program step %d: duplicate id: %w", i, apperrors.ErrInvalidInput)
			}
			return fmt.Errorf("failed to insert program step %d: %w", i, err)
		}
	}
	return nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	byID := make(map[int]*model.Event)
	ids := make([]int, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
		byID[event.ID] = event
		ids = append(ids, event.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return events, nil
	}

	stepRows, err := r.pool.Query(ctx, `
		SELECT event_id, `+stepColumns+`
		FROM program_steps
		WHERE event_id = ANY($1)
		ORDER BY event_id, position
	`, ids)
	if err != nil {
		return nil, err
	}
	defer stepRows.Close()

	for stepRows.Next() {
		var (
			eventID int
			step    model.ProgramStep
		)
		err := stepRows.Scan(
			&eventID,
			&step.ID,
			&step.Title,
			&step.Description,
			&step.Order,
			&step.DurationMin,
			&step.Completed,
			&step.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		if event, ok := byID[eventID]; ok {
			event.Program = append(event.Program, step)
		}
	}
	return events, stepRows.Err()
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func findBySlug(ctx context.Context, q querier, slug string) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	event, err := scanEvent(q.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	program, err := loadProgram(ctx, q, event.ID)
	if err != nil {
		return nil, err
	}
	event.Program = program
	return event, nil
}

func loadProgram(ctx context.Context, q querier, eventID int) ([]model.ProgramStep, error) {
	rows, err := q.Query(ctx, `
		SELECT `+stepColumns+`
		FROM program_steps
		WHERE event_id = $1
		ORDER BY position
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	program := make([]model.ProgramStep, 0)
	for rows.Next() {
		step, err := scanStep(rows)
		if err != nil {
			return nil, err
		}
		program = append(program, step)
	}
	return program, rows.Err()
}

func (r *EventRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	return findBySlug(ctx, r.pool, slug)
}

func (r *EventRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, slug string, params model.UpdateEventParams) (*model.Event, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx, `SELECT id FROM events WHERE slug = $1 FOR UPDATE`, slug).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	sets := []string{}
	args := []any{}
	argPos := 1
	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Name != nil {
		set("name", *params.Name)
	}
	if params.Slug != nil {
		set("slug", *params.Slug)
	}
	if params.StartAt != nil {
		set("start_at", *params.StartAt)
	}
	if params.EndAt != nil {
		set("end_at", *params.EndAt)
	}
	if params.Venue != nil {
		lat, lng := geoArgs(*params.Venue)
		set("venue_name", params.Venue.Name)
		set("venue_address", params.Venue.Address)
		set("venue_maps_link", params.Venue.GoogleMapsLink)
		set("venue_lat", lat)
		set("venue_lng", lng)
	}
	if params.IsPublished != nil {
		set("is_published", *params.IsPublished)
	}
	if params.Menus != nil {
		set("menus", orEmpty(*params.Menus))
	}
	if params.Infos != nil {
		set("infos", orEmpty(*params.Infos))
	}
	if params.Media != nil {
		set("media", orEmpty(*params.Media))
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING slug
	`, strings.Join(sets, ", "), argPos)

	var currentSlug string
	if err := tx.QueryRow(ctx, query, args...).Scan(&currentSlug); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrSlugConflict
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if params.Program != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM program_steps WHERE event_id = $1`, id); err != nil {
			return nil, fmt.Errorf("failed to clear program: %w", err)
		}
		if err := insertSteps(ctx, tx, id, *params.Program); err != nil {
			return nil, err
		}
	}

	event, err := findBySlug(ctx, tx, currentSlug)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) SetPublished(ctx context.Context, slug string, published bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE events
		SET is_published = $1, updated_at = $2
		WHERE slug = $3
	`, published, time.Now().UTC(), slug)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE slug = $1`, slug)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) SetStepCompletion(
	ctx context.Context,
	slug string,
	index int,
	completed bool,
	completedAt *time.Time,
) (*model.ProgramStep, model.Progress, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, model.Progress{}, err
	}
	defer tx.Rollback(ctx)

	// the event row lock serialises toggles of one event so that the counts
	// below always match the committed program
	var eventID int
	err = tx.QueryRow(ctx, `SELECT id FROM events WHERE slug = $1 FOR UPDATE`, slug).Scan(&eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.Progress{}, apperrors.ErrEventNotFound
		}
		return nil, model.Progress{}, err
	}

	step, err := scanStep(tx.QueryRow(ctx, `
		UPDATE program_steps
		SET completed = $1, completed_at = $2
		WHERE event_id = $3 AND position = $4
		RETURNING `+stepColumns,
		completed, completedAt, eventID, index,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.Progress{}, apperrors.ErrInvalidStepIndex
		}
		return nil, model.Progress{}, fmt.Errorf("failed to update step: %w", err)
	}

	var total, done int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)
		FROM program_steps
		WHERE event_id = $1
	`, eventID).Scan(&total, &done)
	if err != nil {
		return nil, model.Progress{}, err
	}

	if _, err := tx.Exec(ctx, `UPDATE events SET updated_at = $1 WHERE id = $2`, time.Now().UTC(), eventID); err != nil {
		return nil, model.Progress{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, model.Progress{}, err
	}
	return &step, model.NewProgress(total, done), nil
}
