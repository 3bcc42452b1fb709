package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"art-gallery-platform/internal/models"
)

// EventRepository handles event data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventSelect = `
	SELECT id, title, description, event_date, location, ticket_price,
		image_url, image_key, created_at, updated_at
	FROM events`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.EventDate,
		&e.Location,
		&e.TicketPrice,
		&e.ImageURL,
		&e.ImageKey,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List returns events ordered by date, optionally only upcoming ones
func (r *EventRepository) List(onlyUpcoming bool) ([]*models.Event, error) {
	query := eventSelect
	args := []interface{}{}
	if onlyUpcoming {
		query += " WHERE event_date >= $1"
		args = append(args, time.Now())
	}
	query += " ORDER BY event_date"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, &models.StoreError{Op: "event.list", Err: err}
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, &models.StoreError{Op: "event.list", Err: err}
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "event.list", Err: err}
	}

	return events, nil
}

// GetByID retrieves an event by id
func (r *EventRepository) GetByID(id int) (*models.Event, error) {
	e, err := scanEvent(r.db.QueryRow(eventSelect+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, &models.StoreError{Op: "event.get_by_id", Err: err}
	}
	return e, nil
}

// Create inserts a new event
func (r *EventRepository) Create(e *models.Event) (*models.Event, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO events (title, description, event_date, location, ticket_price,
			image_url, image_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, created_at, updated_at`

	created := *e
	err := r.db.QueryRow(
		query,
		e.Title, e.Description, e.EventDate, e.Location, e.TicketPrice,
		e.ImageURL, e.ImageKey, time.Now(),
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, &models.StoreError{Op: "event.create", Err: err}
	}

	return &created, nil
}

// Update rewrites an event's fields
func (r *EventRepository) Update(id int, e *models.Event) (*models.Event, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE events
		SET title = $1, description = $2, event_date = $3, location = $4,
			ticket_price = $5, image_url = $6, image_key = $7, updated_at = $8
		WHERE id = $9
		RETURNING created_at, updated_at`

	updated := *e
	updated.ID = id
	err := r.db.QueryRow(
		query,
		e.Title, e.Description, e.EventDate, e.Location, e.TicketPrice,
		e.ImageURL, e.ImageKey, time.Now(), id,
	).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, &models.StoreError{Op: "event.update", Err: err}
	}

	return &updated, nil
}

// Delete removes an event by id
func (r *EventRepository) Delete(id int) error {
	if _, err := r.db.Exec("DELETE FROM events WHERE id = $1", id); err != nil {
		return &models.StoreError{Op: "event.delete", Err: err}
	}
	return nil
}
