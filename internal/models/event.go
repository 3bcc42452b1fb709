package models

import (
	"errors"
	"strings"
	"time"
)

// Event represents a gallery event (opening, talk, workshop). TicketPrice is
// nullable; a nil price means tickets are free and carts treat it as zero.
type Event struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	EventDate   time.Time `json:"event_date" db:"event_date"`
	Location    string    `json:"location" db:"location"`
	TicketPrice *int      `json:"ticket_price" db:"ticket_price"` // in cents, nil = free
	ImageURL    string    `json:"image_url" db:"image_url"`
	ImageKey    string    `json:"image_key" db:"image_key"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Price returns the ticket price in cents, defaulting to 0 when unset
func (e *Event) Price() int {
	if e.TicketPrice == nil {
		return 0
	}
	return *e.TicketPrice
}

// IsUpcoming checks whether the event is in the future
func (e *Event) IsUpcoming() bool {
	return e.EventDate.After(time.Now())
}

// Validate validates the event data
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("event title is required")
	}
	if len(e.Title) > 255 {
		return errors.New("event title must be 255 characters or less")
	}
	if e.EventDate.IsZero() {
		return errors.New("event date is required")
	}
	if e.TicketPrice != nil && *e.TicketPrice < 0 {
		return errors.New("ticket price cannot be negative")
	}
	return nil
}
