package models

import (
	"errors"
	"strings"
	"time"
)

// Artwork represents a purchasable artwork in the catalog. It is the source
// of truth for price and display data referenced by cart line items.
type Artwork struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	ArtistID    int       `json:"artist_id" db:"artist_id"`
	ArtistName  string    `json:"artist_name,omitempty" db:"artist_name"` // joined, not persisted
	Description string    `json:"description" db:"description"`
	Medium      string    `json:"medium" db:"medium"`
	Dimensions  string    `json:"dimensions" db:"dimensions"`
	Year        int       `json:"year" db:"year"`
	Price       int       `json:"price" db:"price"` // in cents
	Available   bool      `json:"available" db:"available"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	ImageKey    string    `json:"image_key" db:"image_key"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Validate validates the artwork data
func (a *Artwork) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("artwork title is required")
	}
	if len(a.Title) > 255 {
		return errors.New("artwork title must be 255 characters or less")
	}
	if a.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if a.Year != 0 && (a.Year < 1000 || a.Year > time.Now().Year()+1) {
		return errors.New("year is out of range")
	}
	return nil
}
