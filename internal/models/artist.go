package models

import (
	"errors"
	"strings"
	"time"
)

// Artist represents an artist in the gallery catalog
type Artist struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Bio       string    `json:"bio" db:"bio"`
	PhotoURL  string    `json:"photo_url" db:"photo_url"`
	PhotoKey  string    `json:"photo_key" db:"photo_key"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Validate validates the artist data
func (a *Artist) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("artist name is required")
	}
	if len(a.Name) > 255 {
		return errors.New("artist name must be 255 characters or less")
	}
	return nil
}
