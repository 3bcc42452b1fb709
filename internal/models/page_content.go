package models

import (
	"errors"
	"strings"
	"time"
)

// PageContent holds editable copy for a storefront section
type PageContent struct {
	ID        int       `json:"id" db:"id"`
	Section   string    `json:"section" db:"section"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Validate validates the page content data
func (p *PageContent) Validate() error {
	if strings.TrimSpace(p.Section) == "" {
		return errors.New("section is required")
	}
	if len(p.Section) > 100 {
		return errors.New("section must be 100 characters or less")
	}
	return nil
}
