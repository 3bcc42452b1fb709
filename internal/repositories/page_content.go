package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"art-gallery-platform/internal/models"
)

// PageContentRepository handles storefront copy operations
type PageContentRepository struct {
	db *sql.DB
}

// NewPageContentRepository creates a new page content repository
func NewPageContentRepository(db *sql.DB) *PageContentRepository {
	return &PageContentRepository{db: db}
}

// GetBySection retrieves the content for a storefront section
func (r *PageContentRepository) GetBySection(section string) (*models.PageContent, error) {
	query := "SELECT id, section, title, body, updated_at FROM page_content WHERE section = $1"

	p := &models.PageContent{}
	err := r.db.QueryRow(query, section).Scan(&p.ID, &p.Section, &p.Title, &p.Body, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPageNotFound
		}
		return nil, &models.StoreError{Op: "page_content.get", Err: err}
	}

	return p, nil
}

// Upsert writes a section's content, creating it if missing
func (r *PageContentRepository) Upsert(p *models.PageContent) (*models.PageContent, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO page_content (section, title, body, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (section)
		DO UPDATE SET title = EXCLUDED.title, body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
		RETURNING id, section, title, body, updated_at`

	saved := &models.PageContent{}
	err := r.db.QueryRow(query, p.Section, p.Title, p.Body, time.Now()).
		Scan(&saved.ID, &saved.Section, &saved.Title, &saved.Body, &saved.UpdatedAt)
	if err != nil {
		return nil, &models.StoreError{Op: "page_content.upsert", Err: err}
	}

	return saved, nil
}
