package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"art-gallery-platform/internal/models"
)

// ArtistRepository handles artist data operations
type ArtistRepository struct {
	db *sql.DB
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// List returns all artists ordered by name
func (r *ArtistRepository) List() ([]*models.Artist, error) {
	query := `
		SELECT id, name, bio, photo_url, photo_key, created_at, updated_at
		FROM artists ORDER BY name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, &models.StoreError{Op: "artist.list", Err: err}
	}
	defer rows.Close()

	var artists []*models.Artist
	for rows.Next() {
		a := &models.Artist{}
		err := rows.Scan(&a.ID, &a.Name, &a.Bio, &a.PhotoURL, &a.PhotoKey, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, &models.StoreError{Op: "artist.list", Err: err}
		}
		artists = append(artists, a)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "artist.list", Err: err}
	}

	return artists, nil
}

// GetByID retrieves an artist by id
func (r *ArtistRepository) GetByID(id int) (*models.Artist, error) {
	query := `
		SELECT id, name, bio, photo_url, photo_key, created_at, updated_at
		FROM artists WHERE id = $1`

	a := &models.Artist{}
	err := r.db.QueryRow(query, id).Scan(&a.ID, &a.Name, &a.Bio, &a.PhotoURL, &a.PhotoKey, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrArtistNotFound
		}
		return nil, &models.StoreError{Op: "artist.get_by_id", Err: err}
	}

	return a, nil
}

// Create inserts a new artist
func (r *ArtistRepository) Create(a *models.Artist) (*models.Artist, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO artists (name, bio, photo_url, photo_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at`

	created := *a
	err := r.db.QueryRow(query, a.Name, a.Bio, a.PhotoURL, a.PhotoKey, time.Now()).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, &models.StoreError{Op: "artist.create", Err: err}
	}

	return &created, nil
}

// Update rewrites an artist's fields
func (r *ArtistRepository) Update(id int, a *models.Artist) (*models.Artist, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE artists
		SET name = $1, bio = $2, photo_url = $3, photo_key = $4, updated_at = $5
		WHERE id = $6
		RETURNING created_at, updated_at`

	updated := *a
	updated.ID = id
	err := r.db.QueryRow(query, a.Name, a.Bio, a.PhotoURL, a.PhotoKey, time.Now(), id).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrArtistNotFound
		}
		return nil, &models.StoreError{Op: "artist.update", Err: err}
	}

	return &updated, nil
}

// Delete removes an artist by id
func (r *ArtistRepository) Delete(id int) error {
	if _, err := r.db.Exec("DELETE FROM artists WHERE id = $1", id); err != nil {
		return &models.StoreError{Op: "artist.delete", Err: err}
	}
	return nil
}
