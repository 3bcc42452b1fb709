package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"art-gallery-platform/internal/models"
)

// ArtworkRepository handles artwork data operations
type ArtworkRepository struct {
	db *sql.DB
}

// NewArtworkRepository creates a new artwork repository
func NewArtworkRepository(db *sql.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

const artworkSelect = `
	SELECT a.id, a.title, COALESCE(a.artist_id, 0), COALESCE(ar.name, ''),
		a.description, a.medium, a.dimensions, COALESCE(a.year, 0),
		a.price, a.available, a.image_url, a.image_key, a.created_at, a.updated_at
	FROM artworks a
	LEFT JOIN artists ar ON ar.id = a.artist_id`

func scanArtwork(row interface{ Scan(...interface{}) error }) (*models.Artwork, error) {
	a := &models.Artwork{}
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.ArtistID,
		&a.ArtistName,
		&a.Description,
		&a.Medium,
		&a.Dimensions,
		&a.Year,
		&a.Price,
		&a.Available,
		&a.ImageURL,
		&a.ImageKey,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns artworks, optionally filtered to available pieces only
func (r *ArtworkRepository) List(onlyAvailable bool) ([]*models.Artwork, error) {
	query := artworkSelect
	if onlyAvailable {
		query += " WHERE a.available = TRUE"
	}
	query += " ORDER BY a.created_at DESC"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, &models.StoreError{Op: "artwork.list", Err: err}
	}
	defer rows.Close()

	var artworks []*models.Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, &models.StoreError{Op: "artwork.list", Err: err}
		}
		artworks = append(artworks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "artwork.list", Err: err}
	}

	return artworks, nil
}

// ListByArtist returns an artist's artworks, newest first
func (r *ArtworkRepository) ListByArtist(artistID int) ([]*models.Artwork, error) {
	rows, err := r.db.Query(artworkSelect+" WHERE a.artist_id = $1 ORDER BY a.created_at DESC", artistID)
	if err != nil {
		return nil, &models.StoreError{Op: "artwork.list_by_artist", Err: err}
	}
	defer rows.Close()

	var artworks []*models.Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, &models.StoreError{Op: "artwork.list_by_artist", Err: err}
		}
		artworks = append(artworks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "artwork.list_by_artist", Err: err}
	}

	return artworks, nil
}

// GetByID retrieves an artwork by id
func (r *ArtworkRepository) GetByID(id int) (*models.Artwork, error) {
	a, err := scanArtwork(r.db.QueryRow(artworkSelect+" WHERE a.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrArtworkNotFound
		}
		return nil, &models.StoreError{Op: "artwork.get_by_id", Err: err}
	}
	return a, nil
}

// Create inserts a new artwork
func (r *ArtworkRepository) Create(a *models.Artwork) (*models.Artwork, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO artworks (title, artist_id, description, medium, dimensions, year,
			price, available, image_url, image_key, created_at, updated_at)
		VALUES ($1, NULLIF($2, 0), $3, $4, $5, NULLIF($6, 0), $7, $8, $9, $10, $11, $11)
		RETURNING id, created_at, updated_at`

	now := time.Now()
	created := *a
	err := r.db.QueryRow(
		query,
		a.Title, a.ArtistID, a.Description, a.Medium, a.Dimensions, a.Year,
		a.Price, a.Available, a.ImageURL, a.ImageKey, now,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, &models.StoreError{Op: "artwork.create", Err: err}
	}

	return &created, nil
}

// Update rewrites an artwork's fields
func (r *ArtworkRepository) Update(id int, a *models.Artwork) (*models.Artwork, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE artworks
		SET title = $1, artist_id = NULLIF($2, 0), description = $3, medium = $4,
			dimensions = $5, year = NULLIF($6, 0), price = $7, available = $8,
			image_url = $9, image_key = $10, updated_at = $11
		WHERE id = $12
		RETURNING created_at, updated_at`

	updated := *a
	updated.ID = id
	err := r.db.QueryRow(
		query,
		a.Title, a.ArtistID, a.Description, a.Medium, a.Dimensions, a.Year,
		a.Price, a.Available, a.ImageURL, a.ImageKey, time.Now(), id,
	).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrArtworkNotFound
		}
		return nil, &models.StoreError{Op: "artwork.update", Err: err}
	}

	return &updated, nil
}

// Delete removes an artwork by id
func (r *ArtworkRepository) Delete(id int) error {
	if _, err := r.db.Exec("DELETE FROM artworks WHERE id = $1", id); err != nil {
		return &models.StoreError{Op: "artwork.delete", Err: err}
	}
	return nil
}
