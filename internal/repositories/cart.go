package repositories

import (
	"database/sql"
	"time"

	"art-gallery-platform/internal/models"
)

// CartRepository handles cart line item data operations
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// ListBySession returns the session's line items joined against the catalog.
// Prices and titles are resolved fresh on every call so catalog edits reach
// open carts; nothing is cached on the cart row. Free events resolve to a
// zero unit price. Results are ordered by creation time for determinism.
func (r *CartRepository) ListBySession(sessionID string) ([]*models.ResolvedCartItem, error) {
	query := `
		SELECT ci.id, ci.session_id, ci.item_type, ci.reference_id, ci.quantity, ci.created_at,
		       COALESCE(a.title, e.title, '') AS title,
		       COALESCE(a.price, e.ticket_price, 0) AS unit_price,
		       COALESCE(a.image_url, e.image_url, '') AS image_url,
		       COALESCE(ar.name, to_char(e.event_date, 'FMMonth DD, YYYY'), '') AS label
		FROM cart_items ci
		LEFT JOIN artworks a ON ci.item_type = 'artwork' AND a.id = ci.reference_id
		LEFT JOIN artists ar ON ar.id = a.artist_id
		LEFT JOIN events e ON ci.item_type = 'event' AND e.id = ci.reference_id
		WHERE ci.session_id = $1
		ORDER BY ci.created_at, ci.id`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, &models.StoreError{Op: "cart.list", Err: err}
	}
	defer rows.Close()

	var items []*models.ResolvedCartItem
	for rows.Next() {
		item := &models.ResolvedCartItem{}
		err := rows.Scan(
			&item.ID,
			&item.SessionID,
			&item.ItemType,
			&item.ReferenceID,
			&item.Quantity,
			&item.CreatedAt,
			&item.Title,
			&item.UnitPrice,
			&item.ImageURL,
			&item.Label,
		)
		if err != nil {
			return nil, &models.StoreError{Op: "cart.list", Err: err}
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "cart.list", Err: err}
	}

	return items, nil
}

// Add inserts a line item with quantity 1, or increments the quantity when
// the session already holds the same catalog entity. The upsert relies on the
// (session_id, item_type, reference_id) uniqueness constraint, so concurrent
// adds for the same entity cannot create duplicate rows.
func (r *CartRepository) Add(sessionID string, itemType models.ItemType, referenceID int) error {
	query := `
		INSERT INTO cart_items (session_id, item_type, reference_id, quantity, created_at)
		VALUES ($1, $2, $3, 1, $4)
		ON CONFLICT ON CONSTRAINT uq_cart_items_session_entity
		DO UPDATE SET quantity = cart_items.quantity + 1`

	if _, err := r.db.Exec(query, sessionID, itemType, referenceID, time.Now()); err != nil {
		return &models.StoreError{Op: "cart.add", Err: err}
	}
	return nil
}

// SetQuantity updates a line item's quantity in place. A quantity of zero or
// less deletes the item instead; quantity-0 rows are never stored.
func (r *CartRepository) SetQuantity(itemID int, quantity int) error {
	if quantity <= 0 {
		return r.Remove(itemID)
	}

	result, err := r.db.Exec("UPDATE cart_items SET quantity = $1 WHERE id = $2", quantity, itemID)
	if err != nil {
		return &models.StoreError{Op: "cart.set_quantity", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreError{Op: "cart.set_quantity", Err: err}
	}
	if affected == 0 {
		return models.ErrCartItemNotFound
	}
	return nil
}

// Remove deletes a line item by id. Removing a missing id is a no-op success.
func (r *CartRepository) Remove(itemID int) error {
	if _, err := r.db.Exec("DELETE FROM cart_items WHERE id = $1", itemID); err != nil {
		return &models.StoreError{Op: "cart.remove", Err: err}
	}
	return nil
}

// Clear deletes all line items for the session
func (r *CartRepository) Clear(sessionID string) error {
	if _, err := r.db.Exec("DELETE FROM cart_items WHERE session_id = $1", sessionID); err != nil {
		return &models.StoreError{Op: "cart.clear", Err: err}
	}
	return nil
}
