package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"art-gallery-platform/internal/models"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// PlaceOrder writes the order and its snapshotted lines, redeems the discount
// code, and clears the session's cart in a single transaction. The redemption
// update is guarded by the usage cap so two concurrent checkouts cannot push
// current_uses past max_uses; losing the guard aborts the whole order.
func (r *OrderRepository) PlaceOrder(req *models.OrderCreateRequest, items []*models.ResolvedCartItem) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(items) == 0 {
		return nil, models.ErrCartEmpty
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, &models.StoreError{Op: "order.place", Err: err}
	}
	defer tx.Rollback()

	// Generate unique order number (retry on collision)
	orderNumber := models.GenerateOrderNumber()
	for i := 0; i < 5; i++ {
		var exists bool
		err = tx.QueryRow("SELECT EXISTS(SELECT 1 FROM incoming_orders WHERE order_number = $1)", orderNumber).Scan(&exists)
		if err != nil {
			return nil, &models.StoreError{Op: "order.place", Err: err}
		}
		if !exists {
			break
		}
		orderNumber = models.GenerateOrderNumber()
	}

	query := `
		INSERT INTO incoming_orders (order_number, session_id, customer_name, customer_email,
			subtotal, discount_code, discount_amount, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id, order_number, session_id, customer_name, customer_email,
			subtotal, discount_code, discount_amount, total_amount, status, created_at, updated_at`

	now := time.Now()
	order := &models.Order{}

	err = tx.QueryRow(
		query,
		orderNumber,
		req.SessionID,
		req.CustomerName,
		req.CustomerEmail,
		req.Subtotal,
		req.DiscountCode,
		req.DiscountAmount,
		req.TotalAmount,
		req.Status,
		now,
	).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.SessionID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.Subtotal,
		&order.DiscountCode,
		&order.DiscountAmount,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, &models.StoreError{Op: "order.place", Err: err}
	}

	for _, item := range items {
		_, err = tx.Exec(`
			INSERT INTO order_items (order_id, item_type, reference_id, title, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, item.ItemType, item.ReferenceID, item.Title, item.UnitPrice, item.Quantity,
		)
		if err != nil {
			return nil, &models.StoreError{Op: "order.place_items", Err: err}
		}
	}

	// Redemption counts at order placement, never at evaluation, so abandoned
	// carts do not consume uses.
	if req.DiscountCode != "" {
		result, err := tx.Exec(`
			UPDATE discounts
			SET current_uses = current_uses + 1, updated_at = $1
			WHERE code = $2 AND (max_uses = 0 OR current_uses < max_uses)`,
			now, req.DiscountCode,
		)
		if err != nil {
			return nil, &models.StoreError{Op: "order.redeem_discount", Err: err}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, &models.StoreError{Op: "order.redeem_discount", Err: err}
		}
		if affected == 0 {
			return nil, models.ErrDiscountExhausted
		}
	}

	if _, err := tx.Exec("DELETE FROM cart_items WHERE session_id = $1", req.SessionID); err != nil {
		return nil, &models.StoreError{Op: "order.clear_cart", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, &models.StoreError{Op: "order.place", Err: err}
	}

	return order, nil
}

// GetByID retrieves an order by id
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	query := `
		SELECT id, order_number, session_id, customer_name, customer_email,
			subtotal, discount_code, discount_amount, total_amount, status, created_at, updated_at
		FROM incoming_orders WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(query, id).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.SessionID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.Subtotal,
		&order.DiscountCode,
		&order.DiscountAmount,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrOrderNotFound
		}
		return nil, &models.StoreError{Op: "order.get_by_id", Err: err}
	}

	return order, nil
}

// GetItems retrieves the snapshotted lines for an order
func (r *OrderRepository) GetItems(orderID int) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, item_type, reference_id, title, unit_price, quantity
		FROM order_items WHERE order_id = $1 ORDER BY id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, &models.StoreError{Op: "order.get_items", Err: err}
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ItemType,
			&item.ReferenceID,
			&item.Title,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, &models.StoreError{Op: "order.get_items", Err: err}
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "order.get_items", Err: err}
	}

	return items, nil
}

// List returns orders newest first with a limit and offset
func (r *OrderRepository) List(limit, offset int) ([]*models.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, order_number, session_id, customer_name, customer_email,
			subtotal, discount_code, discount_amount, total_amount, status, created_at, updated_at
		FROM incoming_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, &models.StoreError{Op: "order.list", Err: err}
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.SessionID,
			&order.CustomerName,
			&order.CustomerEmail,
			&order.Subtotal,
			&order.DiscountCode,
			&order.DiscountAmount,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, &models.StoreError{Op: "order.list", Err: err}
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "order.list", Err: err}
	}

	return orders, nil
}

// UpdateStatus moves an order to a new status
func (r *OrderRepository) UpdateStatus(id int, status models.OrderStatus) error {
	result, err := r.db.Exec(
		"UPDATE incoming_orders SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now(), id,
	)
	if err != nil {
		return &models.StoreError{Op: "order.update_status", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreError{Op: "order.update_status", Err: err}
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}
