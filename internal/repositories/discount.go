package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"art-gallery-platform/internal/models"
)

// DiscountRepository handles discount code data operations
type DiscountRepository struct {
	db *sql.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *sql.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

const discountColumns = `id, code, discount_type, discount_value, applies_to,
	min_purchase, max_uses, current_uses, start_date, end_date, active,
	created_at, updated_at`

func scanDiscount(row interface{ Scan(...interface{}) error }) (*models.DiscountCode, error) {
	d := &models.DiscountCode{}
	err := row.Scan(
		&d.ID,
		&d.Code,
		&d.DiscountType,
		&d.DiscountValue,
		&d.AppliesTo,
		&d.MinPurchase,
		&d.MaxUses,
		&d.CurrentUses,
		&d.StartDate,
		&d.EndDate,
		&d.Active,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetActiveByCode looks up an active code matching the cart composition. The
// code is matched against its canonical upper-cased form. A missing or
// inactive code surfaces as ErrDiscountInvalid, never as a store failure.
func (r *DiscountRepository) GetActiveByCode(code string, appliesTo models.ItemType) (*models.DiscountCode, error) {
	query := fmt.Sprintf(`SELECT %s FROM discounts
		WHERE code = $1 AND applies_to = $2 AND active = TRUE`, discountColumns)

	d, err := scanDiscount(r.db.QueryRow(query, models.NormalizeCode(code), appliesTo))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDiscountInvalid
		}
		return nil, &models.StoreError{Op: "discount.get_by_code", Err: err}
	}
	return d, nil
}

// GetByID retrieves a discount code by id
func (r *DiscountRepository) GetByID(id int) (*models.DiscountCode, error) {
	query := fmt.Sprintf("SELECT %s FROM discounts WHERE id = $1", discountColumns)

	d, err := scanDiscount(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDiscountInvalid
		}
		return nil, &models.StoreError{Op: "discount.get_by_id", Err: err}
	}
	return d, nil
}

// List returns all discount codes, newest first
func (r *DiscountRepository) List() ([]*models.DiscountCode, error) {
	query := fmt.Sprintf("SELECT %s FROM discounts ORDER BY created_at DESC", discountColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, &models.StoreError{Op: "discount.list", Err: err}
	}
	defer rows.Close()

	var discounts []*models.DiscountCode
	for rows.Next() {
		d, err := scanDiscount(rows)
		if err != nil {
			return nil, &models.StoreError{Op: "discount.list", Err: err}
		}
		discounts = append(discounts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "discount.list", Err: err}
	}

	return discounts, nil
}

// Create inserts a new discount code, storing the code upper-cased
func (r *DiscountRepository) Create(d *models.DiscountCode) (*models.DiscountCode, error) {
	d.Code = models.NormalizeCode(d.Code)
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO discounts (code, discount_type, discount_value, applies_to,
			min_purchase, max_uses, current_uses, start_date, end_date, active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, $10, $10)
		RETURNING %s`, discountColumns)

	now := time.Now()
	created, err := scanDiscount(r.db.QueryRow(
		query,
		d.Code,
		d.DiscountType,
		d.DiscountValue,
		d.AppliesTo,
		d.MinPurchase,
		d.MaxUses,
		d.StartDate,
		d.EndDate,
		d.Active,
		now,
	))
	if err != nil {
		return nil, &models.StoreError{Op: "discount.create", Err: err}
	}
	return created, nil
}

// Update rewrites the editable fields of an existing code
func (r *DiscountRepository) Update(id int, d *models.DiscountCode) (*models.DiscountCode, error) {
	d.Code = models.NormalizeCode(d.Code)
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE discounts
		SET code = $1, discount_type = $2, discount_value = $3, applies_to = $4,
			min_purchase = $5, max_uses = $6, start_date = $7, end_date = $8,
			active = $9, updated_at = $10
		WHERE id = $11
		RETURNING %s`, discountColumns)

	updated, err := scanDiscount(r.db.QueryRow(
		query,
		d.Code,
		d.DiscountType,
		d.DiscountValue,
		d.AppliesTo,
		d.MinPurchase,
		d.MaxUses,
		d.StartDate,
		d.EndDate,
		d.Active,
		time.Now(),
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDiscountInvalid
		}
		return nil, &models.StoreError{Op: "discount.update", Err: err}
	}
	return updated, nil
}

// SetActive flips the kill-switch independent of the date window
func (r *DiscountRepository) SetActive(id int, active bool) error {
	result, err := r.db.Exec(
		"UPDATE discounts SET active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now(), id,
	)
	if err != nil {
		return &models.StoreError{Op: "discount.set_active", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreError{Op: "discount.set_active", Err: err}
	}
	if affected == 0 {
		return models.ErrDiscountInvalid
	}
	return nil
}

// Delete removes a discount code by id
func (r *DiscountRepository) Delete(id int) error {
	if _, err := r.db.Exec("DELETE FROM discounts WHERE id = $1", id); err != nil {
		return &models.StoreError{Op: "discount.delete", Err: err}
	}
	return nil
}
