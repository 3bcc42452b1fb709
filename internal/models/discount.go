package models

import (
	"errors"
	"strings"
	"time"
)

// DiscountType represents how a discount value is interpreted
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DiscountCode is an administrator-defined promotional rule
type DiscountCode struct {
	ID           int          `json:"id" db:"id"`
	Code         string       `json:"code" db:"code"` // stored upper-cased
	DiscountType DiscountType `json:"discount_type" db:"discount_type"`
	// DiscountValue is a whole percent (0-100) for percentage codes and an
	// amount in cents for fixed codes.
	DiscountValue int        `json:"discount_value" db:"discount_value"`
	AppliesTo     ItemType   `json:"applies_to" db:"applies_to"`
	MinPurchase   int        `json:"min_purchase" db:"min_purchase"` // in cents, 0 = no minimum
	MaxUses       int        `json:"max_uses" db:"max_uses"`         // 0 = unlimited
	CurrentUses   int        `json:"current_uses" db:"current_uses"`
	StartDate     time.Time  `json:"start_date" db:"start_date"`
	EndDate       *time.Time `json:"end_date" db:"end_date"` // nil = open-ended
	Active        bool       `json:"active" db:"active"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// AppliedDiscount is the result of a successful code evaluation. It is scoped
// to the active pricing session and never persisted.
type AppliedDiscount struct {
	Code   string       `json:"code"`
	Type   DiscountType `json:"type"`
	Value  int          `json:"value"`
	Amount int          `json:"amount"` // computed discount in cents
}

// NormalizeCode folds a user-entered code to its canonical stored form
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// WithinWindow checks the validity window. An absent end date is open-ended.
func (d *DiscountCode) WithinWindow(now time.Time) bool {
	if now.Before(d.StartDate) {
		return false
	}
	if d.EndDate != nil && now.After(*d.EndDate) {
		return false
	}
	return true
}

// UsesRemaining reports whether the usage cap still allows a redemption
func (d *DiscountCode) UsesRemaining() bool {
	return d.MaxUses == 0 || d.CurrentUses < d.MaxUses
}

// Validate validates the discount code data
func (d *DiscountCode) Validate() error {
	if strings.TrimSpace(d.Code) == "" {
		return errors.New("code is required")
	}
	if len(d.Code) > 50 {
		return errors.New("code must be 50 characters or less")
	}
	if d.DiscountType != DiscountPercentage && d.DiscountType != DiscountFixed {
		return errors.New("invalid discount type")
	}
	if d.DiscountType == DiscountPercentage && (d.DiscountValue < 1 || d.DiscountValue > 100) {
		return errors.New("percentage value must be between 1 and 100")
	}
	if d.DiscountType == DiscountFixed && d.DiscountValue <= 0 {
		return errors.New("fixed discount value must be positive")
	}
	if !d.AppliesTo.IsValid() {
		return errors.New("invalid applies_to type")
	}
	if d.MinPurchase < 0 {
		return errors.New("minimum purchase cannot be negative")
	}
	if d.MaxUses < 0 {
		return errors.New("max uses cannot be negative")
	}
	if d.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	if d.EndDate != nil && d.EndDate.Before(d.StartDate) {
		return errors.New("end date cannot be before start date")
	}
	return nil
}
