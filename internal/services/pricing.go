package services

import (
	"errors"
	"time"

	"art-gallery-platform/internal/models"
)

// PricingService computes cart totals and evaluates discount codes. All
// arithmetic is in integer cents; amounts are only rendered as decimals at
// the presentation edge.
type PricingService struct {
	discountRepo DiscountRepository
}

// DiscountRepository interface for discount lookups
type DiscountRepository interface {
	GetActiveByCode(code string, appliesTo models.ItemType) (*models.DiscountCode, error)
}

// NewPricingService creates a new pricing service
func NewPricingService(discountRepo DiscountRepository) *PricingService {
	return &PricingService{discountRepo: discountRepo}
}

// Subtotal sums unit price times quantity over the resolved items
func (s *PricingService) Subtotal(items []*models.ResolvedCartItem) int {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Subtotal()
	}
	return subtotal
}

// EvaluateDiscount checks a user-entered code against its eligibility rules
// and returns the computed discount. It is a read-only evaluation: current
// usage is never incremented here, only at order placement. Rejections come
// back as typed discount errors, not failures.
//
// The checks run in a fixed order: code lookup, validity window, usage cap,
// minimum purchase. The computed amount is clamped to the subtotal so a fixed
// discount can never push a total negative.
func (s *PricingService) EvaluateDiscount(code string, subtotal int, composition models.ItemType, now time.Time) (*models.AppliedDiscount, error) {
	normalized := models.NormalizeCode(code)
	if normalized == "" {
		return nil, models.ErrDiscountInvalid
	}

	discount, err := s.discountRepo.GetActiveByCode(normalized, composition)
	if err != nil {
		return nil, err
	}

	if !discount.WithinWindow(now) {
		return nil, models.ErrDiscountExpired
	}

	if !discount.UsesRemaining() {
		return nil, models.ErrDiscountExhausted
	}

	if discount.MinPurchase > 0 && subtotal < discount.MinPurchase {
		return nil, &models.BelowMinimumError{Required: discount.MinPurchase}
	}

	var amount int
	switch discount.DiscountType {
	case models.DiscountPercentage:
		amount = subtotal * discount.DiscountValue / 100
	case models.DiscountFixed:
		amount = discount.DiscountValue
	default:
		return nil, errors.New("unknown discount type")
	}

	if amount > subtotal {
		amount = subtotal
	}

	return &models.AppliedDiscount{
		Code:   discount.Code,
		Type:   discount.DiscountType,
		Value:  discount.DiscountValue,
		Amount: amount,
	}, nil
}

// FinalTotal returns the discount-adjusted total, floored at zero. The floor
// holds regardless of how the applied amount was computed; a negative total
// must never reach a caller.
func FinalTotal(subtotal int, applied *models.AppliedDiscount) int {
	total := subtotal
	if applied != nil {
		total -= applied.Amount
	}
	if total < 0 {
		total = 0
	}
	return total
}
