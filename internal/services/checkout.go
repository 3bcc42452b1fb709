package services

import (
	"fmt"
	"time"

	"art-gallery-platform/internal/models"
)

// CheckoutService places orders from live cart contents. Pricing is always
// recomputed server-side from the catalog at placement time; client-supplied
// totals are never trusted.
type CheckoutService struct {
	orderRepo OrderRepository
	cartRepo  CartRepository
	pricing   *PricingService
}

// OrderRepository interface for order placement
type OrderRepository interface {
	PlaceOrder(req *models.OrderCreateRequest, items []*models.ResolvedCartItem) (*models.Order, error)
}

// CheckoutRequest carries the customer details and optional discount code
// entered on the checkout page
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	DiscountCode  string `json:"discount_code"`
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(orderRepo OrderRepository, cartRepo CartRepository, pricing *PricingService) *CheckoutService {
	return &CheckoutService{orderRepo: orderRepo, cartRepo: cartRepo, pricing: pricing}
}

// PlaceOrder reads the session's cart, re-evaluates any discount code, and
// writes the order. The repository commits the order rows, the discount
// redemption, and the cart clear in one transaction, so a failed placement
// leaves the cart untouched.
func (s *CheckoutService) PlaceOrder(sessionID string, req *CheckoutRequest, now time.Time) (*models.Order, error) {
	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(items) == 0 {
		return nil, models.ErrCartEmpty
	}

	subtotal := s.pricing.Subtotal(items)

	var applied *models.AppliedDiscount
	if req.DiscountCode != "" {
		applied, err = s.pricing.EvaluateDiscount(req.DiscountCode, subtotal, models.DominantType(items), now)
		if err != nil {
			return nil, err
		}
	}

	createReq := &models.OrderCreateRequest{
		SessionID:     sessionID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Subtotal:      subtotal,
		TotalAmount:   FinalTotal(subtotal, applied),
		Status:        models.OrderPending,
	}
	if applied != nil {
		createReq.DiscountCode = applied.Code
		createReq.DiscountAmount = applied.Amount
	}

	order, err := s.orderRepo.PlaceOrder(createReq, items)
	if err != nil {
		return nil, err
	}

	return order, nil
}
