package services

import (
	"time"

	"art-gallery-platform/internal/models"
)

// CartServiceInterface defines the interface for cart operations exposed to
// presentation layers
type CartServiceInterface interface {
	AddToCart(sessionID string, itemType models.ItemType, referenceID int) error
	RemoveFromCart(itemID int) error
	UpdateQuantity(itemID int, quantity int) error
	ClearCart(sessionID string) error
	Items(sessionID string) ([]*models.ResolvedCartItem, error)
	Total(sessionID string) (int, error)
	ItemCount(sessionID string) (int, error)
}

// PricingServiceInterface defines the interface for pricing computations
type PricingServiceInterface interface {
	Subtotal(items []*models.ResolvedCartItem) int
	EvaluateDiscount(code string, subtotal int, composition models.ItemType, now time.Time) (*models.AppliedDiscount, error)
}

// CheckoutServiceInterface defines the interface for order placement
type CheckoutServiceInterface interface {
	PlaceOrder(sessionID string, req *CheckoutRequest, now time.Time) (*models.Order, error)
}
