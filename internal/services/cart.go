package services

import (
	"art-gallery-platform/internal/models"
)

// CartService composes the cart store into the operations the presentation
// layer needs. Totals here are pre-discount subtotals; the discount-adjusted
// total depends on an ephemeral applied code scoped to the UI session, so it
// is computed by the caller through the pricing service and never cached.
type CartService struct {
	cartRepo CartRepository
	pricing  *PricingService
}

// CartRepository interface for cart data operations
type CartRepository interface {
	ListBySession(sessionID string) ([]*models.ResolvedCartItem, error)
	Add(sessionID string, itemType models.ItemType, referenceID int) error
	SetQuantity(itemID int, quantity int) error
	Remove(itemID int) error
	Clear(sessionID string) error
}

// NewCartService creates a new cart service
func NewCartService(cartRepo CartRepository, pricing *PricingService) *CartService {
	return &CartService{cartRepo: cartRepo, pricing: pricing}
}

// AddToCart adds a catalog entity to the session's cart. Adding an entity the
// cart already holds increments its quantity instead of creating a second
// line item.
func (s *CartService) AddToCart(sessionID string, itemType models.ItemType, referenceID int) error {
	if sessionID == "" {
		return &models.ValidationError{Field: "session_id", Message: "session id is required"}
	}
	if !itemType.IsValid() {
		return &models.ValidationError{Field: "item_type", Message: "item type must be artwork or event"}
	}
	if referenceID <= 0 {
		return &models.ValidationError{Field: "reference_id", Message: "reference id must be positive"}
	}

	return s.cartRepo.Add(sessionID, itemType, referenceID)
}

// RemoveFromCart deletes a line item; a missing id is a no-op success
func (s *CartService) RemoveFromCart(itemID int) error {
	return s.cartRepo.Remove(itemID)
}

// UpdateQuantity sets a line item's quantity. Zero or negative quantities
// remove the item.
func (s *CartService) UpdateQuantity(itemID int, quantity int) error {
	return s.cartRepo.SetQuantity(itemID, quantity)
}

// ClearCart deletes all line items for the session
func (s *CartService) ClearCart(sessionID string) error {
	return s.cartRepo.Clear(sessionID)
}

// Items returns the session's line items with catalog data joined fresh
func (s *CartService) Items(sessionID string) ([]*models.ResolvedCartItem, error) {
	return s.cartRepo.ListBySession(sessionID)
}

// Total returns the pre-discount subtotal in cents
func (s *CartService) Total(sessionID string) (int, error) {
	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return 0, err
	}
	return s.pricing.Subtotal(items), nil
}

// ItemCount returns the total quantity across the session's line items
func (s *CartService) ItemCount(sessionID string) (int, error) {
	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return 0, err
	}
	return models.ItemCount(items), nil
}
