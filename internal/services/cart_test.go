package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"art-gallery-platform/internal/models"
)

// mockCartRepository mimics the store's upsert semantics in memory, including
// the join-time price resolution against a fake catalog.
type mockCartRepository struct {
	items         map[int]*models.CartLineItem
	prices        map[models.ItemType]map[int]int // catalog prices in cents
	nextID        int
	shouldFailOps map[string]bool
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{
		items: make(map[int]*models.CartLineItem),
		prices: map[models.ItemType]map[int]int{
			models.ItemTypeArtwork: {1: 1250, 2: 500},
			models.ItemTypeEvent:   {1: 2000, 2: 0},
		},
		nextID:        1,
		shouldFailOps: make(map[string]bool),
	}
}

func (m *mockCartRepository) fail(op string) error {
	if m.shouldFailOps[op] {
		return &models.StoreError{Op: "cart." + op, Err: errors.New("connection refused")}
	}
	return nil
}

func (m *mockCartRepository) ListBySession(sessionID string) ([]*models.ResolvedCartItem, error) {
	if err := m.fail("list"); err != nil {
		return nil, err
	}

	var items []*models.ResolvedCartItem
	for _, li := range m.items {
		if li.SessionID != sessionID {
			continue
		}
		items = append(items, &models.ResolvedCartItem{
			CartLineItem: *li,
			UnitPrice:    m.prices[li.ItemType][li.ReferenceID],
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *mockCartRepository) Add(sessionID string, itemType models.ItemType, referenceID int) error {
	if err := m.fail("add"); err != nil {
		return err
	}

	for _, li := range m.items {
		if li.SessionID == sessionID && li.ItemType == itemType && li.ReferenceID == referenceID {
			li.Quantity++
			return nil
		}
	}
	m.items[m.nextID] = &models.CartLineItem{
		ID:          m.nextID,
		SessionID:   sessionID,
		ItemType:    itemType,
		ReferenceID: referenceID,
		Quantity:    1,
		CreatedAt:   time.Now(),
	}
	m.nextID++
	return nil
}

func (m *mockCartRepository) SetQuantity(itemID int, quantity int) error {
	if err := m.fail("set_quantity"); err != nil {
		return err
	}

	if quantity <= 0 {
		return m.Remove(itemID)
	}
	li, ok := m.items[itemID]
	if !ok {
		return models.ErrCartItemNotFound
	}
	li.Quantity = quantity
	return nil
}

func (m *mockCartRepository) Remove(itemID int) error {
	if err := m.fail("remove"); err != nil {
		return err
	}
	delete(m.items, itemID)
	return nil
}

func (m *mockCartRepository) Clear(sessionID string) error {
	if err := m.fail("clear"); err != nil {
		return err
	}
	for id, li := range m.items {
		if li.SessionID == sessionID {
			delete(m.items, id)
		}
	}
	return nil
}

func newTestCartService() (*CartService, *mockCartRepository) {
	repo := newMockCartRepository()
	return NewCartService(repo, NewPricingService(newMockDiscountRepository())), repo
}

func TestCartService_AddToCart_RepeatedAddsIncrement(t *testing.T) {
	s, _ := newTestCartService()

	// Five adds for the same entity yield one line item with quantity 5
	for i := 0; i < 5; i++ {
		if err := s.AddToCart("sess-1", models.ItemTypeArtwork, 1); err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
	}

	items, err := s.Items("sess-1")
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestCartService_AddToCart_Validation(t *testing.T) {
	s, _ := newTestCartService()

	tests := []struct {
		name        string
		sessionID   string
		itemType    models.ItemType
		referenceID int
	}{
		{"empty session", "", models.ItemTypeArtwork, 1},
		{"bad item type", "sess-1", "sculpture", 1},
		{"non-positive reference", "sess-1", models.ItemTypeArtwork, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddToCart(tt.sessionID, tt.itemType, tt.referenceID)
			var validationErr *models.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("AddToCart() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestCartService_UpdateQuantity_ZeroAndNegativeRemove(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		s, _ := newTestCartService()

		if err := s.AddToCart("sess-1", models.ItemTypeArtwork, 1); err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
		items, _ := s.Items("sess-1")

		if err := s.UpdateQuantity(items[0].ID, quantity); err != nil {
			t.Fatalf("UpdateQuantity(%d) error = %v", quantity, err)
		}

		remaining, err := s.Items("sess-1")
		if err != nil {
			t.Fatalf("Items() error = %v", err)
		}
		if len(remaining) != 0 {
			t.Errorf("after UpdateQuantity(%d): got %d items, want 0", quantity, len(remaining))
		}
	}
}

func TestCartService_TotalReflectsCatalogPrices(t *testing.T) {
	s, _ := newTestCartService()

	// artwork 1 at 12.50 x3, artwork 2 at 5.00 x1 -> 42.50
	for i := 0; i < 3; i++ {
		if err := s.AddToCart("sess-1", models.ItemTypeArtwork, 1); err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
	}
	if err := s.AddToCart("sess-1", models.ItemTypeArtwork, 2); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	total, err := s.Total("sess-1")
	if err != nil {
		t.Fatalf("Total() error = %v", err)
	}
	if total != 4250 {
		t.Errorf("Total() = %d, want 4250", total)
	}

	count, err := s.ItemCount("sess-1")
	if err != nil {
		t.Fatalf("ItemCount() error = %v", err)
	}
	if count != 4 {
		t.Errorf("ItemCount() = %d, want 4", count)
	}
}

func TestCartService_PriceChangesPropagateToOpenCarts(t *testing.T) {
	s, repo := newTestCartService()

	if err := s.AddToCart("sess-1", models.ItemTypeArtwork, 1); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	// Catalog price change must be visible on the next read
	repo.prices[models.ItemTypeArtwork][1] = 9900

	total, err := s.Total("sess-1")
	if err != nil {
		t.Fatalf("Total() error = %v", err)
	}
	if total != 9900 {
		t.Errorf("Total() = %d, want 9900 after catalog price change", total)
	}
}

func TestCartService_ClearCart(t *testing.T) {
	s, _ := newTestCartService()

	if err := s.AddToCart("sess-1", models.ItemTypeArtwork, 1); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if err := s.AddToCart("sess-1", models.ItemTypeEvent, 1); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	// Another session's cart must survive the clear
	if err := s.AddToCart("sess-2", models.ItemTypeArtwork, 2); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	if err := s.ClearCart("sess-1"); err != nil {
		t.Fatalf("ClearCart() error = %v", err)
	}

	items, err := s.Items("sess-1")
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items after clear, want 0", len(items))
	}

	total, _ := s.Total("sess-1")
	if total != 0 {
		t.Errorf("Total() = %d after clear, want 0", total)
	}

	other, _ := s.Items("sess-2")
	if len(other) != 1 {
		t.Errorf("other session has %d items, want 1", len(other))
	}
}

func TestCartService_RoundTrip(t *testing.T) {
	s, _ := newTestCartService()

	if err := s.AddToCart("sess-1", models.ItemTypeEvent, 2); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	items, err := s.Items("sess-1")
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].ItemType != models.ItemTypeEvent || items[0].ReferenceID != 2 || items[0].Quantity != 1 {
		t.Errorf("round-trip mismatch: %+v", items[0])
	}

	if err := s.RemoveFromCart(items[0].ID); err != nil {
		t.Fatalf("RemoveFromCart() error = %v", err)
	}

	items, err = s.Items("sess-1")
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items after remove, want 0", len(items))
	}
}

func TestCartService_RemoveMissingIsNoOp(t *testing.T) {
	s, _ := newTestCartService()

	if err := s.RemoveFromCart(404); err != nil {
		t.Errorf("RemoveFromCart() on missing id = %v, want nil", err)
	}
}

func TestCartService_StoreFailurePropagates(t *testing.T) {
	s, repo := newTestCartService()
	repo.shouldFailOps["add"] = true

	err := s.AddToCart("sess-1", models.ItemTypeArtwork, 1)
	var storeErr *models.StoreError
	if !errors.As(err, &storeErr) {
		t.Errorf("AddToCart() error = %v, want StoreError", err)
	}
}
