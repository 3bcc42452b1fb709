package services

import (
	"errors"
	"testing"
	"time"

	"art-gallery-platform/internal/models"
)

// Mock implementations for testing

type mockDiscountRepository struct {
	codes      map[string]*models.DiscountCode
	shouldFail bool
}

func newMockDiscountRepository() *mockDiscountRepository {
	return &mockDiscountRepository{codes: make(map[string]*models.DiscountCode)}
}

func (m *mockDiscountRepository) GetActiveByCode(code string, appliesTo models.ItemType) (*models.DiscountCode, error) {
	if m.shouldFail {
		return nil, &models.StoreError{Op: "discount.get_by_code", Err: errors.New("connection refused")}
	}
	d, ok := m.codes[code]
	if !ok || !d.Active || d.AppliesTo != appliesTo {
		return nil, models.ErrDiscountInvalid
	}
	return d, nil
}

func (m *mockDiscountRepository) add(d *models.DiscountCode) {
	m.codes[d.Code] = d
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func save10() *models.DiscountCode {
	return &models.DiscountCode{
		ID:            1,
		Code:          "SAVE10",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		AppliesTo:     models.ItemTypeArtwork,
		StartDate:     testNow.AddDate(0, -1, 0),
		Active:        true,
	}
}

func cartOf(prices map[int]int) []*models.ResolvedCartItem {
	// prices maps unit price to quantity
	var items []*models.ResolvedCartItem
	for price, quantity := range prices {
		items = append(items, &models.ResolvedCartItem{
			CartLineItem: models.CartLineItem{ItemType: models.ItemTypeArtwork, Quantity: quantity},
			UnitPrice:    price,
		})
	}
	return items
}

func TestPricingService_Subtotal(t *testing.T) {
	s := NewPricingService(newMockDiscountRepository())

	tests := []struct {
		name  string
		items []*models.ResolvedCartItem
		want  int
	}{
		{"empty cart", nil, 0},
		{"single item", cartOf(map[int]int{1250: 1}), 1250},
		// 12.50 x 3 plus 5.00 x 1 = 42.50
		{"mixed items", cartOf(map[int]int{1250: 3, 500: 1}), 4250},
		{
			"free event ticket",
			[]*models.ResolvedCartItem{
				{CartLineItem: models.CartLineItem{ItemType: models.ItemTypeEvent, Quantity: 2}, UnitPrice: 0},
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Subtotal(tt.items); got != tt.want {
				t.Errorf("Subtotal() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPricingService_EvaluateDiscount_Percentage(t *testing.T) {
	repo := newMockDiscountRepository()
	repo.add(save10())
	s := NewPricingService(repo)

	applied, err := s.EvaluateDiscount("SAVE10", 10000, models.ItemTypeArtwork, testNow)
	if err != nil {
		t.Fatalf("EvaluateDiscount() error = %v", err)
	}
	if applied.Amount != 1000 {
		t.Errorf("Amount = %d, want 1000", applied.Amount)
	}
	if got := FinalTotal(10000, applied); got != 9000 {
		t.Errorf("FinalTotal() = %d, want 9000", got)
	}
}

func TestPricingService_EvaluateDiscount_CodeNormalization(t *testing.T) {
	repo := newMockDiscountRepository()
	repo.add(save10())
	s := NewPricingService(repo)

	for _, input := range []string{"save10", "  SAVE10  ", "Save10"} {
		applied, err := s.EvaluateDiscount(input, 10000, models.ItemTypeArtwork, testNow)
		if err != nil {
			t.Errorf("EvaluateDiscount(%q) error = %v", input, err)
			continue
		}
		if applied.Code != "SAVE10" {
			t.Errorf("EvaluateDiscount(%q) code = %q, want SAVE10", input, applied.Code)
		}
	}
}

func TestPricingService_EvaluateDiscount_Rejections(t *testing.T) {
	expired := save10()
	expired.Code = "EXPIRED"
	pastEnd := testNow.AddDate(0, 0, -7)
	expired.EndDate = &pastEnd

	notStarted := save10()
	notStarted.Code = "SOON"
	notStarted.StartDate = testNow.AddDate(0, 1, 0)

	exhausted := save10()
	exhausted.Code = "MAXED"
	exhausted.MaxUses = 5
	exhausted.CurrentUses = 5

	inactive := save10()
	inactive.Code = "KILLED"
	inactive.Active = false

	minPurchase := save10()
	minPurchase.Code = "BIGSPEND"
	minPurchase.MinPurchase = 20000

	eventOnly := save10()
	eventOnly.Code = "EVENTS"
	eventOnly.AppliesTo = models.ItemTypeEvent

	repo := newMockDiscountRepository()
	for _, d := range []*models.DiscountCode{expired, notStarted, exhausted, inactive, minPurchase, eventOnly} {
		repo.add(d)
	}
	s := NewPricingService(repo)

	tests := []struct {
		name        string
		code        string
		composition models.ItemType
		wantErr     error
	}{
		{"unknown code", "NOPE", models.ItemTypeArtwork, models.ErrDiscountInvalid},
		{"empty code", "   ", models.ItemTypeArtwork, models.ErrDiscountInvalid},
		{"inactive code", "KILLED", models.ItemTypeArtwork, models.ErrDiscountInvalid},
		{"wrong composition", "EVENTS", models.ItemTypeArtwork, models.ErrDiscountInvalid},
		{"past end date", "EXPIRED", models.ItemTypeArtwork, models.ErrDiscountExpired},
		{"before start date", "SOON", models.ItemTypeArtwork, models.ErrDiscountExpired},
		{"usage cap reached", "MAXED", models.ItemTypeArtwork, models.ErrDiscountExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.EvaluateDiscount(tt.code, 10000, tt.composition, testNow)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EvaluateDiscount() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("below minimum carries required amount", func(t *testing.T) {
		_, err := s.EvaluateDiscount("BIGSPEND", 10000, models.ItemTypeArtwork, testNow)
		var belowMin *models.BelowMinimumError
		if !errors.As(err, &belowMin) {
			t.Fatalf("EvaluateDiscount() error = %v, want BelowMinimumError", err)
		}
		if belowMin.Required != 20000 {
			t.Errorf("Required = %d, want 20000", belowMin.Required)
		}
	})

	t.Run("expired wins over other rejections", func(t *testing.T) {
		// The window check runs before the usage cap check
		both := save10()
		both.Code = "BOTH"
		pastEnd := testNow.AddDate(0, 0, -1)
		both.EndDate = &pastEnd
		both.MaxUses = 5
		both.CurrentUses = 5
		repo.add(both)

		_, err := s.EvaluateDiscount("BOTH", 10000, models.ItemTypeArtwork, testNow)
		if !errors.Is(err, models.ErrDiscountExpired) {
			t.Errorf("EvaluateDiscount() error = %v, want %v", err, models.ErrDiscountExpired)
		}
	})
}

func TestPricingService_EvaluateDiscount_FixedClampedToSubtotal(t *testing.T) {
	// A 500.00 fixed discount on a 50.00 cart must not drive the total negative
	fixed := &models.DiscountCode{
		Code:          "BIGFIXED",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 50000,
		AppliesTo:     models.ItemTypeArtwork,
		StartDate:     testNow.AddDate(0, -1, 0),
		Active:        true,
	}
	repo := newMockDiscountRepository()
	repo.add(fixed)
	s := NewPricingService(repo)

	applied, err := s.EvaluateDiscount("BIGFIXED", 5000, models.ItemTypeArtwork, testNow)
	if err != nil {
		t.Fatalf("EvaluateDiscount() error = %v", err)
	}
	if applied.Amount != 5000 {
		t.Errorf("Amount = %d, want clamped 5000", applied.Amount)
	}
	if got := FinalTotal(5000, applied); got != 0 {
		t.Errorf("FinalTotal() = %d, want 0", got)
	}
}

func TestPricingService_EvaluateDiscount_StoreFailurePropagates(t *testing.T) {
	repo := newMockDiscountRepository()
	repo.shouldFail = true
	s := NewPricingService(repo)

	_, err := s.EvaluateDiscount("SAVE10", 10000, models.ItemTypeArtwork, testNow)
	var storeErr *models.StoreError
	if !errors.As(err, &storeErr) {
		t.Errorf("EvaluateDiscount() error = %v, want StoreError", err)
	}
	if models.IsDiscountError(err) {
		t.Error("store failure must not classify as a discount rejection")
	}
}

func TestFinalTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int
		applied  *models.AppliedDiscount
		want     int
	}{
		{"no discount", 4250, nil, 4250},
		{"partial discount", 10000, &models.AppliedDiscount{Amount: 1000}, 9000},
		{"discount equals subtotal", 5000, &models.AppliedDiscount{Amount: 5000}, 0},
		// Floor holds even for an unclamped amount
		{"oversized discount floors at zero", 5000, &models.AppliedDiscount{Amount: 50000}, 0},
		{"empty cart", 0, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FinalTotal(tt.subtotal, tt.applied); got != tt.want {
				t.Errorf("FinalTotal() = %d, want %d", got, tt.want)
			}
		})
	}
}
