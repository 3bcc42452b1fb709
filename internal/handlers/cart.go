package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"art-gallery-platform/internal/middleware"
	"art-gallery-platform/internal/models"
	"art-gallery-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// CartHandler handles shopping cart, discount, and checkout requests
type CartHandler struct {
	cartService     services.CartServiceInterface
	pricingService  services.PricingServiceInterface
	checkoutService services.CheckoutServiceInterface
	sessions        middleware.SessionProvider
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	cartService services.CartServiceInterface,
	pricingService services.PricingServiceInterface,
	checkoutService services.CheckoutServiceInterface,
	sessions middleware.SessionProvider,
) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		pricingService:  pricingService,
		checkoutService: checkoutService,
		sessions:        sessions,
	}
}

// cartView is the cart page payload: live items plus derived totals
type cartView struct {
	Items     []*models.ResolvedCartItem `json:"items"`
	ItemCount int                        `json:"item_count"`
	Total     int                        `json:"total"` // pre-discount subtotal in cents
}

func (h *CartHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := h.sessions.SessionID(w, r)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "cart is unavailable right now")
		return "", false
	}
	return id, true
}

// GetCart returns the session's cart with joined catalog data
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	items, err := h.cartService.Items(sessionID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartView{
		Items:     items,
		ItemCount: models.ItemCount(items),
		Total:     h.pricingService.Subtotal(items),
	})
}

// AddItem adds a catalog entity to the cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req struct {
		ItemType    models.ItemType `json:"item_type"`
		ReferenceID int             `json:"reference_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cartService.AddToCart(sessionID, req.ItemType, req.ReferenceID); err != nil {
		respondDomainError(w, err)
		return
	}

	h.GetCart(w, r)
}

// UpdateItem sets a line item's quantity; zero or less removes it
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessionID(w, r); !ok {
		return
	}

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cartService.UpdateQuantity(itemID, req.Quantity); err != nil {
		respondDomainError(w, err)
		return
	}

	h.GetCart(w, r)
}

// RemoveItem deletes a line item
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessionID(w, r); !ok {
		return
	}

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.cartService.RemoveFromCart(itemID); err != nil {
		respondDomainError(w, err)
		return
	}

	h.GetCart(w, r)
}

// ClearCart removes every line item for the session
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.cartService.ClearCart(sessionID); err != nil {
		respondDomainError(w, err)
		return
	}

	h.GetCart(w, r)
}

// ApplyDiscount evaluates a user-entered code against the live cart. The
// result is returned to the caller and kept UI-session scoped; nothing is
// persisted and usage is not consumed until checkout.
func (h *CartHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, err := h.cartService.Items(sessionID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	subtotal := h.pricingService.Subtotal(items)
	applied, err := h.pricingService.EvaluateDiscount(req.Code, subtotal, models.DominantType(items), time.Now())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"discount": applied,
		"subtotal": subtotal,
		"total":    services.FinalTotal(subtotal, applied),
	})
}

// Checkout places an order from the live cart and clears it
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req services.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.checkoutService.PlaceOrder(sessionID, &req, time.Now())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
