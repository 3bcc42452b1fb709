package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"art-gallery-platform/internal/models"
	"art-gallery-platform/internal/repositories"
	"art-gallery-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxImageUploadSize bounds admin image uploads (10 MB)
const maxImageUploadSize = 10 << 20

// AdminHandler handles catalog and discount management requests. Admin
// authentication lives at the hosting layer in front of these routes.
type AdminHandler struct {
	artworkRepo  *repositories.ArtworkRepository
	artistRepo   *repositories.ArtistRepository
	eventRepo    *repositories.EventRepository
	discountRepo *repositories.DiscountRepository
	orderRepo    *repositories.OrderRepository
	pageRepo     *repositories.PageContentRepository
	storage      services.StorageService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	artworkRepo *repositories.ArtworkRepository,
	artistRepo *repositories.ArtistRepository,
	eventRepo *repositories.EventRepository,
	discountRepo *repositories.DiscountRepository,
	orderRepo *repositories.OrderRepository,
	pageRepo *repositories.PageContentRepository,
	storage services.StorageService,
) *AdminHandler {
	return &AdminHandler{
		artworkRepo:  artworkRepo,
		artistRepo:   artistRepo,
		eventRepo:    eventRepo,
		discountRepo: discountRepo,
		orderRepo:    orderRepo,
		pageRepo:     pageRepo,
		storage:      storage,
	}
}

// ListDiscounts returns all discount codes, newest first
func (h *AdminHandler) ListDiscounts(w http.ResponseWriter, r *http.Request) {
	discounts, err := h.discountRepo.List()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, discounts)
}

// CreateDiscount creates a new discount code
func (h *AdminHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	var discount models.DiscountCode
	if err := json.NewDecoder(r.Body).Decode(&discount); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.discountRepo.Create(&discount)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateDiscount rewrites an existing discount code
func (h *AdminHandler) UpdateDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid discount id")
		return
	}

	var discount models.DiscountCode
	if err := json.NewDecoder(r.Body).Decode(&discount); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.discountRepo.Update(id, &discount)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeactivateDiscount flips a code's kill-switch off
func (h *AdminHandler) DeactivateDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid discount id")
		return
	}

	if err := h.discountRepo.SetActive(id, false); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// DeleteDiscount removes a discount code
func (h *AdminHandler) DeleteDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid discount id")
		return
	}

	if err := h.discountRepo.Delete(id); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateArtwork creates a new artwork
func (h *AdminHandler) CreateArtwork(w http.ResponseWriter, r *http.Request) {
	var artwork models.Artwork
	if err := json.NewDecoder(r.Body).Decode(&artwork); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.artworkRepo.Create(&artwork)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateArtwork rewrites an artwork
func (h *AdminHandler) UpdateArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	var artwork models.Artwork
	if err := json.NewDecoder(r.Body).Decode(&artwork); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.artworkRepo.Update(id, &artwork)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteArtwork removes an artwork
func (h *AdminHandler) DeleteArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	if err := h.artworkRepo.Delete(id); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateArtist creates a new artist
func (h *AdminHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var artist models.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.artistRepo.Create(&artist)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateArtist rewrites an artist
func (h *AdminHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	var artist models.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.artistRepo.Update(id, &artist)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteArtist removes an artist
func (h *AdminHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	if err := h.artistRepo.Delete(id); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateEvent creates a new event
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.eventRepo.Create(&event)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateEvent rewrites an event
func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.eventRepo.Update(id, &event)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteEvent removes an event
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := h.eventRepo.Delete(id); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage accepts an image blob and stores it under the requested bucket
// namespace, returning the public URL for the catalog record
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondMessage(w, http.StatusServiceUnavailable, "image storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	namespace := r.FormValue("bucket")
	if namespace == "" {
		namespace = "artworks"
	}

	key := fmt.Sprintf("%s/%s%s", namespace, uuid.NewString(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")

	url, err := h.storage.Upload(r.Context(), key, file, contentType, header.Size)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, "image upload failed, please try again")
		return
	}

	respondJSON(w, http.StatusCreated, services.ImageMetadata{
		Key:         key,
		URL:         url,
		Size:        header.Size,
		ContentType: contentType,
		UploadedAt:  time.Now(),
	})
}

// ListOrders returns incoming orders for the dashboard
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.orderRepo.List(limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetOrder returns one order with its snapshotted lines
func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderRepo.GetByID(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items, err := h.orderRepo.GetItems(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order": order,
		"items": items,
	})
}

// UpdateOrderStatus moves an order through its lifecycle
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.orderRepo.UpdateStatus(id, req.Status); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}

// UpdatePageContent writes the copy for a storefront section
func (h *AdminHandler) UpdatePageContent(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if section == "" {
		respondMessage(w, http.StatusBadRequest, "section is required")
		return
	}

	var content models.PageContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	content.Section = section

	saved, err := h.pageRepo.Upsert(&content)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}
