package handlers

import (
	"net/http"
	"strconv"

	"art-gallery-platform/internal/repositories"

	"github.com/go-chi/chi/v5"
)

// PublicHandler serves the storefront catalog
type PublicHandler struct {
	artworkRepo *repositories.ArtworkRepository
	artistRepo  *repositories.ArtistRepository
	eventRepo   *repositories.EventRepository
	pageRepo    *repositories.PageContentRepository
}

// NewPublicHandler creates a new public catalog handler
func NewPublicHandler(
	artworkRepo *repositories.ArtworkRepository,
	artistRepo *repositories.ArtistRepository,
	eventRepo *repositories.EventRepository,
	pageRepo *repositories.PageContentRepository,
) *PublicHandler {
	return &PublicHandler{
		artworkRepo: artworkRepo,
		artistRepo:  artistRepo,
		eventRepo:   eventRepo,
		pageRepo:    pageRepo,
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// ListArtworks returns available artworks for the storefront
func (h *PublicHandler) ListArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.artworkRepo.List(true)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, artworks)
}

// GetArtwork returns a single artwork
func (h *PublicHandler) GetArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	artwork, err := h.artworkRepo.GetByID(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, artwork)
}

// ListArtists returns all artists
func (h *PublicHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artistRepo.List()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, artists)
}

// GetArtist returns an artist along with their artworks
func (h *PublicHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	artist, err := h.artistRepo.GetByID(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	artworks, err := h.artworkRepo.ListByArtist(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"artist":   artist,
		"artworks": artworks,
	})
}

// ListEvents returns upcoming events
func (h *PublicHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventRepo.List(true)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// GetEvent returns a single event
func (h *PublicHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := h.eventRepo.GetByID(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

// GetPageContent returns the copy for a storefront section
func (h *PublicHandler) GetPageContent(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if section == "" {
		respondMessage(w, http.StatusBadRequest, "section is required")
		return
	}

	content, err := h.pageRepo.GetBySection(section)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, content)
}
