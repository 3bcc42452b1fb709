package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"art-gallery-platform/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps typed domain errors onto status codes and
// non-technical messages. Store failures never leak their cause to the user.
func respondDomainError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var storeErr *models.StoreError

	switch {
	case models.IsDiscountError(err):
		respondMessage(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &validationErr):
		respondMessage(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, models.ErrCartEmpty):
		respondMessage(w, http.StatusBadRequest, "your cart is empty")
	case errors.Is(err, models.ErrCartItemNotFound):
		respondMessage(w, http.StatusNotFound, "cart item not found")
	case errors.Is(err, models.ErrArtworkNotFound),
		errors.Is(err, models.ErrArtistNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrPageNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.As(err, &storeErr):
		log.Printf("store failure: %v", err)
		respondMessage(w, http.StatusInternalServerError, "something went wrong, please try again")
	default:
		log.Printf("unexpected error: %v", err)
		respondMessage(w, http.StatusInternalServerError, "something went wrong, please try again")
	}
}
