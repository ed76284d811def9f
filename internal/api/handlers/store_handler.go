package handlers

import (
	"net/http"
	"strconv"

	"github.com/nabe7855/FindMe/internal/application/services"
	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/presenter"
)

// StoreHandler handles store catalog HTTP requests
type StoreHandler struct {
	storeService *services.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// ListStores handles GET /api/stores
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.storeService.GetAll(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stores": stores,
		"count":  len(stores),
	})
}

// SearchStores handles GET /api/stores/search. Unknown query parameters
// are ignored; absent ones fall back to the unconstrained defaults.
func (h *StoreHandler) SearchStores(w http.ResponseWriter, r *http.Request) {
	criteria := entities.DecodeCriteria(r.URL.Query())

	stores, err := h.storeService.Search(r.Context(), criteria)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	view := presenter.Present(presenter.ViewState{
		Items: entities.CatalogItems(stores),
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stores":   stores,
		"count":    len(stores),
		"criteria": criteria,
		"view":     view,
	})
}

// GetStore handles GET /api/stores/{id}
func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "store ID must be an integer")
		return
	}

	store, err := h.storeService.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, store)
}
