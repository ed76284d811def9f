package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nabe7855/FindMe/internal/application/services"
	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/providers"
	"github.com/nabe7855/FindMe/internal/presenter"
	apperrors "github.com/nabe7855/FindMe/pkg/errors"
)

// ConciergeHandler handles AI concierge HTTP requests. Each request gets
// its own pipeline: the pipeline's status triple belongs to one logical
// caller, and sharing it across requests would let concurrent callers
// observe each other's results.
type ConciergeHandler struct {
	provider providers.RecommendationProvider
}

// NewConciergeHandler creates a new concierge handler. A nil provider is
// the degraded no-credential configuration.
func NewConciergeHandler(provider providers.RecommendationProvider) *ConciergeHandler {
	return &ConciergeHandler{
		provider: provider,
	}
}

type conciergeRequest struct {
	UserInput string `json:"user_input"`
}

// Recommend handles POST /api/concierge. A backend failure is not an
// HTTP failure: the pipeline substitutes its fallback batch and the
// response carries the fixed user-facing message alongside it, so the
// client always has something to show.
func (h *ConciergeHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req conciergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pipeline := services.NewConciergePipeline(h.provider)

	err := pipeline.Submit(r.Context(), req.UserInput)
	if err != nil && apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		respondWithAppError(w, err)
		return
	}

	results := pipeline.Results()
	view := presenter.Present(presenter.ViewState{
		Items: entities.RecommendationItems(results),
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  pipeline.Status(),
		"message": pipeline.ErrorMessage(),
		"results": results,
		"view":    view,
	})
}
