package handlers

import (
	"net/http"
	"strconv"

	"github.com/nabe7855/FindMe/internal/application/services"
)

// ReviewHandler handles review feed HTTP requests
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// LatestReviews handles GET /api/reviews/latest
func (h *ReviewHandler) LatestReviews(w http.ResponseWriter, r *http.Request) {
	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = parsed
	}

	reviews, err := h.reviewService.Latest(r.Context(), count)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}
