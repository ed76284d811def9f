package services

import (
	"context"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/repositories"
)

const defaultLatestReviewCount = 5

// ReviewService serves the latest-reviews feed shown on the top page
type ReviewService struct {
	repo repositories.StoreRepository
}

// NewReviewService creates a new review service
func NewReviewService(repo repositories.StoreRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// Latest returns the count most recent reviews across all stores, newest
// first, each annotated with its store
func (s *ReviewService) Latest(ctx context.Context, count int) ([]entities.ReviewWithStore, error) {
	if count <= 0 {
		count = defaultLatestReviewCount
	}
	return s.repo.LatestReviews(ctx, count)
}
