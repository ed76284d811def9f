package repositories

import (
	"context"

	"github.com/nabe7855/FindMe/internal/domain/entities"
)

// StoreRepository defines read access to the store catalog
type StoreRepository interface {
	// GetAll retrieves the full catalog in its canonical display order
	GetAll(ctx context.Context) ([]*entities.Store, error)

	// GetByID retrieves a single store; a missing ID yields a NOT_FOUND
	// AppError, not a nil store
	GetByID(ctx context.Context, id int) (*entities.Store, error)

	// LatestReviews retrieves the most recent reviews across all stores,
	// newest first, annotated with store name and ID
	LatestReviews(ctx context.Context, count int) ([]entities.ReviewWithStore, error)
}

// StoreSearchRepository defines the interface for an external store
// keyword index (e.g. Typesense). Criteria filtering semantics stay with
// the in-process matcher; the index only accelerates keyword lookups.
type StoreSearchRepository interface {
	// Search returns stores matching the criteria keyword
	Search(ctx context.Context, criteria entities.SearchCriteria) ([]*entities.Store, error)

	// Index upserts a store document into the index
	Index(ctx context.Context, store *entities.Store) error

	// Delete removes a store from the index
	Delete(ctx context.Context, id int) error
}
