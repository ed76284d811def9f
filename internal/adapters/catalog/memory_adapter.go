package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/repositories"
	apperrors "github.com/nabe7855/FindMe/pkg/errors"
)

// MemoryAdapter serves the catalog from an in-memory store list. It backs
// local development and tests, and stands in for the external catalog
// management process that owns store records.
type MemoryAdapter struct {
	mu     sync.RWMutex
	stores []*entities.Store
}

// NewMemoryAdapter creates an adapter over the given stores, keeping
// their order as the canonical catalog order
func NewMemoryAdapter(stores []*entities.Store) repositories.StoreRepository {
	return &MemoryAdapter{stores: stores}
}

// NewSeededAdapter creates an adapter preloaded with the demo catalog
func NewSeededAdapter() repositories.StoreRepository {
	return NewMemoryAdapter(SeedStores())
}

// GetAll retrieves the full catalog in canonical order
func (a *MemoryAdapter) GetAll(ctx context.Context) ([]*entities.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*entities.Store, len(a.stores))
	copy(out, a.stores)
	return out, nil
}

// GetByID retrieves a single store
func (a *MemoryAdapter) GetByID(ctx context.Context, id int) (*entities.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, store := range a.stores {
		if store.ID == id {
			return store, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("store %d not found", id))
}

// LatestReviews flattens reviews across stores and returns the newest
// count of them
func (a *MemoryAdapter) LatestReviews(ctx context.Context, count int) ([]entities.ReviewWithStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	var all []entities.ReviewWithStore
	for _, store := range a.stores {
		for _, review := range store.Reviews {
			all = append(all, entities.ReviewWithStore{
				Review:    review,
				StoreID:   store.ID,
				StoreName: store.Name,
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	if count < len(all) {
		all = all[:count]
	}
	return all, nil
}
