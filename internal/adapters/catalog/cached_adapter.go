package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/providers"
	"github.com/nabe7855/FindMe/internal/domain/repositories"
	"github.com/rs/zerolog/log"
)

// Cache TTLs (in seconds)
const (
	catalogTTL       = 300
	storeByIDTTL     = 600
	latestReviewsTTL = 120
)

// CachedAdapter wraps a StoreRepository with read-through caching. Cache
// failures never fail a read; they fall through to the inner adapter.
type CachedAdapter struct {
	inner repositories.StoreRepository
	cache providers.CacheProvider
}

// NewCachedAdapter creates a caching wrapper around any catalog adapter
func NewCachedAdapter(inner repositories.StoreRepository, cache providers.CacheProvider) repositories.StoreRepository {
	return &CachedAdapter{
		inner: inner,
		cache: cache,
	}
}

func storeCacheKey(id int) string {
	return fmt.Sprintf("store:%d", id)
}

func latestReviewsCacheKey(count int) string {
	return fmt.Sprintf("reviews:latest:%d", count)
}

const catalogCacheKey = "stores:all"

// GetAll retrieves the catalog, preferring the cached snapshot
func (a *CachedAdapter) GetAll(ctx context.Context) ([]*entities.Store, error) {
	if cached, err := a.cache.Get(ctx, catalogCacheKey); err == nil {
		var stores []*entities.Store
		if err := json.Unmarshal(cached, &stores); err == nil {
			return stores, nil
		}
		log.Warn().Err(err).Msg("failed to unmarshal cached catalog")
	}

	stores, err := a.inner.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	a.fill(catalogCacheKey, stores, catalogTTL)
	return stores, nil
}

// GetByID retrieves a store, preferring the cache
func (a *CachedAdapter) GetByID(ctx context.Context, id int) (*entities.Store, error) {
	key := storeCacheKey(id)

	if cached, err := a.cache.Get(ctx, key); err == nil {
		var store entities.Store
		if err := json.Unmarshal(cached, &store); err == nil {
			return &store, nil
		}
		log.Warn().Err(err).Str("key", key).Msg("failed to unmarshal cached store")
	}

	store, err := a.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.fill(key, store, storeByIDTTL)
	return store, nil
}

// LatestReviews retrieves the newest reviews, preferring the cache
func (a *CachedAdapter) LatestReviews(ctx context.Context, count int) ([]entities.ReviewWithStore, error) {
	key := latestReviewsCacheKey(count)

	if cached, err := a.cache.Get(ctx, key); err == nil {
		var reviews []entities.ReviewWithStore
		if err := json.Unmarshal(cached, &reviews); err == nil {
			return reviews, nil
		}
	}

	reviews, err := a.inner.LatestReviews(ctx, count)
	if err != nil {
		return nil, err
	}

	a.fill(key, reviews, latestReviewsTTL)
	return reviews, nil
}

// fill updates the cache asynchronously so responses are not blocked on
// the cache write
func (a *CachedAdapter) fill(key string, value interface{}, ttl int) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	go func() {
		if err := a.cache.Set(context.Background(), key, data, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to fill cache")
		}
	}()
}
