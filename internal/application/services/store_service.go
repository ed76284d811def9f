package services

import (
	"context"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/repositories"
	"github.com/rs/zerolog/log"
)

// StoreService handles catalog reads and criteria search
type StoreService struct {
	repo       repositories.StoreRepository
	searchRepo repositories.StoreSearchRepository
}

// NewStoreService creates a new store service. searchRepo may be nil;
// search then runs entirely against the catalog snapshot.
func NewStoreService(repo repositories.StoreRepository, searchRepo repositories.StoreSearchRepository) *StoreService {
	return &StoreService{
		repo:       repo,
		searchRepo: searchRepo,
	}
}

// GetAll retrieves the full catalog
func (s *StoreService) GetAll(ctx context.Context) ([]*entities.Store, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a store by ID
func (s *StoreService) GetByID(ctx context.Context, id int) (*entities.Store, error) {
	return s.repo.GetByID(ctx, id)
}

// Search matches the catalog against the criteria. The in-process
// matcher over the catalog snapshot decides inclusion and ordering:
// the keyword index tokenizes, so it misses infix substring hits and
// returns relevance order instead of catalog order. The index serves
// only as a best-effort fallback when the catalog source is down and
// the criteria carries a keyword; its candidates still pass through
// the matcher.
func (s *StoreService) Search(ctx context.Context, criteria entities.SearchCriteria) ([]*entities.Store, error) {
	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		if s.searchRepo != nil && criteria.Keyword != "" {
			candidates, serr := s.searchRepo.Search(ctx, criteria)
			if serr == nil {
				log.Warn().Err(err).Msg("catalog unavailable, serving keyword index candidates")
				return MatchStores(candidates, criteria), nil
			}
		}
		return nil, err
	}
	return MatchStores(catalog, criteria), nil
}

// Reindex pushes the full catalog into the keyword index. A no-op
// without an index configured.
func (s *StoreService) Reindex(ctx context.Context) error {
	if s.searchRepo == nil {
		return nil
	}
	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, store := range catalog {
		if err := s.searchRepo.Index(ctx, store); err != nil {
			// Eventual consistency: log and keep indexing the rest
			log.Warn().Err(err).Int("store_id", store.ID).Msg("failed to index store")
		}
	}
	return nil
}
