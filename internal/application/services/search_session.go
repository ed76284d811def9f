package services

import (
	"context"
	"sync"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/repositories"
	apperrors "github.com/nabe7855/FindMe/pkg/errors"
	"github.com/rs/zerolog/log"
)

// SessionStatus is the lifecycle state of a search session
type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"
	SessionLoading SessionStatus = "loading"
	SessionReady   SessionStatus = "ready"
	SessionFailed  SessionStatus = "failed"
)

// SearchSession owns the current criteria, the catalog snapshot fetched
// once per initialization, and the filtered results. Criteria changes
// recompute synchronously against the snapshot; they never trigger a new
// fetch. All state is guarded by one mutex so callers may drive the
// session from any goroutine.
type SearchSession struct {
	repo repositories.StoreRepository

	mu       sync.Mutex
	status   SessionStatus
	criteria entities.SearchCriteria
	snapshot []*entities.Store
	results  []*entities.Store

	// generation increments per initialize; a fetch that resolves under a
	// newer generation is discarded
	generation uint64
	inFlight   bool
}

// NewSearchSession creates an idle session over the given catalog
func NewSearchSession(repo repositories.StoreRepository) *SearchSession {
	return &SearchSession{
		repo:     repo,
		status:   SessionIdle,
		criteria: entities.DefaultCriteria(),
	}
}

// Initialize fetches the catalog once and computes the first result set.
// A second call while a fetch is in flight is a no-op. After the fetch
// resolves, results reflect the most recently submitted criteria, not
// necessarily the one passed here (last writer wins).
func (s *SearchSession) Initialize(ctx context.Context, criteria entities.SearchCriteria) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	s.generation++
	gen := s.generation
	s.status = SessionLoading
	s.criteria = criteria
	s.mu.Unlock()

	stores, err := s.repo.GetAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// A newer initialization superseded this fetch
		return nil
	}
	s.inFlight = false

	if err != nil {
		log.Warn().Err(err).Msg("catalog fetch failed")
		s.status = SessionFailed
		s.snapshot = nil
		s.results = []*entities.Store{}
		return apperrors.NewCatalogUnavailableError(err)
	}

	s.snapshot = stores
	s.status = SessionReady
	s.results = MatchStores(s.snapshot, s.criteria)
	return nil
}

// Search replaces the criteria. With a loaded snapshot the results are
// recomputed synchronously; while the initial fetch is still pending the
// criteria is only recorded and applied once the fetch resolves.
func (s *SearchSession) Search(criteria entities.SearchCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = criteria
	if s.snapshot != nil && !s.inFlight {
		s.results = MatchStores(s.snapshot, s.criteria)
	}
}

// Status returns the current lifecycle state
func (s *SearchSession) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Criteria returns the most recently submitted criteria
func (s *SearchSession) Criteria() entities.SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Results returns the current filtered result set
func (s *SearchSession) Results() []*entities.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}
