package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabe7855/FindMe/internal/adapters/catalog"
	"github.com/nabe7855/FindMe/internal/domain/entities"
	apperrors "github.com/nabe7855/FindMe/pkg/errors"
)

// stubCatalog is a StoreRepository test double with a controllable
// GetAll. The release channel, when set, blocks the fetch until closed.
type stubCatalog struct {
	stores  []*entities.Store
	err     error
	calls   int
	release chan struct{}
}

func (s *stubCatalog) GetAll(ctx context.Context) ([]*entities.Store, error) {
	s.calls++
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.stores, nil
}

func (s *stubCatalog) GetByID(ctx context.Context, id int) (*entities.Store, error) {
	for _, store := range s.stores {
		if store.ID == id {
			return store, nil
		}
	}
	return nil, apperrors.NewNotFoundError("store not found")
}

func (s *stubCatalog) LatestReviews(ctx context.Context, count int) ([]entities.ReviewWithStore, error) {
	return nil, nil
}

func TestSearchSession_InitializeLoadsSnapshotOnce(t *testing.T) {
	repo := &stubCatalog{stores: catalog.SeedStores()}
	session := NewSearchSession(repo)

	assert.Equal(t, SessionIdle, session.Status())

	err := session.Initialize(context.Background(), entities.DefaultCriteria())
	require.NoError(t, err)

	assert.Equal(t, SessionReady, session.Status())
	assert.Len(t, session.Results(), 5)
	assert.Equal(t, 1, repo.calls)

	// criteria changes never refetch
	session.Search(entities.SearchCriteria{Prefecture: "東京都", Genre: entities.CriteriaAll})
	session.Search(entities.SearchCriteria{Prefecture: entities.CriteriaAll, Genre: "カフェ"})
	assert.Equal(t, 1, repo.calls)
}

func TestSearchSession_SearchRecomputesSynchronously(t *testing.T) {
	repo := &stubCatalog{stores: catalog.SeedStores()}
	session := NewSearchSession(repo)
	require.NoError(t, session.Initialize(context.Background(), entities.DefaultCriteria()))

	session.Search(entities.SearchCriteria{Prefecture: entities.CriteriaAll, Genre: "ラーメン"})

	results := session.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "博多ラーメン 一心", results[0].Name)
	assert.Equal(t, "ラーメン", session.Criteria().Genre)
}

func TestSearchSession_InitializeFailure(t *testing.T) {
	repo := &stubCatalog{err: errors.New("connection refused")}
	session := NewSearchSession(repo)

	err := session.Initialize(context.Background(), entities.DefaultCriteria())

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeCatalogUnavailable))
	assert.Equal(t, SessionFailed, session.Status())
	assert.NotNil(t, session.Results())
	assert.Empty(t, session.Results())
}

func TestSearchSession_ConcurrentInitializeIsNoOp(t *testing.T) {
	repo := &stubCatalog{stores: catalog.SeedStores(), release: make(chan struct{})}
	session := NewSearchSession(repo)

	first := make(chan error, 1)
	go func() {
		first <- session.Initialize(context.Background(), entities.DefaultCriteria())
	}()

	// wait for the first fetch to be in flight
	for session.Status() != SessionLoading {
		time.Sleep(time.Millisecond)
	}

	// second call returns immediately without a second fetch
	err := session.Initialize(context.Background(), entities.SearchCriteria{
		Prefecture: "東京都",
		Genre:      entities.CriteriaAll,
	})
	require.NoError(t, err)

	close(repo.release)
	require.NoError(t, <-first)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, SessionReady, session.Status())
}

func TestSearchSession_CriteriaDuringLoadAppliesAfterFetch(t *testing.T) {
	repo := &stubCatalog{stores: catalog.SeedStores(), release: make(chan struct{})}
	session := NewSearchSession(repo)

	done := make(chan error, 1)
	go func() {
		done <- session.Initialize(context.Background(), entities.DefaultCriteria())
	}()

	for session.Status() != SessionLoading {
		time.Sleep(time.Millisecond)
	}

	// last writer wins: this criteria decides the first result set
	session.Search(entities.SearchCriteria{Prefecture: entities.CriteriaAll, Genre: "美容室"})

	close(repo.release)
	require.NoError(t, <-done)

	results := session.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "SALON de LUXE", results[0].Name)
}
