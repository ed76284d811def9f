package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nabe7855/FindMe/pkg/errors"
)

func TestMemoryAdapter_GetAllKeepsCatalogOrder(t *testing.T) {
	adapter := NewSeededAdapter()

	stores, err := adapter.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, stores, 5)
	for i, store := range stores {
		assert.Equal(t, i+1, store.ID)
	}
}

func TestMemoryAdapter_GetAllReturnsCopy(t *testing.T) {
	adapter := NewSeededAdapter()

	first, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	first[0] = nil

	second, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, second[0])
}

func TestMemoryAdapter_GetByID(t *testing.T) {
	adapter := NewSeededAdapter()

	store, err := adapter.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "博多ラーメン 一心", store.Name)

	_, err = adapter.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestMemoryAdapter_CancelledContext(t *testing.T) {
	adapter := NewSeededAdapter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.GetAll(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeCatalogUnavailable))
}

func TestMemoryAdapter_LatestReviews(t *testing.T) {
	adapter := NewSeededAdapter()

	reviews, err := adapter.LatestReviews(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, reviews, 3)
	// newest first: 11-05, 11-03, 11-01
	assert.Equal(t, 301, reviews[0].ID)
	assert.Equal(t, "博多ラーメン 一心", reviews[0].StoreName)
	assert.Equal(t, 501, reviews[1].ID)
	assert.Equal(t, 201, reviews[2].ID)

	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i].Date.After(reviews[i-1].Date))
	}
}

func TestMemoryAdapter_LatestReviewsCountBeyondTotal(t *testing.T) {
	adapter := NewSeededAdapter()

	reviews, err := adapter.LatestReviews(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, reviews, 8)
}
