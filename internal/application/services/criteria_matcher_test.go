package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabe7855/FindMe/internal/adapters/catalog"
	"github.com/nabe7855/FindMe/internal/domain/entities"
)

func storeIDs(stores []*entities.Store) []int {
	ids := make([]int, 0, len(stores))
	for _, s := range stores {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestMatchStores_UnconstrainedReturnsFullCatalogInOrder(t *testing.T) {
	seed := catalog.SeedStores()

	result := MatchStores(seed, entities.DefaultCriteria())

	assert.Equal(t, []int{1, 2, 3, 4, 5}, storeIDs(result))
}

func TestMatchStores_PrefectureFilter(t *testing.T) {
	seed := catalog.SeedStores()

	result := MatchStores(seed, entities.SearchCriteria{
		Prefecture: "東京都",
		Genre:      entities.CriteriaAll,
	})

	require.Len(t, result, 1)
	assert.Equal(t, "美食楽苑", result[0].Name)
}

func TestMatchStores_GenreFilter(t *testing.T) {
	seed := catalog.SeedStores()

	result := MatchStores(seed, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      "カフェ",
	})

	require.Len(t, result, 1)
	assert.Equal(t, "Cafe Foresta", result[0].Name)
}

func TestMatchStores_CombinedFilters(t *testing.T) {
	seed := catalog.SeedStores()

	result := MatchStores(seed, entities.SearchCriteria{
		Prefecture: "大阪府",
		Genre:      "イタリアン",
	})

	require.Len(t, result, 1)
	assert.Equal(t, "Trattoria Cielo", result[0].Name)

	// same genre, wrong prefecture
	empty := MatchStores(seed, entities.SearchCriteria{
		Prefecture: "東京都",
		Genre:      "イタリアン",
	})
	assert.Empty(t, empty)
}

func TestMatchStores_KeywordIsCaseInsensitive(t *testing.T) {
	seed := catalog.SeedStores()

	for _, keyword := range []string{"cafe", "CAFE", "Cafe"} {
		result := MatchStores(seed, entities.SearchCriteria{
			Prefecture: entities.CriteriaAll,
			Genre:      entities.CriteriaAll,
			Keyword:    keyword,
		})
		require.Len(t, result, 1, "keyword %q", keyword)
		assert.Equal(t, "Cafe Foresta", result[0].Name)
	}
}

func TestMatchStores_KeywordSearchesCatchPhraseAndArea(t *testing.T) {
	seed := catalog.SeedStores()

	byCatchPhrase := MatchStores(seed, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Keyword:    "石窯",
	})
	require.Len(t, byCatchPhrase, 1)
	assert.Equal(t, "Trattoria Cielo", byCatchPhrase[0].Name)

	byArea := MatchStores(seed, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Keyword:    "博多",
	})
	require.Len(t, byArea, 1)
	assert.Equal(t, "博多ラーメン 一心", byArea[0].Name)
}

func TestMatchStores_NoMatchesYieldsEmptySlice(t *testing.T) {
	seed := catalog.SeedStores()

	result := MatchStores(seed, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Keyword:    "noodle",
	})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestMatchStores_NilCatalog(t *testing.T) {
	result := MatchStores(nil, entities.DefaultCriteria())

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestMatchStores_DoesNotMutateInput(t *testing.T) {
	seed := catalog.SeedStores()

	MatchStores(seed, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Sort:       entities.SortByRating,
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, storeIDs(seed))
}

func TestMatchStores_Idempotent(t *testing.T) {
	seed := catalog.SeedStores()
	criteria := entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Keyword:    "ラーメン",
		Sort:       entities.SortByRating,
	}

	once := MatchStores(seed, criteria)
	twice := MatchStores(once, criteria)

	assert.Equal(t, storeIDs(once), storeIDs(twice))
}

func TestMatchStores_SortByRating(t *testing.T) {
	seed := catalog.SeedStores()

	result := MatchStores(seed, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Sort:       entities.SortByRating,
	})

	// 4.9, 4.8, 4.6, 4.5, 4.2
	assert.Equal(t, []int{4, 3, 5, 1, 2}, storeIDs(result))
}

func TestMatchStores_SortByRating_TiesKeepCatalogOrder(t *testing.T) {
	stores := []*entities.Store{
		{ID: 1, Rating: 4.0},
		{ID: 2, Rating: 4.5},
		{ID: 3, Rating: 4.0},
	}

	result := MatchStores(stores, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Sort:       entities.SortByRating,
	})

	assert.Equal(t, []int{2, 1, 3}, storeIDs(result))
}

func TestMatchStores_SortByNewest(t *testing.T) {
	seed := catalog.SeedStores()

	result := MatchStores(seed, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Sort:       entities.SortByNewest,
	})

	assert.Equal(t, []int{4, 5, 2, 1, 3}, storeIDs(result))
}

func TestMatchStores_SortByNewest_UndatedStoresSink(t *testing.T) {
	stores := []*entities.Store{
		{ID: 1},
		{ID: 2, CreatedAt: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 3},
		{ID: 4, CreatedAt: time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)},
	}

	result := MatchStores(stores, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Sort:       entities.SortByNewest,
	})

	assert.Equal(t, []int{4, 2, 1, 3}, storeIDs(result))
}

func TestMatchStores_SortByRecommendedKeepsCatalogOrder(t *testing.T) {
	seed := catalog.SeedStores()

	result := MatchStores(seed, entities.SearchCriteria{
		Prefecture: entities.CriteriaAll,
		Genre:      entities.CriteriaAll,
		Sort:       entities.SortByRecommended,
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, storeIDs(result))
}
