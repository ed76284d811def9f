package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nabe7855/FindMe/internal/domain/entities"
)

func TestPresent_LoadingSuppressesItems(t *testing.T) {
	items := entities.CatalogItems([]*entities.Store{{ID: 1, Name: "美食楽苑"}})

	view := Present(ViewState{Loading: true, Items: items})

	assert.True(t, view.Loading)
	assert.Empty(t, view.Cards)
	assert.Empty(t, view.Message)
}

func TestPresent_EmptyShowsStableMessage(t *testing.T) {
	view := Present(ViewState{})

	assert.False(t, view.Loading)
	assert.Equal(t, NoResultsMessage, view.Message)
	assert.Empty(t, view.Cards)

	// message does not depend on which search produced the empty set
	again := Present(ViewState{Items: []entities.ResultItem{}})
	assert.Equal(t, view.Message, again.Message)
}

func TestPresent_CatalogCards(t *testing.T) {
	stores := []*entities.Store{
		{ID: 1, Name: "美食楽苑", Genre: "居酒屋", Area: "新宿", Prefecture: "東京都", Rating: 4.5},
		{ID: 2, Name: "Cafe Foresta"},
	}

	view := Present(ViewState{Items: entities.CatalogItems(stores)})

	assert.Len(t, view.Cards, 2)
	assert.Equal(t, TemplateStoreCard, view.Cards[0].Template)
	assert.Equal(t, "美食楽苑", view.Cards[0].Name)
	assert.Equal(t, 4.5, view.Cards[0].Rating)

	// optional fields absent on the second store render as zero values
	assert.Equal(t, TemplateStoreCard, view.Cards[1].Template)
	assert.Empty(t, view.Cards[1].Genre)
	assert.Zero(t, view.Cards[1].Rating)
}

func TestPresent_RecommendationCards(t *testing.T) {
	results := []entities.RecommendationResult{
		{ID: 1, Name: "カフェ・ルミエール", Genre: "カフェ", Area: "渋谷", RecommendationReason: "静かで落ち着ける空間です。"},
	}

	view := Present(ViewState{Items: entities.RecommendationItems(results)})

	assert.Len(t, view.Cards, 1)
	assert.Equal(t, TemplateRecommendationCard, view.Cards[0].Template)
	assert.Equal(t, "カフェ・ルミエール", view.Cards[0].Name)
	assert.Equal(t, "静かで落ち着ける空間です。", view.Cards[0].RecommendationReason)
}

func TestPresent_OrderPreserved(t *testing.T) {
	stores := []*entities.Store{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	view := Present(ViewState{Items: entities.CatalogItems(stores)})

	ids := []int{view.Cards[0].ID, view.Cards[1].ID, view.Cards[2].ID}
	assert.Equal(t, []int{3, 1, 2}, ids)
}
