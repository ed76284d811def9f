// Package presenter turns mixed search and concierge results into a
// render-ready view. Callers hand it a view state; it decides between a
// progress indicator, an empty-state message, and one card per item.
package presenter

import "github.com/nabe7855/FindMe/internal/domain/entities"

// NoResultsMessage is shown whenever a finished search has nothing to
// display, regardless of which filters produced the empty set.
const NoResultsMessage = "条件に合う店舗が見つかりませんでした。"

// Card template identifiers, selected by the item's kind.
const (
	TemplateStoreCard          = "store_card"
	TemplateRecommendationCard = "recommendation_card"
)

// ViewState is the presenter's input: an in-progress flag plus the
// items to show once loading finishes.
type ViewState struct {
	Loading bool
	Items   []entities.ResultItem
}

// Card is a single rendered result. Optional source fields map to zero
// values; templates are expected to skip empty strings and zero ratings.
type Card struct {
	Template             string  `json:"template"`
	ID                   int     `json:"id,omitempty"`
	Name                 string  `json:"name"`
	Genre                string  `json:"genre,omitempty"`
	Area                 string  `json:"area,omitempty"`
	Prefecture           string  `json:"prefecture,omitempty"`
	CatchPhrase          string  `json:"catch_phrase,omitempty"`
	Rating               float64 `json:"rating,omitempty"`
	ImageURL             string  `json:"image_url,omitempty"`
	RecommendationReason string  `json:"recommendation_reason,omitempty"`
}

// View is the rendered output for one presentation pass.
type View struct {
	Loading bool   `json:"loading"`
	Message string `json:"message,omitempty"`
	Cards   []Card `json:"cards"`
}

// Present maps a view state to its rendered view. While loading, items
// are suppressed entirely; a stale result set never shows behind the
// progress indicator.
func Present(state ViewState) View {
	if state.Loading {
		return View{Loading: true, Cards: []Card{}}
	}

	if len(state.Items) == 0 {
		return View{Message: NoResultsMessage, Cards: []Card{}}
	}

	cards := make([]Card, 0, len(state.Items))
	for _, item := range state.Items {
		cards = append(cards, renderItem(item))
	}
	return View{Cards: cards}
}

func renderItem(item entities.ResultItem) Card {
	switch item.Kind {
	case entities.ResultKindRecommendation:
		rec := item.Recommendation
		if rec == nil {
			return Card{Template: TemplateRecommendationCard}
		}
		return Card{
			Template:             TemplateRecommendationCard,
			ID:                   rec.ID,
			Name:                 rec.Name,
			Genre:                rec.Genre,
			Area:                 rec.Area,
			Prefecture:           rec.Prefecture,
			CatchPhrase:          rec.CatchPhrase,
			Rating:               rec.Rating,
			ImageURL:             rec.ImageURL,
			RecommendationReason: rec.RecommendationReason,
		}
	default:
		store := item.Store
		if store == nil {
			return Card{Template: TemplateStoreCard}
		}
		return Card{
			Template:    TemplateStoreCard,
			ID:          store.ID,
			Name:        store.Name,
			Genre:       store.Genre,
			Area:        store.Area,
			Prefecture:  store.Prefecture,
			CatchPhrase: store.CatchPhrase,
			Rating:      store.Rating,
			ImageURL:    store.ImageURL,
		}
	}
}
