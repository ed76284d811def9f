package entities

// RecommendationResult is one AI-generated store suggestion. IDs are
// unique within a single response batch only; a new submission discards
// the previous batch entirely.
type RecommendationResult struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description,omitempty"`
	RecommendationReason string  `json:"recommendation_reason,omitempty"`
	Genre                string  `json:"genre,omitempty"`
	Area                 string  `json:"area,omitempty"`
	Prefecture           string  `json:"prefecture,omitempty"`
	CatchPhrase          string  `json:"catch_phrase,omitempty"`
	ImageURL             string  `json:"image_url,omitempty"`
	Rating               float64 `json:"rating,omitempty"`
	MatchScore           float64 `json:"match_score,omitempty"`
}

// ResultKind discriminates the two producers feeding the result renderer
type ResultKind string

const (
	ResultKindCatalog        ResultKind = "catalog"
	ResultKindRecommendation ResultKind = "recommendation"
)

// ResultItem is the tagged variant consumed by the presenter. Exactly one
// of Store or Recommendation is set, selected by Kind; the tag is resolved
// once at the producer boundary, never re-inspected per render site.
type ResultItem struct {
	Kind           ResultKind            `json:"kind"`
	Store          *Store                `json:"store,omitempty"`
	Recommendation *RecommendationResult `json:"recommendation,omitempty"`
}

// CatalogItems wraps catalog stores as result items. The output batch
// never mixes kinds.
func CatalogItems(stores []*Store) []ResultItem {
	items := make([]ResultItem, 0, len(stores))
	for _, s := range stores {
		items = append(items, ResultItem{Kind: ResultKindCatalog, Store: s})
	}
	return items
}

// RecommendationItems wraps AI suggestions as result items
func RecommendationItems(results []RecommendationResult) []ResultItem {
	items := make([]ResultItem, 0, len(results))
	for i := range results {
		items = append(items, ResultItem{Kind: ResultKindRecommendation, Recommendation: &results[i]})
	}
	return items
}
