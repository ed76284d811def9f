package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/repositories"
	tsclient "github.com/nabe7855/FindMe/internal/infrastructure/clients/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

const collectionName = "stores"

// TypesenseAdapter keeps a keyword index over the store catalog. It is a
// candidate generator only: the in-process matcher re-applies the full
// criteria to whatever the index returns.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.StoreSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the stores collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "genre", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "area", Type: "string", Optional: pointer.True()},
			{Name: "prefecture", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "catch_phrase", Type: "string", Optional: pointer.True()},
			{Name: "rating", Type: "float"},
			{Name: "review_count", Type: "int32"},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("created_at"),
	}

	if _, err := a.client.Client().Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index upserts a store document
func (a *TypesenseAdapter) Index(ctx context.Context, store *entities.Store) error {
	document := map[string]interface{}{
		"id":           strconv.Itoa(store.ID),
		"name":         store.Name,
		"genre":        store.Genre,
		"area":         store.Area,
		"prefecture":   store.Prefecture,
		"catch_phrase": store.CatchPhrase,
		"rating":       store.Rating,
		"review_count": store.ReviewCount,
		"created_at":   store.CreatedAt.Unix(),
	}

	if _, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document); err != nil {
		return fmt.Errorf("failed to index store: %w", err)
	}
	return nil
}

// Delete removes a store from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id int) error {
	if _, err := a.client.Client().Collection(collectionName).Document(strconv.Itoa(id)).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete store from index: %w", err)
	}
	return nil
}

// Search returns stores whose name, catch phrase or area match the
// criteria keyword; prefecture and genre narrow the index query when
// they are not the wildcard sentinel
func (a *TypesenseAdapter) Search(ctx context.Context, criteria entities.SearchCriteria) ([]*entities.Store, error) {
	params := &api.SearchCollectionParams{
		Q:       pointer.String(criteria.Keyword),
		QueryBy: pointer.String("name,catch_phrase,area"),
		PerPage: pointer.Int(100),
	}

	var filters []string
	if criteria.Prefecture != entities.CriteriaAll {
		filters = append(filters, fmt.Sprintf("prefecture:=%s", criteria.Prefecture))
	}
	if criteria.Genre != entities.CriteriaAll {
		filters = append(filters, fmt.Sprintf("genre:=%s", criteria.Genre))
	}
	if len(filters) > 0 {
		params.FilterBy = pointer.String(strings.Join(filters, " && "))
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to search stores: %w", err)
	}

	stores := []*entities.Store{}
	if result.Hits == nil {
		return stores, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		stores = append(stores, storeFromDocument(*hit.Document))
	}
	return stores, nil
}

// storeFromDocument rebuilds a partial store entity from an index hit.
// Typesense hands back map[string]interface{}, so every field is cast
// defensively.
func storeFromDocument(doc map[string]interface{}) *entities.Store {
	store := &entities.Store{}

	if val, ok := doc["id"].(string); ok {
		if id, err := strconv.Atoi(val); err == nil {
			store.ID = id
		}
	}
	if val, ok := doc["name"].(string); ok {
		store.Name = val
	}
	if val, ok := doc["genre"].(string); ok {
		store.Genre = val
	}
	if val, ok := doc["area"].(string); ok {
		store.Area = val
	}
	if val, ok := doc["prefecture"].(string); ok {
		store.Prefecture = val
	}
	if val, ok := doc["catch_phrase"].(string); ok {
		store.CatchPhrase = val
	}
	if val, ok := doc["rating"].(float64); ok {
		store.Rating = val
	}
	if val, ok := doc["review_count"].(float64); ok {
		store.ReviewCount = int(val)
	}
	if val, ok := doc["created_at"].(float64); ok {
		store.CreatedAt = time.Unix(int64(val), 0)
	}
	return store
}
