package services

import (
	"sort"
	"strings"

	"github.com/nabe7855/FindMe/internal/domain/entities"
)

// MatchStores filters the catalog against the criteria. It is pure and
// deterministic: no I/O, no mutation of the input slice, and it never
// fails — a nil catalog yields an empty result.
//
// Prefecture and genre match exactly unless the field holds the "ALL"
// sentinel, which matches every store. The keyword matches when its
// lower-cased form is a substring of the lower-cased name, catch phrase,
// or area; an empty keyword always matches. All three predicates must
// hold for a store to be included.
//
// Matched stores keep the catalog's relative order (stable filter) unless
// a sort key is set, in which case the key fully determines the order
// with ties broken by catalog position.
func MatchStores(catalog []*entities.Store, criteria entities.SearchCriteria) []*entities.Store {
	matched := make([]*entities.Store, 0, len(catalog))
	keyword := strings.ToLower(criteria.Keyword)

	for _, store := range catalog {
		if store == nil {
			continue
		}
		if !matchesPrefecture(store, criteria.Prefecture) {
			continue
		}
		if !matchesGenre(store, criteria.Genre) {
			continue
		}
		if !matchesKeyword(store, keyword) {
			continue
		}
		matched = append(matched, store)
	}

	return sortStores(matched, criteria.Sort)
}

func matchesPrefecture(store *entities.Store, prefecture string) bool {
	return prefecture == entities.CriteriaAll || store.Prefecture == prefecture
}

func matchesGenre(store *entities.Store, genre string) bool {
	return genre == entities.CriteriaAll || store.Genre == genre
}

// matchesKeyword is an OR across name, catch phrase and area. Missing
// optional fields behave as empty strings.
func matchesKeyword(store *entities.Store, keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(store.Name), keyword) ||
		strings.Contains(strings.ToLower(store.CatchPhrase), keyword) ||
		strings.Contains(strings.ToLower(store.Area), keyword)
}

// sortStores applies the requested total order in place and returns the
// slice. "recommended" is a reserved identity passthrough: no defined
// ranking yet, and an unknown key must not error either.
func sortStores(stores []*entities.Store, key entities.SortKey) []*entities.Store {
	switch key {
	case entities.SortByRating:
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].Rating > stores[j].Rating
		})
	case entities.SortByNewest:
		// Stores without a recency timestamp compare equal amongst
		// themselves and sort after dated ones; a fully undated catalog
		// keeps its original order.
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].CreatedAt.After(stores[j].CreatedAt)
		})
	}
	return stores
}
