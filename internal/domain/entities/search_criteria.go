package entities

import "net/url"

// CriteriaAll is the sentinel meaning "no constraint on this field".
// A criteria field holding this value matches every store.
const CriteriaAll = "ALL"

// SortKey enumerates the supported result orderings
type SortKey string

const (
	SortByRating      SortKey = "rating"
	SortByNewest      SortKey = "newest"
	SortByRecommended SortKey = "recommended"
)

// SearchCriteria is an immutable search query against the store catalog.
// A new value replaces the old one on every change; it is never mutated
// in place.
type SearchCriteria struct {
	Prefecture string  `json:"prefecture"`
	Genre      string  `json:"genre"`
	Keyword    string  `json:"keyword"`
	Sort       SortKey `json:"sort,omitempty"`
}

// DefaultCriteria returns the unconstrained criteria that matches the
// full catalog
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		Prefecture: CriteriaAll,
		Genre:      CriteriaAll,
		Keyword:    "",
	}
}

// DecodeCriteria reconstructs criteria from a flat string-keyed mapping
// such as URL query parameters. Absent keys default to the sentinel or
// empty value; unknown extra keys are ignored so shared links with stale
// parameters still resolve.
func DecodeCriteria(values url.Values) SearchCriteria {
	c := DefaultCriteria()
	if v := values.Get("prefecture"); v != "" {
		c.Prefecture = v
	}
	if v := values.Get("genre"); v != "" {
		c.Genre = v
	}
	c.Keyword = values.Get("keyword")

	switch SortKey(values.Get("sort")) {
	case SortByRating:
		c.Sort = SortByRating
	case SortByNewest:
		c.Sort = SortByNewest
	case SortByRecommended:
		c.Sort = SortByRecommended
	}
	return c
}

// EncodeValues serializes the criteria into URL query parameters so a
// search can be shared via a link. Sentinel and empty fields are omitted.
func (c SearchCriteria) EncodeValues() url.Values {
	values := url.Values{}
	if c.Prefecture != "" && c.Prefecture != CriteriaAll {
		values.Set("prefecture", c.Prefecture)
	}
	if c.Genre != "" && c.Genre != CriteriaAll {
		values.Set("genre", c.Genre)
	}
	if c.Keyword != "" {
		values.Set("keyword", c.Keyword)
	}
	if c.Sort != "" {
		values.Set("sort", string(c.Sort))
	}
	return values
}

// IsUnconstrained reports whether the criteria matches every store
func (c SearchCriteria) IsUnconstrained() bool {
	return c.Prefecture == CriteriaAll && c.Genre == CriteriaAll && c.Keyword == ""
}
