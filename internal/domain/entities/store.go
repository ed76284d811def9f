package entities

import "time"

// Store represents one business listed in the catalog (restaurant, salon, etc.)
type Store struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Genre        string    `json:"genre,omitempty" db:"genre"`
	Area         string    `json:"area,omitempty" db:"area"`
	Prefecture   string    `json:"prefecture,omitempty" db:"prefecture"`
	CatchPhrase  string    `json:"catch_phrase,omitempty" db:"catch_phrase"`
	Description  string    `json:"description,omitempty" db:"description"`
	Rating       float64   `json:"rating" db:"rating"`
	ImageURL     string    `json:"image_url,omitempty" db:"image_url"`
	Address      string    `json:"address,omitempty" db:"address"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	OpeningHours string    `json:"opening_hours,omitempty" db:"opening_hours"`
	ClosingDay   string    `json:"closing_day,omitempty" db:"closing_day"`
	PriceRange   string    `json:"price_range,omitempty" db:"price_range"`
	ReviewCount  int       `json:"review_count,omitempty" db:"review_count"`
	Reviews      []Review  `json:"reviews,omitempty" db:"-"`
	CreatedAt    time.Time `json:"created_at,omitempty" db:"created_at"`
}

// Review represents one customer review attached to a store
type Review struct {
	ID      int       `json:"id" db:"id"`
	Author  string    `json:"author" db:"author"`
	Rating  int       `json:"rating" db:"rating"`
	Comment string    `json:"comment" db:"comment"`
	Date    time.Time `json:"date,omitempty" db:"date"`
}

// ReviewWithStore is a review annotated with the store it belongs to,
// used by the latest-reviews feed
type ReviewWithStore struct {
	Review
	StoreID   int    `json:"store_id"`
	StoreName string `json:"store_name"`
}
