package entity

import "time"

// Product is a marketplace catalog item. Products are read-only once seeded.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"` // display string, e.g. "$24.99"
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Tag         string    `json:"tag"`
	Tagline     string    `json:"tagline"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}
