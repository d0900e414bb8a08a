package catalog

import (
	"context"

	"Bootique/internal/money"
)

// Product is a catalog entry. Values are immutable once seeded.
type Product struct {
	ID        string       `json:"id" db:"id"`
	Title     string       `json:"title" db:"title"`
	Brand     string       `json:"brand" db:"brand"`
	ListPrice money.Amount `json:"listPrice" db:"list_price"`
}

// Store is the read side of the catalog.
type Store interface {
	List() []Product
	Get(id string) (Product, bool)
	Ping(ctx context.Context) error
}

// Seed returns the default product set.
func Seed() []Product {
	return []Product{
		{ID: "1", Title: "iPhone X", Brand: "Apple", ListPrice: money.MustParse("989.99")},
		{ID: "2", Title: "Galaxy S8", Brand: "Samsung", ListPrice: money.MustParse("699.99")},
		{ID: "3", Title: "3310", Brand: "Nokia", ListPrice: money.MustParse("19.95")},
		{ID: "4", Title: "Kermit", Brand: "KPN", ListPrice: money.MustParse("6.95")},
	}
}
