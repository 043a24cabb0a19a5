package models

import "fmt"

// Product represents a catalog item shown on the storefront shelf
type Product struct {
	ID         string
	Title      string
	Vendor     string
	PriceCents int64
}

// FormattedPrice returns the price in dollars, e.g. "$799.00"
func (p Product) FormattedPrice() string {
	return formatCents(p.PriceCents)
}

// Validate checks that the product can be placed in a cart
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidProduct)
	}
	if p.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidProduct)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidProduct)
	}
	return nil
}

// DefaultCatalog returns the devices sold by the demo store
func DefaultCatalog() []Product {
	return []Product{
		{ID: "1", Title: "iPhone 12", Vendor: "Apple", PriceCents: 79900},
		{ID: "2", Title: "iPhone 12 Mini", Vendor: "Apple", PriceCents: 69900},
		{ID: "3", Title: "iPhone 12 Pro Max", Vendor: "Apple", PriceCents: 109900},
		{ID: "4", Title: "iPhone 12 Pro", Vendor: "Apple", PriceCents: 99900},
		{ID: "5", Title: "iPhone 11", Vendor: "Apple", PriceCents: 69900},
		{ID: "6", Title: "iPhone 11 Pro", Vendor: "Apple", PriceCents: 99900},
		{ID: "7", Title: "iPhone XS", Vendor: "Apple", PriceCents: 89900},
		{ID: "8", Title: "iPhone XR", Vendor: "Apple", PriceCents: 59900},
		{ID: "9", Title: "iPhone SE", Vendor: "Apple", PriceCents: 39900},
		{ID: "10", Title: "Galaxy S20", Vendor: "Samsung", PriceCents: 99900},
		{ID: "11", Title: "Galaxy S20+", Vendor: "Samsung", PriceCents: 119900},
		{ID: "12", Title: "Galaxy S20 Ultra", Vendor: "Samsung", PriceCents: 139900},
		{ID: "13", Title: "Galaxy S10", Vendor: "Samsung", PriceCents: 89900},
		{ID: "14", Title: "Galaxy Note 20", Vendor: "Samsung", PriceCents: 99900},
		{ID: "15", Title: "Galaxy Note 20 Ultra", Vendor: "Samsung", PriceCents: 129900},
		{ID: "16", Title: "Pixel 4", Vendor: "Google", PriceCents: 79900},
		{ID: "17", Title: "Pixel 3", Vendor: "Google", PriceCents: 69900},
		{ID: "18", Title: "Pixel 5", Vendor: "Google", PriceCents: 69900},
		{ID: "19", Title: "One Plus 8", Vendor: "OnePlus", PriceCents: 69900},
		{ID: "20", Title: "One Plus 8T", Vendor: "OnePlus", PriceCents: 74900},
		{ID: "21", Title: "One Plus 8 Pro", Vendor: "OnePlus", PriceCents: 89900},
	}
}

// FindProduct looks up a product by id
func FindProduct(catalog []Product, id string) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
