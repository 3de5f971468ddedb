package entity

import (
	"time"
)

// Product is a catalog item. It is owned by the catalog and never mutated in
// place: stock and activation operations return an updated copy, so a Product
// held by a caller is a stable view of the instant it was loaded.
type Product struct {
	ID          ProductID
	Name        string
	Description string
	Price       Price
	Stock       int // Units on hand. Zero is valid; negative never is.
	Category    ProductCategory
	IsActive    bool
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAvailableForSale reports whether the product can be put in a cart:
// it must be active and have at least one unit on hand.
func (p Product) IsAvailableForSale() bool {
	return p.IsActive && p.Stock > 0
}

// HasStockFor reports whether the product can cover the requested quantity.
func (p Product) HasStockFor(quantity Quantity) bool {
	return p.Stock >= quantity.Value()
}

// WithStock returns a copy of the product carrying the new stock level.
func (p Product) WithStock(stock int) Product {
	p.Stock = stock

	return p
}

// WithPrice returns a copy of the product carrying the new price.
func (p Product) WithPrice(price Price) Product {
	p.Price = price

	return p
}

// Activated returns a copy of the product with the active flag set.
func (p Product) Activated(active bool) Product {
	p.IsActive = active

	return p
}
