// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrStockConditionFailed is returned by DecrementStockIfSufficient when the
// conditional update matched no row: the product either lacks the requested
// stock or is gone.
var ErrStockConditionFailed = errors.New("stock condition not met")

// ProductSortField selects the column catalog listings are ordered by.
type ProductSortField string

const (
	ProductSortByName      ProductSortField = "name"
	ProductSortByPrice     ProductSortField = "price"
	ProductSortByCreatedAt ProductSortField = "created_at"
)

// SortDirection is the listing order direction.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ProductSort combines a sort field with a direction.
type ProductSort struct {
	Field     ProductSortField
	Direction SortDirection
}

// ProductCriteria filters catalog listings.
type ProductCriteria struct {
	Category   *entity.ProductCategory
	ActiveOnly bool
	Keyword    string // Matched against name and description.
}

// Pagination bounds a listing query.
type Pagination struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}

	return (p.Page - 1) * p.PerPage
}

// Limit returns the page size.
func (p Pagination) Limit() int {
	return p.PerPage
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id entity.ProductID) (*entity.Product, error)

	// FindByIDs retrieves the current state of several products at once,
	// keyed by id. Missing products are simply absent from the result.
	FindByIDs(ctx context.Context, ids []entity.ProductID) (map[entity.ProductID]entity.Product, error)

	// FindByCriteria retrieves a page of products matching the criteria.
	FindByCriteria(ctx context.Context, criteria ProductCriteria, sort ProductSort, page Pagination) ([]entity.Product, error)

	// CountByCriteria returns the total number of products matching the criteria.
	CountByCriteria(ctx context.Context, criteria ProductCriteria) (int64, error)

	// ExistsByID reports whether a product with the given id exists.
	ExistsByID(ctx context.Context, id entity.ProductID) (bool, error)

	// Create persists a new product and assigns its id.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// DecrementStockIfSufficient atomically subtracts quantity from the
	// product's stock, but only when enough stock remains. Returns
	// ErrStockConditionFailed when the condition does not hold. This is the
	// single-writer guard that closes the check-then-act window on checkout.
	DecrementStockIfSufficient(ctx context.Context, id entity.ProductID, quantity entity.Quantity) error
}
