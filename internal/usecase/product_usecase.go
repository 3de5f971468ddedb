package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to introduce a catalog item.
type CreateProductInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Category    string `json:"category" validate:"required,max=50"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateStockInput defines the data required to set a product's stock level.
type UpdateStockInput struct {
	ProductID int64 `json:"-"`
	Stock     int   `json:"stock" validate:"gte=0"`
}

// SetProductActiveInput defines the data required to flip a product's active flag.
type SetProductActiveInput struct {
	ProductID int64 `json:"-"`
	Active    bool  `json:"active"`
}

// ListProductsInput defines a catalog browse query.
type ListProductsInput struct {
	Category   string `query:"category" validate:"omitempty,max=50"`
	ActiveOnly bool   `query:"activeOnly"`
	Keyword    string `query:"keyword" validate:"omitempty,max=100"`
	SortBy     string `query:"sortBy" validate:"omitempty,oneof=name price created_at"`
	SortDir    string `query:"sortDir" validate:"omitempty,oneof=asc desc"`
	Page       int    `query:"page" validate:"omitempty,gte=1"`
	PerPage    int    `query:"perPage" validate:"omitempty,gte=1,lte=100"`
}

// --- Output DTOs ---

// ProductOutput is a catalog item as presented to shoppers and admins.
type ProductOutput struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	IsAvailable bool      `json:"isAvailable"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListProductsOutput is one page of the catalog.
type ListProductsOutput struct {
	Products []*ProductOutput `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"perPage"`
}

// ProductUsecase defines the interface for catalog business operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*ProductOutput, error)
	UpdateStock(ctx context.Context, input *UpdateStockInput) (*ProductOutput, error)
	SetProductActive(ctx context.Context, input *SetProductActiveInput) (*ProductOutput, error)
	GetProduct(ctx context.Context, productID int64) (*ProductOutput, error)
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)
}
