// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to a cart.
// UserID comes from the authenticated request, never the payload.
type AddCartItemInput struct {
	UserID    int64 `json:"-"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// UpdateCartItemInput defines the data required to set a line's absolute quantity.
type UpdateCartItemInput struct {
	UserID    int64 `json:"-"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// RemoveCartItemInput defines the data required to remove a line.
type RemoveCartItemInput struct {
	UserID    int64 `json:"-"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// --- Output DTOs ---

// CartItemView is one cart line enriched with current catalog data.
type CartItemView struct {
	ProductID   int64     `json:"productId"`
	ProductName string    `json:"productName"`
	UnitPrice   int64     `json:"unitPrice"`
	Quantity    int       `json:"quantity"`
	Subtotal    int64     `json:"subtotal"`
	IsAvailable bool      `json:"isAvailable"`
	AddedAt     time.Time `json:"addedAt"`
}

// CartOutput is the cart as presented to its owner.
type CartOutput struct {
	UserID      int64          `json:"userId"`
	Items       []CartItemView `json:"items"`
	TotalItems  int            `json:"totalItems"`
	TotalAmount int64          `json:"totalAmount"`
	IsEmpty     bool           `json:"isEmpty"`
}

// CartUsecase defines the interface for cart-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CartUsecase interface {
	GetCart(ctx context.Context, userID int64) (*CartOutput, error)
	AddProductToCart(ctx context.Context, input *AddCartItemInput) (*CartOutput, error)
	UpdateCartItem(ctx context.Context, input *UpdateCartItemInput) (*CartOutput, error)
	RemoveCartItem(ctx context.Context, input *RemoveCartItemInput) (*CartOutput, error)
	ClearCart(ctx context.Context, userID int64) error
}
