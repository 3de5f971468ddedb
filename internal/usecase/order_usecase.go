package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// CreateOrderInput defines the data required to convert the user's cart into
// an order. UserID comes from the authenticated request.
type CreateOrderInput struct {
	UserID        int64  `json:"-"`
	RecipientName string `json:"recipientName" validate:"required,max=100"`
	PostalCode    string `json:"postalCode" validate:"required"`
	Prefecture    string `json:"prefecture" validate:"required,max=50"`
	City          string `json:"city" validate:"required,max=100"`
	StreetAddress string `json:"streetAddress" validate:"required,max=200"`
	ContactEmail  string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone  string `json:"contactPhone" validate:"omitempty,max=20"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=credit_card bank_transfer cash_on_delivery"`
	Notes         string `json:"notes" validate:"max=1000"`
}

// ListOrdersInput defines the query for a user's order history.
type ListOrdersInput struct {
	UserID  int64  `json:"-"`
	Status  string `query:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	Page    int    `query:"page" validate:"omitempty,gte=1"`
	PerPage int    `query:"perPage" validate:"omitempty,gte=1,lte=100"`
}

// --- Output DTOs ---

// OrderItemView is one immutable purchased line.
type OrderItemView struct {
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	PriceAtPurchase int64  `json:"priceAtPurchase"`
	Quantity        int    `json:"quantity"`
	Subtotal        int64  `json:"subtotal"`
}

// OrderOutput is an order as presented to its owner.
type OrderOutput struct {
	ID            int64           `json:"id"`
	Items         []OrderItemView `json:"items"`
	RecipientName string          `json:"recipientName"`
	PostalCode    string          `json:"postalCode"`
	Prefecture    string          `json:"prefecture"`
	City          string          `json:"city"`
	StreetAddress string          `json:"streetAddress"`
	ContactEmail  string          `json:"contactEmail,omitempty"`
	ContactPhone  string          `json:"contactPhone,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes,omitempty"`
	TotalAmount   int64           `json:"totalAmount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListOrdersOutput is one page of a user's order history.
type ListOrdersOutput struct {
	Orders  []*OrderOutput `json:"orders"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"perPage"`
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*OrderOutput, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*OrderOutput, error)
	ListOrders(ctx context.Context, input *ListOrdersInput) (*ListOrdersOutput, error)
}
