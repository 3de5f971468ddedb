package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order history queries.
type OrderFilter struct {
	Status *entity.OrderStatus
}

// OrderRepository defines the standard operations for order persistence.
// Orders are append-only; there is deliberately no update of line items.
type OrderRepository interface {
	// Create persists a new order with all of its item snapshots and
	// assigns its id.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id entity.OrderID) (*entity.Order, error)

	// FindByUserID retrieves a page of the user's orders, newest first.
	FindByUserID(ctx context.Context, userID entity.UserID, filter OrderFilter, page Pagination) ([]*entity.Order, error)

	// CountByUserID returns the total number of the user's orders matching the filter.
	CountByUserID(ctx context.Context, userID entity.UserID, filter OrderFilter) (int64, error)
}
