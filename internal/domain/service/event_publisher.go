package service

import (
	"context"
)

// OrderCreatedEvent is published after a checkout commits, for downstream
// consumers (fulfillment, notifications) outside this core.
type OrderCreatedEvent struct {
	RequestID   string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID     int64            `json:"order_id"`
	UserID      int64            `json:"user_id"`
	TotalAmount int64            `json:"total_amount"`
	Items       []OrderEventItem `json:"items"`
}

// OrderEventItem is one purchased line in the event payload.
type OrderEventItem struct {
	ProductID       int64  `json:"product_id"`
	ProductName     string `json:"product_name"`
	PriceAtPurchase int64  `json:"price_at_purchase"`
	Quantity        int    `json:"quantity"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order-created event for async processing
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
