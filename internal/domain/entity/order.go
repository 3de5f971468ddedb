package entity

import (
	"time"
)

// OrderStatus is a pure data field on the order; no transition rules are
// enforced here.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is an immutable snapshot of a purchased line. Name and price are
// copied from the product at checkout and deliberately never track later
// catalog changes.
type OrderItem struct {
	ProductID       ProductID
	ProductName     string
	PriceAtPurchase Price
	Quantity        Quantity
}

// Subtotal returns priceAtPurchase * quantity for this line.
func (i OrderItem) Subtotal() Price {
	return i.PriceAtPurchase.MultiplyBy(i.Quantity)
}

// ShippingAddress is the destination captured with the order.
type ShippingAddress struct {
	RecipientName string
	PostalCode    PostalCode
	Prefecture    string
	City          string
	StreetAddress string
}

// ContactInfo is the optional contact data captured with the order.
type ContactInfo struct {
	Email Email
	Phone string
}

// Order is the durable record of a completed checkout. It is append-only:
// everything except Status is fixed at creation.
type Order struct {
	ID            OrderID
	UserID        UserID
	Items         []OrderItem
	Shipping      ShippingAddress
	Contact       *ContactInfo
	PaymentMethod string
	Notes         string
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TotalAmount returns the sum of every line's subtotal.
func (o Order) TotalAmount() Price {
	total := Price{}
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}
