package service

import (
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// CheckoutDetails carries the shipping/contact/payment data a checkout
// request supplies alongside the cart.
type CheckoutDetails struct {
	Shipping      entity.ShippingAddress
	Contact       *entity.ContactInfo
	PaymentMethod string
	Notes         string
}

// OrderService builds immutable order snapshots out of carts and live
// catalog state.
type OrderService struct{}

// NewOrderService is the constructor for OrderService.
func NewOrderService() *OrderService {
	return &OrderService{}
}

// BuildFromCart re-validates every cart line against the CURRENT product
// state and produces the order snapshot. Any failing line aborts the whole
// build: no partial order exists and the cart is untouched. This is the
// snapshot point: names and prices are copied here and never track later
// catalog changes.
func (s *OrderService) BuildFromCart(cart *entity.Cart, products map[entity.ProductID]entity.Product, details CheckoutDetails) (*entity.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	lines := cart.Items()
	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WithDetails("product " + line.ProductID.String() + " no longer exists")
		}
		if !product.IsAvailableForSale() {
			return nil, domainerrors.ErrProductNotAvailable.WithDetails("product " + line.ProductID.String() + " is not available")
		}
		if !product.HasStockFor(line.Quantity) {
			return nil, domainerrors.ErrInsufficientStock.WithDetails("product " + line.ProductID.String() + " has insufficient stock")
		}

		items = append(items, entity.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			PriceAtPurchase: product.Price,
			Quantity:        line.Quantity,
		})
	}

	now := time.Now()
	order := &entity.Order{
		UserID:        cart.UserID,
		Items:         items,
		Shipping:      details.Shipping,
		Contact:       details.Contact,
		PaymentMethod: details.PaymentMethod,
		Notes:         details.Notes,
		Status:        entity.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.ValidateOrder(order); err != nil {
		return nil, err
	}

	return order, nil
}

// ValidateOrder enforces the order-level invariants: at least one line and a
// strictly positive total.
func (s *OrderService) ValidateOrder(order *entity.Order) error {
	if order == nil || len(order.Items) == 0 {
		return domainerrors.ErrOrderEmpty
	}
	if order.TotalAmount().Value() <= 0 {
		return domainerrors.NewValidationError("Order total must be greater than zero")
	}

	return nil
}
