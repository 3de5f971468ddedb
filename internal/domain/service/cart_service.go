package service

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// CartService enforces the rules that tie cart lines to the live catalog.
// Every method validates fully before touching the aggregate, so a failed
// call leaves the cart exactly as it was.
type CartService struct{}

// NewCartService is the constructor for CartService.
func NewCartService() *CartService {
	return &CartService{}
}

// AddProductToCart merges the requested quantity into the user's cart.
// The stock check runs against the MERGED line total, not just the addition:
// repeated small adds can never push a line past the product's stock.
func (s *CartService) AddProductToCart(cart *entity.Cart, product entity.Product, quantity entity.Quantity) error {
	if !product.IsAvailableForSale() {
		return domainerrors.ErrProductNotAvailable
	}

	merged, err := cart.MergedQuantityWith(product.ID, quantity)
	if err != nil {
		return err
	}
	if !product.HasStockFor(merged) {
		return domainerrors.ErrInsufficientStock
	}

	return cart.AddItem(product.ID, quantity)
}

// UpdateCartItem replaces the line's quantity with a new absolute value,
// which must not exceed the product's current stock.
func (s *CartService) UpdateCartItem(cart *entity.Cart, product entity.Product, quantity entity.Quantity) error {
	if _, ok := cart.ItemFor(product.ID); !ok {
		return domainerrors.ErrCartItemNotFound
	}
	if !product.HasStockFor(quantity) {
		return domainerrors.ErrInsufficientStock
	}

	return cart.UpdateItem(product.ID, quantity)
}

// RemoveProductFromCart removes the product's line. The cart aggregate
// survives even when its last line goes.
func (s *CartService) RemoveProductFromCart(cart *entity.Cart, productID entity.ProductID) error {
	return cart.RemoveItem(productID)
}
