package service

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quantity(t *testing.T, v int) entity.Quantity {
	t.Helper()
	q, err := entity.NewQuantity(v)
	require.NoError(t, err)

	return q
}

func TestCartService_AddProductToCart_MergesIntoOneLine(t *testing.T) {
	svc := NewCartService()
	cart := entity.NewCart(entity.UserID(1))
	product := newProduct(t, "Mug", 1200, 10, true)

	require.NoError(t, svc.AddProductToCart(cart, product, quantity(t, 3)))
	require.NoError(t, svc.AddProductToCart(cart, product, quantity(t, 3)))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity.Value())
}

func TestCartService_AddProductToCart_ChecksMergedTotalAgainstStock(t *testing.T) {
	svc := NewCartService()
	cart := entity.NewCart(entity.UserID(1))
	product := newProduct(t, "Mug", 1200, 10, true)

	// First add of 6 fits within stock of 10; the second would merge to 12.
	require.NoError(t, svc.AddProductToCart(cart, product, quantity(t, 6)))
	err := svc.AddProductToCart(cart, product, quantity(t, 6))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	item, ok := cart.ItemFor(product.ID)
	require.True(t, ok)
	assert.Equal(t, 6, item.Quantity.Value())
}

func TestCartService_AddProductToCart_SecondAddFailsWhenMergeExceedsStock(t *testing.T) {
	svc := NewCartService()
	cart := entity.NewCart(entity.UserID(1))
	product := newProduct(t, "Mug", 1200, 5, true)

	require.NoError(t, svc.AddProductToCart(cart, product, quantity(t, 3)))
	err := svc.AddProductToCart(cart, product, quantity(t, 3))

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCartService_AddProductToCart_RejectsUnavailableProduct(t *testing.T) {
	svc := NewCartService()
	cart := entity.NewCart(entity.UserID(1))

	err := svc.AddProductToCart(cart, newProduct(t, "Mug", 1200, 10, false), quantity(t, 1))
	require.Error(t, err)
	assert.Equal(t, "Product is not available", err.Error())

	err = svc.AddProductToCart(cart, newProduct(t, "Mug", 1200, 0, true), quantity(t, 1))
	assert.ErrorIs(t, err, domainerrors.ErrProductNotAvailable)
}

func TestCartService_UpdateCartItem(t *testing.T) {
	svc := NewCartService()
	cart := entity.NewCart(entity.UserID(1))
	product := newProduct(t, "Mug", 1200, 10, true)
	require.NoError(t, svc.AddProductToCart(cart, product, quantity(t, 2)))

	require.NoError(t, svc.UpdateCartItem(cart, product, quantity(t, 10)))

	item, ok := cart.ItemFor(product.ID)
	require.True(t, ok)
	assert.Equal(t, 10, item.Quantity.Value())
}

func TestCartService_UpdateCartItem_AbsoluteQuantityExceedsStock(t *testing.T) {
	svc := NewCartService()
	cart := entity.NewCart(entity.UserID(1))
	product := newProduct(t, "Mug", 1200, 10, true)
	require.NoError(t, svc.AddProductToCart(cart, product, quantity(t, 2)))

	err := svc.UpdateCartItem(cart, product, quantity(t, 11))

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCartService_UpdateCartItem_MissingLine(t *testing.T) {
	svc := NewCartService()
	cart := entity.NewCart(entity.UserID(1))
	product := newProduct(t, "Mug", 1200, 10, true)

	err := svc.UpdateCartItem(cart, product, quantity(t, 1))

	require.Error(t, err)
	assert.Equal(t, "Product not found in cart", err.Error())
}

func TestCartService_RemoveProductFromCart(t *testing.T) {
	svc := NewCartService()
	cart := entity.NewCart(entity.UserID(1))
	product := newProduct(t, "Mug", 1200, 10, true)
	require.NoError(t, svc.AddProductToCart(cart, product, quantity(t, 2)))

	require.NoError(t, svc.RemoveProductFromCart(cart, product.ID))
	assert.True(t, cart.IsEmpty())

	err := svc.RemoveProductFromCart(cart, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}
