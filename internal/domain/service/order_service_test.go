package service

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutDetails(t *testing.T) CheckoutDetails {
	t.Helper()
	postal, err := entity.NewPostalCode("150-0001")
	require.NoError(t, err)

	return CheckoutDetails{
		Shipping: entity.ShippingAddress{
			RecipientName: "Aki Tanaka",
			PostalCode:    postal,
			Prefecture:    "Tokyo",
			City:          "Shibuya",
			StreetAddress: "1-2-3",
		},
		PaymentMethod: "credit_card",
	}
}

func TestOrderService_BuildFromCart_SnapshotsCurrentNameAndPrice(t *testing.T) {
	svc := NewOrderService()
	cart := entity.NewCart(entity.UserID(1))
	product := newProduct(t, "Mug", 1200, 10, true)
	require.NoError(t, cart.AddItem(product.ID, quantity(t, 2)))

	order, err := svc.BuildFromCart(cart, map[entity.ProductID]entity.Product{product.ID: product}, checkoutDetails(t))

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Mug", order.Items[0].ProductName)
	assert.Equal(t, int64(1200), order.Items[0].PriceAtPurchase.Value())
	assert.Equal(t, int64(2400), order.TotalAmount().Value())
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	// Later catalog changes must not affect the snapshot.
	newPrice, err := entity.NewPrice(9999)
	require.NoError(t, err)
	product = product.WithPrice(newPrice)
	assert.Equal(t, int64(9999), product.Price.Value())
	assert.Equal(t, int64(2400), order.TotalAmount().Value())
}

func TestOrderService_BuildFromCart_EmptyCart(t *testing.T) {
	svc := NewOrderService()

	_, err := svc.BuildFromCart(entity.NewCart(entity.UserID(1)), nil, checkoutDetails(t))
	require.Error(t, err)
	assert.Equal(t, "Cart is empty", err.Error())

	_, err = svc.BuildFromCart(nil, nil, checkoutDetails(t))
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_BuildFromCart_AnyFailingLineAbortsWholeBuild(t *testing.T) {
	svc := NewOrderService()
	cart := entity.NewCart(entity.UserID(1))
	good := newProduct(t, "Mug", 1200, 10, true)
	short := newProduct(t, "Tea", 800, 1, true)
	short.ID = entity.ProductID(2)
	require.NoError(t, cart.AddItem(good.ID, quantity(t, 2)))
	require.NoError(t, cart.AddItem(short.ID, quantity(t, 3)))

	products := map[entity.ProductID]entity.Product{good.ID: good, short.ID: short}
	order, err := svc.BuildFromCart(cart, products, checkoutDetails(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Nil(t, order)
	// The cart keeps all of its lines, including the valid one.
	assert.Len(t, cart.Items(), 2)
}

func TestOrderService_BuildFromCart_MissingAndInactiveProducts(t *testing.T) {
	svc := NewOrderService()
	cart := entity.NewCart(entity.UserID(1))
	require.NoError(t, cart.AddItem(entity.ProductID(7), quantity(t, 1)))

	_, err := svc.BuildFromCart(cart, map[entity.ProductID]entity.Product{}, checkoutDetails(t))
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	inactive := newProduct(t, "Mug", 1200, 10, false)
	inactive.ID = entity.ProductID(7)
	_, err = svc.BuildFromCart(cart, map[entity.ProductID]entity.Product{inactive.ID: inactive}, checkoutDetails(t))
	assert.ErrorIs(t, err, domainerrors.ErrProductNotAvailable)
}

func TestOrderService_ValidateOrder(t *testing.T) {
	svc := NewOrderService()

	assert.ErrorIs(t, svc.ValidateOrder(nil), domainerrors.ErrOrderEmpty)
	assert.ErrorIs(t, svc.ValidateOrder(&entity.Order{}), domainerrors.ErrOrderEmpty)
}
