package impl

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUserID(t *testing.T, v int64) entity.UserID {
	t.Helper()
	id, err := entity.NewUserID(v)
	require.NoError(t, err)

	return id
}

func mustProductID(t *testing.T, v int64) entity.ProductID {
	t.Helper()
	id, err := entity.NewProductID(v)
	require.NoError(t, err)

	return id
}

func mustOrderID(t *testing.T, v int64) entity.OrderID {
	t.Helper()
	id, err := entity.NewOrderID(v)
	require.NoError(t, err)

	return id
}

func mustQuantity(t *testing.T, v int) entity.Quantity {
	t.Helper()
	quantity, err := entity.NewQuantity(v)
	require.NoError(t, err)

	return quantity
}

func mustPrice(t *testing.T, v int64) entity.Price {
	t.Helper()
	price, err := entity.NewPrice(v)
	require.NoError(t, err)

	return price
}

func testProduct(t *testing.T, id, price int64, stock int, active bool) entity.Product {
	t.Helper()
	category, err := entity.NewProductCategory("books")
	require.NoError(t, err)
	now := time.Now()

	return entity.Product{
		ID:        mustProductID(t, id),
		Name:      "Test Product",
		Price:     mustPrice(t, price),
		Stock:     stock,
		Category:  category,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testUser(t *testing.T, id int64, email string, isAdmin bool) *entity.User {
	t.Helper()
	addr, err := entity.NewEmail(email)
	require.NoError(t, err)
	now := time.Now()

	return &entity.User{
		ID:           mustUserID(t, id),
		Name:         "Test User",
		Email:        addr,
		PasswordHash: "hashed_password",
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func testOrder(t *testing.T, orderID, userID int64) *entity.Order {
	t.Helper()
	postalCode, err := entity.NewPostalCode("100-0001")
	require.NoError(t, err)
	now := time.Now()

	return &entity.Order{
		ID:     mustOrderID(t, orderID),
		UserID: mustUserID(t, userID),
		Items: []entity.OrderItem{
			{
				ProductID:       mustProductID(t, 10),
				ProductName:     "Test Product",
				PriceAtPurchase: mustPrice(t, 500),
				Quantity:        mustQuantity(t, 2),
			},
		},
		Shipping: entity.ShippingAddress{
			RecipientName: "Hanako Yamada",
			PostalCode:    postalCode,
			Prefecture:    "Tokyo",
			City:          "Chiyoda",
			StreetAddress: "1-1-1 Chiyoda",
		},
		PaymentMethod: "credit_card",
		Status:        entity.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// assertErrorCode matches by error code so errors carrying details still
// compare against their predefined base.
func assertErrorCode(t *testing.T, err error, want domainerrors.AppError) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok, "expected an application error, got %T: %v", err, err)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}
