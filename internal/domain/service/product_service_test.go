package service

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, price int64, stock int, active bool) entity.Product {
	t.Helper()
	p, err := entity.NewPrice(price)
	require.NoError(t, err)
	category, err := entity.NewProductCategory("general")
	require.NoError(t, err)

	return entity.Product{
		ID:       entity.ProductID(1),
		Name:     name,
		Price:    p,
		Stock:    stock,
		Category: category,
		IsActive: active,
	}
}

func TestProductService_ValidateProductCreation(t *testing.T) {
	svc := NewProductService()

	assert.NoError(t, svc.ValidateProductCreation(newProduct(t, "Lamp", 990, 10, true)))
	assert.Error(t, svc.ValidateProductCreation(newProduct(t, "", 990, 10, true)))
	assert.Error(t, svc.ValidateProductCreation(newProduct(t, "Lamp", 0, 10, true)))
	assert.Error(t, svc.ValidateProductCreation(newProduct(t, "Lamp", 990, -1, true)))
}

func TestProductService_ValidateStockUpdate(t *testing.T) {
	svc := NewProductService()

	assert.NoError(t, svc.ValidateStockUpdate(newProduct(t, "Lamp", 990, 10, true), 0))
	assert.Error(t, svc.ValidateStockUpdate(newProduct(t, "Lamp", 990, 10, true), -1))

	err := svc.ValidateStockUpdate(newProduct(t, "Lamp", 990, 10, false), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInactiveStockUpdate)
}

func TestProductService_CalculateDiscountedPrice(t *testing.T) {
	svc := NewProductService()
	price, err := entity.NewPrice(1000)
	require.NoError(t, err)

	discounted, err := svc.CalculateDiscountedPrice(price, 0.2)
	require.NoError(t, err)
	assert.Equal(t, int64(800), discounted.Value())

	_, err = svc.CalculateDiscountedPrice(price, 1.1)
	assert.Error(t, err)
}

func TestProductService_IsProductAvailable(t *testing.T) {
	svc := NewProductService()

	for _, tc := range []struct {
		stock  int
		active bool
	}{
		{stock: 5, active: true},
		{stock: 0, active: true},
		{stock: 5, active: false},
		{stock: 0, active: false},
	} {
		product := newProduct(t, "Lamp", 990, tc.stock, tc.active)
		assert.Equal(t, tc.active && tc.stock > 0, svc.IsProductAvailable(product))
	}
}
