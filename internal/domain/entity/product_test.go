package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, stock int, active bool) Product {
	t.Helper()
	price, err := NewPrice(2500)
	require.NoError(t, err)
	category, err := NewProductCategory("books")
	require.NoError(t, err)

	return Product{
		ID:       ProductID(1),
		Name:     "Field Guide",
		Price:    price,
		Stock:    stock,
		Category: category,
		IsActive: active,
	}
}

func TestProduct_IsAvailableForSale(t *testing.T) {
	assert.True(t, testProduct(t, 5, true).IsAvailableForSale())
	assert.False(t, testProduct(t, 0, true).IsAvailableForSale())
	assert.False(t, testProduct(t, 5, false).IsAvailableForSale())
	assert.False(t, testProduct(t, 0, false).IsAvailableForSale())
}

func TestProduct_HasStockFor(t *testing.T) {
	product := testProduct(t, 5, true)

	assert.True(t, product.HasStockFor(mustQuantity(t, 5)))
	assert.False(t, product.HasStockFor(mustQuantity(t, 6)))
}

func TestProduct_CopyOnWriteOperations(t *testing.T) {
	original := testProduct(t, 5, true)

	updated := original.WithStock(0).Activated(false)

	assert.Equal(t, 5, original.Stock)
	assert.True(t, original.IsActive)
	assert.Equal(t, 0, updated.Stock)
	assert.False(t, updated.IsActive)
}
