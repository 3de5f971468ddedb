package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice_RejectsNegative(t *testing.T) {
	_, err := NewPrice(-1)

	require.Error(t, err)
	assert.Equal(t, "Price must be zero or greater", err.Error())
}

func TestNewPrice_AllowsZero(t *testing.T) {
	price, err := NewPrice(0)

	require.NoError(t, err)
	assert.Equal(t, int64(0), price.Value())
}

func TestPrice_MultiplyBy(t *testing.T) {
	price, err := NewPrice(1500)
	require.NoError(t, err)
	qty, err := NewQuantity(3)
	require.NoError(t, err)

	assert.Equal(t, int64(4500), price.MultiplyBy(qty).Value())
}

func TestPrice_ApplyDiscount(t *testing.T) {
	price, err := NewPrice(1000)
	require.NoError(t, err)

	discounted, err := price.ApplyDiscount(0.2)
	require.NoError(t, err)
	assert.Equal(t, int64(800), discounted.Value())

	free, err := price.ApplyDiscount(1.0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), free.Value())

	full, err := price.ApplyDiscount(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), full.Value())
}

func TestPrice_ApplyDiscount_FloorsFractions(t *testing.T) {
	price, err := NewPrice(999)
	require.NoError(t, err)

	discounted, err := price.ApplyDiscount(0.1)
	require.NoError(t, err)
	// 999 * 0.9 = 899.1, floored.
	assert.Equal(t, int64(899), discounted.Value())
}

func TestPrice_ApplyDiscount_RejectsOutOfRangeFactor(t *testing.T) {
	price, err := NewPrice(1000)
	require.NoError(t, err)

	_, err = price.ApplyDiscount(1.1)
	assert.Error(t, err)

	_, err = price.ApplyDiscount(-0.1)
	assert.Error(t, err)
}
