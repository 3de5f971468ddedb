package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity_RejectsNonPositive(t *testing.T) {
	_, err := NewQuantity(0)
	require.Error(t, err)
	assert.Equal(t, "Quantity must be a positive integer", err.Error())

	_, err = NewQuantity(-3)
	assert.Error(t, err)
}

func TestNewQuantity_RejectsAboveMax(t *testing.T) {
	_, err := NewQuantity(100)
	assert.Error(t, err)

	qty, err := NewQuantity(MaxQuantity)
	require.NoError(t, err)
	assert.Equal(t, 99, qty.Value())
}

func TestQuantity_Add_RevalidatesRange(t *testing.T) {
	a, err := NewQuantity(60)
	require.NoError(t, err)
	b, err := NewQuantity(50)
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.Error(t, err)
}

func TestQuantity_Subtract_RejectsZeroResult(t *testing.T) {
	a, err := NewQuantity(3)
	require.NoError(t, err)
	b, err := NewQuantity(3)
	require.NoError(t, err)

	_, err = a.Subtract(b)
	assert.Error(t, err)
}

func TestQuantity_Subtract(t *testing.T) {
	a, err := NewQuantity(5)
	require.NoError(t, err)
	b, err := NewQuantity(2)
	require.NoError(t, err)

	result, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Value())
}
